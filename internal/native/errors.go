package native

import "errors"

var (
	ErrBuild               = errors.New("native build failed")
	ErrFileSystemOperation = errors.New("file system operation failed")
	ErrNameCollision       = errors.New("staged file name collision")
)
