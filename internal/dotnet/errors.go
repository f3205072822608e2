package dotnet

import "errors"

var (
	ErrPack                = errors.New("package step failed")
	ErrTest                = errors.New("test step failed")
	ErrFileSystemOperation = errors.New("file system operation failed")
)
