package version

import "errors"

var (
	ErrVersionQuery        = errors.New("version query failed")
	ErrNoTags              = errors.New("no version tags found")
	ErrFileSystemOperation = errors.New("file system operation failed")
)
