// Package fileremover cleans up files that were only partially written.
package fileremover

import (
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/pathutil"
)

// FileRemover ...
type FileRemover interface {
	Remove(pth string) error
}

type fileRemover struct {
	pathChecker pathutil.PathChecker
	fileManager fileutil.FileManager
}

// NewFileRemover ...
func NewFileRemover(pathChecker pathutil.PathChecker, fileManager fileutil.FileManager) FileRemover {
	return fileRemover{pathChecker: pathChecker, fileManager: fileManager}
}

// Remove deletes pth; a missing file is not an error.
func (r fileRemover) Remove(pth string) error {
	exists, err := r.pathChecker.IsPathExists(pth)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	return r.fileManager.Remove(pth)
}
