package io

import (
	"fmt"
	"os"
	"path/filepath"
)

// MakeDirForFile creates the parent directory of filePath, creator is the
// component mentioned in the error.
func MakeDirForFile(filePath string, creator string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), os.ModePerm); err != nil {
		return fmt.Errorf("could not create dir for %s: %w", creator, err)
	}
	return nil
}
