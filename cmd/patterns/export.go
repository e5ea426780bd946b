// cmd/patterns/export.go
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// exportTranscript writes a demo's transcript to <dir>/<name>-transcript.txt
// and returns the path. The write is atomic, so a concurrent reader sees
// either the old file or the new one, never a torn one.
func exportTranscript(dir, name string, lines []string) (string, error) {
	path := filepath.Join(dir, name+"-transcript.txt")
	data := []byte(strings.Join(lines, "\n") + "\n")

	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return "", fmt.Errorf("export transcript: %w", err)
	}
	return path, nil
}

// tempFile abstracts an os.File for testability.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// writeFileAtomic writes a file atomically.
//
// It writes to a temporary file in the same directory and then renames it
// over the target path, ensuring readers never observe partial writes.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	targetDir := filepath.Dir(targetPath)

	tmpFile, err := createTempFile(targetDir, filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = removeFile(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = chmodFile(tmpPath, perm); err != nil {
		return err
	}
	if err = renameFile(tmpPath, targetPath); err != nil {
		return err
	}
	return nil
}
