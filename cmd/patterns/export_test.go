package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// writeFileAtomic() seam helpers
// -----------------------------------------------------------------------------

// fakeTempFile is a controllable file-like object for writeFileAtomic tests.
type fakeTempFile struct {
	fileName string
	writeErr error
	closeErr error
}

func (f *fakeTempFile) Name() string { return f.fileName }

func (f *fakeTempFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return len(p), nil
}

func (f *fakeTempFile) Close() error { return f.closeErr }

// restoreWriteFileSeams snapshots the global seams and restores them when the
// test finishes.
func restoreWriteFileSeams(t *testing.T) {
	t.Helper()

	origCreate, origChmod, origRename, origRemove := createTempFile, chmodFile, renameFile, removeFile
	t.Cleanup(func() {
		createTempFile = origCreate
		chmodFile = origChmod
		renameFile = origRename
		removeFile = origRemove
	})
}

//
// -----------------------------------------------------------------------------
// exportTranscript()
// -----------------------------------------------------------------------------

func TestExportTranscript_WritesFile(t *testing.T) {
	// NOT parallel: writeFileAtomic uses global seams.
	dir := t.TempDir()

	path, err := exportTranscript(dir, "builder", []string{"first line", "second line"})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "builder-transcript.txt"), path)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first line\nsecond line\n", string(contents))
}

func TestExportTranscript_WrapsWriteError(t *testing.T) {
	// NOT parallel: mutates global seams.
	restoreWriteFileSeams(t)

	createTempFile = func(dir, pattern string) (tempFile, error) {
		return nil, errors.New("disk full")
	}

	_, err := exportTranscript(t.TempDir(), "builder", []string{"line"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "export transcript")
	assert.Contains(t, err.Error(), "disk full")
}

//
// -----------------------------------------------------------------------------
// writeFileAtomic() error branches
// -----------------------------------------------------------------------------

func TestWriteFileAtomic_ErrorBranches(t *testing.T) {
	// NOT parallel: mutates global seams.

	testCases := []struct {
		name        string
		setup       func(removed *[]string)
		wantErrSub  string
		wantRemoved int
	}{
		{
			name: "create temp error",
			setup: func(removed *[]string) {
				createTempFile = func(dir, pattern string) (tempFile, error) {
					return nil, errors.New("create temp failed")
				}
			},
			wantErrSub:  "create temp failed",
			wantRemoved: 0,
		},
		{
			name: "write error removes temp via deferred cleanup",
			setup: func(removed *[]string) {
				createTempFile = func(dir, pattern string) (tempFile, error) {
					return &fakeTempFile{
						fileName: filepath.Join(dir, "tmpfile"),
						writeErr: errors.New("write failed"),
					}, nil
				}
			},
			wantErrSub:  "write failed",
			wantRemoved: 1,
		},
		{
			name: "rename error removes temp via deferred cleanup",
			setup: func(removed *[]string) {
				createTempFile = func(dir, pattern string) (tempFile, error) {
					return &fakeTempFile{fileName: filepath.Join(dir, "tmpfile")}, nil
				}
				chmodFile = func(path string, mode os.FileMode) error { return nil }
				renameFile = func(oldpath, newpath string) error { return errors.New("rename failed") }
			},
			wantErrSub:  "rename failed",
			wantRemoved: 1,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			restoreWriteFileSeams(t)

			var removed []string
			removeFile = func(path string) error {
				removed = append(removed, path)
				return nil
			}
			tc.setup(&removed)

			err := writeFileAtomic(filepath.Join(t.TempDir(), "out.txt"), []byte("x"), 0o644)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErrSub)
			assert.Len(t, removed, tc.wantRemoved)
		})
	}
}

func TestWriteFileAtomic_Success(t *testing.T) {
	// NOT parallel: uses real filesystem but does not mutate seams.
	outputPath := filepath.Join(t.TempDir(), "final.txt")

	require.NoError(t, writeFileAtomic(outputPath, []byte("hello"), 0o644))

	contents, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(contents))
}
