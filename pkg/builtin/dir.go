package builtin

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"syscall"

	"github.com/spf13/afero"
)

// Mkdir creates dirname with DirMode, subject to the process umask.
func (s *Set) Mkdir(dirname string) error {
	if err := s.fs.Mkdir(dirname, DirMode); err != nil {
		return newError("mkdir", "Cannot create directory. %s.", err)
	}
	return nil
}

// Rmdir removes an empty directory.
func (s *Set) Rmdir(dirname string) error {
	if err := s.rmdir(dirname); err != nil {
		return newError("rmdir", "Cannot remove directory. %s.", err)
	}
	return nil
}

func (s *Set) rmdir(dirname string) error {
	info, err := s.lstat(dirname)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "rmdir", Path: dirname, Err: syscall.ENOTDIR}
	}

	empty, err := s.isEmptyDir(dirname)
	if err != nil {
		return err
	}
	if !empty {
		return &fs.PathError{Op: "rmdir", Path: dirname, Err: syscall.ENOTEMPTY}
	}

	return s.fs.Remove(dirname)
}

// Rm unlinks a file. Directories are refused.
func (s *Set) Rm(filename string) error {
	info, err := s.lstat(filename)
	if err == nil && info.IsDir() {
		err = &fs.PathError{Op: "unlink", Path: filename, Err: syscall.EISDIR}
	}
	if err == nil {
		err = s.fs.Remove(filename)
	}

	if err != nil {
		return newError("rm", "Cannot remove file. %s.", err)
	}
	return nil
}

// lstat does not follow a trailing symlink when the file system can avoid it,
// so rm removes the link rather than refusing a link to a directory.
func (s *Set) lstat(name string) (os.FileInfo, error) {
	if l, ok := s.fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(name)
		return info, err
	}
	return s.fs.Stat(name)
}

func (s *Set) isEmptyDir(dirname string) (bool, error) {
	dir, err := s.fs.Open(dirname)
	if err != nil {
		return false, err
	}
	defer dir.Close()

	names, err := dir.Readdirnames(1)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return len(names) == 0, nil
}
