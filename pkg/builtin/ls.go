package builtin

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

// readdirBatch bounds how many names are pulled from the directory per call.
const readdirBatch = 64

// Ls prints every entry of dirname, one per line, in the order the file system
// yields them. Readdirnames never returns "." and "..", so both are printed
// first instead of wherever the kernel would have placed them.
func (s *Set) Ls(bind IOBindings, dirname string) error {
	dir, err := s.fs.Open(dirname)
	if err != nil {
		return newError("ls", "%s", err)
	}
	defer dir.Close()

	info, err := dir.Stat()
	if err != nil {
		return newError("ls", "%s", err)
	}
	if !info.IsDir() {
		return newError("ls", "%s", syscall.ENOTDIR)
	}

	fmt.Fprintln(bind.Stdout, ".")
	fmt.Fprintln(bind.Stdout, "..")

	for {
		names, err := dir.Readdirnames(readdirBatch)

		for _, name := range names {
			fmt.Fprintln(bind.Stdout, name)
		}

		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return newError("ls", "Cannot read entry from directory... %s", err)
		}

		if len(names) == 0 {
			return nil
		}
	}
}
