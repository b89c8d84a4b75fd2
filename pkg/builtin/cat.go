package builtin

import (
	"errors"
	"io"
)

// Cat copies filename to Stdout one chunk at a time. With ChunkNewline set, a
// newline follows every chunk, not only the last one.
func (s *Set) Cat(bind IOBindings, filename string) error {
	f, err := s.fs.Open(filename)
	if err != nil {
		return newError("cat", "Cannot open file. %s", err)
	}
	defer f.Close()

	buf := make([]byte, s.opts.ChunkSize)

	for {
		n, err := f.Read(buf)

		if n > 0 {
			if werr := writeChunk(bind.Stdout, buf[:n]); werr != nil {
				return newError("cat", "cannot read file. %s", werr)
			}

			if s.opts.ChunkNewline {
				if _, werr := io.WriteString(bind.Stdout, "\n"); werr != nil {
					return newError("cat", "cannot read file. %s", werr)
				}
			}
		}

		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return newError("cat", "cannot read file. %s", err)
		}

		if n == 0 {
			return nil
		}
	}
}

func writeChunk(w io.Writer, chunk []byte) error {
	n, err := w.Write(chunk)
	if err != nil {
		return err
	}
	if n != len(chunk) {
		return io.ErrShortWrite
	}
	return nil
}
