package builtin

import (
	"fmt"
	"io"

	"golang.org/x/sys/unix"
)

// FileStat is the subset of stat(2) the report prints, widened to fixed types
// so the platform-specific Stat_t layouts collapse into one shape.
type FileStat struct {
	Atime   int64 // nanoseconds since the epoch
	Mtime   int64
	Ctime   int64
	Uid     uint32
	Gid     uint32
	Ino     uint64
	Mode    uint32
	Nlink   uint64
	Size    int64
	Blksize int64
	Blocks  int64
}

// Stat prints the metadata report for filename.
func (s *Set) Stat(bind IOBindings, filename string) error {
	var st unix.Stat_t
	if err := unix.Stat(filename, &st); err != nil {
		return newError("stat", "Cannot retrieve file stats. %s.", err)
	}

	writeStat(bind.Stdout, filename, fromStatT(&st))
	return nil
}

func writeStat(w io.Writer, filename string, fs FileStat) {
	fmt.Fprintf(w, "\nSTATS FOR \"%s\":\n", filename)
	fmt.Fprintf(w, "Last access: %d ns\n", fs.Atime)
	fmt.Fprintf(w, "Last modification: %d ns\n", fs.Mtime)
	fmt.Fprintf(w, "Last change: %d ns\n\n", fs.Ctime)

	fmt.Fprintf(w, "File owner ID: %d\nFile group owner ID: %d\n", fs.Uid, fs.Gid)
	fmt.Fprintf(w, "File inode number: %d\n", fs.Ino)
	fmt.Fprintf(w, "File type & mode: %d\n", fs.Mode)
	fmt.Fprintf(w, "File hard link count: %d\n\n", fs.Nlink)

	fmt.Fprintf(w, "File size: %d byte(s)\n", fs.Size)
	fmt.Fprintf(w, "File preferred block size: %d\n", fs.Blksize)
	fmt.Fprintf(w, "Allocated %d blocks of 512 bytes\n\n", fs.Blocks)
}
