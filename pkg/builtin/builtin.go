// Package builtin implements the file-system operations the shell runs in-process.
//
// Every operation performs exactly one file-system action, writes its report to the
// bound output stream and returns nil or an *Error carrying the one-line diagnostic.
// Operations never print their own diagnostics; the caller does, once.
package builtin

import (
	"io"
	"os"
	"os/user"
	"strconv"

	"github.com/spf13/afero"
)

const (
	// ChunkSize is the read size used by Cat.
	ChunkSize = 256

	// DirMode is the permission set requested by Mkdir, before the umask.
	DirMode os.FileMode = 0777
)

// Legacy integer outcomes.
const (
	Success = 0
	Failure = -1
)

type IOBindings struct {
	Stdout io.Writer
	Stderr io.Writer
}

type Options struct {
	// ChunkSize overrides the Cat read size when positive.
	ChunkSize int

	// ChunkNewline appends a newline after every chunk Cat writes.
	ChunkNewline bool

	// LookupHome resolves the directory Cd uses when given no argument.
	LookupHome func() (string, error)
}

// DefaultOptions matches the historical behaviour of the shell.
func DefaultOptions() Options {
	return Options{
		ChunkSize:    ChunkSize,
		ChunkNewline: true,
		LookupHome:   UserHome,
	}
}

// Set is the fixed collection of built-in operations.
type Set struct {
	fs   afero.Fs
	opts Options
}

func New(fs afero.Fs, opts Options) *Set {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = ChunkSize
	}
	if opts.LookupHome == nil {
		opts.LookupHome = UserHome
	}

	return &Set{fs: fs, opts: opts}
}

// Outcome maps an operation result onto the 0 / -1 convention.
func Outcome(err error) int {
	if err != nil {
		return Failure
	}
	return Success
}

// UserHome looks up the home directory of the current user id in the user database.
func UserHome() (string, error) {
	u, err := user.LookupId(strconv.Itoa(os.Getuid()))
	if err != nil {
		return "", err
	}
	return u.HomeDir, nil
}
