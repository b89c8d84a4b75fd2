package builtin

import (
	"errors"
	"fmt"
	"os"
)

// ErrNoHome is returned by a home lookup that yields no directory.
var ErrNoHome = errors.New("no home directory")

// Cd changes the process working directory. An empty dirname means the home
// directory of the invoking user; anything else is used verbatim.
func (s *Set) Cd(dirname string) error {
	if dirname == "" {
		home, err := s.opts.LookupHome()
		if err != nil {
			return newError("cd", "Cannot resolve home directory. %s", err)
		}
		if home == "" {
			return newError("cd", "Cannot resolve home directory. %s", ErrNoHome)
		}
		dirname = home
	}

	if err := os.Chdir(dirname); err != nil {
		return newError("cd", "%s", err)
	}
	return nil
}

// Pwd prints the absolute working directory. Nothing is printed when it cannot
// be resolved.
func (s *Set) Pwd(bind IOBindings) error {
	dir, err := os.Getwd()
	if err != nil {
		return newError("pwd", "Could not find current directory. %s.", err)
	}

	fmt.Fprintln(bind.Stdout, dir)
	return nil
}
