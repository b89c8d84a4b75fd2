package shell

import (
	"github.com/Neev4n/myshell-go/pkg/builtin"
)

// Arity is the number of arguments a verb accepts.
type Arity int

const (
	ArityNone Arity = iota
	ArityOptional
	ArityRequired
)

// Accepts reports whether n arguments fit the arity.
func (a Arity) Accepts(n int) bool {
	switch a {
	case ArityNone:
		return n == 0
	case ArityOptional:
		return n <= 1
	case ArityRequired:
		return n == 1
	}
	return false
}

// Builtin runs a verb with its argument ("" when absent).
type Builtin func(s *Shell, arg string) error

type verb struct {
	arity Arity
	run   Builtin

	// exact verbs match only when the line is the bare verb, leading
	// whitespace included.
	exact bool
}

// VerbOrder lists the recognised verbs, special cases first, then the
// remaining verbs in their reference order.
var VerbOrder = []string{"cd", "exit", "cat", "stat", "mkdir", "rmdir", "rm", "ls", "pwd", "q"}

func (s *Shell) registerBuiltins() {

	exit := verb{arity: ArityNone, exact: true, run: func(s *Shell, arg string) error {
		return ErrExit
	}}

	s.builtins["exit"] = exit
	s.builtins["q"] = exit

	s.builtins["cd"] = verb{arity: ArityOptional, run: func(s *Shell, arg string) error {
		return s.ops.Cd(arg)
	}}

	s.builtins["cat"] = verb{arity: ArityRequired, run: func(s *Shell, arg string) error {
		return s.ops.Cat(s.bindings(), arg)
	}}

	s.builtins["stat"] = verb{arity: ArityRequired, run: func(s *Shell, arg string) error {
		return s.ops.Stat(s.bindings(), arg)
	}}

	s.builtins["mkdir"] = verb{arity: ArityRequired, run: func(s *Shell, arg string) error {
		return s.ops.Mkdir(arg)
	}}

	s.builtins["rmdir"] = verb{arity: ArityRequired, run: func(s *Shell, arg string) error {
		return s.ops.Rmdir(arg)
	}}

	s.builtins["rm"] = verb{arity: ArityRequired, run: func(s *Shell, arg string) error {
		return s.ops.Rm(arg)
	}}

	s.builtins["ls"] = verb{arity: ArityOptional, run: func(s *Shell, arg string) error {
		if arg == "" {
			arg = "."
		}
		return s.ops.Ls(s.bindings(), arg)
	}}

	s.builtins["pwd"] = verb{arity: ArityNone, run: func(s *Shell, arg string) error {
		return s.ops.Pwd(s.bindings())
	}}
}

func (s *Shell) bindings() builtin.IOBindings {
	return builtin.IOBindings{Stdout: s.Out, Stderr: s.Err}
}
