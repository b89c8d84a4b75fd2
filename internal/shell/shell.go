package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/Neev4n/myshell-go/internal/logger"
	"github.com/Neev4n/myshell-go/pkg/builtin"
)

// exit error
var ErrExit = errors.New("exit")

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgCount       = errors.New("wrong number of arguments")
)

// UnknownCommandError is reported for a line no verb accepts, either because
// the verb is unknown or because its argument count does not fit.
type UnknownCommandError struct {
	Name string
	Line string
	Err  error
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("%s: %s: No such file or directory", e.Name, e.Line)
}

func (e *UnknownCommandError) Unwrap() error {
	return e.Err
}

type Options struct {
	// Name prefixes the prompt and shell-level diagnostics.
	Name string

	// Color renders the prompt directory in bold green.
	Color bool

	// NoPrompt suppresses the prompt entirely.
	NoPrompt bool

	// Builtins overrides the operation set, mostly for tests.
	Builtins *builtin.Set
}

// type Shell
type Shell struct {
	in       *bufio.Reader
	Out      io.Writer
	Err      io.Writer
	name     string
	prompt   *color.Color
	noPrompt bool
	ops      *builtin.Set
	parser   Parser
	builtins map[string]verb
	session  string
}

// func New
func New(reader io.Reader, out, errw io.Writer, opts Options) *Shell {
	if opts.Name == "" {
		opts.Name = "myshell"
	}
	if opts.Builtins == nil {
		opts.Builtins = builtin.New(nil, builtin.DefaultOptions())
	}

	prompt := color.New(color.FgGreen, color.Bold)
	if !opts.Color {
		prompt.DisableColor()
	}

	s := &Shell{
		in:       bufio.NewReaderSize(reader, lineBufSize),
		Out:      out,
		Err:      errw,
		name:     opts.Name,
		prompt:   prompt,
		noPrompt: opts.NoPrompt,
		ops:      opts.Builtins,
		parser:   NewDefaultParser(),
		builtins: make(map[string]verb),
	}

	s.registerBuiltins()
	return s
}

// Run reads and dispatches lines until exit, q, or the end of input.
func (s *Shell) Run() error {
	s.session = uuid.New().String()[:8]
	logger.Info("session started", "session", s.session)

	for {
		s.showPrompt()

		line, err := s.readLine()
		atEOF := errors.Is(err, io.EOF)

		if errors.Is(err, ErrLineTooLong) {
			logger.Warn("discarded oversized line", "session", s.session, "limit", MaxLineLen)
			fmt.Fprintf(s.Err, "%s: %v\n", s.name, err)
			continue
		}

		if err != nil && !atEOF {
			logger.Error("read failed", "session", s.session, "err", err)
			return err
		}

		if atEOF && line == "" {
			logger.Info("input closed", "session", s.session)
			return nil
		}

		line = strings.TrimRightFunc(line, unicode.IsSpace)

		if err := s.Dispatch(line); errors.Is(err, ErrExit) {
			logger.Info("session ended", "session", s.session)
			return nil
		}

		if atEOF {
			logger.Info("input closed", "session", s.session)
			return nil
		}
	}
}

// lineBufSize holds the longest accepted line plus its newline.
const lineBufSize = MaxLineLen + 1

// readLine returns one line, newline included. A line that does not fit the
// buffer is consumed through its newline and reported as ErrLineTooLong, so
// input without newlines never grows memory.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadSlice('\n')
	if !errors.Is(err, bufio.ErrBufferFull) {
		return string(line), err
	}

	for errors.Is(err, bufio.ErrBufferFull) {
		_, err = s.in.ReadSlice('\n')
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return "", ErrLineTooLong
}

// Dispatch parses one trimmed line and runs the matching built-in. Any failure
// is reported on Err as a single line and also returned. ErrExit is returned
// unreported.
func (s *Shell) Dispatch(line string) error {
	cmd, err := s.parser.Parse(line)
	if err != nil {
		fmt.Fprintf(s.Err, "%s: %v\n", s.name, err)
		return err
	}

	if cmd.Verb == "" {
		return nil
	}

	v, ok := s.builtins[cmd.Verb]
	if !ok {
		return s.reject(line, ErrUnknownCommand)
	}

	if !v.arity.Accepts(len(cmd.Args)) {
		return s.reject(line, ErrArgCount)
	}

	if v.exact && strings.TrimRightFunc(line, unicode.IsSpace) != cmd.Verb {
		return s.reject(line, ErrUnknownCommand)
	}

	err = v.run(s, cmd.Arg())
	if errors.Is(err, ErrExit) {
		return err
	}

	logger.Debug("dispatch", "session", s.session, "verb", cmd.Verb, "arg", cmd.Arg(), "outcome", builtin.Outcome(err))

	if err != nil {
		fmt.Fprintln(s.Err, err)
	}

	return err
}

func (s *Shell) reject(line string, reason error) error {
	err := &UnknownCommandError{Name: s.name, Line: line, Err: reason}
	logger.Debug("rejected", "session", s.session, "line", line, "reason", reason)

	fmt.Fprintln(s.Err, err)
	return err
}

func (s *Shell) showPrompt() {
	if s.noPrompt {
		return
	}

	dir, err := os.Getwd()
	if err != nil {
		return
	}

	fmt.Fprintf(s.Out, "%s:%s> ", s.name, s.prompt.Sprint(dir))
}
