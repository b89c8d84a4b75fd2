package shell

import (
	"errors"
	"io"
	"strings"
	"unicode"
)

const (
	// MaxLineLen is the longest accepted input line, terminator excluded.
	MaxLineLen = 255

	// MaxArgLen bounds a single token. Parse checks tokens before the whole
	// line, so an oversized argument is reported as such rather than as an
	// oversized line.
	MaxArgLen = MaxLineLen
)

var (
	ErrLineTooLong = errors.New("input line too long")
	ErrArgTooLong  = errors.New("argument too long")
)

// Command is one parsed input line: the verb and every token after it.
type Command struct {
	Verb string
	Args []string
}

// Arg returns the single argument, or "" when there is none.
func (c Command) Arg() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}

type Parser interface {
	Parse(line string) (Command, error)
}

// DefaultParser splits on whitespace only. Quotes and backslashes are ordinary
// characters.
type DefaultParser struct {
	newReader  func(string) io.RuneReader
	newBuilder func() *strings.Builder
}

func NewDefaultParser() *DefaultParser {
	d := &DefaultParser{
		newReader: func(s string) io.RuneReader {
			return strings.NewReader(s)
		},
		newBuilder: func() *strings.Builder {
			return &strings.Builder{}
		},
	}

	return d
}

type tokenBuffer struct {
	builder *strings.Builder
}

func newTokenBuffer(builder *strings.Builder) *tokenBuffer {
	return &tokenBuffer{builder: builder}
}

func (tb *tokenBuffer) isEmpty() bool {
	return tb.builder.Len() == 0
}

func (tb *tokenBuffer) appendRune(r rune) {
	tb.builder.WriteRune(r)
}

func (tb *tokenBuffer) flushIfNotEmpty(tokens []string) ([]string, error) {
	if tb.isEmpty() {
		return tokens, nil
	}

	if tb.builder.Len() > MaxArgLen {
		return nil, ErrArgTooLong
	}

	s := tb.builder.String()
	tb.builder.Reset()
	return append(tokens, s), nil
}

func (p *DefaultParser) Parse(line string) (Command, error) {
	runeReader := p.newReader(line)
	tb := newTokenBuffer(p.newBuilder())

	tokens := []string{}

	for {
		ch, _, err := runeReader.ReadRune()

		if err == io.EOF {
			break
		}

		if err != nil {
			return Command{}, err
		}

		if !unicode.IsSpace(ch) {
			tb.appendRune(ch)
			continue
		}

		if tokens, err = tb.flushIfNotEmpty(tokens); err != nil {
			return Command{}, err
		}
	}

	tokens, err := tb.flushIfNotEmpty(tokens)
	if err != nil {
		return Command{}, err
	}

	if len(line) > MaxLineLen {
		return Command{}, ErrLineTooLong
	}

	if len(tokens) == 0 {
		return Command{}, nil
	}

	return Command{Verb: tokens[0], Args: tokens[1:]}, nil
}
