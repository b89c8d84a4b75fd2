package shell

import (
	"errors"
	"strings"
	"testing"
)

func TestParser_Parse(t *testing.T) {

	// Table-driven test:  each test case has a name, input, expected output, and expected error.
	tests := []struct {
		name        string
		input       string
		expected    Command
		expectedErr error
	}{
		{
			name:     "verb only",
			input:    "pwd",
			expected: Command{Verb: "pwd"},
		},
		{
			name:     "verb with argument",
			input:    "cat notes.txt",
			expected: Command{Verb: "cat", Args: []string{"notes.txt"}},
		},
		{
			name:     "tabs and repeated spaces",
			input:    "ls \t   /tmp",
			expected: Command{Verb: "ls", Args: []string{"/tmp"}},
		},
		{
			name:     "leading whitespace",
			input:    "   mkdir dir",
			expected: Command{Verb: "mkdir", Args: []string{"dir"}},
		},
		{
			name:     "extra arguments are kept for arity checks",
			input:    "cat a b",
			expected: Command{Verb: "cat", Args: []string{"a", "b"}},
		},
		{
			name:     "quotes are ordinary characters",
			input:    `cat 'my file'`,
			expected: Command{Verb: "cat", Args: []string{"'my", "file'"}},
		},
		{
			name:     "tilde is not expanded",
			input:    "cd ~",
			expected: Command{Verb: "cd", Args: []string{"~"}},
		},
		{
			name:     "empty input",
			input:    "",
			expected: Command{},
		},
		{
			name:     "only whitespace",
			input:    "   \t  \n  ",
			expected: Command{},
		},
		{
			name:        "line too long",
			input:       "cat " + strings.Repeat("x", MaxLineLen),
			expectedErr: ErrLineTooLong,
		},
		{
			name:        "many short tokens over the line bound",
			input:       strings.Repeat("ab ", 100),
			expectedErr: ErrLineTooLong,
		},
		{
			name:        "argument too long",
			input:       "cat " + strings.Repeat("x", MaxArgLen+1),
			expectedErr: ErrArgTooLong,
		},
		{
			name:        "oversized verb",
			input:       strings.Repeat("v", MaxArgLen+1) + " x",
			expectedErr: ErrArgTooLong,
		},
	}

	for _, tt := range tests {

		t.Run(tt.name, func(t *testing.T) {

			parser := NewDefaultParser()
			res, err := parser.Parse(tt.input)

			// Check if the error matches expectations
			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("Expected error: %v got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Errorf("Expected no error got %v", err)
				return
			}

			if res.Verb != tt.expected.Verb || !equalStringSlices(res.Args, tt.expected.Args) {
				t.Errorf("input:  %q\nexpected: %+v\ngot:       %+v", tt.input, tt.expected, res)
			}

		})

	}

}

func TestCommand_Arg(t *testing.T) {
	if got := (Command{Verb: "ls"}).Arg(); got != "" {
		t.Errorf("expected empty argument, got %q", got)
	}
	if got := (Command{Verb: "ls", Args: []string{"/tmp"}}).Arg(); got != "/tmp" {
		t.Errorf("expected /tmp, got %q", got)
	}
}

func equalStringSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
