package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// LineEditor reads one line at a time from stdin in raw mode,
// supporting basic editing (backspace) and Ctrl-C/Ctrl-D to end the
// session. It is a deliberately small slice of the completion-capable
// editor in feather-tester's editor.go, trimmed to what an
// interactive szl REPL needs: no completion popups, since the core
// registers no metadata for them.
type LineEditor struct {
	fd       int
	oldState *term.State
}

// NewLineEditor creates a line editor reading from stdin.
func NewLineEditor() *LineEditor {
	return &LineEditor{fd: int(os.Stdin.Fd())}
}

func (e *LineEditor) enterRawMode() error {
	oldState, err := term.MakeRaw(e.fd)
	if err != nil {
		return err
	}
	e.oldState = oldState
	return nil
}

func (e *LineEditor) exitRawMode() {
	if e.oldState != nil {
		term.Restore(e.fd, e.oldState)
		e.oldState = nil
	}
}

// ErrEOF is returned by ReadLine when the user ends the session with
// Ctrl-D on an empty line.
var ErrEOF = io.EOF

// ReadLine prompts and reads one line, applying backspace editing.
// Ctrl-C aborts the current line (returning "", nil); Ctrl-D on an
// empty line ends the session (returning "", ErrEOF).
func (e *LineEditor) ReadLine(prompt string) (string, error) {
	if err := e.enterRawMode(); err != nil {
		return "", err
	}
	defer e.exitRawMode()

	fmt.Fprint(os.Stdout, prompt)
	var line []rune
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return "", err
		}
		if n == 0 {
			continue
		}
		switch b := buf[0]; b {
		case '\r', '\n':
			fmt.Fprint(os.Stdout, "\r\n")
			return string(line), nil
		case 3: // Ctrl-C
			fmt.Fprint(os.Stdout, "^C\r\n")
			return "", nil
		case 4: // Ctrl-D
			if len(line) == 0 {
				fmt.Fprint(os.Stdout, "\r\n")
				return "", ErrEOF
			}
		case 127, 8: // Backspace/Delete
			if len(line) > 0 {
				line = line[:len(line)-1]
				fmt.Fprint(os.Stdout, "\b \b")
			}
		default:
			if b >= 32 {
				line = append(line, rune(b))
				fmt.Fprint(os.Stdout, string(b))
			}
		}
	}
}
