package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

var (
	readPasswordFunc = term.ReadPassword // mockable
	isTerminalFunc   = term.IsTerminal   // mockable
)

// prompter reads answers line by line from the input shared by every screen.
type prompter struct {
	in      io.Reader
	out     io.Writer
	scanner *bufio.Scanner
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: in, out: out, scanner: bufio.NewScanner(in)}
}

// ReadLine prints `label` and returns the next input line. It returns io.EOF once the input is exhausted.
func (p *prompter) ReadLine(label string) (string, error) {
	if label != "" {
		_, _ = fmt.Fprint(p.out, label)
	}
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

// ReadPassword reads without echo when the input is a terminal, else it reads the next line.
func (p *prompter) ReadPassword(label string) (string, error) {
	f, ok := p.in.(*os.File)
	if !ok || !isTerminalFunc(int(f.Fd())) {
		return p.ReadLine(label)
	}
	_, _ = fmt.Fprint(p.out, label)
	pwd, err := readPasswordFunc(int(f.Fd()))
	_, _ = fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}
