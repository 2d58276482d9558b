package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrompter_ReadLine(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("student\n  teacher  \n"), &out)

	line, err := p.ReadLine("> ")
	assert.NoError(t, err)
	assert.Equal(t, "student", line)

	line, err = p.ReadLine("")
	assert.NoError(t, err)
	assert.Equal(t, "  teacher  ", line)

	_, err = p.ReadLine("> ")
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, "> > ", out.String())
}

func TestPrompter_ReadPassword(t *testing.T) {
	t.Run("not a file", func(t *testing.T) {
		p := newPrompter(strings.NewReader("student123\n"), io.Discard)
		pwd, err := p.ReadPassword("Password: ")
		assert.NoError(t, err)
		assert.Equal(t, "student123", pwd)
	})

	t.Run("terminal", func(t *testing.T) {
		r, w, err := os.Pipe()
		if err != nil {
			t.Fatalf("os.Pipe() failed: %v", err)
		}
		defer r.Close()
		defer w.Close()

		origIsTerminal, origReadPassword := isTerminalFunc, readPasswordFunc
		isTerminalFunc = func(int) bool { return true }
		readPasswordFunc = func(int) ([]byte, error) { return []byte("teacher123"), nil }
		defer func() {
			isTerminalFunc, readPasswordFunc = origIsTerminal, origReadPassword
		}()

		var out bytes.Buffer
		p := newPrompter(r, &out)
		pwd, err := p.ReadPassword("Password: ")
		assert.NoError(t, err)
		assert.Equal(t, "teacher123", pwd)
		assert.Equal(t, "Password: \n", out.String())
	})
}
