package shell

import (
	"bufio"
	"errors"
	"io"

	"github.com/chzyer/readline"
)

// ReadlineInput is the terminal LineReader, with history and ^C handling.
type ReadlineInput struct {
	rl *readline.Instance
}

// NewReadlineInput configures a readline instance. historyFile may be empty
// to disable history.
func NewReadlineInput(historyFile string) (*ReadlineInput, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return nil, err
	}
	return &ReadlineInput{rl: rl}, nil
}

// ReadLine implements LineReader. An interrupt ends the session like EOF.
func (r *ReadlineInput) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}
	return line, err
}

// Close releases the terminal.
func (r *ReadlineInput) Close() error { return r.rl.Close() }

// ReaderInput is a plain buffered LineReader for piped stdin and tests.
// Prompts are echoed to the writer so transcripts stay readable.
type ReaderInput struct {
	scanner *bufio.Scanner
	echo    io.Writer
}

// NewReaderInput wraps r; prompts are written to echo.
func NewReaderInput(r io.Reader, echo io.Writer) *ReaderInput {
	return &ReaderInput{scanner: bufio.NewScanner(r), echo: echo}
}

// ReadLine implements LineReader.
func (r *ReaderInput) ReadLine(prompt string) (string, error) {
	if r.echo != nil {
		_, _ = io.WriteString(r.echo, prompt)
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}
