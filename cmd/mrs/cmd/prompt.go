package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/ui"
	"golang.org/x/term"
)

// Test seams for the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// Prompter reads answers line by line. Passwords are read without echo
// when the input is a terminal.
type Prompter struct {
	in   *bufio.Reader
	file *os.File
	out  io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	file, _ := in.(*os.File)
	return &Prompter{in: bufio.NewReader(in), file: file, out: out}
}

// Text prints "label: " and returns the line without its line ending.
// Spaces are kept: the core decides what a blank field is.
func (p *Prompter) Text(label string) (string, error) {
	_, err := fmt.Fprintf(p.out, "%s: ", label)
	if err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *Prompter) Password(label string) (string, error) {
	if p.file == nil || !isTerminal(int(p.file.Fd())) {
		return p.Text(label)
	}

	_, err := fmt.Fprintf(p.out, "%s: ", label)
	if err != nil {
		return "", err
	}
	pw, err := readPassword(int(p.file.Fd()))
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// Show prints a notice.
func (p *Prompter) Show(n ui.Notice) {
	fmt.Fprintf(p.out, "[%s] %s\n", n.Title, n.Message)
}

// Ask shows a notice with OK/CANCEL and runs its action on OK.
// It reports whether the user confirmed.
func (p *Prompter) Ask(n ui.Notice) (bool, error) {
	p.Show(n)

	answer, err := p.Text(strings.Join(n.Buttons, "/"))
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "", "ok", "y", "yes":
		return true, n.Confirm()
	}
	return false, nil
}
