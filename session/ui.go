package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var paintPrompt = color.New(color.FgHiCyan).SprintFunc()

// prompter reads one line per question. Prompts are only echoed for an
// interactive terminal so piped transcripts replay silently.
type prompter struct {
	in          *bufio.Scanner
	out         io.Writer
	interactive bool
}

func newPrompter(in io.Reader, out io.Writer, interactive bool) *prompter {
	return &prompter{
		in:          bufio.NewScanner(in),
		out:         out,
		interactive: interactive,
	}
}

func (p *prompter) Printfln(format string, args ...interface{}) {
	p.Println(fmt.Sprintf(format, args...))
}

func (p *prompter) Println(args ...interface{}) {
	_, _ = fmt.Fprintln(p.out, args...)
}

// PromptString returns the next line, trimmed, or io.EOF.
func (p *prompter) PromptString(message string) (string, error) {
	if p.interactive {
		_, _ = fmt.Fprint(p.out, paintPrompt(message))
	}
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// PromptConfirm treats an empty answer as yes.
func (p *prompter) PromptConfirm(message string) (bool, error) {
	for {
		input, err := p.PromptString(message + " [Y/n]: ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(input) {
		case "", "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		p.Printfln("Please answer y or n, not '%s'", input)
	}
}
