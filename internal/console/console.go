// Package console handles terminal interaction: formatted status output and
// interactive prompts. Input and output streams are injectable so command
// flows can be driven from tests.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console reads answers from in and writes formatted messages to out.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a console over the given streams.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Infof prints an informational line.
func (c *Console) Infof(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "📋 "+format+"\n", args...)
}

// Successf prints a success line.
func (c *Console) Successf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "✅ "+format+"\n", args...)
}

// Warnf prints a warning line.
func (c *Console) Warnf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "⚠️  "+format+"\n", args...)
}

// Errorf prints an error line.
func (c *Console) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "❌ "+format+"\n", args...)
}

// Printf prints a plain line without any prefix.
func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Section prints a banner separating a stage of the flow.
func (c *Console) Section(title string) {
	fmt.Fprintf(c.out, "\n%s\n  %s\n%s\n", strings.Repeat("=", 50), title, strings.Repeat("=", 50))
}

// Prompt asks for a single value, showing the default in brackets. An empty
// answer returns the default.
func (c *Console) Prompt(label, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(c.out, "%s [%s]: ", label, defaultValue)
	} else {
		fmt.Fprintf(c.out, "%s: ", label)
	}

	line, err := c.in.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

// Confirm asks a yes/no question. An empty answer returns defaultYes;
// anything starting with y or Y counts as yes, anything else as no.
func (c *Console) Confirm(label string, defaultYes bool) (bool, error) {
	hint := "y/N"
	if defaultYes {
		hint = "Y/n"
	}

	answer, err := c.Prompt(fmt.Sprintf("%s (%s)", label, hint), "")
	if err != nil {
		return false, err
	}
	if answer == "" {
		return defaultYes, nil
	}
	return strings.HasPrefix(strings.ToLower(answer), "y"), nil
}
