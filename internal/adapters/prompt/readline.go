package prompt

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/restartfu/hwprofile/internal/ports"
)

var _ ports.Prompter = (*Readline)(nil)

// Readline asks questions line by line on a terminal.
type Readline struct {
	rl  *readline.Instance
	out io.Writer
}

func New(in io.ReadCloser, out io.Writer) (*Readline, error) {
	rl, err := readline.NewEx(&readline.Config{
		Stdin:           in,
		Stdout:          out,
		HistoryLimit:    -1,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("init readline: %w", err)
	}
	return &Readline{rl: rl, out: out}, nil
}

func (r *Readline) Close() error {
	return r.rl.Close()
}

func (r *Readline) Select(label string, items []string, cursor int) (int, error) {
	if len(items) == 0 {
		return 0, errors.New("select: no items")
	}
	if cursor < 0 || cursor >= len(items) {
		cursor = 0
	}

	fmt.Fprintln(r.out, label)
	for i, item := range items {
		marker := " "
		if i == cursor {
			marker = ">"
		}
		fmt.Fprintf(r.out, "%s %d) %s\n", marker, i+1, item)
	}

	prompt := fmt.Sprintf("Select [1-%d] (%d): ", len(items), cursor+1)
	for {
		line, err := r.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if index, ok := parseSelection(line, items, cursor); ok {
			return index, nil
		}
		fmt.Fprintf(r.out, "Please enter a number between 1 and %d.\n", len(items))
	}
}

func (r *Readline) Input(label, def string) (string, error) {
	line, err := r.readLine(inputPrompt(label, def))
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

func (r *Readline) Confirm(label string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	prompt := fmt.Sprintf("%s (%s): ", label, hint)
	for {
		line, err := r.readLine(prompt)
		if err != nil {
			return false, err
		}
		if answer, ok := parseConfirm(line, def); ok {
			return answer, nil
		}
		fmt.Fprintln(r.out, "Please answer yes or no.")
	}
}

func (r *Readline) readLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", fmt.Errorf("%w: %w", ports.ErrInterrupted, err)
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func inputPrompt(label, def string) string {
	if def == "" {
		return label + " "
	}
	return fmt.Sprintf("%s [%s] ", label, def)
}

// parseSelection accepts a 1-based number or an item name. An empty answer
// picks the cursor.
func parseSelection(line string, items []string, cursor int) (int, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return cursor, true
	}
	if n, err := strconv.Atoi(line); err == nil {
		if n >= 1 && n <= len(items) {
			return n - 1, true
		}
		return 0, false
	}
	for i, item := range items {
		if strings.EqualFold(item, line) {
			return i, true
		}
	}
	return 0, false
}

func parseConfirm(line string, def bool) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return def, true
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}
