// Package repl implements the read-eval-print loop that dispatches
// operation commands to the calculation factory.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/calcforge/calc-repl/internal/calc"
	"github.com/calcforge/calc-repl/internal/calculation"
	"github.com/calcforge/calc-repl/pkg/types"
)

// DefaultPrompt is shown before each input line unless overridden
const DefaultPrompt = ">> "

// Repl reads operation commands line by line, resolves them through
// the calculation factory, and records results in a session history.
type Repl struct {
	in        io.Reader
	out       io.Writer
	factory   *calculation.Factory
	history   *History
	prompt    string
	interrupt <-chan os.Signal
}

// New creates a REPL reading from in and writing to out
func New(config *types.Config, factory *calculation.Factory, in io.Reader, out io.Writer) *Repl {
	prompt := DefaultPrompt
	if config != nil && config.Prompt != "" {
		prompt = config.Prompt
	}

	return &Repl{
		in:      in,
		out:     out,
		factory: factory,
		history: NewHistory(),
		prompt:  prompt,
	}
}

// SetInterrupt installs the channel that delivers interrupt signals.
// An interrupt ends the loop with exit code 0.
func (r *Repl) SetInterrupt(ch <-chan os.Signal) {
	r.interrupt = ch
}

// History returns the session history
func (r *Repl) History() *History {
	return r.history
}

// Run reads and evaluates lines until an exit transition, then returns
// the process exit code. All exit paths return 0.
func (r *Repl) Run() int {
	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(r.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	for {
		fmt.Fprint(r.out, r.prompt)

		select {
		case <-r.interrupt:
			fmt.Fprintln(r.out, "\nKeyboard interrupt detected. Exiting calculator. Goodbye!")
			return 0
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(r.out, "\nEOF detected. Exiting calculator. Goodbye!")
				return 0
			}
			if exited := r.eval(line); exited {
				return 0
			}
		}
	}
}

// eval processes one input line and reports whether the loop should end
func (r *Repl) eval(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}

	switch strings.ToLower(trimmed) {
	case "help":
		fmt.Fprintln(r.out, helpText)
		return false
	case "history":
		r.printHistory()
		return false
	case "exit":
		fmt.Fprintln(r.out, "Exiting calculator. Goodbye!")
		return true
	}

	fields := strings.Fields(trimmed)
	if len(fields) != 3 {
		fmt.Fprintln(r.out, "Invalid input. Please follow the format: <operation> <num1> <num2>")
		return false
	}

	a, errA := strconv.ParseFloat(fields[1], 64)
	b, errB := strconv.ParseFloat(fields[2], 64)
	if errA != nil || errB != nil {
		fmt.Fprintln(r.out, "Invalid input. Please ensure numbers are valid.")
		return false
	}

	c, err := r.factory.Create(fields[0], a, b)
	if err != nil {
		var unsupported *calculation.UnsupportedOperationError
		if errors.As(err, &unsupported) {
			fmt.Fprintln(r.out, err.Error())
			fmt.Fprintln(r.out, "Type 'help' to see the list of supported operations.")
		} else {
			fmt.Fprintln(r.out, err.Error())
		}
		return false
	}

	if _, err := c.Execute(); err != nil {
		if errors.Is(err, calc.ErrDivisionByZero) {
			fmt.Fprintln(r.out, err.Error())
		} else {
			fmt.Fprintf(r.out, "An error occurred during calculation: %s\n", err)
			fmt.Fprintln(r.out, "Please try again.")
		}
		return false
	}

	entry := c.String()
	r.history.Add(entry)
	fmt.Fprintf(r.out, "Result: %s\n", entry)
	return false
}

// printHistory writes the numbered session history
func (r *Repl) printHistory() {
	entries := r.history.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(r.out, "No calculations performed yet.")
		return
	}

	fmt.Fprintln(r.out, "Calculation History:")
	for i, entry := range entries {
		fmt.Fprintf(r.out, "%d. %s\n", i+1, entry)
	}
}
