// Package repl runs an interactive calculator session over a line-oriented
// reader and writer.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/averycrespi/calc-mcp/internal/calc"
	"github.com/averycrespi/calc-mcp/internal/keys"
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/internal/settings"
)

const prompt = "> "

const helpText = `Enter keys separated by spaces, e.g. "12.5 × 4 =".
Keys: 0-9 . + - * / %of % = C AC +/- MS MR M+ MC
Commands:
  :history        list recent calculations
  :use N          load the result of history entry N
  :theme NAME     set the theme (light, dark, toggle)
  :tab NAME       switch tab (calculator, history, settings)
  :settings       show the theme and active tab
  :help           show this help
  :quit           exit`

// REPL reads key lines and prints the calculator readout after each one
type REPL struct {
	session *session.Session
	in      io.Reader
	out     io.Writer
}

// New creates a new REPL
func New(s *session.Session, in io.Reader, out io.Writer) *REPL {
	return &REPL{session: s, in: in, out: out}
}

// Run processes input lines until EOF, :quit or ctx is done
func (r *REPL) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(r.in)

	fmt.Fprintln(r.out, render(r.session.State()))
	for {
		fmt.Fprint(r.out, prompt)
		if !scanner.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			quit, err := r.command(line)
			if err != nil {
				fmt.Fprintf(r.out, "error: %v\n", err)
			}
			if quit {
				return nil
			}
			continue
		}

		r.press(line)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func (r *REPL) press(line string) {
	events, err := keys.Parse(line)
	if err != nil {
		fmt.Fprintf(r.out, "error: %v\n", err)
		return
	}

	state, err := r.session.Dispatch(events...)
	if err != nil {
		fmt.Fprintf(r.out, "error: %v\n", err)
	}
	fmt.Fprintln(r.out, render(state))
}

func (r *REPL) command(line string) (quit bool, err error) {
	fields := strings.Fields(strings.TrimPrefix(line, ":"))
	if len(fields) == 0 {
		return false, fmt.Errorf("empty command")
	}

	name, args := fields[0], fields[1:]
	switch name {
	case "quit", "q", "exit":
		return true, nil
	case "help":
		io.WriteString(r.out, helpText+"\n")
	case "history":
		r.printHistory()
	case "use":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: :use N")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return false, fmt.Errorf("invalid history number %q", args[0])
		}
		state, err := r.session.SelectHistoryIndex(n - 1)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(r.out, render(state))
	case "theme":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: :theme light|dark|toggle")
		}
		theme := r.session.Settings().Theme.Toggle()
		if args[0] != "toggle" {
			if theme, err = settings.ParseTheme(args[0]); err != nil {
				return false, err
			}
		}
		updated, err := r.session.SetTheme(theme)
		if err != nil {
			return false, err
		}
		printSettings(r.out, updated)
	case "tab":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: :tab calculator|history|settings")
		}
		tab, err := settings.ParseTab(args[0])
		if err != nil {
			return false, err
		}
		printSettings(r.out, r.session.SelectTab(tab))
	case "settings":
		printSettings(r.out, r.session.Settings())
	default:
		return false, fmt.Errorf("unknown command %q, try :help", name)
	}
	return false, nil
}

func (r *REPL) printHistory() {
	history := r.session.State().History()
	if len(history) == 0 {
		fmt.Fprintln(r.out, "No calculation history yet")
		return
	}
	for i, entry := range history {
		fmt.Fprintf(r.out, "%d. %s\n", i+1, entry.Text)
	}
}

func printSettings(out io.Writer, s settings.Settings) {
	fmt.Fprintf(out, "theme: %s, tab: %s\n", s.Theme, s.Tab)
	if s.Tab != settings.TabCalculator {
		fmt.Fprintln(out, "(coming soon)")
	}
}

// render formats the readout as "[M | ]<pending> | <display>"
func render(state calc.State) string {
	var parts []string
	if state.MemoryActive() {
		parts = append(parts, "M")
	}
	if pending := state.Pending(); pending != "" {
		parts = append(parts, pending)
	}
	parts = append(parts, state.FormattedDisplay())
	return strings.Join(parts, " | ")
}
