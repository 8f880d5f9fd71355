// Package console runs the interactive menu.
//
// LOOP:
//  1. Clear the screen and print the menu
//  2. Read a choice
//  3. Dispatch to the matching action (add student, add scholar, view, exit)
//  4. Wait for Enter, then start over
//
// The record collection is a storage.Storage passed in by the caller. The
// loop owns it for its whole lifetime; nothing here keeps global state.
//
// End of input is treated like choosing Exit, so piping a script into the
// program terminates cleanly.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aanand-mishra/student-records/internal/storage"
	"github.com/aanand-mishra/student-records/internal/utils/response"
	"github.com/google/uuid"
)

// errExit stops the loop without an error.
var errExit = errors.New("exit requested")

// Options tune the console behaviour.
type Options struct {
	// ClearScreen clears the terminal before each menu. Ignored when the
	// output is not a terminal.
	ClearScreen bool
}

// Console reads choices from in and writes everything the user sees to out.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	store storage.Storage
	log   *slog.Logger
	opts  Options
	menu  []menuItem
}

type menuItem struct {
	key    string
	label  string
	action func() error
}

// New wires a console. Each console gets its own session id on the logger,
// so log lines from one run can be told apart.
func New(in io.Reader, out io.Writer, store storage.Storage, log *slog.Logger, opts Options) *Console {
	c := &Console{
		in:    bufio.NewReader(in),
		out:   out,
		store: store,
		log:   log.With(slog.String("session", uuid.NewString())),
		opts:  opts,
	}

	c.menu = []menuItem{
		{key: "1", label: "Add Regular Student", action: c.AddStudent},
		{key: "2", label: "Add Scholar", action: c.AddScholar},
		{key: "3", label: "View All Records", action: c.ViewRecords},
		{key: "4", label: "Exit", action: c.Exit},
	}

	return c
}

// Run loops until the user exits or input ends. Any other error (a failing
// storage backend, a broken output) is returned.
func (c *Console) Run() error {
	c.log.Info("console started")

	for {
		if c.opts.ClearScreen {
			clearScreen(c.out)
		}
		c.printMenu()

		choice, err := c.prompt(fmt.Sprintf("Select an option (1-%d): ", len(c.menu)))
		if err == nil {
			err = c.dispatch(strings.TrimSpace(choice))
		}

		switch {
		case err == nil:
			continue
		case errors.Is(err, errExit):
			c.log.Info("console stopped")
			return nil
		case errors.Is(err, io.EOF):
			c.log.Info("input closed, console stopped")
			return nil
		default:
			c.log.Error("console failed", slog.String("error", err.Error()))
			return err
		}
	}
}

func (c *Console) dispatch(choice string) error {
	for _, item := range c.menu {
		if item.key == choice {
			c.log.Debug("menu choice", slog.String("choice", item.label))
			return item.action()
		}
	}

	c.log.Debug("invalid menu choice", slog.String("choice", choice))
	if err := c.write(response.Info("Invalid choice. Please try again.")); err != nil {
		return err
	}
	return c.pause("\nPress Enter to continue...")
}

// Exit prints the goodbye line and stops the loop.
func (c *Console) Exit() error {
	if err := c.write(response.Info("Exiting system... Goodbye!")); err != nil {
		return err
	}
	return errExit
}

func (c *Console) printMenu() {
	fmt.Fprintf(c.out, "\n%s\n", strings.Repeat("=", 50))
	fmt.Fprintln(c.out, " STUDENT INFORMATION PROCESSING SYSTEM ")
	fmt.Fprintln(c.out, strings.Repeat("=", 50))
	for _, item := range c.menu {
		fmt.Fprintf(c.out, "%s. %s\n", item.key, item.label)
	}
	fmt.Fprintln(c.out, strings.Repeat("-", 50))
}

// prompt prints label and reads one line without its line ending.
// A final line without a newline is still returned; io.EOF is returned only
// when nothing was left to read.
func (c *Console) prompt(label string) (string, error) {
	if _, err := fmt.Fprint(c.out, label); err != nil {
		return "", err
	}

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// pause waits for Enter so the result stays on screen before it is cleared.
func (c *Console) pause(label string) error {
	_, err := c.prompt(label)
	return err
}

func (c *Console) write(r response.Response) error {
	return response.Write(c.out, r)
}
