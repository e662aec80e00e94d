// Package shell implements the interactive command loop over a route store.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rmrobinson/routebook/services/routes"
	"go.uber.org/zap"
)

const (
	defaultPrompt = ">>> "
)

var (
	// ErrUnknownCommand is returned if the entered command is not recognized.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrMissingArgument is returned if a command requiring an argument was entered without one.
	ErrMissingArgument = errors.New("missing argument")
)

// CommandError carries the command line that could not be dispatched.
type CommandError struct {
	Command string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s -> %s", e.Command, ErrUnknownCommand)
}

// Unwrap allows errors.Is to match ErrUnknownCommand.
func (e *CommandError) Unwrap() error {
	return ErrUnknownCommand
}

// ArgumentError names the command that was entered without its required argument.
type ArgumentError struct {
	Command string
	Usage   string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrMissingArgument, e.Command, e.Usage)
}

// Unwrap allows errors.Is to match ErrMissingArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrMissingArgument
}

// Persister describes where route documents are loaded from and saved to.
type Persister interface {
	Load(path string) ([]routes.Route, error)
	Save(path string, rs []routes.Route) error
}

// Shell reads commands line by line and applies them to a route store.
// Errors raised by a command are logged and reported without ending the loop.
type Shell struct {
	logger *zap.Logger

	store     *routes.Store
	persister Persister

	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
	prompt string

	commands []*command
}

// New creates a shell operating on the supplied store.
func New(logger *zap.Logger, store *routes.Store, persister Persister, in io.Reader, out io.Writer, errOut io.Writer) *Shell {
	return &Shell{
		logger:    logger,
		store:     store,
		persister: persister,
		in:        bufio.NewReader(in),
		out:       out,
		errOut:    errOut,
		prompt:    defaultPrompt,
		commands:  defaultCommands(),
	}
}

// SetPrompt changes the text written before each command is read.
func (s *Shell) SetPrompt(prompt string) {
	s.prompt = prompt
}

// Run processes commands until exit is entered, the input is exhausted or the context is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, s.prompt)
		line, err := s.readLine()
		if err == io.EOF {
			fmt.Fprintln(s.out)
			return nil
		} else if err != nil {
			fmt.Fprintln(s.out)
			return err
		}

		exit, err := s.Execute(line)
		if err != nil {
			s.report(line, err)
			continue
		}
		if exit {
			return nil
		}
	}
}

// Execute runs a single command line. It returns true if the command asks the loop to end.
func (s *Shell) Execute(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if len(line) < 1 {
		return false, nil
	}

	name, arg := splitCommand(line)
	cmd := s.lookup(name)
	if cmd == nil {
		return false, &CommandError{Command: line}
	}

	if len(cmd.arg) > 0 && len(arg) < 1 {
		return false, &ArgumentError{Command: cmd.name, Usage: cmd.arg}
	} else if len(cmd.arg) < 1 && len(arg) > 0 {
		return false, &CommandError{Command: line}
	}

	return cmd.run(s, arg)
}

// Load replaces the store contents with the routes saved at path.
// The store is unchanged if the document cannot be read or holds invalid routes.
func (s *Shell) Load(path string) error {
	rs, err := s.persister.Load(path)
	if err != nil {
		return err
	}
	if err = s.store.Replace(rs); err != nil {
		return err
	}

	s.logger.Info("loaded routes",
		zap.String("path", path),
		zap.Int("route_count", len(rs)),
	)
	return nil
}

// Save writes the store contents to path.
func (s *Shell) Save(path string) error {
	rs := s.store.Routes()
	if err := s.persister.Save(path, rs); err != nil {
		return err
	}

	s.logger.Info("saved routes",
		zap.String("path", path),
		zap.Int("route_count", len(rs)),
	)
	return nil
}

func (s *Shell) lookup(name string) *command {
	for _, cmd := range s.commands {
		if cmd.name == name {
			return cmd
		}
	}
	return nil
}

func (s *Shell) report(line string, err error) {
	s.logger.Error("command failed",
		zap.String("command", line),
		zap.Error(err),
	)
	fmt.Fprintln(s.errOut, err)
}

// readField prompts for and reads a single line of input.
func (s *Shell) readField(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.readLine()
	if err == io.EOF {
		return "", io.ErrUnexpectedEOF
	}
	return line, err
}

// readLine returns the next input line without its terminator.
// Lines have no length limit; a final line without a newline is still returned.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err == io.EOF && len(line) > 0 {
		err = nil
	} else if err != nil {
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// splitCommand separates the case-insensitive command name from the rest of the line.
func splitCommand(line string) (string, string) {
	idx := strings.IndexAny(line, " \t")
	if idx < 0 {
		return strings.ToLower(line), ""
	}
	return strings.ToLower(line[:idx]), strings.TrimSpace(line[idx+1:])
}
