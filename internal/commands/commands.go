package commands

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mattn/go-shellwords"
)

const prefix = "cmd "

// Command is a subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse with the remaining positional args.
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     func(args []string) error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute or Line.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. name is the first token after "cmd" (e.g. "gravity").
// fs is that command's FlagSet; run is called after fs.Parse(args[1:]) succeeds and receives
// fs.Args(). A nil fs gets an empty set that reports errors instead of exiting.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func(args []string) error) {
	if fs == nil {
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
	}
	fs.SetOutput(io.Discard)
	r.cmds[name] = &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
}

// Names returns the registered subcommands, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Help returns one "name: usage" line per command.
func (r *Registry) Help() string {
	var b strings.Builder
	for _, n := range r.Names() {
		fmt.Fprintf(&b, "%s: %s\n", n, r.cmds[n].Usage)
	}
	return b.String()
}

// Parse interprets line as a console line. If line starts with "cmd " (case-sensitive), the rest
// is split shell-style (quotes group words) and returned with isCmd true. err reports unbalanced quoting.
func Parse(line string) (args []string, isCmd bool, err error) {
	if !strings.HasPrefix(line, prefix) {
		return nil, false, nil
	}
	rest := strings.TrimSpace(line[len(prefix):])
	if rest == "" {
		return nil, true, nil
	}
	args, err = shellwords.Parse(rest)
	if err != nil {
		return nil, true, fmt.Errorf("parse %q: %w", rest, err)
	}
	return args, true, nil
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Returns an error for unknown command, parse error, or from Run().
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand")
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return cmd.Run(cmd.FlagSet.Args())
}

// Line parses and executes one console line. handled is false for lines that are not commands.
func (r *Registry) Line(line string) (handled bool, err error) {
	args, isCmd, err := Parse(line)
	if !isCmd || err != nil {
		return isCmd, err
	}
	return true, r.Execute(args)
}
