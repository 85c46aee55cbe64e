// Package cli is a small command parser for the example programs.
//
//	program := cli.New("backend", "serves an inventory over TCP",
//		cli.Command{
//			Label: "serve",
//			Flags: []cli.Option{{Label: "config", Value: "", Description: "sink config"}},
//		},
//	)
//	command, err := program.Parse(os.Args)
//
// Arguments are required and positional, flags are optional and take the
// form -label=value. Bool flags take no value.
package cli

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/james-orcales/lazyassert/assert"
)

var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

type Program struct {
	Label       string
	Description string
	Commands    []Command
}

type Command struct {
	Label       string
	Description string
	// Arguments are required and ordered. They must ALL appear before flags.
	Arguments []Option
	// Flags are optional and unordered.
	Flags []Option
}

type Option struct {
	Label       string
	Description string
	// Value holds the default until Parse replaces it. Its type (string, int
	// or, for flags only, bool) decides how input is parsed.
	Value any
}

// New validates the command definitions and panics on programmer errors.
func New(label, description string, commands ...Command) Program {
	panicWhen(len(commands) == 0, "Program has zero commands specified")

	for i, command := range commands {
		panicWhen(command.Label == "", "Program.Commands[%d].Label is unset", i)
		for j, arg := range command.Arguments {
			panicWhen(arg.Label == "", "Argument #%d for command %q has no label", j, command.Label)
			switch arg.Value.(type) {
			default:
				panicWhen(true, "Argument %q has unsupported type: %T", arg.Label, arg.Value)
			case string, int:
			}
		}
		for j, flag := range command.Flags {
			panicWhen(flag.Label == "", "Flag #%d for command %q has no label", j, command.Label)
			panicWhen(
				strings.Contains(flag.Label, "-"),
				"Flags cannot contain dashes. Instead of %q, use %q",
				flag.Label,
				strings.ReplaceAll(flag.Label, "-", "_"),
			)
			panicWhen(strings.Contains(flag.Label, " "), "Flags cannot contain spaces: %q", flag.Label)
			switch flag.Value.(type) {
			default:
				panicWhen(true, "Flag %q has unsupported type: %T", flag.Label, flag.Value)
			case string, bool, int:
			}
		}
	}
	return Program{Label: label, Description: description, Commands: commands}
}

// Parse picks the command named by args[1], defaulting to the first one, and
// returns a copy of it with parsed values in place of the defaults. args[0]
// becomes the program label shown in help.
func (program *Program) Parse(args []string) (Command, error) {
	panicWhen(len(args) == 0, "program.Parse needs at least one arg")
	program.Label = args[0]

	active := program.Commands[0]
	if len(args) > 1 {
		i := slices.IndexFunc(program.Commands, func(c Command) bool { return c.Label == args[1] })
		if i < 0 {
			return active, fmt.Errorf("%q is an unknown command", args[1])
		}
		active = program.Commands[i]
	}
	active.Arguments = slices.Clone(active.Arguments)
	active.Flags = slices.Clone(active.Flags)
	if len(args) <= 2 && len(active.Arguments) == 0 {
		return active, nil
	}

	// === Collecting ===
	positional := make([]string, 0, len(active.Arguments))
	flags := make([]string, 0, len(active.Flags))
	inFlags := false
	for _, arg := range args[min(2, len(args)):] {
		isFlag := strings.HasPrefix(arg, "-") && arg != "-"
		switch {
		case isFlag:
			inFlags = true
			flags = append(flags, arg)
		case inFlags:
			return active, fmt.Errorf("Positional arguments cannot appear after flags. Got %q", arg)
		default:
			positional = append(positional, arg)
		}
	}
	if len(positional) != len(active.Arguments) {
		return active, fmt.Errorf(
			"%q expects %d arguments. Got %d",
			active.Label,
			len(active.Arguments),
			len(positional),
		)
	}
	if len(flags) > len(active.Flags) {
		return active, fmt.Errorf(
			"%q supports %d flags at most. Got %d",
			active.Label,
			len(active.Flags),
			len(flags),
		)
	}

	// === Parsing ===
	for i, arg := range positional {
		switch active.Arguments[i].Value.(type) {
		case string:
			active.Arguments[i].Value = arg
		case int:
			num, err := strconv.Atoi(arg)
			if err != nil {
				return active, fmt.Errorf("%s is an invalid number", arg)
			}
			active.Arguments[i].Value = num
		}
	}
	for _, flag := range flags {
		label, value, hasValue := strings.Cut(flag, "=")
		assert.IsTrue(label != "-", "lone dashes are collected as positional arguments")
		label = label[1:]
		i := slices.IndexFunc(active.Flags, func(option Option) bool {
			return option.Label == label
		})
		if i < 0 {
			return active, fmt.Errorf("%q is an unknown flag", label)
		}
		switch active.Flags[i].Value.(type) {
		case bool:
			active.Flags[i].Value = true
			continue
		}
		if !hasValue || value == "" {
			return active, fmt.Errorf("%q expects a value. You must set flag values with this syntax: -foo_bar=baz.", label)
		}
		switch active.Flags[i].Value.(type) {
		case string:
			active.Flags[i].Value = value
		case int:
			num, err := strconv.Atoi(value)
			if err != nil {
				return active, fmt.Errorf("%s is an invalid number", value)
			}
			active.Flags[i].Value = num
		}
	}
	return active, nil
}

func (program Program) PrintHelp() {
	w := tabwriter.NewWriter(Stdout, 0, 8, 2, ' ', 0)

	fmt.Fprintf(w, "%s %s\n\n", program.Label, program.Description)
	fmt.Fprintf(w, "Usage:\n    %s <command> [arguments] [-flags[=value]]\n\n", program.Label)
	fmt.Fprintln(w, "Available Commands:")
	for _, cmd := range program.Commands {
		signature := cmd.Label
		for _, arg := range cmd.Arguments {
			signature += fmt.Sprintf(" <%s:%T>", arg.Label, arg.Value)
		}
		fmt.Fprintf(w, "    %s\t%s\n", signature, cmd.Description)
		for _, flag := range cmd.Flags {
			valType := ""
			if _, isBool := flag.Value.(bool); !isBool {
				valType = fmt.Sprintf("=%T", flag.Value)
			}
			fmt.Fprintf(w, "        -%s%s\t(default: %v)\t%s\n", flag.Label, valType, flag.Value, flag.Description)
		}
	}
	w.Flush()
}

// GetOption panics on unknown labels; they are programmer errors.
func GetOption(options []Option, label string) Option {
	for _, option := range options {
		if option.Label == label {
			return option
		}
	}
	panicWhen(true, "%q is an unknown option", label)
	return Option{}
}

func panicWhen(cond bool, message string, data ...any) {
	if cond {
		panic(fmt.Sprintf(message, data...))
	}
}
