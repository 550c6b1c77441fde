// Package cli matches process arguments against a static schema the
// application declares, for hand-off to a scripted front-end.
package cli

import (
	"errors"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
)

// ErrNotConfigured is returned when matches are requested but the
// application declared no CLI schema. It is recoverable by design.
var ErrNotConfigured = errors.New("cli: no CLI configuration declared")

// Config is the static CLI schema. Subcommands nest recursively.
type Config struct {
	Description     string
	LongDescription string
	Args            []Arg
	Subcommands     map[string]*Config
}

// Arg describes one argument of the schema.
type Arg struct {
	// Name is the long flag name and the key it matches under.
	Name string

	// Short is the optional one-letter shorthand.
	Short string

	Description string

	// TakesValue marks the argument as carrying a value; without it
	// the argument is a counted flag.
	TakesValue bool

	// Multiple allows the argument to be passed several times,
	// collecting all values.
	Multiple bool

	// Default is the value reported when a TakesValue argument is
	// absent.
	Default string
}

// ArgData is the match result for one argument.
type ArgData struct {
	// Value is a bool for flags, a string for single-value arguments,
	// or a []string for Multiple arguments.
	Value interface{}

	// Occurrences counts how many times the argument was passed.
	Occurrences int
}

// Matches is the parse result for one command level.
type Matches struct {
	Args       map[string]ArgData
	Subcommand *SubcommandMatches
}

// SubcommandMatches is the matched subcommand with its own matches.
type SubcommandMatches struct {
	Name    string
	Matches Matches
}

// GetMatches parses args against the schema. Args are the process
// arguments without the program name. A nil config yields
// ErrNotConfigured.
func GetMatches(cfg *Config, args []string) (*Matches, error) {
	if cfg == nil {
		return nil, ErrNotConfigured
	}
	m, err := matchLevel("", cfg, args)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func matchLevel(name string, cfg *Config, args []string) (*Matches, error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetInterspersed(false)

	counts := map[string]*int{}
	values := map[string]*string{}
	multis := map[string]*[]string{}

	for _, arg := range cfg.Args {
		short := arg.Short
		if len(short) > 1 {
			short = short[:1]
		}
		switch {
		case arg.TakesValue && arg.Multiple:
			multis[arg.Name] = fs.StringArrayP(arg.Name, short, nil, arg.Description)
		case arg.TakesValue:
			values[arg.Name] = fs.StringP(arg.Name, short, arg.Default, arg.Description)
		default:
			counts[arg.Name] = fs.CountP(arg.Name, short, arg.Description)
		}
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	m := &Matches{Args: make(map[string]ArgData, len(cfg.Args))}
	for _, arg := range cfg.Args {
		var data ArgData
		switch {
		case arg.TakesValue && arg.Multiple:
			vals := *multis[arg.Name]
			data = ArgData{Value: vals, Occurrences: len(vals)}
		case arg.TakesValue:
			data = ArgData{Value: *values[arg.Name]}
			if fs.Changed(arg.Name) {
				data.Occurrences = 1
			}
		default:
			n := *counts[arg.Name]
			data = ArgData{Value: n > 0, Occurrences: n}
		}
		m.Args[arg.Name] = data
	}

	rest := fs.Args()
	if len(rest) > 0 {
		if sub, ok := cfg.Subcommands[rest[0]]; ok {
			subMatches, err := matchLevel(rest[0], sub, rest[1:])
			if err != nil {
				return nil, err
			}
			m.Subcommand = &SubcommandMatches{Name: rest[0], Matches: *subMatches}
		}
	}
	return m, nil
}

// Decode maps this level's argument values onto out, by argument
// name.
func (m *Matches) Decode(out interface{}) error {
	values := make(map[string]interface{}, len(m.Args))
	for name, data := range m.Args {
		values[name] = data.Value
	}
	return mapstructure.Decode(values, out)
}
