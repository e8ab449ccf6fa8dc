package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/seqkit/pkg/seqkit"
	"go.llib.dev/seqkit/pkg/seqkit/destructure"
)

// PatternTimeout bounds the time a single regular expression match may take.
const PatternTimeout = time.Second

type app struct {
	in     io.Reader
	out    io.Writer
	logger *logging.Logger

	cfg     Config
	cfgPath string
	flags   Config
}

func newApp(in io.Reader, out io.Writer, logger *logging.Logger) *app {
	return &app{
		in:     in,
		out:    out,
		logger: logger,
		cfg:    DefaultConfig(),
	}
}

// run executes the command line, and returns the process exit code.
// Log entries go to errOut as JSON lines.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	return runWith(ctx, args, in, out, &logging.Logger{Out: errOut})
}

func runWith(ctx context.Context, args []string, in io.Reader, out io.Writer, logger *logging.Logger) int {
	a := newApp(in, out, logger)
	root := a.command()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(logger.Out)
	if err := root.ExecuteContext(ctx); err != nil {
		a.logger.Error(ctx, "seqkit failed", logging.ErrField(err))
		return 1
	}
	return 0
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:   "seqkit",
		Short: "Apply sequence operations to newline separated input",
		Long: `seqkit reads items from the standard input, one per line,
applies a single sequence operation to them, and prints the result.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.configure,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgPath, "config", os.Getenv(ConfigEnvKey), "configuration file (YAML or TOML)")
	flags.StringVar(&a.flags.Kind, "kind", "", "container kind holding the input: array, list or ring")
	flags.StringVar(&a.flags.Output, "output", "", "output format: lines, json or yaml")
	flags.StringVar(&a.flags.LogLevel, "log-level", "", "logging level: debug, info, warn or error")

	root.AddCommand(
		a.itemsCommand("sort", "Sort the items", func(s seqkit.Sequence[string]) (seqkit.Sequence[string], error) {
			return seqkit.Sort(s, strings.Compare)
		}),
		a.uniqCommand(),
		a.itemsCommand("reverse", "Reverse the items", func(s seqkit.Sequence[string]) (seqkit.Sequence[string], error) {
			return seqkit.Reverse(s), nil
		}),
		a.countedCommand("take", "Keep the first N items", seqkit.Take[string]),
		a.countedCommand("drop", "Skip the first N items", seqkit.Drop[string]),
		a.patternCommand("filter", "Keep the items matching the pattern", func(s seqkit.Sequence[string], match func(string) (bool, error)) (seqkit.Sequence[string], error) {
			return seqkit.Filter(s, match)
		}),
		a.patternCommand("remove", "Drop the items matching the pattern", func(s seqkit.Sequence[string], match func(string) (bool, error)) (seqkit.Sequence[string], error) {
			return seqkit.Remove(s, match)
		}),
		a.countCommand(),
		a.partitionCommand(),
		a.groupByCommand(),
		a.extremumCommand("min", "Print the smallest number", seqkit.Min[float64]),
		a.extremumCommand("max", "Print the largest number", seqkit.Max[float64]),
		a.randomCommand(),
		a.letCommand(),
	)
	return root
}

// configure merges the configuration file and the explicitly set flags, flags taking precedence.
func (a *app) configure(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("kind") {
		cfg.Kind = a.flags.Kind
	}
	if flags.Changed("output") {
		cfg.Output = a.flags.Output
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flags.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger.Level = logging.Level(cfg.LogLevel)
	return nil
}

func (a *app) printer() printer {
	return printer{out: a.out, format: a.cfg.Output}
}

// input reads the standard input into the configured container kind.
func (a *app) input(cmd *cobra.Command) (seqkit.Sequence[string], error) {
	ctx := cmd.Context()
	items, size, err := readItems(a.in)
	if err != nil {
		return nil, err
	}
	a.logger.Debug(ctx, "input read",
		logging.Field("command", cmd.Name()),
		logging.Field("items", len(items)),
		logging.Field("size", humanize.Bytes(uint64(size))),
		logging.Field("kind", a.cfg.Kind))
	return toSequence(items, a.cfg.Kind)
}

func (a *app) itemsCommand(name, short string, op func(seqkit.Sequence[string]) (seqkit.Sequence[string], error)) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.input(cmd)
			if err != nil {
				return err
			}
			out, err := op(s)
			if err != nil {
				return err
			}
			return a.printer().items(out)
		},
	}
}

func (a *app) uniqCommand() *cobra.Command {
	var ignoreCase bool
	cmd := &cobra.Command{
		Use:   "uniq",
		Short: "Drop repeated items, keeping the first occurrence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.input(cmd)
			if err != nil {
				return err
			}
			if ignoreCase {
				return a.printer().items(seqkit.Unique(s, strings.EqualFold))
			}
			return a.printer().items(seqkit.Unique(s))
		},
	}
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "compare items case-insensitively")
	return cmd
}

func (a *app) countedCommand(name, short string, op func(seqkit.Sequence[string], int) (seqkit.Sequence[string], error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " N",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCount(args[0])
			if err != nil {
				return err
			}
			s, err := a.input(cmd)
			if err != nil {
				return err
			}
			out, err := op(s, n)
			if err != nil {
				return err
			}
			return a.printer().items(out)
		},
	}
}

func parseCount(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, seqkit.ErrInvalidArgument.F("%q is not a number", raw)
	}
	return n, nil
}

func compilePattern(raw string) (func(string) (bool, error), error) {
	re, err := regexp2.Compile(raw, regexp2.None)
	if err != nil {
		return nil, seqkit.ErrInvalidArgument.Wrap(err)
	}
	re.MatchTimeout = PatternTimeout
	return re.MatchString, nil
}

func (a *app) patternCommand(name, short string, op func(seqkit.Sequence[string], func(string) (bool, error)) (seqkit.Sequence[string], error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " PATTERN",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			match, err := compilePattern(args[0])
			if err != nil {
				return err
			}
			s, err := a.input(cmd)
			if err != nil {
				return err
			}
			out, err := op(s, match)
			if err != nil {
				return err
			}
			return a.printer().items(out)
		},
	}
}

func (a *app) countCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "count PATTERN",
		Short: "Count the items matching the pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			match, err := compilePattern(args[0])
			if err != nil {
				return err
			}
			s, err := a.input(cmd)
			if err != nil {
				return err
			}
			n, err := seqkit.Count(s, match)
			if err != nil {
				return err
			}
			return a.printer().value(n)
		},
	}
}

func (a *app) partitionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "partition N",
		Short: "Split the items into chunks of N",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCount(args[0])
			if err != nil {
				return err
			}
			s, err := a.input(cmd)
			if err != nil {
				return err
			}
			chunks, err := seqkit.Split(s, n)
			if err != nil {
				return err
			}
			return a.printer().chunks(chunks)
		},
	}
}

var groupKeys = map[string]func(string) string{
	"ext": filepath.Ext,
	"len": func(v string) string {
		return strconv.Itoa(seqkit.Len[rune](seqkit.Text(v)))
	},
	"first": func(v string) string {
		r, ok := seqkit.First[rune](seqkit.Text(v))
		if !ok {
			return ""
		}
		return string(r)
	},
}

func (a *app) groupByCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "group-by ext|len|first",
		Short:     "Group the items by their extension, length or first character",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"ext", "len", "first"},
		RunE: func(cmd *cobra.Command, args []string) error {
			key, ok := groupKeys[args[0]]
			if !ok {
				return seqkit.ErrInvalidArgument.F("unknown group key %q", args[0])
			}
			s, err := a.input(cmd)
			if err != nil {
				return err
			}
			groups, err := seqkit.GroupBy[string](s, key)
			if err != nil {
				return err
			}
			return a.printer().groups(groups)
		},
	}
}

func parseNumber(v string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, seqkit.ErrTypeMismatch.F("%q is not a number", v)
	}
	return n, nil
}

func (a *app) extremumCommand(name, short string, op func(seqkit.Sequence[float64]) (float64, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.input(cmd)
			if err != nil {
				return err
			}
			nums, err := seqkit.Map[float64](s, parseNumber)
			if err != nil {
				return err
			}
			n, err := op(nums)
			if err != nil {
				return err
			}
			return a.printer().value(n)
		},
	}
}

func (a *app) randomCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Print a randomly chosen item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.input(cmd)
			if err != nil {
				return err
			}
			v, err := seqkit.RandomElement(s)
			if err != nil {
				return err
			}
			return a.printer().value(v)
		},
	}
}

func (a *app) letCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "let TEMPLATE",
		Short:   "Destructure the items with a template such as (first second &rest others)",
		Args:    cobra.ExactArgs(1),
		Example: `  ls | seqkit let '(first _ &rest others)'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.input(cmd)
			if err != nil {
				return err
			}
			b, err := destructure.Let(args[0], s)
			if err != nil {
				return err
			}
			return a.printer().bindings(b.Names(), func(name string) (any, bool) {
				v, ok := b.Lookup(name)
				if rest, isSeq := v.(seqkit.Sequence[string]); isSeq {
					vs := seqkit.Values(rest)
					if vs == nil {
						vs = []string{}
					}
					return vs, ok
				}
				return v, ok
			})
		},
	}
}
