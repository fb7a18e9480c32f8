package main

// gjs parses ECMAScript and prints the resulting syntax tree.

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/letung3105/gjs/internal/ast"
	"github.com/letung3105/gjs/internal/parser"
	"github.com/letung3105/gjs/internal/scanner"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exitError carries the process status for a failed run. A nil err means the
// failure was already reported.
type exitError struct {
	status int
	err    error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.status)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func main() {
	cmd := newRootCommand(os.Stdin, os.Stdout, os.Stderr)
	cmd.SetArgs(os.Args[1:])
	if err := cmd.Execute(); err != nil {
		status := 1
		var exit *exitError
		if errors.As(err, &exit) {
			status = exit.status
			err = exit.err
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(status)
	}
}

func newRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var (
		configPath string
		flags      = defaultOptions()
	)

	cmd := &cobra.Command{
		Use:           "gjs [script]",
		Short:         "Parse ECMAScript and print its syntax tree",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return &exitError{64, errors.New("Usage: gjs [script]")}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := defaultOptions()
			if configPath != "" {
				if err := loadOptions(configPath, &opts); err != nil {
					return err
				}
			}
			opts.override(cmd, flags)

			r, err := newRunner(opts, out, errOut)
			if err != nil {
				return err
			}
			defer r.logger.Sync()

			if len(args) == 1 {
				return r.runFile(args[0])
			}
			return r.runPrompt(in)
		},
	}

	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.Flags().StringVar(&configPath, "config", "", "YAML file with default options")
	cmd.Flags().StringVar(&flags.Goal, "goal", flags.Goal, "parse goal: script, generator, async or async-generator")
	cmd.Flags().IntVar(&flags.MaxDepth, "max-depth", flags.MaxDepth, "maximum nesting depth")
	cmd.Flags().StringVar(&flags.Format, "format", flags.Format, "output format: sexpr, source or dump")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", flags.Verbose, "trace productions at debug level")
	return cmd
}

type runner struct {
	out      io.Writer
	reporter parser.Reporter
	logger   *zap.Logger
	parse    []parser.Option
	format   func(*ast.Program) string
}

func newRunner(opts options, out, errOut io.Writer) (*runner, error) {
	logger, err := opts.logger()
	if err != nil {
		return nil, err
	}
	parse, err := opts.parserOptions(logger)
	if err != nil {
		return nil, err
	}
	format, err := opts.formatter()
	if err != nil {
		return nil, err
	}
	return &runner{
		out:      out,
		reporter: parser.NewSimpleReporter(errOut),
		logger:   logger,
		parse:    parse,
		format:   format,
	}, nil
}

func (r *runner) run(script string) {
	program := parser.NewParser(scanner.New([]rune(script)), r.reporter, r.parse...).Parse()
	if r.reporter.HadError() {
		return
	}
	fmt.Fprint(r.out, r.format(program))
}

// runPrompt parses the input line by line.
func (r *runner) runPrompt(in io.Reader) error {
	s := bufio.NewScanner(in)
	s.Split(bufio.ScanLines)
	for {
		fmt.Fprint(r.out, "> ")
		if !s.Scan() {
			break
		}
		r.run(s.Text())
		r.reporter.Reset()
	}
	if err := s.Err(); err != nil {
		return &exitError{1, errors.Wrap(err, "reading input")}
	}
	return nil
}

// runFile parses the given file as a single script.
func (r *runner) runFile(path string) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return &exitError{1, errors.Wrap(err, "reading script")}
	}

	r.logger.Debug("parsing file", zap.String("path", path), zap.Int("size", len(bytes)))
	r.run(string(bytes))
	if r.reporter.HadError() {
		return &exitError{status: 65}
	}
	return nil
}
