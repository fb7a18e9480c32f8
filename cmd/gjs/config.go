package main

import (
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/letung3105/gjs/internal/ast"
	"github.com/letung3105/gjs/internal/parser"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// options holds everything that can be set from the config file or flags.
type options struct {
	Goal     string `yaml:"goal"`
	MaxDepth int    `yaml:"max_depth"`
	Format   string `yaml:"format"`
	Verbose  bool   `yaml:"verbose"`
}

func defaultOptions() options {
	return options{
		Goal:     "script",
		MaxDepth: parser.DefaultMaxDepth,
		Format:   "sexpr",
	}
}

// loadOptions decodes a YAML file on top of opts. Keys absent from the file
// keep their current value.
func loadOptions(path string, opts *options) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(bytes, opts); err != nil {
		return errors.Wrapf(err, "decoding config %s", path)
	}
	return nil
}

// override copies the values of the flags that were set on the command line.
func (opts *options) override(cmd *cobra.Command, flags options) {
	if cmd.Flags().Changed("goal") {
		opts.Goal = flags.Goal
	}
	if cmd.Flags().Changed("max-depth") {
		opts.MaxDepth = flags.MaxDepth
	}
	if cmd.Flags().Changed("format") {
		opts.Format = flags.Format
	}
	if cmd.Flags().Changed("verbose") {
		opts.Verbose = flags.Verbose
	}
}

func (opts options) parserOptions(logger *zap.Logger) ([]parser.Option, error) {
	goal, ok := parser.ParseGoal(opts.Goal)
	if !ok {
		return nil, errors.Errorf("unknown goal %q", opts.Goal)
	}
	if opts.MaxDepth <= 0 {
		return nil, errors.Errorf("max depth must be positive, got %d", opts.MaxDepth)
	}
	return []parser.Option{
		parser.WithGoal(goal),
		parser.WithMaxDepth(opts.MaxDepth),
		parser.WithLogger(logger),
	}, nil
}

func (opts options) formatter() (func(*ast.Program) string, error) {
	switch opts.Format {
	case "sexpr":
		printer := &ast.Printer{}
		return printer.PrintProgram, nil
	case "source":
		return ast.Source, nil
	case "dump":
		return func(program *ast.Program) string {
			return fmt.Sprintf("%# v\n", pretty.Formatter(program))
		}, nil
	}
	return nil, errors.Errorf("unknown format %q", opts.Format)
}

func (opts options) logger() (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if opts.Verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	return logger, errors.Wrap(err, "building logger")
}
