// Package cmd implements the minilang command line.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"minilang/pkg/compiler"
	"minilang/pkg/config"
)

// Version is overridden at link time with -ldflags "-X minilang/cmd/minilang/cmd.Version=...".
var Version = "0.1.0"

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	opts   compiler.Options
	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: log.New(io.Discard, "minilang: ", 0)}

	root := &cobra.Command{
		Use:   "minilang",
		Short: "minilang front end: lexer and parser",
		Long: `minilang tokenizes and parses programs written in a small
C-like language of let declarations, if/else, blocks and arithmetic
and comparison expressions.

Commands:
  tokens   - print the token stream
  ast      - print the syntax tree (text, yaml, json or png)
  version  - print the version

Settings are read from --config, then $MINILANG_CONFIG, then
./minilang.toml or ./minilang.yaml.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./minilang.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newTokensCmd(a))
	root.AddCommand(newASTCmd(a))
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the command line and reports any failure on stderr.
func Execute() error {
	return run(newRootCmd(), os.Args[1:], os.Stdout, os.Stderr)
}

func run(root *cobra.Command, args []string, stdout, stderr io.Writer) error {
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.Execute()
	if err != nil {
		printError(stderr, err)
	}
	return err
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.verbose {
		a.logger.SetOutput(cmd.ErrOrStderr())
	}

	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	a.opts, err = a.cfg.Options()
	if err != nil {
		return err
	}
	a.logger.Printf("options: pairing=%s signed_literals=%t max_depth=%d",
		a.opts.Pairing, a.opts.SignedLiterals, a.opts.MaxDepth)
	return nil
}

// sourceError ties a front-end error to the text it was found in so the
// report can quote the offending line.
type sourceError struct {
	name string
	src  string
	err  error
}

func (e *sourceError) Error() string { return e.name + ": " + e.err.Error() }
func (e *sourceError) Unwrap() error { return e.err }

func printError(w io.Writer, err error) {
	var serr *sourceError
	var cerr *compiler.Error
	if errors.As(err, &serr) && errors.As(err, &cerr) {
		lines := strings.SplitN(cerr.Describe(serr.src), "\n", 2)
		fmt.Fprintln(w, errorStyle.Render("error:"), serr.name+":"+lines[0])
		if len(lines) > 1 {
			fmt.Fprintln(w, sourceStyle.Render(lines[1]))
		}
		return
	}
	fmt.Fprintln(w, errorStyle.Render("error:"), err)
}
