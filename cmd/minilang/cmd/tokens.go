package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"minilang/pkg/astdump"
	"minilang/pkg/compiler"
)

func newTokensCmd(a *app) *cobra.Command {
	var (
		inline string
		format string
	)

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream",
		Long: `Lexes a program and prints one token per line.

Examples:
  minilang tokens main.ml
  minilang tokens -e "let a = 1 <= 2;"
  minilang tokens --format json main.ml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, src, err := readSource(args, inline)
			if err != nil {
				return err
			}
			if format == "" {
				format = a.cfg.Output.Format
			}

			tokens, err := compiler.LexWith(src, a.opts)
			if err != nil {
				return &sourceError{name: name, src: src, err: err}
			}
			a.logger.Printf("%s: %d tokens", name, len(tokens))

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Tokens (%d)", len(tokens))))
				return astdump.Tokens(out, tokens)
			case "yaml":
				return astdump.YAML(out, astdump.TokenTable(tokens))
			case "json":
				return astdump.JSON(out, astdump.TokenTable(tokens))
			default:
				return fmt.Errorf("format %q is not available for tokens (want text, yaml or json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&inline, "eval", "e", "", "source text to lex instead of a file")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, yaml or json (default from config)")
	return cmd
}
