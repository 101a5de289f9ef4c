package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"minilang/pkg/astdump"
	"minilang/pkg/compiler"
)

func newASTCmd(a *app) *cobra.Command {
	var (
		inline   string
		format   string
		output   string
		exprOnly bool
	)

	cmd := &cobra.Command{
		Use:   "ast [file]",
		Short: "Print the syntax tree",
		Long: `Parses a program and prints its syntax tree.

With --expr the input must be a single expression instead of a list of
statements. The png format draws the text outline and needs -o.

Examples:
  minilang ast main.ml
  minilang ast --expr -e "1 + 2 * 3"
  minilang ast --format yaml main.ml
  minilang ast --format png -o tree.png main.ml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, src, err := readSource(args, inline)
			if err != nil {
				return err
			}
			if format == "" {
				format = a.cfg.Output.Format
			}
			if format == "png" && output == "" {
				return fmt.Errorf("png output needs -o <file>")
			}

			var trees []*astdump.Tree
			if exprOnly {
				expr, err := compiler.ParseExpressionSource(src, a.opts)
				if err != nil {
					return &sourceError{name: name, src: src, err: err}
				}
				trees = []*astdump.Tree{astdump.Node(expr)}
			} else {
				stmts, err := compiler.ParseSource(src, a.opts)
				if err != nil {
					return &sourceError{name: name, src: src, err: err}
				}
				a.logger.Printf("%s: %d statements", name, len(stmts))
				trees = astdump.Program(stmts)
			}

			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
				a.logger.Printf("writing %s output to %s", format, output)
			}
			return writeTrees(out, format, trees)
		},
	}

	cmd.Flags().StringVarP(&inline, "eval", "e", "", "source text to parse instead of a file")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, yaml, json or png (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&exprOnly, "expr", false, "parse a single expression")
	return cmd
}

func writeTrees(w io.Writer, format string, trees []*astdump.Tree) error {
	switch format {
	case "text":
		return astdump.Text(w, trees)
	case "yaml":
		return astdump.YAML(w, trees)
	case "json":
		return astdump.JSON(w, trees)
	case "png":
		return astdump.PNG(w, trees)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
