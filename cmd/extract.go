package cmd

import (
	"fmt"

	"smash/pkg/ast"
	"smash/pkg/formatter"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file] [label]",
	Short: "Print the statement under a label",
	Long: `Parse a C file and print the statement carrying the given label.
Generated loop labels can be extracted too, e.g. .TEMP0 for the start of
the first loop.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		filename := args[0]
		name := args[1]

		opts, err := loadOptions(cmd, filename)
		if err != nil {
			return err
		}
		unit, err := parseFile(opts, filename)
		if err != nil {
			return err
		}

		label := unit.FindLabel(name)
		if label == nil {
			return fmt.Errorf("label not found: %s", name)
		}

		scope, _ := cmd.Flags().GetBool("scope")
		var target ast.Node = label
		if scope {
			target = label.Stmt
		}

		f := opts.newFormatter()
		if sexpr, _ := cmd.Flags().GetBool("sexpr"); sexpr {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.SExpr(target))
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), f.ReconstructNode(target))
		return nil
	},
}

func init() {
	extractCmd.Flags().Bool("scope", false, "Print only the labelled statement, without the label")
	extractCmd.Flags().Bool("sexpr", false, "Print as an s-expression instead of C")
	extractCmd.Flags().String("label-prefix", "", "Prefix of generated loop labels")
}
