package cmd

import (
	"fmt"

	"smash/pkg/grammar"

	"github.com/spf13/cobra"
)

var grammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "Print the reference grammar",
	Long: `Verify the EBNF grammar of the accepted language and print it. By
default the grammar is printed as written; --normalize prints one
production per line.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		g, err := grammar.Load()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if tokens, _ := cmd.Flags().GetBool("tokens"); tokens {
			for _, tok := range grammar.Tokens(g) {
				fmt.Fprintln(out, tok)
			}
			return nil
		}
		if normalize, _ := cmd.Flags().GetBool("normalize"); normalize {
			grammar.Print(out, g)
			return nil
		}
		fmt.Fprint(out, grammar.Source())
		return nil
	},
}

func init() {
	grammarCmd.Flags().Bool("normalize", false, "Print one production per line")
	grammarCmd.Flags().Bool("tokens", false, "List the literal tokens of the grammar")
}
