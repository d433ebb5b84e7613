package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:   "format [file]",
	Short: "Print a C file with its loops lowered",
	Long: `Parse a C file and print it back as C, with while, do and for loops
replaced by the labels, gotos and ifs they lower to. Use --clang-format to
tidy the result.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		filename := args[0]

		opts, err := loadOptions(cmd, filename)
		if err != nil {
			return err
		}
		unit, err := parseFile(opts, filename)
		if err != nil {
			return err
		}

		f := opts.newFormatter()
		reconstructed := f.ReconstructCode(unit)
		if opts.clangFormat {
			reconstructed = clangFormat(cmd, f, reconstructed)
		}
		fmt.Fprint(cmd.OutOrStdout(), reconstructed)
		return nil
	},
}

func init() {
	formatCmd.Flags().String("label-prefix", "", "Prefix of generated loop labels")
	formatCmd.Flags().Bool("tabs", false, "Indent output with tabs")
	formatCmd.Flags().BoolP("clang-format", "c", false, "Apply clang-format to the output")
}
