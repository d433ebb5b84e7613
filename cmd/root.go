package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
)

// Version information
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "smash [file]",
	Short: "A C front end that lowers loops to labels and gotos",
	Long: `smash tokenizes and parses C statements and expressions, lowering
while, do and for loops into labels, gotos and ifs. The resulting syntax
tree can be printed as a summary, an outline, s-expressions, C code,
a Graphviz graph, JSON or YAML.`,
	Args:          cobra.ExactArgs(1),
	RunE:          runParse,
	Version:       getVersionString(),
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "smash %s\n", getVersionString())
		fmt.Fprintf(out, "  Version: %s\n", version)
		fmt.Fprintf(out, "  Commit:  %s\n", commit)
		fmt.Fprintf(out, "  Date:    %s\n", date)
	},
}

func getVersionString() string {
	if version == "dev" {
		return fmt.Sprintf("%s (%s)", version, commit)
	}
	return version
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = getVersionString()
}

func Execute() error {
	return rootCmd.Execute()
}

// newLogger returns a logger on w when verbose is set and nil otherwise
func newLogger(verbose bool, w io.Writer) *log.Logger {
	if !verbose {
		return nil
	}
	return log.New(w, "smash: ", 0)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Configuration file (default: .smash.yaml next to the source or in the working directory)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log parser activity to stderr")
	addOutputFlags(rootCmd)

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(grammarCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)
}
