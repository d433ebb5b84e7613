package cmd

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"smash/pkg/ast"
	"smash/pkg/config"
	"smash/pkg/formatter"
	"smash/pkg/parser"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a C file and print its syntax tree",
	Long: `Parse a C file into a syntax tree with loops lowered to labels and
gotos. The output format is taken from --format, then SMASH_FORMAT, then
.smash.yaml, and defaults to a summary.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	addOutputFlags(parseCmd)
}

// options are the settings of one command run after merging the config
// file, the environment and the flags
type options struct {
	format      string
	labelPrefix string
	useTabs     bool
	clangFormat bool
	logger      *log.Logger
}

func addOutputFlags(c *cobra.Command) {
	c.Flags().StringP("format", "f", "", "Output format (summary, tree, sexpr, c, dot, json, yaml)")
	c.Flags().String("label-prefix", "", "Prefix of generated loop labels")
	c.Flags().Bool("tabs", false, "Indent output with tabs")
	c.Flags().BoolP("clang-format", "c", false, "Pass C output through clang-format")
}

// loadOptions resolves the settings for filename. Flags set on the command
// line win over the environment, which wins over the config file.
func loadOptions(c *cobra.Command, filename string) (*options, error) {
	configPath, _ := c.Flags().GetString("config")
	cfg, err := config.Load(configPath, filename)
	if err != nil {
		return nil, err
	}

	opts := &options{
		format:      cfg.Format,
		labelPrefix: cfg.LabelPrefix,
		useTabs:     cfg.UseTabs,
		clangFormat: cfg.ClangFormat,
	}
	flags := c.Flags()
	if flags.Changed("format") {
		opts.format, _ = flags.GetString("format")
	}
	if flags.Changed("label-prefix") {
		opts.labelPrefix, _ = flags.GetString("label-prefix")
	}
	if flags.Changed("tabs") {
		opts.useTabs, _ = flags.GetBool("tabs")
	}
	if flags.Changed("clang-format") {
		opts.clangFormat, _ = flags.GetBool("clang-format")
	}

	verbose, _ := flags.GetBool("verbose")
	opts.logger = newLogger(verbose || cfg.Verbose, c.ErrOrStderr())
	if opts.logger != nil && cfg.Path != "" {
		opts.logger.Printf("using config %s", cfg.Path)
	}
	return opts, nil
}

func (o *options) newParser() *parser.Parser {
	return parser.New(parser.WithLabelPrefix(o.labelPrefix), parser.WithLogger(o.logger))
}

func (o *options) newFormatter() *formatter.Formatter {
	f := formatter.New()
	if o.useTabs {
		f.WithTabs()
	}
	return f
}

// parseFile reads and parses filename
func parseFile(opts *options, filename string) (*ast.Unit, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	unit, err := opts.newParser().Parse(filename, bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", filename, err)
	}
	return unit, nil
}

func runParse(cmd *cobra.Command, args []string) error {
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
	return render(cmd, opts, unit)
}

func render(cmd *cobra.Command, opts *options, unit *ast.Unit) error {
	f := opts.newFormatter()
	output, err := f.Render(unit, opts.format)
	if err != nil {
		return err
	}

	if opts.clangFormat && opts.format == formatter.FormatC {
		output = clangFormat(cmd, f, output)
	}
	fmt.Fprint(cmd.OutOrStdout(), output)
	return nil
}

// clangFormat formats code, falling back to the input when clang-format fails
func clangFormat(cmd *cobra.Command, f *formatter.Formatter, code string) string {
	formatted, err := f.FormatWithClang(code)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: clang-format failed: %v\n", err)
		return code
	}
	return formatted
}
