package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"smash/pkg/formatter"
	"smash/pkg/lexer"
	"smash/pkg/parser"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const (
	historyFile = ".smash_history"
	promptMain  = "smash> "
	promptCont  = "  ...> "
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse statements interactively",
	Long: `Read C statements and declarations line by line and print their
lowered syntax trees. Input that stops in the middle of a construct is
continued on the next line. Loop labels keep counting for the whole
session. Type :quit to leave and :format NAME to switch output format.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		opts, err := loadOptions(cmd, "")
		if err != nil {
			return err
		}
		opts.format, _ = cmd.Flags().GetString("format")
		return runRepl(cmd, newReplSession(opts))
	},
}

func init() {
	replCmd.Flags().StringP("format", "f", formatter.FormatSExpr, "Output format (summary, tree, sexpr, c, dot, json, yaml)")
	replCmd.Flags().String("label-prefix", "", "Prefix of generated loop labels")
	replCmd.Flags().Bool("tabs", false, "Indent output with tabs")
}

// replSession parses successive inputs with one parser so generated labels
// stay unique for the whole session.
type replSession struct {
	parser    *parser.Parser
	formatter *formatter.Formatter
	format    string
	inputs    int
}

func newReplSession(opts *options) *replSession {
	return &replSession{
		parser:    opts.newParser(),
		formatter: opts.newFormatter(),
		format:    opts.format,
	}
}

// incomplete reports whether src ends inside a construct and more input
// should be read before parsing it
func (s *replSession) incomplete(src string) bool {
	_, err := parser.New().Parse("<probe>", strings.NewReader(src))
	return errors.Is(err, parser.ErrUnexpectedEOF) || errors.Is(err, lexer.ErrUnterminatedComment)
}

// eval parses src and renders the result
func (s *replSession) eval(src string) (string, error) {
	s.inputs++
	unit, err := s.parser.Parse(fmt.Sprintf("<input %d>", s.inputs), strings.NewReader(src))
	if err != nil {
		return "", err
	}
	return s.formatter.Render(unit, s.format)
}

// command handles a :command line; it reports whether the session should end
func (s *replSession) command(line string, out io.Writer) (exit bool) {
	fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(line), ":"))
	if len(fields) == 0 {
		fmt.Fprintln(out, "unknown command. Type :quit to exit.")
		return false
	}

	switch fields[0] {
	case "quit", "q":
		return true
	case "format":
		if len(fields) != 2 {
			fmt.Fprintf(out, "current format: %s (available: %s)\n", s.format, strings.Join(formatter.Formats, ", "))
			return false
		}
		for _, f := range formatter.Formats {
			if f == fields[1] {
				s.format = f
				return false
			}
		}
		fmt.Fprintf(out, "unknown format %q\n", fields[1])
	default:
		fmt.Fprintln(out, "unknown command. Type :quit to exit.")
	}
	return false
}

func runRepl(cmd *cobra.Command, session *replSession) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "smash %s. Type :quit to exit.\n", getVersionString())

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if home, err := os.UserHomeDir(); err == nil {
		histPath := filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	for {
		src, ok := readInput(ln, session)
		if !ok {
			fmt.Fprintln(out)
			return nil
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			if session.command(src, out) {
				return nil
			}
			continue
		}

		output, err := session.eval(src)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			continue
		}
		fmt.Fprint(out, output)
	}
}

// readInput reads lines until they form a complete input. It returns false
// at end of input.
func readInput(ln *liner.State, session *replSession) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") || !session.incomplete(src) {
			return src, true
		}
	}
}
