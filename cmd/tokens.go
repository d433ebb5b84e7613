package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"smash/pkg/lexer"

	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the tokens of a C file",
	Long: `Tokenize a C file and print one token per line, stopping at the end
of input or at the first invalid token.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		filename := args[0]

		file, err := os.Open(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		defer file.Close()

		tokens := lexer.NewTokenizer(lexer.NewSource(file)).Tokenize()

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			if err := outputTokensJSON(cmd, tokens); err != nil {
				return err
			}
		} else {
			for _, tok := range tokens {
				fmt.Fprintln(cmd.OutOrStdout(), tok)
			}
		}

		if errs := lexer.GetErrors(tokens); len(errs) > 0 {
			return fmt.Errorf("failed to tokenize file %s: %w", filename, errs[0].Err)
		}
		return nil
	},
}

func init() {
	tokensCmd.Flags().Bool("json", false, "Print tokens as a JSON array")
}

func outputTokensJSON(cmd *cobra.Command, tokens []lexer.Token) error {
	type JSONToken struct {
		Type       string `json:"type"`
		Text       string `json:"text,omitempty"`
		NumberType string `json:"numberType,omitempty"`
		Base       int    `json:"base,omitempty"`
		Value      string `json:"value,omitempty"`
		Error      string `json:"error,omitempty"`
	}

	jsonTokens := make([]JSONToken, 0, len(tokens))
	for _, tok := range tokens {
		jt := JSONToken{Type: tok.Type.String(), Text: tok.Value}
		if tok.IsKeyword() {
			jt.Type = "keyword"
			jt.Text = tok.Type.String()
		}
		if tok.Number != nil {
			jt.NumberType = tok.Number.Type.String()
			jt.Base = tok.Number.Base
			jt.Value = tok.Number.String()
		}
		if tok.Type == lexer.TokenInvalid {
			jt.Type = "invalid"
			jt.Text = ""
			jt.Error = tok.Value
		}
		jsonTokens = append(jsonTokens, jt)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(jsonTokens)
}
