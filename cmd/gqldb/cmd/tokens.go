package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shyptr/gqldb/system"
	"github.com/shyptr/gqldb/system/token"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Print the tokens of a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	defer w.Flush()
	for tok, err := range system.NewLexer(string(source)).All() {
		if err != nil {
			w.Flush()
			return fmt.Errorf("%s: %w", args[0], err)
		}
		fmt.Fprintf(w, "%s\t%s\n", tokenPosition(tok), tok)
	}
	return nil
}

func tokenPosition(tok token.Token) string {
	if tok.Loc.Ignored() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", tok.Loc.Line, tok.Loc.Column)
}
