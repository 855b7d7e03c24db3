package cmd

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/shyptr/gqldb/database"
	"github.com/shyptr/gqldb/errors"
	"github.com/shyptr/gqldb/system"
	"github.com/spf13/cobra"
)

var (
	okFmt   = color.New(color.FgGreen).SprintFunc()
	failFmt = color.New(color.FgRed, color.Bold).SprintFunc()
	fileFmt = color.New(color.Bold).SprintFunc()
)

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Parse and validate documents",
	Long: `Parse every file and apply its definitions to an empty schema, so
duplicate types and invalid extensions are reported as well as syntax errors.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		definitions, err := checkFile(path)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s %s: %v\n", failFmt("FAIL"), fileFmt(position(path, err)), err)
			continue
		}
		fmt.Fprintf(out, "%s %s (%d definitions)\n", okFmt("ok"), fileFmt(path), definitions)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

func checkFile(path string) (int, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	doc, err := system.Parse(string(source))
	if err != nil {
		return 0, err
	}
	if _, _, err := database.NewSchema().Apply(doc); err != nil {
		return 0, err
	}
	return len(doc.Definitions), nil
}

func position(path string, err error) string {
	var located errors.Located
	if stderrors.As(err, &located) {
		if loc, ok := located.Location(); ok {
			return fmt.Sprintf("%s:%d:%d", path, loc.Line, loc.Column)
		}
	}
	return path
}
