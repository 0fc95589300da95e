package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"prepdeck/internal/catalog"
)

func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		catalogPath := fs.String("catalog", "", "Path to catalog file")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if *catalogPath == "" {
			fmt.Fprintln(stderr, "Missing required flag: --catalog")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cat, err := catalog.Load(*catalogPath)
		if err != nil {
			var validation *catalog.ValidationError
			if errors.As(err, &validation) {
				fmt.Fprintf(stderr, "Catalog is invalid (%d issues):\n", len(validation.Issues))
				for _, issue := range validation.Issues {
					fmt.Fprintf(stderr, "  %s: %s\n", issue.Field, issue.Message)
				}
			} else {
				fmt.Fprintf(stderr, "Validation failed: %v\n", err)
			}
			return ExitError
		}

		fmt.Fprintf(stdout, "Catalog is valid: %d questions, %d flashcards, %d cards\n",
			len(cat.Questions), len(cat.Flashcards), len(cat.Cards))
		return ExitOK
	}
}
