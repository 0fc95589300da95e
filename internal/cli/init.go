package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"prepdeck/internal/config"
	"prepdeck/internal/content"
)

const starterConfig = `version: 1

# Path to a catalog file; remove to use the bundled catalog.
catalog: ".prepdeck/catalog.yml"

exam:
  length: 20
  duration_seconds: 900
`

func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		dir := fs.String("dir", ".", "Directory to scaffold into")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		configPath := config.ConfigPath(*dir)
		catalogPath := filepath.Join(*dir, config.ConfigDirName, "catalog.yml")
		if _, err := os.Stat(configPath); err == nil {
			fmt.Fprintf(stderr, "Init failed: %s already exists\n", configPath)
			return ExitError
		}

		if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		if err := os.WriteFile(configPath, []byte(starterConfig), 0o644); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		if err := os.WriteFile(catalogPath, content.DefaultYAML(), 0o644); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Created %s\n", configPath)
		fmt.Fprintf(stdout, "Created %s\n", catalogPath)
		fmt.Fprintln(stdout, "Edit the catalog, then run \"prepdeck study\".")
		return ExitOK
	}
}
