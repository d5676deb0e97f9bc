package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cat-catcher/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would use as YAML, after the
search path and --difficulty are applied. Redirect it to a file to start
a custom configuration:

  catcher config > ~/.catcher/configs/catcher.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	data, err := config.Marshal(loadGameConfig())
	if err != nil {
		fatal("%v", err)
	}
	if _, err := os.Stdout.Write(data); err != nil {
		fatal("writing config: %v", err)
	}
}
