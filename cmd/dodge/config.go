package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

var flagClassic bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the same way 'play' does and prints it as YAML.

Search order:
  --config <path>
  ~/.arcade/configs/dodge.yaml
  ./configs/dodge.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagClassic, "classic", false, "Apply the classic variant's compatibility settings")
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, src, err := config.LoadDodge(flagConfig)
	if err != nil {
		return err
	}
	if flagClassic {
		config.ApplyClassicCompat(&cfg)
	}

	data, err := config.MarshalDodge(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n", src)
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
