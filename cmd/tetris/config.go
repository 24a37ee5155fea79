package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration tetris would play with, as YAML.

The file is looked up in this order: --config, ~/.tetris/config.yaml,
./configs/tetris.yaml, then the built-in defaults.

Examples:
  tetris config
  tetris config --defaults > ~/.tetris/config.yaml
  tetris config --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, args []string) error {
	return printConfig(cmd.OutOrStdout(), flagConfig, flagDefaults)
}

func printConfig(w io.Writer, path string, defaults bool) error {
	if defaults {
		_, err := w.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	data, err := cfg.YAML()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
