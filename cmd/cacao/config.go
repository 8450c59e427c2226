package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pr-poehali-dev/dark-cacao-run/internal/config"
)

var flagConfigResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the runner tuning as YAML",
	Long: `Print the built-in tuning. Save it to ~/.cacao/configs/runner.yaml
or pass it with --config to change physics, spawning, progression, the
boss and the shop.

With --resolved the config that would actually be loaded is printed,
after the search path and --config are applied.

Examples:
  cacao config > runner.yaml
  cacao config --resolved --config ./runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigResolved, "resolved", false, "Print the effective config instead of the defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagConfigResolved {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(cfg)
}
