package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/appsdothingsiguess/portfoliosite/pkg/config"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write a default YAML config file to --config, or portfolio.yaml in the
current directory. An existing file is never overwritten.`,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	path := pick(getConfigFile(), config.DefaultPath)

	err = config.InitConfig(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", path)
	return err
}
