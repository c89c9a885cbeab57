package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/appsdothingsiguess/portfoliosite/pkg/content"
	"github.com/appsdothingsiguess/portfoliosite/pkg/export"
)

//nolint:gochecknoglobals // Cobra boilerplate
var exportOutputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write one JSON view per mode",
	Long: `Validate the content tree, then write <output-dir>/<mode>.json for every mode
and <output-dir>/schemas.json for the collection registry.

Nothing is written when validation fails.

Example:
  portfolio export
  portfolio export --output-dir ./build/views`,
	RunE: runExport,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportOutputDir, "output-dir", "", "Output directory (default from config)")
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	var corpus *content.Corpus
	corpus, err = loadContent(cfg, logger)
	if err != nil {
		reportFailures(cmd.ErrOrStderr(), err)
		err = errors.New("content validation failed")
		return err
	}

	outDir := pick(exportOutputDir, cfg.Content.OutputDir)

	var paths []string
	paths, err = export.WriteViews(corpus, outDir)
	if err != nil {
		err = errors.Wrap(err, "failed to export views")
		return err
	}

	for _, path := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote: %s\n", path)
	}
	return err
}
