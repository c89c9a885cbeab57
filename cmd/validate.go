package cmd

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/appsdothingsiguess/portfoliosite/pkg/content"
)

//nolint:gochecknoglobals // Cobra boilerplate
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the content tree",
	Long: `Load every content file, check it against its collection schema, and report
every problem found. Prints a per-collection count and a per-mode summary on success.

Example:
  portfolio validate
  portfolio validate --content-dir ./src/content`,
	RunE: runValidate,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) (err error) {
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

	printSummary(cmd.OutOrStdout(), corpus)
	return err
}

// printSummary writes collection counts followed by what each mode shows.
func printSummary(w io.Writer, corpus *content.Corpus) {
	titleCaser := cases.Title(language.English)

	fmt.Fprintln(w, "Collections:")
	for _, kind := range content.Kinds() {
		fmt.Fprintf(w, "  %-12s %d\n", titleCaser.String(kind.String()), corpus.Len(kind))
	}

	fmt.Fprintln(w, "Modes:")
	for _, mode := range content.Modes() {
		view := content.SelectView(corpus, mode)
		fmt.Fprintf(w, "  %-12s %d journalism, %d research, %d leadership, %d business, %d skills (%d featured)\n",
			mode.Label(),
			len(view.Journalism),
			len(view.Research),
			len(view.Leadership),
			len(view.Business),
			len(view.Skills),
			len(view.TopSkills),
		)
	}
}
