package cmd

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/appsdothingsiguess/portfoliosite/pkg/config"
	"github.com/appsdothingsiguess/portfoliosite/pkg/content"
)

// loadContent loads the content tree named by the flag or config.
func loadContent(cfg config.Config, logger *zap.Logger) (corpus *content.Corpus, err error) {
	dir := pick(contentDir, cfg.Content.Dir)
	if getVerbose() {
		fmt.Printf("Loading content from: %s\n", dir)
	}

	corpus, err = content.LoadCorpus(dir, logger)
	return corpus, err
}

// reportFailures lists every validation failure in err, one per line.
func reportFailures(w io.Writer, err error) {
	failures := content.Failures(err)
	fmt.Fprintf(w, "%d content problem(s):\n", len(failures))
	for _, failure := range failures {
		fmt.Fprintf(w, "  - %s\n", failure)
	}
}
