package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/appsdothingsiguess/portfoliosite/pkg/content"
	"github.com/appsdothingsiguess/portfoliosite/pkg/export"
)

//nolint:gochecknoglobals // Cobra boilerplate
var schemaKind string

//nolint:gochecknoglobals // Cobra boilerplate
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the collection schemas as JSON",
	Long: `Print the field contract of every collection, or of one with --kind.

Example:
  portfolio schema
  portfolio schema --kind skills`,
	RunE: runSchema,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVar(&schemaKind, "kind", "", "Only print this collection")
}

func runSchema(cmd *cobra.Command, args []string) (err error) {
	var doc any = export.SchemaDocument()
	if schemaKind != "" {
		var kind content.Kind
		kind, err = content.ParseKind(schemaKind)
		if err != nil {
			return err
		}
		doc, err = content.SchemaFor(kind)
		if err != nil {
			return err
		}
	}

	var data []byte
	data, err = json.MarshalIndent(doc, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal schemas")
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
