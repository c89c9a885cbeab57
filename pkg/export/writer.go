package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"

	"github.com/appsdothingsiguess/portfoliosite/pkg/content"
)

// SchemasFile is the name of the registry document written next to the views.
const SchemasFile = "schemas.json"

// SchemaDocument returns the registry ordered by kind.
func SchemaDocument() (schemas []content.Schema) {
	registry := content.Schemas()
	schemas = make([]content.Schema, 0, len(registry))
	for _, kind := range content.Kinds() {
		schemas = append(schemas, registry[kind])
	}
	return schemas
}

// WriteViews writes one manifest per mode plus the schema registry into outDir.
// It returns the paths written, sorted.
func WriteViews(corpus *content.Corpus, outDir string) (paths []string, err error) {
	renderer := NewMarkdown()

	for _, mode := range content.Modes() {
		var manifest Manifest
		manifest, err = BuildManifest(corpus, mode, renderer)
		if err != nil {
			err = errors.Wrapf(err, "failed to build %s view", mode)
			return paths, err
		}

		path := filepath.Join(outDir, mode.String()+".json")
		err = WriteJSON(manifest, path)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	path := filepath.Join(outDir, SchemasFile)
	err = WriteJSON(SchemaDocument(), path)
	if err != nil {
		return paths, err
	}
	paths = append(paths, path)

	sort.Strings(paths)
	return paths, err
}

// WriteJSON writes v as indented JSON, creating the parent directory.
func WriteJSON(v any, outputPath string) (err error) {
	// Ensure output directory exists
	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	var data []byte
	data, err = json.MarshalIndent(v, "", "  ")
	if err != nil {
		err = errors.Wrapf(err, "failed to marshal %s", filepath.Base(outputPath))
		return err
	}
	data = append(data, '\n')

	err = os.WriteFile(outputPath, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write file: %s", outputPath)
		return err
	}

	return err
}
