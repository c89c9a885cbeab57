package content

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// frontmatterDelimiter opens and closes the YAML header of a markdown file.
const frontmatterDelimiter = "---"

// ParseFile splits a content file into its raw fields and markdown body.
// The format is chosen by extension: markdown with frontmatter, YAML, or JSON.
func ParseFile(name string, data []byte) (raw map[string]any, body string, err error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown", ".mdx":
		var header []byte
		header, body = splitFrontmatter(data)
		raw, err = decodeYAML(header)
	case ".yaml", ".yml":
		raw, err = decodeYAML(data)
	case ".json":
		raw = map[string]any{}
		err = json.Unmarshal(data, &raw)
	default:
		err = errors.Errorf("unsupported content file type: %s", name)
		return raw, body, err
	}

	if err != nil {
		err = errors.Wrapf(err, "failed to parse %s", name)
		return raw, body, err
	}

	return raw, body, err
}

// splitFrontmatter separates the YAML header from the markdown body.
// A file without a header has an empty header and the whole file as body.
func splitFrontmatter(data []byte) (header []byte, body string) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	if !strings.HasPrefix(text, frontmatterDelimiter+"\n") {
		body = text
		return header, body
	}

	rest := text[len(frontmatterDelimiter)+1:]
	lines := strings.SplitAfter(rest, "\n")
	offset := 0
	for _, line := range lines {
		if strings.TrimRight(line, "\n") == frontmatterDelimiter {
			header = []byte(rest[:offset])
			body = strings.TrimLeft(rest[offset+len(line):], "\n")
			return header, body
		}
		offset += len(line)
	}

	// Unterminated header: treat everything as header so validation reports the fields.
	header = []byte(rest)
	return header, body
}

func decodeYAML(data []byte) (raw map[string]any, err error) {
	raw = map[string]any{}
	if len(bytes.TrimSpace(data)) == 0 {
		return raw, err
	}
	err = yaml.Unmarshal(data, &raw)
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, err
}

// isContentFile reports whether a walked file should be loaded.
// Dotfiles and files starting with an underscore are skipped.
func isContentFile(name string) bool {
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return false
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown", ".mdx", ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// entryID is the slash-separated path of the file relative to its collection, without extension.
func entryID(collectionDir, path string) (id string, err error) {
	var rel string
	rel, err = filepath.Rel(collectionDir, path)
	if err != nil {
		err = errors.Wrapf(err, "failed to resolve %s relative to %s", path, collectionDir)
		return id, err
	}
	id = filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel)))
	return id, err
}

// LoadCorpus reads and validates every content file under root.
// Each collection lives in root/<kind>/. Missing collection directories are skipped.
// All parse and validation failures are returned together.
func LoadCorpus(root string, logger *zap.Logger) (corpus *Corpus, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var info os.FileInfo
	info, err = os.Stat(root)
	if err != nil {
		err = errors.Wrapf(err, "content directory not found: %s", root)
		return corpus, err
	}
	if !info.IsDir() {
		err = errors.Errorf("content path is not a directory: %s", root)
		return corpus, err
	}

	corpus = NewCorpus()
	var failures error

	for _, kind := range Kinds() {
		collectionDir := filepath.Join(root, kind.String())
		_, statErr := os.Stat(collectionDir)
		if os.IsNotExist(statErr) {
			logger.Debug("collection directory missing, skipping", zap.String("collection", kind.String()), zap.String("dir", collectionDir))
			continue
		}

		walkErr := filepath.WalkDir(collectionDir, func(path string, d fs.DirEntry, walkErr error) (walkFuncErr error) {
			if walkErr != nil {
				walkFuncErr = walkErr
				return walkFuncErr
			}
			if d.IsDir() || !isContentFile(d.Name()) {
				return walkFuncErr
			}

			loadErr := loadEntry(corpus, kind, collectionDir, path)
			if loadErr != nil {
				failures = multierr.Append(failures, loadErr)
				return walkFuncErr
			}

			logger.Debug("loaded content record", zap.String("collection", kind.String()), zap.String("path", path))
			return walkFuncErr
		})
		if walkErr != nil {
			err = errors.Wrapf(walkErr, "failed to walk collection directory: %s", collectionDir)
			return corpus, err
		}
	}

	failures = multierr.Append(failures, corpus.Check())
	if failures != nil {
		err = errors.Wrap(failures, "content validation failed")
		return corpus, err
	}

	return corpus, err
}

func loadEntry(corpus *Corpus, kind Kind, collectionDir, path string) (err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read content file: %s", path)
		return err
	}

	var raw map[string]any
	var body string
	raw, body, err = ParseFile(path, data)
	if err != nil {
		return err
	}

	var id string
	id, err = entryID(collectionDir, path)
	if err != nil {
		return err
	}

	var entry *Entry
	entry, err = NewEntry(kind, id, raw, body)
	if err != nil {
		return err
	}

	err = corpus.Add(entry)
	return err
}

// Failures flattens an error returned by LoadCorpus into its individual failures.
func Failures(err error) (failures []error) {
	if err == nil {
		return failures
	}
	failures = multierr.Errors(errors.Cause(err))
	return failures
}
