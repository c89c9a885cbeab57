package router

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// DefaultEntryDocument is served for every application route.
	DefaultEntryDocument = "index.html"
	// DefaultMaxAge is the cache lifetime of static assets.
	DefaultMaxAge = 365 * 24 * time.Hour
)

// ErrEntryDocumentMissing means the serving root has no entry document.
var ErrEntryDocumentMissing = errors.New("entry document not found")

// Options configures a Handler. The values are fixed for the life of the handler.
type Options struct {
	Root          string        // directory holding the static build
	EntryDocument string        // file under Root served for application routes
	MaxAge        time.Duration // Cache-Control max-age for static assets
}

// Handler serves a static build with single-page-application fallback.
// It keeps no per-request state and is safe for concurrent use.
type Handler struct {
	root         string
	entryPath    string
	cacheControl string
	logger       *zap.Logger
}

// New checks that the entry document exists and returns a ready Handler.
func New(opts Options, logger *zap.Logger) (h *Handler, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Root == "" {
		err = errors.New("serving root is required")
		return h, err
	}
	if opts.EntryDocument == "" {
		opts.EntryDocument = DefaultEntryDocument
	}
	if opts.MaxAge <= 0 {
		opts.MaxAge = DefaultMaxAge
	}

	entryPath := filepath.Join(opts.Root, opts.EntryDocument)
	info, statErr := os.Stat(entryPath)
	if statErr != nil || info.IsDir() {
		err = errors.Wrapf(ErrEntryDocumentMissing, "expected %s", entryPath)
		return h, err
	}

	h = &Handler{
		root:         opts.Root,
		entryPath:    entryPath,
		cacheControl: "public, max-age=" + strconv.FormatInt(int64(opts.MaxAge/time.Second), 10),
		logger:       logger,
	}
	return h, err
}

// EntryPath returns the location of the entry document on disk.
func (h *Handler) EntryPath() string {
	return h.entryPath
}

// ServeHTTP answers GET and HEAD requests. Existing files are served as-is;
// otherwise Classify picks between a 404 and the entry document.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}

	if h.serveAsset(w, r) {
		return
	}

	if Classify(r.URL.Path) == Static {
		http.NotFound(w, r)
		return
	}

	h.serveEntry(w, r)
}

// serveAsset serves the file under the root matching the request path.
// It reports false when there is no such file so the caller can fall back.
func (h *Handler) serveAsset(w http.ResponseWriter, r *http.Request) (served bool) {
	urlPath := r.URL.Path
	if !strings.HasPrefix(urlPath, "/") {
		urlPath = "/" + urlPath
	}
	clean := path.Clean(urlPath)
	if hasDotSegment(clean) {
		return served
	}

	full := filepath.Join(h.root, filepath.FromSlash(clean))
	info, err := os.Stat(full)
	if err != nil {
		return served
	}

	trailingSlash := strings.HasSuffix(urlPath, "/")

	if !info.IsDir() {
		// A file is never addressed as a directory.
		if trailingSlash {
			return served
		}
	} else {
		if !trailingSlash {
			target := urlPath + "/"
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, target, http.StatusMovedPermanently)
			served = true
			return served
		}
		index := filepath.Join(full, DefaultEntryDocument)
		indexInfo, indexErr := os.Stat(index)
		if indexErr != nil || indexInfo.IsDir() {
			return served
		}
		full, info = index, indexInfo
	}

	served = h.serveFile(w, r, full, info, h.cacheControl)
	return served
}

// serveEntry answers an application route with the entry document.
func (h *Handler) serveEntry(w http.ResponseWriter, r *http.Request) {
	info, err := os.Stat(h.entryPath)
	if err != nil {
		h.logger.Error("entry document unavailable", zap.String("path", h.entryPath), zap.Error(err))
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if !h.serveFile(w, r, h.entryPath, info, "public, max-age=0") {
		http.NotFound(w, r)
	}
}

// serveFile writes a file with validation headers. Conditional and range requests
// are handled by http.ServeContent.
func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request, name string, info os.FileInfo, cacheControl string) (served bool) {
	f, err := os.Open(name)
	if err != nil {
		h.logger.Warn("failed to open file", zap.String("path", name), zap.Error(err))
		return served
	}
	defer f.Close()

	w.Header().Set("Cache-Control", cacheControl)
	w.Header().Set("ETag", weakETag(info))
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	served = true
	return served
}

// weakETag derives a validator from size and modification time.
func weakETag(info os.FileInfo) string {
	return fmt.Sprintf(`W/"%x-%x"`, info.Size(), info.ModTime().UnixMilli())
}

// hasDotSegment reports whether any path segment is a dotfile.
func hasDotSegment(cleanPath string) bool {
	for _, segment := range strings.Split(cleanPath, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}
