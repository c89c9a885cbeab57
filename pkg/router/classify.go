package router

import (
	"strings"
)

// Class is the routing decision for a request path.
type Class int

const (
	// Application paths are answered with the entry document so the client router can take over.
	Application Class = iota
	// Static paths are answered by the asset handler, which returns 404 for missing files.
	Static
)

func (c Class) String() string {
	if c == Static {
		return "static"
	}
	return "application"
}

// StaticExtensions are the file extensions that never fall back to the entry document.
//
//nolint:gochecknoglobals // Routing configuration constants
var StaticExtensions = map[string]struct{}{
	"html":  {},
	"css":   {},
	"js":    {},
	"png":   {},
	"jpg":   {},
	"jpeg":  {},
	"gif":   {},
	"svg":   {},
	"ico":   {},
	"woff":  {},
	"woff2": {},
	"ttf":   {},
	"eot":   {},
	"webp":  {},
	"pdf":   {},
}

// Extension returns the lowercased text after the last "." of the final path segment.
// Segments without a "." have no extension.
func Extension(urlPath string) (ext string) {
	segment := urlPath[strings.LastIndex(urlPath, "/")+1:]
	dot := strings.LastIndex(segment, ".")
	if dot < 0 {
		return ext
	}
	ext = strings.ToLower(segment[dot+1:])
	return ext
}

// Classify decides how a request path is answered. It depends on nothing but the path.
func Classify(urlPath string) (class Class) {
	class = Application
	if _, ok := StaticExtensions[Extension(urlPath)]; ok {
		class = Static
	}
	return class
}
