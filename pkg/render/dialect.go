package render

import (
	"fmt"
	"strings"
)

// Target selects the Markdown dialect the renderer emits.
type Target int

const (
	// Local is Markdown with inline-styled HTML, for local previewers.
	Local Target = iota
	// GitHub is GitHub-flavored Markdown with image badges and quote blocks.
	GitHub
)

// Targets lists every target in the order dual-target runs write them.
var Targets = []Target{Local, GitHub}

func (t Target) String() string {
	switch t {
	case Local:
		return "LOCAL"
	case GitHub:
		return "GITHUB"
	default:
		return fmt.Sprintf("Target(%d)", int(t))
	}
}

// ParseTarget parses "local" or "github", case-insensitively.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "local":
		return Local, nil
	case "github":
		return GitHub, nil
	default:
		return 0, fmt.Errorf("unknown target %q (want local or github)", s)
	}
}

// Dialect is the per-target formatting strategy used by the renderer.
// Every returned fragment is a complete piece of output; the renderer only
// concatenates them.
type Dialect interface {
	// Title renders the document heading.
	Title(name string) string
	// FolderSummary renders the summary line of a folder block.
	FolderSummary(name string) string
	// RequestOpen renders the title of a request.
	RequestOpen(method, name string) string
	// RequestClose ends a request opened by RequestOpen.
	RequestClose() string
	// StatusBadge renders a response status code with the response name.
	StatusBadge(code int, name string) string
	// Quote terminates text with a newline, quoting every line if the
	// dialect renders request bodies inside quote blocks.
	Quote(text string) string
	// Gap is a spacing directive emitted only by dialects that honor one.
	Gap(px int) string
}

// DialectFor returns the dialect of t.
func DialectFor(t Target) Dialect {
	if t == GitHub {
		return githubDialect{}
	}
	return localDialect{}
}

// Method badge colors, shared by both dialects.
var methodColors = map[string]string{
	"POST":   "orange",
	"GET":    "green",
	"PUT":    "blue",
	"DELETE": "red",
	"PATCH":  "magenta",
}

// MethodColor returns the badge color of method, or "" for an unknown method.
func MethodColor(method string) string {
	return methodColors[method]
}

// StatusColor returns green for 2xx codes and red for anything else.
func StatusColor(code int) string {
	if code >= 200 && code < 300 {
		return "green"
	}
	return "red"
}
