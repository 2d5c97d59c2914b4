package render

import (
	"strconv"
	"strings"
)

// githubDialect emits GitHub-flavored Markdown. GitHub strips inline styles,
// so badges are shields.io images, labels are math expressions and request
// bodies sit in quote blocks.
type githubDialect struct{}

func (githubDialect) Title(name string) string {
	return "# " + name + "\n\n"
}

func (githubDialect) FolderSummary(name string) string {
	return "<summary>" + Label(name, SizeHuge) + "</summary>"
}

func (githubDialect) RequestOpen(method, name string) string {
	return methodBadge(method) + " " + Label(name, SizeLarge) + "\n\n"
}

func (githubDialect) RequestClose() string {
	return "\n"
}

func (githubDialect) StatusBadge(code int, name string) string {
	return Badge(strconv.Itoa(code), name, StatusColor(code), 0)
}

// Quote prefixes every line, blank ones included, with "> ".
func (githubDialect) Quote(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		b.WriteString("> ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (githubDialect) Gap(int) string {
	return ""
}

// methodBadge renders the method image badge; an unknown method has none.
func methodBadge(method string) string {
	color := MethodColor(method)
	if color == "" {
		return ""
	}
	return Badge(method, "", color, 0)
}
