package render

import (
	"fmt"
)

// localDialect emits inline-styled HTML inside Markdown.
type localDialect struct{}

func (localDialect) Title(name string) string {
	return fmt.Sprintf(`<span style="font-size: 2.4rem; font-weight: 500"> %s</span>`+"\n--\n", name)
}

func (localDialect) FolderSummary(name string) string {
	return fmt.Sprintf(`<summary style="font-size: 2.125rem; font-weight: 500">%s</summary>`, name)
}

func (localDialect) RequestOpen(method, name string) string {
	return "<details open>\n" +
		fmt.Sprintf(`<summary style="font-size: 1.675rem; font-weight: 500;"> %s %s</summary>`, methodSpan(method), name) +
		"\n\n"
}

func (localDialect) RequestClose() string {
	return "</details>\n\n"
}

func (localDialect) StatusBadge(code int, name string) string {
	return fmt.Sprintf(
		`<span style="font-size: 1.4rem"><span style="color: %s; background:rgb(50,50,50); border-radius: 5px; padding: 2px 3px">%d</span> %s:</span>`,
		StatusColor(code), code, name)
}

func (localDialect) Quote(text string) string {
	return text + "\n"
}

func (localDialect) Gap(px int) string {
	return Spacer(px) + "\n\n"
}

// methodSpan renders the colored method label; an unknown method has none.
func methodSpan(method string) string {
	color := MethodColor(method)
	if color == "" {
		return ""
	}
	return fmt.Sprintf(`<span style="color: %s; background:rgb(50,50,50); border-radius: 5px; padding: 2px 5px">%s</span>`, color, method)
}
