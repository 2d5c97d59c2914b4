package render

import (
	"fmt"
	"net/url"
	"strings"
)

// Spacer returns an empty block that shifts the following content by px
// pixels. A negative value pulls it up towards the previous element.
func Spacer(px int) string {
	return fmt.Sprintf(`<div style="margin-top: %dpx"></div>`, px)
}

// Label sizes understood by GitHub's math renderer.
const (
	SizeLarge = "Large"
	SizeHuge  = "Huge"
)

var texEscaper = strings.NewReplacer(
	`\`, `\backslash `,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`%`, `\%`,
	`&`, `\&`,
	`#`, `\#`,
	`_`, `\_`,
	`^`, `\^{}`,
	`~`, `\sim `,
	` `, `\ `,
)

// Label wraps text in an oversized monospace math expression,
// e.g. $\Huge{\texttt{Users}}$.
func Label(text, size string) string {
	return `$\` + size + `{\texttt{` + texEscaper.Replace(text) + `}}$`
}

const badgeBase = "https://img.shields.io/badge/"

var badgeEscaper = strings.NewReplacer(
	"-", "--",
	"_", "__",
	" ", "_",
)

// badgePart escapes one dash-separated part of a shields.io badge path.
func badgePart(s string) string {
	return url.PathEscape(badgeEscaper.Replace(s))
}

// BadgeURL returns the shields.io URL for a badge. message may be empty.
func BadgeURL(label, message, color string) string {
	parts := []string{badgePart(label)}
	if message != "" {
		parts = append(parts, badgePart(message))
	}
	parts = append(parts, color)
	return badgeBase + strings.Join(parts, "-")
}

// Badge returns an image reference for a badge. With a positive height an
// <img> tag is emitted, since Markdown images cannot carry a size.
func Badge(label, message, color string, height int) string {
	u := BadgeURL(label, message, color)
	if height > 0 {
		return fmt.Sprintf(`<img src="%s" alt="%s" height="%d"/>`, u, label, height)
	}
	return fmt.Sprintf("![%s](%s)", label, u)
}

// fence wraps body in a fenced code block of the given language. The
// result has no trailing newline.
func fence(lang, body string) string {
	return "```" + lang + "\n" + body + "\n```"
}
