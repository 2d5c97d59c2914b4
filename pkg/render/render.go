// Package render turns a Postman collection into Markdown for one of the
// supported targets. Rendering is pure: the same collection, target and
// options always produce the same bytes.
package render

import (
	"strings"

	"github.com/blackcoderx/pm2md/pkg/postman"
)

// Options carries the values the renderer interpolates into the document.
type Options struct {
	// Port is inserted verbatim into every example request URL.
	Port string
}

// undefinedBody stands in for a response saved without a body.
const undefinedBody = "undefined"

// Renderer renders collections for a single target.
type Renderer struct {
	target  Target
	dialect Dialect
	opts    Options
}

// New creates a renderer for target.
func New(target Target, opts Options) *Renderer {
	return &Renderer{
		target:  target,
		dialect: DialectFor(target),
		opts:    opts,
	}
}

// Target returns the target the renderer emits.
func (r *Renderer) Target() Target {
	return r.target
}

// Render renders c in one call.
func Render(c *postman.Collection, target Target, opts Options) string {
	return New(target, opts).Render(c)
}

// Render returns the Markdown document for c.
func (r *Renderer) Render(c *postman.Collection) string {
	var b strings.Builder

	b.WriteString(r.dialect.Title(c.Info.Name))
	b.WriteString(string(c.Info.Description) + "\n\n")
	b.WriteString("---\n\n")

	for _, folder := range c.Item {
		r.writeFolder(&b, folder)
	}

	return b.String()
}

func (r *Renderer) writeFolder(b *strings.Builder, folder postman.Folder) {
	b.WriteString("<details open>\n")
	b.WriteString(r.dialect.FolderSummary(folder.Name) + "\n\n")
	b.WriteString(string(folder.Description) + "\n\n")

	for _, item := range folder.Item {
		r.writeRequest(b, item)
	}

	b.WriteString("</details>\n\n")
	b.WriteString("---\n\n")
}

func (r *Renderer) writeRequest(b *strings.Builder, item postman.Item) {
	d := r.dialect

	b.WriteString(d.RequestOpen(item.Method(), item.Name))
	b.WriteString(d.Quote(fence("http", r.requestURL(item))))

	if desc := item.Description(); desc != "" {
		b.WriteString(d.Quote("\n" + desc + "\n"))
		b.WriteString(d.Gap(-10))
	}

	if len(item.Response) > 0 {
		r.writeResponses(b, item.Response)
	}

	b.WriteString(d.Quote(Spacer(30) + "\n"))
	b.WriteString(d.RequestClose())
}

func (r *Renderer) writeResponses(b *strings.Builder, responses []postman.Response) {
	d := r.dialect

	b.WriteString(d.Quote("## Example Responses\n"))
	b.WriteString(d.Gap(-10))

	for _, resp := range responses {
		if resp.Code != 0 {
			b.WriteString(d.Quote(d.StatusBadge(resp.Code, resp.Name) + "\n"))
			b.WriteString(d.Gap(-12))
		}

		body := undefinedBody
		if resp.Body != nil {
			body = *resp.Body
		}
		b.WriteString(d.Quote(fence("json", body) + "\n"))
	}

	b.WriteString(d.Quote(Spacer(30) + "\n"))
}

// requestURL is the example URL shown for a request.
func (r *Renderer) requestURL(item postman.Item) string {
	return "http://localhost:" + r.opts.Port + "/" + item.Path()
}
