// Package postman holds the Postman collection model consumed by the
// renderer and the fetcher that retrieves it.
package postman

import (
	"encoding/json"
	"strings"
)

// Collection is the root of a Postman collection export.
type Collection struct {
	Info Info     `json:"info"`
	Item []Folder `json:"item"`
}

// Info contains collection metadata.
type Info struct {
	Name        string      `json:"name"`
	Description Description `json:"description,omitempty"`
	Schema      string      `json:"schema,omitempty"`
}

// Folder is a top-level grouping of requests.
type Folder struct {
	Name        string      `json:"name"`
	Description Description `json:"description,omitempty"`
	Item        []Item      `json:"item"`
}

// Item is an entry inside a folder. Items are always rendered as requests;
// an item that carries its own Item list is a nested folder, which is not
// rendered as one (see Collection.NestedFolders).
type Item struct {
	Name     string         `json:"name"`
	Request  *RequestObject `json:"request,omitempty"`
	Response []Response     `json:"response,omitempty"`
	Item     []Item         `json:"item,omitempty"`
}

// RequestObject describes the HTTP request of an item.
type RequestObject struct {
	Method      string      `json:"method"`
	URL         URL         `json:"url"`
	Description Description `json:"description,omitempty"`
}

// URL is a Postman URL. Only the path segments are rendered.
type URL struct {
	Raw  string   `json:"raw,omitempty"`
	Host []string `json:"host,omitempty"`
	Path []string `json:"path,omitempty"`
}

// Response is a saved example response.
type Response struct {
	Name string  `json:"name"`
	Code int     `json:"code,omitempty"`
	Body *string `json:"body,omitempty"`
}

// UnmarshalJSON keeps an explicit "body": null apart from an absent body:
// null decodes to the text "null", absent leaves Body nil. Non-string
// bodies keep their JSON text.
func (r *Response) UnmarshalJSON(data []byte) error {
	type plain Response
	var p struct {
		plain
		Body json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	*r = Response(p.plain)
	r.Body = nil
	if len(p.Body) == 0 {
		return nil
	}

	var s string
	if err := json.Unmarshal(p.Body, &s); err == nil {
		r.Body = &s
		return nil
	}
	text := string(p.Body)
	r.Body = &text
	return nil
}

// Description is Postman's description field, which is either a plain
// string or an object of the form {"content": "...", "type": "text/markdown"}.
type Description string

// UnmarshalJSON accepts both description forms.
func (d *Description) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*d = Description(s)
		return nil
	}

	var obj struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*d = Description(obj.Content)
	return nil
}

// UnmarshalJSON accepts both the object form and the plain string form of a URL.
func (u *URL) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*u = URL{Raw: raw, Path: pathFromRaw(raw)}
		return nil
	}

	type plain URL
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*u = URL(p)
	return nil
}

// pathFromRaw extracts path segments from a raw URL such as
// "{{base_url}}/users/:id?x=1".
func pathFromRaw(raw string) []string {
	s := raw
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	// drop the host (or {{variable}} standing in for it)
	i := strings.Index(s, "/")
	if i < 0 {
		return nil
	}

	var segments []string
	for _, seg := range strings.Split(s[i+1:], "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

// Method returns the request method, or "" if the item has no request.
func (it Item) Method() string {
	if it.Request == nil {
		return ""
	}
	return it.Request.Method
}

// Path returns the request path segments joined with "/".
func (it Item) Path() string {
	if it.Request == nil {
		return ""
	}
	return strings.Join(it.Request.URL.Path, "/")
}

// Description returns the request description, or "" if there is none.
func (it Item) Description() string {
	if it.Request == nil {
		return ""
	}
	return string(it.Request.Description)
}

// IsFolder reports whether the item groups further items.
func (it Item) IsFolder() bool {
	return it.Request == nil && len(it.Item) > 0
}

// NestedFolders returns the names of items, below the top folder level, that
// are folders themselves. Those are rendered as requests, not recursed into.
func (c *Collection) NestedFolders() []string {
	var names []string
	for _, folder := range c.Item {
		for _, it := range folder.Item {
			if it.IsFolder() {
				names = append(names, folder.Name+"/"+it.Name)
			}
		}
	}
	return names
}
