package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackcoderx/pm2md/pkg/postman"
)

func strPtr(s string) *string { return &s }

// authCollection is one folder "Auth" holding a GET "Login" with a 200 example.
func authCollection() *postman.Collection {
	return &postman.Collection{
		Info: postman.Info{Name: "Shop API", Description: "Public endpoints."},
		Item: []postman.Folder{
			{
				Name:        "Auth",
				Description: "Session handling.",
				Item: []postman.Item{
					{
						Name: "Login",
						Request: &postman.RequestObject{
							Method: "GET",
							URL:    postman.URL{Path: []string{"login"}},
						},
						Response: []postman.Response{
							{Name: "OK", Code: 200, Body: strPtr(`{"ok":true}`)},
						},
					},
				},
			},
		},
	}
}

func TestRender_LocalScenario(t *testing.T) {
	out := Render(authCollection(), Local, Options{Port: "3000"})

	assert.True(t, strings.HasPrefix(out, `<span style="font-size: 2.4rem; font-weight: 500"> Shop API</span>`+"\n--\n"))
	assert.Contains(t, out, "<details open>\n")
	assert.Contains(t, out, `<summary style="font-size: 2.125rem; font-weight: 500">Auth</summary>`)
	assert.Contains(t, out, `<span style="color: green; background:rgb(50,50,50); border-radius: 5px; padding: 2px 5px">GET</span> Login</summary>`)
	assert.Contains(t, out, "```http\nhttp://localhost:3000/login\n```\n")
	assert.Contains(t, out, "```json\n{\"ok\":true}\n```\n\n")
	assert.Contains(t, out, "## Example Responses\n\n")
}

func TestRender_LocalExactRequest(t *testing.T) {
	c := &postman.Collection{
		Info: postman.Info{Name: "API"},
		Item: []postman.Folder{{
			Name: "F",
			Item: []postman.Item{{
				Name: "Ping",
				Request: &postman.RequestObject{
					Method:      "GET",
					URL:         postman.URL{Path: []string{"ping"}},
					Description: "Health check.",
				},
			}},
		}},
	}

	want := `<span style="font-size: 2.4rem; font-weight: 500"> API</span>` + "\n--\n" +
		"\n\n" +
		"---\n\n" +
		"<details open>\n" +
		`<summary style="font-size: 2.125rem; font-weight: 500">F</summary>` + "\n\n" +
		"\n\n" +
		"<details open>\n" +
		`<summary style="font-size: 1.675rem; font-weight: 500;"> <span style="color: green; background:rgb(50,50,50); border-radius: 5px; padding: 2px 5px">GET</span> Ping</summary>` + "\n\n" +
		"```http\nhttp://localhost:8080/ping\n```\n" +
		"\nHealth check.\n\n" +
		`<div style="margin-top: -10px"></div>` + "\n\n" +
		`<div style="margin-top: 30px"></div>` + "\n\n" +
		"</details>\n\n" +
		"</details>\n\n" +
		"---\n\n"

	assert.Equal(t, want, Render(c, Local, Options{Port: "8080"}))
}

func TestRender_GitHubScenario(t *testing.T) {
	out := Render(authCollection(), GitHub, Options{Port: "3000"})

	assert.True(t, strings.HasPrefix(out, "# Shop API\n\n"))
	assert.Contains(t, out, "![GET](https://img.shields.io/badge/GET-green)")
	assert.Contains(t, out, `<summary>$\Huge{\texttt{Auth}}$</summary>`)
	assert.Contains(t, out, `$\Large{\texttt{Login}}$`)
	assert.Contains(t, out, "![200](https://img.shields.io/badge/200-OK-green)")

	// Everything between the request title and the end of the request is quoted.
	title := "![GET](https://img.shields.io/badge/GET-green) " + Label("Login", SizeLarge) + "\n\n"
	start := strings.Index(out, title)
	require.GreaterOrEqual(t, start, 0)
	region := out[start+len(title):]
	end := strings.Index(region, "\n\n")
	require.Greater(t, end, 0)

	lines := strings.Split(region[:end], "\n")
	assert.Contains(t, lines, "> http://localhost:3000/login")
	assert.Contains(t, lines, `> {"ok":true}`)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "> "), "line not quoted with \"> \": %q", line)
	}
}

func TestRender_GitHubDescriptionQuoted(t *testing.T) {
	c := authCollection()
	c.Item[0].Item[0].Request.Description = "First line\nSecond line"

	out := Render(c, GitHub, Options{Port: "1"})

	assert.Contains(t, out, "> \n> First line\n> Second line\n> \n")
	assert.NotContains(t, out, "margin-top: -10px")
}

func TestRender_NoResponsesOmitsSection(t *testing.T) {
	for _, target := range Targets {
		t.Run(target.String(), func(t *testing.T) {
			c := authCollection()
			c.Item[0].Item[0].Response = nil

			out := Render(c, target, Options{Port: "3000"})
			assert.NotContains(t, out, "Example Responses")
			assert.NotContains(t, out, "```json")
		})
	}
}

func TestRender_MissingBodyIsUndefined(t *testing.T) {
	c := authCollection()
	c.Item[0].Item[0].Response = []postman.Response{{Name: "Empty"}}

	local := Render(c, Local, Options{})
	assert.Contains(t, local, "```json\nundefined\n```")
	assert.NotContains(t, local, "font-size: 1.4rem", "no code means no status badge")

	github := Render(c, GitHub, Options{})
	assert.Contains(t, github, "> ```json\n> undefined\n> ```\n")
}

func TestRender_NullBodyIsNull(t *testing.T) {
	c, err := postman.Decode([]byte(`{
  "info": {"name": "API"},
  "item": [{"name": "F", "item": [{
    "name": "Ping",
    "request": {"method": "GET", "url": "{{base}}/ping"},
    "response": [{"name": "Null", "body": null}, {"name": "Absent"}]
  }]}]
}`))
	require.NoError(t, err)

	out := Render(c, Local, Options{Port: "3000"})
	assert.Contains(t, out, "```json\nnull\n```")
	assert.Contains(t, out, "```json\nundefined\n```")
}

func TestRender_StatusColors(t *testing.T) {
	tests := []struct {
		code  int
		color string
	}{
		{200, "green"},
		{201, "green"},
		{299, "green"},
		{199, "red"},
		{300, "red"},
		{404, "red"},
		{500, "red"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.color, StatusColor(tt.code), "code %d", tt.code)
	}

	c := authCollection()
	c.Item[0].Item[0].Response = []postman.Response{
		{Name: "Created", Code: 201, Body: strPtr("{}")},
		{Name: "Not Found", Code: 404, Body: strPtr("{}")},
	}

	local := Render(c, Local, Options{})
	assert.Contains(t, local, `<span style="color: green; background:rgb(50,50,50); border-radius: 5px; padding: 2px 3px">201</span> Created:</span>`)
	assert.Contains(t, local, `<span style="color: red; background:rgb(50,50,50); border-radius: 5px; padding: 2px 3px">404</span> Not Found:</span>`)

	github := Render(c, GitHub, Options{})
	assert.Contains(t, github, "> ![201](https://img.shields.io/badge/201-Created-green)\n> \n")
	assert.Contains(t, github, "> ![404](https://img.shields.io/badge/404-Not_Found-red)\n> \n")
}

func TestRender_MethodColors(t *testing.T) {
	want := map[string]string{
		"POST":   "orange",
		"GET":    "green",
		"PUT":    "blue",
		"DELETE": "red",
		"PATCH":  "magenta",
	}

	for method, color := range want {
		t.Run(method, func(t *testing.T) {
			assert.Equal(t, color, MethodColor(method))

			c := authCollection()
			c.Item[0].Item[0].Request.Method = method

			local := Render(c, Local, Options{})
			assert.Contains(t, local, `<span style="color: `+color+`; background:rgb(50,50,50); border-radius: 5px; padding: 2px 5px">`+method+`</span>`)

			github := Render(c, GitHub, Options{})
			assert.Contains(t, github, "!["+method+"](https://img.shields.io/badge/"+method+"-"+color+")")
		})
	}
}

func TestRender_UnknownMethodHasNoBadge(t *testing.T) {
	c := authCollection()
	c.Item[0].Item[0].Request.Method = "OPTIONS"

	local := Render(c, Local, Options{})
	assert.Contains(t, local, `<summary style="font-size: 1.675rem; font-weight: 500;">  Login</summary>`)

	github := Render(c, GitHub, Options{})
	assert.Contains(t, github, "\n "+Label("Login", SizeLarge)+"\n\n")
	assert.NotContains(t, github, "OPTIONS")
}

func TestRender_PreservesOrder(t *testing.T) {
	c := &postman.Collection{Info: postman.Info{Name: "Ordered"}}
	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		c.Item = append(c.Item, postman.Folder{
			Name: name,
			Item: []postman.Item{
				{Name: name + "-b", Request: &postman.RequestObject{Method: "GET"}},
				{Name: name + "-a", Request: &postman.RequestObject{Method: "POST"}},
			},
		})
	}

	for _, target := range Targets {
		out := Render(c, target, Options{})
		last := -1
		for _, name := range []string{"Zeta-b", "Zeta-a", "Alpha-b", "Alpha-a", "Mid-b", "Mid-a"} {
			idx := strings.Index(out, name)
			require.Greater(t, idx, last, "%s: %s out of order", target, name)
			last = idx
		}
	}
}

func TestRender_Deterministic(t *testing.T) {
	for _, target := range Targets {
		c := authCollection()
		r := New(target, Options{Port: "9000"})
		assert.Equal(t, r.Render(c), r.Render(c))
		assert.Equal(t, target, r.Target())
	}
}

func TestRender_EmptyStructures(t *testing.T) {
	empty := &postman.Collection{Info: postman.Info{Name: "Empty"}}
	assert.Equal(t, "# Empty\n\n\n\n---\n\n", Render(empty, GitHub, Options{}))

	noRequests := &postman.Collection{
		Info: postman.Info{Name: "E"},
		Item: []postman.Folder{{Name: "Nothing"}},
	}
	for _, target := range Targets {
		out := Render(noRequests, target, Options{})
		assert.Contains(t, out, "<details open>\n")
		assert.Contains(t, out, "\n\n\n\n</details>\n\n---\n\n")
	}
}

func TestRender_NestedFolderRenderedAsRequest(t *testing.T) {
	c := authCollection()
	c.Item[0].Item = append(c.Item[0].Item, postman.Item{
		Name: "Admin",
		Item: []postman.Item{{Name: "Hidden", Request: &postman.RequestObject{Method: "GET"}}},
	})

	out := Render(c, Local, Options{Port: "1"})
	assert.Contains(t, out, ">  Admin</summary>")
	assert.Contains(t, out, "```http\nhttp://localhost:1/\n```")
	assert.NotContains(t, out, "Hidden")
}
