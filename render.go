package mdswagger

import (
	"strings"
	"text/template"

	"golang.org/x/net/html"
)

// UsageMessage is shown in place of a token that carries no path or URL.
const UsageMessage = "Usage: '!!swagger <filename>!!' or '!!swagger-http <url>!!'. " +
	"File must either exist locally and be placed next to the .md that contains " +
	"the swagger statement, or be an http(s) URL."

// The mount-point id and the SwaggerUIBundle call are what the viewer
// bundle looks for; keep them verbatim.
var viewerTemplate = template.Must(template.New("viewer").Funcs(template.FuncMap{
	"attr": html.EscapeString,
	"js":   jsString,
}).Parse(`

<link type="text/css" rel="stylesheet" href="{{attr .CSS}}">
<div id="swagger-ui">
</div>
<script src="{{attr .JS}}" charset="UTF-8"></script>
<script>
    SwaggerUIBundle({
      url: '{{js .URL}}',
      dom_id: '#swagger-ui',
    })
</script>

`))

type viewerData struct {
	URL string
	JS  string
	CSS string
}

// RenderViewer returns the HTML fragment that mounts the viewer on url.
func RenderViewer(url string, assets ViewerAssets) string {
	var b strings.Builder
	// Execute only fails on writer errors or template bugs; strings.Builder
	// never fails and the template is fixed.
	_ = viewerTemplate.Execute(&b, viewerData{URL: url, JS: assets.JS, CSS: assets.CSS})
	return b.String()
}

// textEscaper escapes the characters that would open markup or an entity.
// Quotes stay literal: the marker is body text, never an attribute value.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// RenderError returns the escaped inline marker shown in place of a token
// that could not be processed.
func RenderError(message string) string {
	message = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(message)
	return textEscaper.Replace("!! SWAGGER ERROR: " + message + " !!")
}

// jsString escapes s for a single-quoted JavaScript string inside a
// <script> element. Ordinary URLs pass through unchanged.
func jsString(s string) string {
	return strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		"\n", `\n`,
		"\r", `\r`,
		"</", `<\/`,
	).Replace(s)
}
