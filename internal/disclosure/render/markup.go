package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Form2Input is the data shown on a disclosure statement.
type Form2Input struct {
	Property    domain.Property
	Checklist   []domain.ChecklistItem
	GeneratedAt time.Time
}

// Raw HTML in the markdown source is dropped by goldmark's default renderer,
// so user supplied titles and addresses cannot inject markup.
var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

var shell = template.Must(template.New("form2").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Form 2 - {{.Title}}</title>
<style>
body{font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,Helvetica,Arial,sans-serif;padding:24px}
h1{font-size:20px;margin:0 0 8px}h2{font-size:16px;margin:16px 0 8px}
table{width:100%;border-collapse:collapse}
th,td{border:1px solid #ddd;padding:8px;font-size:12px;text-align:left}
footer{margin-top:16px;font-size:11px;color:#555}
</style>
</head>
<body>
{{.Body}}
<footer>Generated {{.Generated}}</footer>
<script>window.status = "ready";</script>
</body>
</html>
`))

// DisclosureMarkup renders the Form 2 seller disclosure as a self-contained
// HTML page. The page sets window.status to "ready" once loaded so a
// headless browser knows when to print.
func DisclosureMarkup(in Form2Input) ([]byte, error) {
	var src strings.Builder
	fmt.Fprintf(&src, "# Form 2 - Seller Disclosure Statement\n\n")
	fmt.Fprintf(&src, "**Property:** %s  \n", escape(in.Property.Title))
	fmt.Fprintf(&src, "**Address:** %s  \n", escape(in.Property.Address))
	fmt.Fprintf(&src, "**Type:** %s\n\n", escape(in.Property.Type))

	done, total := 0, len(in.Checklist)
	for _, item := range in.Checklist {
		if item.Complete {
			done++
		}
	}
	fmt.Fprintf(&src, "## Checklist (%d of %d complete)\n\n", done, total)
	src.WriteString("| Item | Required | Status |\n|---|---|---|\n")
	for _, item := range in.Checklist {
		fmt.Fprintf(&src, "| %s | %s | %s |\n", escape(item.Label), yesNo(item.Required), status(item.Complete))
	}

	var body bytes.Buffer
	if err := markdown.Convert([]byte(src.String()), &body); err != nil {
		return nil, fmt.Errorf("render: convert markdown: %w", err)
	}

	var out bytes.Buffer
	err := shell.Execute(&out, struct {
		Title     string
		Body      template.HTML
		Generated string
	}{
		Title:     in.Property.Title,
		Body:      template.HTML(body.String()), //nolint:gosec // goldmark output with raw HTML disabled
		Generated: in.GeneratedAt.UTC().Format(time.RFC1123),
	})
	if err != nil {
		return nil, fmt.Errorf("render: execute shell: %w", err)
	}
	return out.Bytes(), nil
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`, "|", `\|`, "*", `\*`, "_", `\_`, "`", "\\`",
	"[", `\[`, "]", `\]`, "#", `\#`, "<", `\<`, ">", `\>`,
	"\n", " ", "\r", " ",
)

func escape(s string) string { return mdEscaper.Replace(s) }

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func status(complete bool) string {
	if complete {
		return "Complete"
	}
	return "**Missing**"
}
