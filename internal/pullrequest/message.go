package pullrequest

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/Masterminds/sprig/v3"

	"github.com/agentx-labs/scaffoldpr/internal/params"
)

//go:embed templates/body.md.tmpl
var bodyTemplate string

var bodyTmpl = template.Must(template.New("body.md").
	Funcs(sprig.TxtFuncMap()).
	Funcs(template.FuncMap{"upperFirst": UpperFirst}).
	Parse(bodyTemplate))

// bodyData is what the body template sees. Every conditional is resolved here
// so the template only decides layout.
type bodyData struct {
	ProjectName     string
	GeneratorName   string
	ProjectType     string
	Description     string
	Author          string
	ShowComponents  bool
	Components      []string
	WithExamples    bool
	ShowHealthcheck bool
	Healthcheck     []string
}

// Title returns the pull request title.
func Title(p *params.Parameters) string {
	return fmt.Sprintf("feat: scaffold %s service", p.ProjectName)
}

// Body returns the Markdown pull request body.
//
// Unlike the command compiler, malformed component JSON never fails here: the
// body is documentation, so an undecodable list renders as "none".
func Body(p *params.Parameters) string {
	data := bodyData{
		ProjectName:   p.ProjectName,
		GeneratorName: p.GeneratorName,
		ProjectType:   string(p.ProjectType),
	}
	if params.Present(p.Description) {
		data.Description = p.Description
	}
	if params.Present(p.Author) {
		data.Author = p.Author
	}

	if p.IsCustom() && p.HasComponents() {
		data.ShowComponents = true
		data.Components = decodeOrNone(p.DecodeComponents())
		data.WithExamples = p.WithExamples
		if p.HasHealthcheck() {
			data.ShowHealthcheck = true
			data.Healthcheck = decodeOrNone(p.DecodeHealthcheck())
		}
	}

	var buf bytes.Buffer
	if err := bodyTmpl.Execute(&buf, data); err != nil {
		// The template is embedded and bodyData is fixed; this only trips on a
		// broken build.
		panic(fmt.Sprintf("rendering pull request body: %v", err))
	}
	return buf.String()
}

// decodeOrNone drops the decode error; an empty result renders as "none".
func decodeOrNone(list []string, err error) []string {
	if err != nil {
		return nil
	}
	return list
}

// UpperFirst upper-cases the first character of s and leaves the rest as is.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
