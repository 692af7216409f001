package notification

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

type invitationData struct {
	Title    string
	Date     string
	Location string
	Host     string
	YesLink  string
	NoLink   string
}

type confirmationData struct {
	Title    string
	Date     string
	Location string
	Accepted bool
}

type finalizedData struct {
	Title      string
	Date       string
	Location   string
	MovieTitle string
}

type templatePair struct {
	text *texttemplate.Template
	html *htmltemplate.Template
}

var invitationTemplates = templatePair{
	text: texttemplate.Must(texttemplate.New("invitation").Parse(
		`You have been invited to {{.Title}} by {{.Host}}.
When: {{.Date}}
Where: {{.Location}}

Going? {{.YesLink}}
Can't make it? {{.NoLink}}
`)),
	html: htmltemplate.Must(htmltemplate.New("invitation").Parse(
		`<h2>You have been invited to {{.Title}}</h2>
<p>{{.Host}} is hosting a movie night.</p>
<p><b>When:</b> {{.Date}}<br><b>Where:</b> {{.Location}}</p>
<p><a href="{{.YesLink}}">I'm in</a> &middot; <a href="{{.NoLink}}">Can't make it</a></p>
`)),
}

var confirmationTemplates = templatePair{
	text: texttemplate.Must(texttemplate.New("confirmation").Parse(
		`{{if .Accepted}}See you at {{.Title}}!{{else}}You declined {{.Title}}.{{end}}
When: {{.Date}}
Where: {{.Location}}
`)),
	html: htmltemplate.Must(htmltemplate.New("confirmation").Parse(
		`<h2>{{if .Accepted}}See you at {{.Title}}!{{else}}You declined {{.Title}}.{{end}}</h2>
<p><b>When:</b> {{.Date}}<br><b>Where:</b> {{.Location}}</p>
`)),
}

var finalizedTemplates = templatePair{
	text: texttemplate.Must(texttemplate.New("finalized").Parse(
		`The movie has been selected for {{.Title}}: {{.MovieTitle}}.
When: {{.Date}}
Where: {{.Location}}
`)),
	html: htmltemplate.Must(htmltemplate.New("finalized").Parse(
		`<h2>Movie selected for {{.Title}}</h2>
<p>We're watching <b>{{.MovieTitle}}</b>.</p>
<p><b>When:</b> {{.Date}}<br><b>Where:</b> {{.Location}}</p>
`)),
}

func render(t templatePair, data any) (Message, error) {
	var text, html bytes.Buffer
	if err := t.text.Execute(&text, data); err != nil {
		return Message{}, fmt.Errorf("failed to render text body: %w", err)
	}
	if err := t.html.Execute(&html, data); err != nil {
		return Message{}, fmt.Errorf("failed to render html body: %w", err)
	}
	return Message{Text: text.String(), HTML: html.String()}, nil
}
