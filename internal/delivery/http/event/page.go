package http_event

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

var rsvpPage = template.Must(template.New("rsvp").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Movie Night RSVP</title></head>
<body>
{{if .OK}}
<h1>{{if .Accepted}}You're in!{{else}}Maybe next time{{end}}</h1>
<p>Your response for <b>{{.Email}}</b> has been recorded as <b>{{.Status}}</b>.</p>
{{else}}
<h1>We couldn't record your response</h1>
<p>{{.Message}}</p>
{{end}}
</body>
</html>
`))

type rsvpPageData struct {
	OK       bool
	Accepted bool
	Email    string
	Status   string
	Message  string
}

func renderRSVPPage(ctx *gin.Context, status int, data rsvpPageData) {
	var buf bytes.Buffer
	if err := rsvpPage.Execute(&buf, data); err != nil {
		ctx.String(http.StatusInternalServerError, "internal error")
		return
	}
	ctx.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
