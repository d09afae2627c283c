package web

import (
	"html/template"
	"io"

	"github.com/pixil98/go-adventure/internal/style"
)

type pageData struct {
	Title      string
	Transcript []style.Event
}

// pageTemplate renders the transcript with one div per event, classed by
// style tag so the CSS mirrors the terminal themes.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Alpha Cloudplex - {{ .Title }}</title>
<style>
body { background-color: #0e1117; color: #ffffff; font-family: monospace; margin: 0; padding: 20px; }
.transcript { height: 70vh; overflow-y: auto; background-color: #1e1e1e; padding: 15px; border-radius: 5px; margin-bottom: 15px; }
.transcript div { white-space: pre-wrap; }
.room_name { color: #61dafb; font-size: 20px; font-weight: bold; }
.room_desc { color: #ffffff; }
.item_name { color: #f9c74f; font-weight: bold; }
.item_desc { color: #ffffff; }
.command { color: #4ade80; }
.error { color: #ef4444; }
.success { color: #22c55e; }
.hint { color: #d8b4fe; font-style: italic; }
.speech { color: #38bdf8; font-style: italic; }
.system { color: #ffffff; background-color: #1d4ed8; }
.header { color: #0e1117; background-color: #ffffff; font-weight: bold; }
input[type=text] { background-color: #2d3748; color: white; padding: 10px; border-radius: 5px; border: none; width: 70%; }
button { padding: 10px 20px; border-radius: 5px; border: none; background-color: #4ade80; color: #0e1117; }
a { color: #d8b4fe; }
</style>
</head>
<body>
<h2>{{ .Title }}</h2>
<div class="transcript">
{{- range .Transcript }}
<div class="{{ .Tag }}">{{ .Text }}</div>
{{- end }}
</div>
<form method="post" action="/command">
<input type="text" name="command" autofocus autocomplete="off" placeholder="What do you do?">
<button type="submit">Go</button>
</form>
<p><a href="/new">Start a new adventure</a></p>
</body>
</html>
`))

func renderPage(w io.Writer, title string, transcript []style.Event) error {
	return pageTemplate.Execute(w, pageData{Title: title, Transcript: transcript})
}
