package server

import (
	"html/template"
	"io"
	"net/url"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"logpage/internal/logwindow"
)

var pageTemplate = template.Must(template.New("logPage").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 1.5em; }
pre { background: #f6f6f6; padding: 1em; white-space: pre-wrap; word-break: break-all; }
nav a, nav button { margin-right: 0.75em; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>{{.Identity}}</p>
<p>Bytes {{.Start}}-{{.End}} of {{.Total}} ({{.Size}})</p>
<nav>
{{if .PreviousURL}}<a href="{{.PreviousURL}}"><button>Previous</button></a>{{else}}<button disabled>Previous</button>{{end}}
{{if .NextURL}}<a href="{{.NextURL}}"><button>Next</button></a>{{else}}<button disabled>Next</button>{{end}}
</nav>
<pre>{{.Content}}</pre>
</body>
</html>
`))

type pageData struct {
	Title       string
	Identity    string
	Start       int64
	End         int64
	Total       int64
	Size        string
	Content     string
	PreviousURL string
	NextURL     string
}

func renderPage(w io.Writer, served servedWindow) error {
	data := pageData{
		Title:       pageTitle(served.req),
		Identity:    identity(served.req.Ref),
		Start:       served.window.Start,
		End:         served.window.End,
		Total:       served.window.Total,
		Size:        humanize.IBytes(uint64(served.window.Total)),
		Content:     string(served.window.Content),
		PreviousURL: pageURL(served, served.links.Previous),
		NextURL:     pageURL(served, served.links.Next),
	}
	return pageTemplate.Execute(w, data)
}

// pageTitle cases the heading. A Caser is stateful, so each call gets its own.
func pageTitle(req logwindow.Request) string {
	return cases.Title(language.Und).String(req.Ref.Kind().String() + " " + req.LogType + " log")
}

func identity(ref logwindow.Ref) string {
	switch r := ref.(type) {
	case logwindow.ExecutorRef:
		return "Application " + r.AppID + ", executor " + r.ExecutorID
	case logwindow.DriverRef:
		return "Driver " + r.DriverID
	default:
		return ""
	}
}

// pageURL links to an adjacent page with the same identifiers, or "" when
// the page does not exist.
func pageURL(served servedWindow, page *logwindow.Page) string {
	if page == nil {
		return ""
	}
	u := url.URL{Path: "/logPage", RawQuery: served.query.AtPage(*page).Values().Encode()}
	return u.String()
}
