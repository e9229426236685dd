package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"image/gif"
	"io"
)

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body style="background-color:white; margin:0;">
<div style="display:flex; justify-content:center; align-items:center; width:100%;">
<img src="{{.Src}}" alt="{{.Title}}">
</div>
</body>
</html>
`))

// WriteHTML writes a standalone page showing anim centered, with the GIF
// embedded as a data URI.
func WriteHTML(w io.Writer, title string, anim *gif.GIF) error {
	buf := &bytes.Buffer{}
	err := gif.EncodeAll(buf, anim)
	if err != nil {
		return fmt.Errorf("encoding animation: %w", err)
	}

	src := "data:image/gif;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	return page.Execute(w, struct {
		Title string
		Src   template.URL
	}{
		Title: title,
		Src:   template.URL(src),
	})
}
