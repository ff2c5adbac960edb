package handler

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"

	"github.com/passa-a-bola/passa-web/internal/web/middleware"
	"github.com/passa-a-bola/passa-web/internal/web/templates/layout"
)

// render buffers the page so a failed render still yields a clean error page
func render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		middleware.ErrorPage(w, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func pageData(r *http.Request, title string) layout.PageData {
	return layout.PageData{
		Title: title,
		User:  middleware.GetUser(r.Context()),
		Flash: middleware.GetFlash(r.Context()),
	}
}
