package middleware

import (
	"log/slog"
	"net/http"

	"github.com/passa-a-bola/passa-web/internal/middleware"
)

// Recovery creates panic recovery middleware for the web interface
// Returns an HTML error page on panic
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, _ *http.Request, _ any) {
		ErrorPage(w, http.StatusInternalServerError)
	})
}

// ErrorPage writes a minimal standalone HTML error page
func ErrorPage(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html lang="pt-BR">
<head><meta charset="utf-8"><title>Erro | Passa a Bola</title></head>
<body>
<h1>Algo deu errado</h1>
<p>Não foi possível carregar a página. Tente novamente em instantes.</p>
<p><a href="/">Voltar para o início</a></p>
</body>
</html>`))
}
