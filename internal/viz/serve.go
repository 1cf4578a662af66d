package viz

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Serve publica la página del chart en addr para previsualizarla en el
// browser. Bloquea hasta que el proceso termine.
func Serve(addr string, page []byte) error {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("ok"))
	})

	log.Printf("[plot] preview en http://%s", addr)
	return http.ListenAndServe(addr, r)
}
