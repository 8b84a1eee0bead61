package httpapi

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(handler *Handler, uploadDir string) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))
	return cors.Default().Handler(r)
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("Item Service starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
