// Package server exposes the raytracer over HTTP for quick previews in a
// browser.
package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"

	"github.com/hukka/go-weekend-raytracer/pkg/renderer"
)

// Server handles web requests for the raytracer
type Server struct {
	port int
	rt   *renderer.Raytracer
}

// NewServer creates a new web server rendering the given raytracer
func NewServer(port int, rt *renderer.Raytracer) *Server {
	return &Server{port: port, rt: rt}
}

// Start starts the web server and blocks
func (s *Server) Start() error {
	mux := s.routes()

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender renders the scene and responds with a PNG. Every request
// is a fresh full evaluation of all pixels.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	img := s.rt.Render()

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		log.Printf("Error encoding PNG: %v", err)
	}
}
