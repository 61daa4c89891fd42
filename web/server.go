// Package web serves the valuation screen to browsers.
package web

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/etnz/vti"
	"github.com/etnz/vti/presenter"
	"github.com/etnz/vti/renderer"
)

// Server exposes a Presenter over HTTP.
//
//	GET  /          the HTML page, the first request triggers the first fetch
//	POST /shares    set the share count from the "shares" form field
//	POST /refresh   fetch a new quote
//	GET  /api/view  the current view as JSON
type Server struct {
	p      *presenter.Presenter
	router *http.ServeMux
}

// New creates a Server for p.
func New(p *presenter.Presenter) *Server {
	s := &Server{p: p, router: http.NewServeMux()}
	s.router.HandleFunc("GET /{$}", s.handlePage)
	s.router.HandleFunc("POST /shares", s.handleShares)
	s.router.HandleFunc("POST /refresh", s.handleRefresh)
	s.router.HandleFunc("GET /api/view", s.handleView)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.router.ServeHTTP(w, r)
	log.Printf("%s %s in %v", r.Method, r.URL.Path, time.Since(start))
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if s.p.State() == vti.Idle {
		s.refresh(r)
	}
	page, err := renderer.HTML(s.p.View())
	if err != nil {
		log.Printf("rendering page: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func (s *Server) handleShares(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.p.SetShares(r.PostFormValue("shares")) // rejected input keeps the previous value
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	s.refresh(r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.p.View()); err != nil {
		log.Printf("encoding view: %v", err)
	}
}

// refresh runs a fetch that outlives the request: a fetch is not cancelled
// once started.
func (s *Server) refresh(r *http.Request) {
	// the failure is already recorded in the presenter state.
	_ = s.p.Refresh(context.WithoutCancel(r.Context()))
}
