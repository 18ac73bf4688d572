// Package server provides the HTTP REST API for the video summarizer.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/video-summarizer/internal/llm"
	"github.com/jonathan/video-summarizer/internal/metadata"
	"github.com/jonathan/video-summarizer/internal/pipeline"
	"github.com/jonathan/video-summarizer/internal/summarize"
	"github.com/jonathan/video-summarizer/internal/transcript"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	deps       pipeline.Deps
	llmClient  llm.Client
}

// Config holds server configuration
type Config struct {
	Port   int
	APIKey string
}

// New creates a new server instance wired to the production capabilities.
func New(cfg Config) (*Server, error) {
	client, err := llm.NewClient(context.Background(), llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	deps := pipeline.Deps{
		Fetcher:   transcript.NewInnertubeFetcher(),
		Generator: summarize.NewLLMGenerator(client),
		Titles:    metadata.NewLookup(),
	}

	s := newWithDeps(deps)
	s.llmClient = client
	s.httpServer.Addr = fmt.Sprintf(":%d", cfg.Port)
	return s, nil
}

// newWithDeps builds a server around injected capabilities (used in tests).
func newWithDeps(deps pipeline.Deps) *Server {
	s := &Server{deps: deps}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /summarize", s.handleSummarize)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Handler:      s.withCORS(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute, // transcript fetch plus model call
	}
	return s
}

// Start runs the server until an interrupt or termination signal arrives.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
