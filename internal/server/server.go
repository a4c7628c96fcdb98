// Package server provides the HTTP REST API for the resume screener.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jmatsuda/resume-screener/internal/config"
	"github.com/jmatsuda/resume-screener/internal/db"
	"github.com/jmatsuda/resume-screener/internal/ranking"
	"github.com/jmatsuda/resume-screener/internal/scoring"
	"github.com/jmatsuda/resume-screener/internal/skills"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	db         *db.DB
	ranker     *ranking.Ranker
	validate   *validator.Validate
	port       int
}

// New creates a server from the loaded configuration: it loads the skill
// vocabulary, connects to the database, and wires the routes.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	vocab, err := skills.LoadVocabulary(cfg.VocabularyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load skill vocabulary: %w", err)
	}
	log.Printf("Loaded %d skills from %s", vocab.Len(), cfg.VocabularyPath)

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}

	ranker := ranking.NewRanker(vocab)
	// The config value is already validated to [0,100]; set it directly
	// so an explicit threshold of 0 is honored.
	ranker.Matcher = skills.Matcher{Threshold: cfg.FuzzyThreshold}
	ranker.Scoring = scoring.Config{
		PenaltyPerYear: cfg.PenaltyPerYear,
		BonusPerYear:   cfg.BonusPerYear,
		BonusCap:       cfg.BonusCap,
	}

	s := &Server{
		db:       database,
		ranker:   ranker,
		validate: validator.New(),
		port:     cfg.Port,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /jobs", s.handleCreateJob)
	mux.HandleFunc("POST /jobs/from-url", s.handleCreateJobFromURL)
	mux.HandleFunc("GET /jobs", s.handleListJobs)
	mux.HandleFunc("GET /jobs/{id}", s.handleGetJob)
	mux.HandleFunc("DELETE /jobs/{id}", s.handleDeleteJob)

	mux.HandleFunc("POST /jobs/{id}/resumes", s.handleUploadResume)
	mux.HandleFunc("GET /jobs/{id}/resumes", s.handleListResumes)
	mux.HandleFunc("GET /resumes/{id}", s.handleGetResume)

	mux.HandleFunc("GET /jobs/{id}/candidates", s.handleRankedCandidates)

	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until SIGINT/SIGTERM,
// then shuts down gracefully.
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

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers for the browser frontend.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
