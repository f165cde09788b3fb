package serverapp

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"smarttodo/internal/analyzer"
	"smarttodo/internal/config"
	"smarttodo/internal/httpmw"
	"smarttodo/internal/todo"
)

type Options struct {
	Config  *config.Config
	DataDir string
	Logger  *log.Logger
}

// NewHandler wires the full HTTP surface: the todo store, the analyzer,
// health endpoints, and the middleware chain.
func NewHandler(opts Options) (http.Handler, error) {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if strings.TrimSpace(opts.DataDir) == "" {
		opts.DataDir = opts.Config.Storage.DataDir
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	mux := http.NewServeMux()

	todoRepo, err := todo.NewFileRepo(opts.DataDir, opts.Logger)
	if err != nil {
		return nil, err
	}
	todoHandler := todo.NewHandler(todoRepo)
	mux.HandleFunc("/api/todos", todoHandler.TodosRoot)
	mux.HandleFunc("/api/todos/", todoHandler.TodosSub)
	mux.HandleFunc("/api/stats", todoHandler.Stats)

	analyzeHandler := analyzer.NewHandler()
	mux.HandleFunc("/api/analyze", analyzeHandler.Analyze)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status":  "healthy",
			"message": "Smart Todo API",
			"storage": "persistent",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if _, err := todoRepo.List(todo.ListFilter{}); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"ok":    false,
				"error": "todo storage unavailable",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "smarttodo",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Request id first so the access log can include it.
	middlewares := []func(http.Handler) http.Handler{httpmw.WithRequestID}
	if opts.Config.Logging.AccessLog {
		middlewares = append(middlewares, httpmw.WithAccessLog(opts.Logger))
	}
	middlewares = append(middlewares, httpmw.WithRecover(opts.Logger))
	return httpmw.Chain(mux, middlewares...), nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
