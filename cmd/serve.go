package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/factor-cli/internal/catalog"
	"github.com/sells-group/factor-cli/internal/classifier"
	"github.com/sells-group/factor-cli/internal/model"
	"github.com/sells-group/factor-cli/internal/pipeline"
	anthropicpkg "github.com/sells-group/factor-cli/pkg/anthropic"
)

var servePort int

type enrichRequest struct {
	Headers            []string             `json:"headers"`
	HeaderDescriptions map[string]string    `json:"headerDescriptions"`
	Rows               []model.Row          `json:"rows"`
	Examples           []model.ExampleMatch `json:"customExamples,omitempty"`
	BatchSize          int                  `json:"batchSize,omitempty"`
	Parallel           bool                 `json:"parallel,omitempty"`
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the enrichment HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		entries, err := catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return err
		}

		ai := anthropicpkg.NewClient(cfg.Anthropic.Key)
		p := pipeline.New(classifier.New(ai, cfg.Anthropic), cfg.Pipeline)

		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		r.Use(middleware.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))

		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Get("/catalog/search", func(w http.ResponseWriter, req *http.Request) {
			ranked := catalog.Search(entries, req.URL.Query().Get("q"))
			if limit, err := strconv.Atoi(req.URL.Query().Get("limit")); err == nil && limit > 0 && limit < len(ranked) {
				ranked = ranked[:limit]
			}
			writeJSON(w, http.StatusOK, map[string]any{"results": ranked})
		})

		r.Post("/enrich", func(w http.ResponseWriter, req *http.Request) {
			var body enrichRequest
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
				return
			}
			if len(body.Rows) == 0 || len(body.Headers) == 0 {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "headers and rows are required"})
				return
			}

			in := pipeline.Input{
				Headers:            body.Headers,
				HeaderDescriptions: body.HeaderDescriptions,
				Rows:               body.Rows,
				Examples:           body.Examples,
				BatchSize:          body.BatchSize,
			}

			var result *model.EnrichmentResult
			var err error
			if body.Parallel {
				result, err = p.RunParallel(req.Context(), in)
			} else {
				result, err = p.Run(req.Context(), in)
			}
			if err != nil {
				zap.L().Error("enrich request failed", zap.Error(err))
				writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
				return
			}

			writeJSON(w, http.StatusOK, result)
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
