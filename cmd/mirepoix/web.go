package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mirepoix/internal/config"
	"mirepoix/internal/recipes"
	"mirepoix/internal/units"
)

func runServer(cfg *config.Config, addr string) error {
	mux := http.NewServeMux()

	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			slog.ErrorContext(r.Context(), "failed to write readiness response", "error", err)
		}
	})
	mux.HandleFunc("/convert", handleConvert(cfg))
	mux.HandleFunc("/recipe", handleRecipe(cfg))
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    addr,
		Handler: WithMiddleware(mux),
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("Serving mirepoix", "address", addr, "default_system", cfg.Display.DefaultSystem)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-shutdown:
		slog.Info("Shutdown signal received", "signal", sig)
		return gracefulShutdown(server)
	}
}

func gracefulShutdown(svr *http.Server) error {
	// kubernetes gives 30 seconds of grace; leave headroom
	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()

	if err := svr.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown error", "error", err)
		if closeErr := svr.Close(); closeErr != nil {
			slog.Error("Server close error", "error", closeErr)
		}
		return err
	}
	return nil
}

// targetSystem picks the display system for a request: explicit ?to= wins,
// otherwise the configured default.
func targetSystem(cfg *config.Config, r *http.Request) (units.System, error) {
	raw := r.URL.Query().Get("to")
	if raw == "" {
		return cfg.Display.DefaultSystem, nil
	}
	system, ok := units.ParseSystem(raw)
	if !ok {
		return "", fmt.Errorf("unknown system %q, want metric or imperial", raw)
	}
	return system, nil
}

// handleConvert converts a quantity/quantity_max/unit triple and returns
// the display record as JSON. An unrecognized unit is not an error; the
// response just carries the original values through.
func handleConvert(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		target, err := targetSystem(cfg, r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		quantity, err := optionalFloat(r, "quantity")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		quantityMax, err := optionalFloat(r, "quantity_max")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		unit := r.URL.Query().Get("unit")

		converted := units.ConvertIngredient(quantity, quantityMax, unit, target)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(converted); err != nil {
			slog.ErrorContext(ctx, "failed to encode conversion response", "error", err)
		}
	}
}

// handleRecipe fetches a recipe from the backend by URL and renders its
// ingredient list localized into the requested system.
func handleRecipe(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		url := r.URL.Query().Get("url")
		if url == "" {
			http.Error(w, "provide a recipe url with ?url=", http.StatusBadRequest)
			return
		}
		target, err := targetSystem(cfg, r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		recipe, err := recipes.FetchRecipe(ctx, url)
		if err != nil {
			slog.ErrorContext(ctx, "failed to fetch recipe", "url", url, "error", err)
			http.Error(w, "could not fetch recipe", http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := recipes.FormatRecipeHTML(recipe, target, url, w); err != nil {
			slog.ErrorContext(ctx, "recipe template execute error", "error", err)
			http.Error(w, "template error", http.StatusInternalServerError)
		}
	}
}

func optionalFloat(r *http.Request, param string) (*float64, error) {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number, got %q", param, raw)
	}
	return &v, nil
}
