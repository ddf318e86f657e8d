package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/log"
)

// time given to open requests when the server is stopped
const shutdownTimeout = 5 * time.Second

// NewMux routes the conversion endpoints. Only GET is served.
func NewMux(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /px", h.HandlePx)
	mux.HandleFunc("GET /ll", h.HandleLL)
	mux.HandleFunc("GET /bbox", h.HandleBBox)
	mux.HandleFunc("GET /xyz", h.HandleXYZ)
	mux.HandleFunc("GET /convert", h.HandleConvert)
	mux.HandleFunc("GET /forward", h.HandleForward)
	mux.HandleFunc("GET /inverse", h.HandleInverse)
	return mux
}

// Serve runs the conversion endpoints on listenAddr until ctx is done,
// then shuts down, waiting for open requests up to shutdownTimeout.
// A listen error is returned right away.
func Serve(ctx context.Context, log log.Logger, listenAddr string, h *Handler) error {
	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           NewMux(h),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       time.Minute,
		MaxHeaderBytes:    1 << 14,
	}
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- srv.ListenAndServe()
	}()
	log.Info("serving", "listen", listenAddr)

	select {
	case err := <-listenErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server on %s failed: %w", listenAddr, err)
	case <-ctx.Done():
	}

	log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}
