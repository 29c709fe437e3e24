package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/BerylCAtieno/careerpath-agent/internal/a2a"
	"github.com/BerylCAtieno/careerpath-agent/internal/render"
	"github.com/BerylCAtieno/careerpath-agent/internal/session"
	"github.com/BerylCAtieno/careerpath-agent/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the planner web server",
	Long:  `Start an HTTP server with the profile form, the report pages, the JSON API and the A2A endpoint.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides config and PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = servePort
	}
	if strings.EqualFold(cfg.Log.Level, "debug") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen, client, err := newGenerator(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer client.Close()

	card, err := a2a.LoadAgentCard(cfg.PublicURL())
	if err != nil {
		return err
	}

	store := session.NewStore(gen, log)
	go store.RunSweeper(ctx, cfg.Session.SweepInterval, cfg.Session.IdleTTL)

	pdfOpts := render.PDFOptions{Timeout: cfg.PDF.Timeout, ExecPath: cfg.PDF.ChromePath}
	router := web.NewRouter(web.Options{
		Store:     store,
		Generator: gen,
		A2A:       a2a.NewA2AHandler(gen, card, log),
		PDF: func(ctx context.Context, html string) ([]byte, error) {
			return render.PDF(ctx, html, pdfOpts)
		},
		Logger:       log,
		SecureCookie: strings.HasPrefix(cfg.PublicURL(), "https://"),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("careerpath planner starting", "addr", srv.Addr, "provider", cfg.LLM.Provider, "model", cfg.LLM.Model)
		log.Info("agent card available", "url", cfg.PublicURL()+"/.well-known/agent.json")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info("server stopped")
	return nil
}
