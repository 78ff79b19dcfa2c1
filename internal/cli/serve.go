package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"folio.dev/internal/handlers"
)

const shutdownTimeout = 10 * time.Second

// ServeCommand handles the serve command
type ServeCommand struct {
	load ConfigLoader
}

// NewServeCommand creates a new serve command
func NewServeCommand(load ConfigLoader) *cobra.Command {
	cmd := &ServeCommand{load: load}

	cobraCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long:  `Serves the site pages, the JSON API under /api and static files under /static.`,
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().String("addr", "", "Listen address (overrides config)")

	return cobraCmd
}

// Run executes the serve command
func (c *ServeCommand) Run(cmd *cobra.Command, args []string) error {
	cfg, err := c.load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.ServerAddr = addr
	}

	router, err := handlers.SetupRoutes(cfg)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", cfg.ServerAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.ServerAddr, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Server starting on %s", ln.Addr())
	log.Printf("Serving %d projects for %s", cfg.Catalog.Len(), cfg.Profile.Name)

	return runServer(ctx, &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}, ln)
}

// runServer serves on ln until ctx is done, then shuts down gracefully
func runServer(ctx context.Context, srv *http.Server, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
