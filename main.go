// main.go
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/gin-gonic/gin"
	"go-league-table/config"
	"go-league-table/logger"
	"go-league-table/metrics"
	"go-league-table/services"
	"go-league-table/store"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error.Printf("main: %v", err)
		os.Exit(1)
	}

	closer, err := logger.InitLogger(logger.Options{Env: cfg.App.Environment, Dir: cfg.App.LogDir})
	if err != nil {
		logger.Error.Printf("main: failed to initialise logger: %v", err)
		os.Exit(1)
	}
	defer closer.Close()

	if err := run(cfg); err != nil {
		logger.Error.Printf("main: %v", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	st, err := store.Open(cfg.Storage.Driver, cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer st.Close()
	logger.Info.Printf("run: using %s store at %q", cfg.Storage.Driver, cfg.Storage.Path)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	league := services.NewLeagueService(st)
	if _, err := league.EnsureAdmin(ctx, cfg.Bootstrap.AdminUsername, cfg.Bootstrap.AdminPassword); err != nil {
		return err
	}

	var publisher metrics.Publisher = metrics.Nop{}
	if cfg.Features.EnableMetrics {
		cw, err := metrics.NewFromEnvironment()
		if err != nil {
			return err
		}
		publisher = cw
		logger.Info.Printf("run: publishing metrics to CloudWatch namespace %s", metrics.Namespace)
	}

	router := setupRouter(cfg, league, publisher, "templates/*.html", "./static")

	var handler http.Handler = router
	if cfg.Features.EnableTracing {
		handler = xray.Handler(xray.NewFixedSegmentNamer(cfg.App.Name), router)
		logger.Info.Println("run: X-Ray tracing enabled")
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info.Printf("run: listening on %s (%s)", server.Addr, cfg.App.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info.Println("run: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
