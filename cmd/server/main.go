package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/network/netpoll"
	"github.com/spf13/cobra"

	_ "github.com/tiw/gaap-web-service/docs" // swagger docs
	"github.com/tiw/gaap-web-service/internal/config"
	"github.com/tiw/gaap-web-service/internal/handler"
	"github.com/tiw/gaap-web-service/internal/infrastructure/taxonomy"
	"github.com/tiw/gaap-web-service/internal/router"
	"github.com/tiw/gaap-web-service/internal/usecase"
	"github.com/tiw/gaap-web-service/pkg/logger"
)

//	@title			US GAAP Taxonomy Web Service
//	@version		0.1.0
//	@description	Resolves US-GAAP taxonomy element names to human-readable labels and authoritative accounting-standard references

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/

var (
	cfgFile string
	version = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "gaap-server",
	Short: "US GAAP taxonomy resolution API server",
	Long: `gaap-server is an HTTP API server built with the Hertz framework.
It resolves US-GAAP taxonomy element names to labels and accounting-standard
references, reading the taxonomy release files directly on each request.`,
	Version: version,
	Run:     runServer,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "configs/config.yaml", "path to config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runServer(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.Setup(cfg.Log); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	slog.Info("GAAP taxonomy server starting...",
		"version", version,
		"config", cfgFile,
		"taxonomy_dir", cfg.Taxonomy.Dir,
		"taxonomy_version", cfg.Taxonomy.Version,
	)

	// Route Hertz framework logs through slog
	hlog.SetLogger(logger.NewHertzSlogAdapter(slog.Default()))

	// Taxonomy repository over the release files
	store := taxonomy.NewStore(cfg.Taxonomy.Dir, cfg.Taxonomy.Version, slog.Default())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.HealthCheck(ctx); err != nil {
		slog.Warn("taxonomy files not readable, lookups will resolve to nothing", "error", err)
	}

	elementUsecase := usecase.NewElementUsecase(store)
	elementHandler := handler.NewElementHandler(elementUsecase)
	healthHandler := handler.NewHealthHandler(store)

	slog.Info("handlers initialized")

	h := server.Default(
		server.WithHostPorts(cfg.GetServerAddr()),
		server.WithReadTimeout(cfg.GetReadTimeout()),
		server.WithWriteTimeout(cfg.GetWriteTimeout()),
		server.WithMaxRequestBodySize(cfg.Server.MaxRequestBodySize*1024*1024),
		server.WithTransport(netpoll.NewTransporter),
	)

	router.Setup(h, elementHandler, healthHandler, cfg.GetWebDir())

	slog.Info("server started successfully",
		"address", cfg.GetServerAddr(),
		"mode", cfg.Server.Mode,
	)

	go func() {
		if err := h.Run(); err != nil {
			slog.Error("server run failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
