// Command calcd serves the calculator as a JSON API over HTTP.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-gonic/gin"

	"github.com/zephyrtronium/calculator/internal/config"
	"github.com/zephyrtronium/calculator/internal/httpapi"
	"github.com/zephyrtronium/calculator/internal/logging"
)

func main() {
	conf, err := config.FromEnv()
	if err != nil {
		slog.Error("Error loading config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logfile := logging.Init(conf.Logging)

	if !conf.HTTP.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httpapi.NewRouter(httpapi.Options{
		APIKeys:      conf.HTTP.APIKeys,
		AllowOrigins: conf.HTTP.AllowOrigins,
		LenientJSON:  conf.HTTP.LenientJSON,
	})
	if len(conf.HTTP.APIKeys) == 0 {
		slog.Warn("No API keys configured; the API is open to any client")
	}

	server := &http.Server{
		Addr:              ":" + conf.HTTP.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		slog.Info("Starting calculator API on port " + conf.HTTP.Port)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Exited calculator API", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		conf.HTTP.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				slog.Info("Graceful shutdown initiated")
				return server.Shutdown(ctx)
			},
		},
	)

	code := <-wait
	slog.Info("Calculator API exited", slog.Int("code", code))
	logfile.Close()
	os.Exit(code)
}
