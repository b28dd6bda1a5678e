// Command calc-mcp serves the calculator tools over the Model Context
// Protocol, on stdio or over streamable HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/mark3labs/mcp-go/server"

	"github.com/zephyrtronium/calculator/internal/config"
	"github.com/zephyrtronium/calculator/internal/logging"
	"github.com/zephyrtronium/calculator/internal/mcptools"
)

const version = "0.1.0"

func main() {
	conf, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var (
		portFlag    = flag.Int("port", conf.MCP.Port, "TCP port to listen on (0 for stdio)")
		versionFlag = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Println("calc-mcp v" + version)
		os.Exit(0)
	}

	// Stdout belongs to the protocol when serving on stdio.
	logger, logfile := logging.New(conf.Logging, os.Stderr)
	defer logfile.Close()
	slog.SetDefault(logger)

	s := mcptools.NewServer("calc-mcp", version)

	if *portFlag == 0 {
		slog.Info("Serving MCP on stdio")
		if err := server.ServeStdio(s); err != nil {
			slog.Error("Server failed", slog.String("error", err.Error()))
			logfile.Close()
			os.Exit(1)
		}
		return
	}

	httpServer := server.NewStreamableHTTPServer(s)
	addr := fmt.Sprintf(":%d", *portFlag)
	go func() {
		slog.Info("Serving MCP over HTTP", slog.String("addr", addr))
		if err := httpServer.Start(addr); err != nil {
			slog.Error("HTTP server failed", slog.String("error", err.Error()))
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		conf.HTTP.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"mcp-server": httpServer.Shutdown,
		},
	)
	code := <-wait
	logfile.Close()
	os.Exit(code)
}
