package cli

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"

	"toolbox-api/config"
	"toolbox-api/server"
)

type serveCmd struct {
	configFile string
	addr       string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the HTTP JSON API" }
func (*serveCmd) Usage() string {
	return `toolbox serve [-config <file>] [-addr <host:port>]

  Serves every tool over HTTP until interrupted. Settings come from the YAML
  file, then TOOLBOX_* environment variables, then -addr.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.configFile, "config", "toolbox.yaml", "Path to the YAML configuration file (optional)")
	f.StringVar(&c.addr, "addr", "", "Listen address, overrides the configuration")
}

func (c *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config.Load(c.configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.addr != "" {
		cfg.Addr = c.addr
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error starting server: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := srv.Run(ctx); err != nil {
		log.Printf("Server stopped with error: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
