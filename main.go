package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cli/go-gh/v2/pkg/api"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/bryanjebyrd/pr-digest/internal/config"
	"github.com/bryanjebyrd/pr-digest/internal/digest"
	"github.com/bryanjebyrd/pr-digest/internal/logging"
	"github.com/bryanjebyrd/pr-digest/internal/pullrequest"
	"github.com/bryanjebyrd/pr-digest/internal/ui"
	"github.com/bryanjebyrd/pr-digest/internal/utils"
)

func main() {
	configPath := flag.String("config", "", "path to the digest configuration file")
	interactive := flag.Bool("interactive", false, "browse the collected pull requests instead of printing the digest")
	flag.Usage = usage
	flag.Parse()

	// Pick up GITHUB_TOKEN and friends from a local .env when present.
	_ = godotenv.Load()

	logger, err := logging.New(os.Getenv("LOG_LEVEL"))
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With("run_id", uuid.NewString())

	path := *configPath
	if path == "" {
		path = os.Getenv("PR_DIGEST_CONFIG")
	}
	if path == "" {
		path = "config.yaml"
	}

	cfg, err := config.Load(utils.ExpandHome(path))
	if err != nil {
		logger.Fatalw("loading config", "error", err)
	}

	client, err := api.DefaultRESTClient()
	if err != nil {
		logger.Fatalw("building GitHub client", "error", errors.Wrap(err, "rest client"))
	}

	fetcher := pullrequest.NewFetcher(client, logger)
	pipeline := digest.NewPipeline(cfg, fetcher, logger)

	ctx := context.Background()
	if *interactive {
		team, other, err := pipeline.Sections(ctx)
		if err != nil {
			logger.Fatalw("collecting pull requests", "error", err)
		}
		if err := ui.Run(pipeline, logger, team, other); err != nil {
			logger.Fatalw("running browser", "error", errors.Wrap(err, "tui"))
		}
		return
	}

	text, err := pipeline.Run(ctx)
	if err != nil {
		logger.Fatalw("building digest", "error", err)
	}
	fmt.Print(text)
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: pr-digest [flags]

Collects open pull requests for the configured organization and prints a
two-section digest: team repositories first, everything else after.

Requires:
  - GITHUB_TOKEN (or GH_TOKEN) environment variable; a .env file works too

Flags:
  -config path    configuration file (default PR_DIGEST_CONFIG or "config.yaml")
  -interactive    browse the collected pull requests in a TUI
  -h, --help      show this help message and exit`)
}
