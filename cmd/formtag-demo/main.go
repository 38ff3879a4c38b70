package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/url"
	"os"
	"os/signal"

	formtag "github.com/goliatone/go-formtag"
	"github.com/goliatone/go-formtag/internal/demo"
	"github.com/goliatone/go-formtag/pkg/config"
	"github.com/goliatone/go-formtag/pkg/markup"
	"github.com/goliatone/go-formtag/pkg/prompt"
)

func main() {
	configPath := flag.String("config", "", "YAML or JSON config file")
	docType := flag.String("doctype", "", "document type name or number (overrides config)")
	encoding := flag.String("encoding", "", "character set for attribute escaping (overrides config)")
	action := flag.String("action", "index", "form action")
	interactive := flag.Bool("interactive", false, "prompt for field values before rendering")
	output := flag.String("output", "", "output file (stdout if empty)")
	verbose := flag.Bool("v", false, "log value resolution at debug level")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *docType != "" {
		cfg.DocType = config.Name(*docType)
	}
	if *encoding != "" {
		cfg.Encoding = *encoding
	}
	if cfg.Defaults == nil {
		cfg.Defaults = demo.Defaults()
	}

	h, err := cfg.NewHelper(markup.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to configure helper: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var submitted url.Values
	if *interactive {
		submitted, err = prompt.Collect(ctx, prompt.NewSurveyDriver(), h, demo.Fields())
		if errors.Is(err, prompt.ErrAborted) {
			logger.Info("aborted")
			stop()
			os.Exit(130)
		}
		if err != nil {
			log.Fatalf("Failed to collect values: %v", err)
		}
		h = h.WithSubmittedData(formtag.FormValues(submitted))
	}

	engine, err := formtag.NewTemplateEngine(h)
	if err != nil {
		log.Fatalf("Failed to create template engine: %v", err)
	}

	page, err := demo.Render(engine, h, *action, submitted)
	if err != nil {
		log.Fatalf("Failed to render form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(page), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		logger.Info("form written", "path", *output, "doctype", h.DocType().String())
		return
	}
	fmt.Print(page)
}

func loadConfig(path string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
