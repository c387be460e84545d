package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"driftboard/app"
	"driftboard/config"
	"driftboard/hal"
	"driftboard/internal/buildinfo"
	"driftboard/logging"
	"driftboard/suggest"
)

func main() {
	var configPath string
	var headless hal.HeadlessConfig
	flag.StringVar(&configPath, "config", "", "Path to a TOML config file.")
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logging.New(os.Stdout, logging.ParseLevel(cfg.Log.Level))
	log.Info("starting", map[string]interface{}{
		"version": buildinfo.Short(),
		"surface": fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height),
	})

	var provider suggest.Provider = suggest.Unavailable{}
	if key := cfg.Suggest.APIKey(); key != "" {
		p, err := suggest.NewOpenAIProvider(suggest.OpenAIConfig{
			APIKey:    key,
			BaseURL:   cfg.Suggest.BaseURL,
			Model:     cfg.Suggest.Model,
			MaxTokens: cfg.Suggest.MaxTokens,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		provider = p
	} else {
		log.Warn("no API key set, priority suggestions fall back to the default", map[string]interface{}{
			"env": cfg.Suggest.APIKeyEnv,
		})
	}

	newApp := func(h hal.HAL) hal.App {
		return app.New(h, cfg, log, provider)
	}

	if headless.Enabled {
		headless.Width = cfg.Window.Width
		headless.Height = cfg.Window.Height
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, headless, newApp); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(hal.WindowConfig{
		Title:  fmt.Sprintf("%s (%s)", cfg.Window.Title, buildinfo.Short()),
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Scale:  cfg.Window.Scale,
	}, newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
