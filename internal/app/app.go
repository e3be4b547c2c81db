package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/five82/postboard/internal/config"
	"github.com/five82/postboard/internal/logging"
	"github.com/five82/postboard/internal/posts"
	"github.com/five82/postboard/internal/prefs"
	"github.com/five82/postboard/internal/ui"
)

// Options configure the postboard application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/postboard/prefs.toml
	BaseURL    string // overrides base_url from the config file when set
}

// Run boots the postboard TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg, err = cfg.WithBaseURL(opts.BaseURL)
	if err != nil {
		return fmt.Errorf("base url override: %w", err)
	}

	client, err := posts.NewClient(cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("init posts client: %w", err)
	}

	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "postboard: logging disabled: %v\n", err)
	}
	defer func() { _ = closer.Close() }()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("load prefs, using defaults", slog.String("error", err.Error()))
	}

	logger.Info("starting",
		slog.String("base_url", client.BaseURL()),
		slog.String("theme", userPrefs.Theme),
	)

	uiOpts := ui.Options{
		Context:   ctx,
		Source:    client,
		Logger:    logger,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	if err := ui.Run(uiOpts); err != nil {
		logger.Error("ui exited", slog.String("error", err.Error()))
		return err
	}
	logger.Info("stopped")
	return nil
}
