package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/carspecs/internal/config"
	"github.com/nao1215/carspecs/internal/database"
	"github.com/nao1215/carspecs/internal/fetch"
	"github.com/nao1215/carspecs/internal/log"
	"github.com/nao1215/carspecs/internal/lookup"
	"github.com/nao1215/carspecs/internal/model"
	"github.com/nao1215/carspecs/internal/report"
)

// runLookupCmd executes the root command.
func runLookupCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewSecureLogger(cmd.ErrOrStderr(), cfg.Verbose)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = runLookup(ctx, cfg, logger, cmd.OutOrStdout())
	return err
}

// buildConfig creates a Config from the config file and command flags.
// Flags win over the file; the file wins over defaults.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// A missing file is only an error when the path was given explicitly.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	cfg.Make, err = cmd.Flags().GetString("make")
	if err != nil {
		return nil, err
	}

	cfg.Model, err = cmd.Flags().GetString("model")
	if err != nil {
		return nil, err
	}

	cfg.Year, err = cmd.Flags().GetInt("year")
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("proxy") {
		cfg.Proxy, err = cmd.Flags().GetString("proxy")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("base-url") {
		cfg.BaseURL, err = cmd.Flags().GetString("base-url")
		if err != nil {
			return nil, err
		}
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("save") {
		cfg.SaveHistory, err = cmd.Flags().GetBool("save")
		if err != nil {
			return nil, err
		}
	}

	cfg.Verbose, err = cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}

	cfg.DBDir, err = cmd.Flags().GetString("db-dir")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// runLookup performs one lookup, writes it to out (or cfg.ReportFile), and
// records it when history is enabled.
//
// Lookup failures such as an unknown make are logged by the lookup service
// and are not returned; only setup, output, and history errors are.
func runLookup(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer) (*model.Result, error) {
	client, err := fetch.NewHTTPClient(fetch.ClientConfig{
		Timeout:   cfg.Timeout,
		Proxy:     cfg.Proxy,
		UserAgent: cfg.UserAgent,
		Headers:   cfg.Headers,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}
	logger.Debug("client configured",
		"timeout", cfg.Timeout,
		"proxy", cfg.Proxy,
		"user_agent", cfg.UserAgent,
		"headers", cfg.Headers)

	fetcher := fetch.New(client,
		fetch.WithMaxBodySize(cfg.MaxBodySize),
		fetch.WithLogger(logger))

	svc := lookup.New(fetcher,
		lookup.WithBaseURL(cfg.BaseURL),
		lookup.WithLogger(logger))

	result := svc.Lookup(ctx, cfg.Request())
	if errors.Is(ctx.Err(), context.Canceled) {
		return result, ctx.Err()
	}

	if err := outputResult(cfg, result, out); err != nil {
		return result, err
	}

	if cfg.SaveHistory {
		if err := saveHistory(ctx, cfg, result, logger); err != nil {
			return result, err
		}
	}

	return result, nil
}

// outputResult writes result in the configured format.
func outputResult(cfg *config.Config, result *model.Result, out io.Writer) error {
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewJSONWriter(out, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(out)
	default:
		writer = report.NewSimpleWriter(out)
	}

	if _, err := writer.Write(result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

// saveHistory records result in the history database under cfg.DBDir.
func saveHistory(ctx context.Context, cfg *config.Config, result *model.Result, logger *slog.Logger) error {
	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	id, err := db.SaveLookup(ctx, result)
	if err != nil {
		return err
	}

	logger.Debug("lookup recorded", "id", id, "path", db.Path())
	return nil
}
