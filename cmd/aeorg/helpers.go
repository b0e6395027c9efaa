package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/config"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/storage"
)

// initLedger opens the run-history database with proper path expansion and
// runs migrations.
func initLedger(ctx context.Context) (*storage.SQLiteStorage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/aeorg/runs.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// rulesPath resolves the rule file location: explicit flag value first, then
// config, then the stock default.
func rulesPath(flagValue string) string {
	if flagValue != "" {
		return config.ExpandPath(flagValue)
	}
	if p := viper.GetString("rules.path"); p != "" {
		return config.ExpandPath(p)
	}
	return config.DefaultRulesPath()
}

// loadRules reads the rule file at path. A missing file or one written by a
// different schema generation falls back to the stock defaults; anything else
// wrong with the file is an error the user has to fix.
func loadRules(path string) (model.OrganizerConfig, error) {
	doc, err := config.Load(path)
	switch {
	case err == nil:
		return doc.Config, nil
	case errors.Is(err, os.ErrNotExist):
		slog.Debug("no rule file found, using defaults", "path", path)
		return config.Default(), nil
	case errors.Is(err, config.ErrSchemaVersion):
		slog.Warn("rule file has an unsupported schema version, using defaults", "path", path)
		return config.Default(), nil
	default:
		return model.OrganizerConfig{}, err
	}
}

// formatRelativeTime renders a timestamp as a human-friendly age.
func formatRelativeTime(t time.Time) string {
	duration := time.Since(t)

	if duration < time.Minute {
		return "just now"
	} else if duration < time.Hour {
		minutes := int(duration.Minutes())
		if minutes == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", minutes)
	} else if duration < 24*time.Hour {
		hours := int(duration.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	} else if duration < 7*24*time.Hour {
		days := int(duration.Hours() / 24)
		if days == 1 {
			return "yesterday"
		}
		return fmt.Sprintf("%d days ago", days)
	} else {
		return t.Format("2006-01-02 15:04")
	}
}
