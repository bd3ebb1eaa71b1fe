// Package cli implements the command-line interface for rubix.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubix/internal/config"
	"github.com/SeamusWaldron/rubix/internal/render"
	"github.com/SeamusWaldron/rubix/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool
	noColor    bool

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger = zerolog.Nop()
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "rubix",
	Short: "Rubik's cube simulator",
	Long: `rubix - A command-line Rubik's cube simulator.

Apply move sequences in standard notation, turn a cube interactively from
the keyboard, and keep sessions of moves in a local database.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.rubix/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.rubix/rubix.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Print color letters instead of colored stickers")
}

// loadSettings reads the config file and applies flag overrides.
func loadSettings(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	c, err := config.Load(path)
	if err != nil {
		return err
	}
	if dbPath != "" {
		c.DBPath = dbPath
	}
	if noColor {
		c.Color = false
	}
	cfg = c

	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if verbose {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	logger.Debug().Str("path", path).Str("db", c.DBPath).Msg("loaded config")
	return nil
}

func newRenderer() *render.Renderer {
	return render.New(cfg.Glyph, cfg.Color)
}

func openDB() (*storage.DB, error) {
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("no database path configured")
	}

	db, err := storage.Open(cfg.DBPath, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
