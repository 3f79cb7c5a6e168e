// Package cli implements the asciidag command-line interface.
//
// Commands are registered on a [CLI] value, which carries the shared
// logger and loaded config used across subcommands; each command builds
// its own cache and store from that config. The CLI is built with
// cobra and logs through charmbracelet/log, following the same shape as
// its render, serve, and cache subcommands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/asciidag/asciidag/pkg/buildinfo"
	"github.com/asciidag/asciidag/pkg/cache"
	"github.com/asciidag/asciidag/pkg/config"
	"github.com/asciidag/asciidag/pkg/store"
)

const appName = "asciidag"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config
}

// New creates a new CLI instance with a default logger and loaded config.
func New(w io.Writer, level log.Level) *CLI {
	cfg, _ := config.Load(mustConfigPath())
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Config: cfg,
	}
}

func mustConfigPath() string {
	path, err := config.Path()
	if err != nil {
		return ""
	}
	return path
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "asciidag renders DAGs as ASCII art",
		Long:         `asciidag reads a graph from DOT, JSON, or an ML computation graph definition and renders it as an ASCII art diagram, the way "git log --graph" draws commit history.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newCache builds the cache backend selected by c.Config, or a null cache
// if noCache is set.
func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch c.Config.Cache.Backend {
	case "none":
		return cache.NewNullCache(), nil
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: c.Config.Cache.Addr})
		return cache.NewRedisCache(client), nil
	default:
		dir := c.Config.Cache.Dir
		if dir == "" {
			var err error
			dir, err = cacheDir()
			if err != nil {
				return cache.NewNullCache(), nil
			}
		}
		return cache.NewFileCache(dir)
	}
}

// newStore builds the render store backend selected by c.Config. A mongo
// store connects a fresh client per call; Store.Close disconnects it.
func (c *CLI) newStore() (store.Store, error) {
	switch c.Config.Store.Backend {
	case "mongo":
		ctx := context.Background()
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(c.Config.Store.URI))
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		dbName := c.Config.Store.DBName
		if dbName == "" {
			dbName = "asciidag"
		}
		return store.NewMongoStore(client.Database(dbName).Collection("renders")), nil
	default:
		return store.NewFileStore(c.Config.Store.Dir)
	}
}

// cacheDir returns the cache directory using XDG standard (~/.cache/asciidag/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
