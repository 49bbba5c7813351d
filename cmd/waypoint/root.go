package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/waypoint/internal/logging"
	"github.com/aretw0/waypoint/pkg/adapters/file"
	"github.com/aretw0/waypoint/pkg/adapters/memory"
	"github.com/aretw0/waypoint/pkg/adapters/redis"
	"github.com/aretw0/waypoint/pkg/config"
	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/persistence/middleware"
	"github.com/aretw0/waypoint/pkg/ports"
	"github.com/aretw0/waypoint/pkg/scope"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "waypoint",
		Short:         "Waypoint inspects and runs typed navigation graphs",
		Long:          `Waypoint loads a navigation graph (YAML or TOML) and lets you draw it, list its menu, serve it over HTTP and manage saved back stacks.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("graph", "", "Graph declaration file (.yaml, .yml or .toml); the built-in sample when empty")
	root.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")
	root.PersistentFlags().String("store", "file", "Snapshot store: memory, file or redis")
	root.PersistentFlags().String("store-dir", file.DefaultDir, "Directory of the file store")
	root.PersistentFlags().String("redis-addr", "localhost:6379", "Address of the redis store")
	root.PersistentFlags().String("store-key", os.Getenv("WAYPOINT_STORE_KEY"), "Hex AES-256 key sealing snapshots (env WAYPOINT_STORE_KEY)")
	root.PersistentFlags().StringSlice("redact", nil, "Patterns of argument names masked in snapshots")

	root.AddCommand(
		newGraphCmd(),
		newMenuCmd(),
		newDemoCmd(),
		newServeCmd(),
		newSnapshotCmd(),
		newVersionCmd(),
	)
	return root
}

func getLogger(cmd *cobra.Command) (*slog.Logger, error) {
	raw, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(raw)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(cmd.ErrOrStderr(), level), nil
}

// loadGraph returns the graph named by --graph, or the sample graph.
func loadGraph(cmd *cobra.Command, logger *slog.Logger) (*domain.NavGraph, error) {
	path, _ := cmd.Flags().GetString("graph")
	if path == "" {
		return newSample(cmd.OutOrStdout()).graph, nil
	}
	out := cmd.OutOrStdout()
	graph, err := config.Load(path,
		config.WithLogger(logger),
		config.WithContent(func(route string) scope.Content {
			return func(s *scope.DestinationScope[any]) error {
				fmt.Fprintf(out, "[%s] %v\n", route, s.NavArgs())
				return nil
			}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("error loading graph: %w", err)
	}
	return graph, nil
}

func getStore(cmd *cobra.Command) (ports.StateStore, func() error, error) {
	store, closeStore, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}

	var mws []middleware.Middleware
	if patterns, _ := cmd.Flags().GetStringSlice("redact"); len(patterns) > 0 {
		mw, err := middleware.NewPIIMiddleware(patterns)
		if err != nil {
			return nil, nil, err
		}
		mws = append(mws, mw)
	}
	if raw, _ := cmd.Flags().GetString("store-key"); raw != "" {
		key, err := hex.DecodeString(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid store key: %w", err)
		}
		mw, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})
		if err != nil {
			return nil, nil, err
		}
		mws = append(mws, mw)
	}
	return middleware.Chain(store, mws...), closeStore, nil
}

func openStore(cmd *cobra.Command) (ports.StateStore, func() error, error) {
	kind, _ := cmd.Flags().GetString("store")
	switch kind {
	case "memory":
		return memory.NewStore(), func() error { return nil }, nil
	case "file":
		dir, _ := cmd.Flags().GetString("store-dir")
		return file.New(dir), func() error { return nil }, nil
	case "redis":
		addr, _ := cmd.Flags().GetString("redis-addr")
		store := redis.New(addr, "", 0)
		return store, store.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store %q", kind)
}
