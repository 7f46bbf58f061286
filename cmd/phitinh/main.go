package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"svw.info/phitinh/internal/config"
	"svw.info/phitinh/internal/infrastructure/cache"
	"svw.info/phitinh/internal/infrastructure/storage"
	"svw.info/phitinh/internal/logger"
	"svw.info/phitinh/internal/ports"
	"svw.info/phitinh/internal/usecase"
	"svw.info/phitinh/internal/validator"
)

var (
	// Global flags
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "phitinh",
	Short: "Xuan Kong flying star charts",
	Long: `phitinh draws Huyền Không Phi Tinh charts: the period, facing and sitting
star grids for a building, with per-palace analysis, Thành Môn gates and the
alternate chart for void-line facings.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load(".env")
		_ = godotenv.Load(filepath.Join("data", ".env"))
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.Log.Level = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.Log.Format = logFormat
		}
		log = logger.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
		slog.SetDefault(log)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "phitinh.yaml", "config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "auto", "text|json|auto")

	rootCmd.AddCommand(serveCmd, chartCmd, annualCmd, sweepCmd, mountainsCmd)
}

// openStorage picks the chart store named in the config. The returned closer
// is never nil.
func openStorage(ctx context.Context, c *config.Config) (ports.Storage, io.Closer, error) {
	switch c.Store.Kind {
	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(c.Store.SQLitePath), 0o755); err != nil {
			return nil, nil, err
		}
		st, err := storage.OpenSQLite(ctx, c.Store.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return st, st, nil
	default:
		if err := os.MkdirAll(c.Store.Path, 0o755); err != nil {
			return nil, nil, err
		}
		return storage.NewFS(c.Store.Path), io.NopCloser(nil), nil
	}
}

// openCache returns a nil cache when no Redis address is configured or it
// does not answer; charts are then always computed. The returned func closes
// the client and is safe to call either way.
func openCache(ctx context.Context, c *config.Config) (ports.Cache, func() error) {
	noop := func() error { return nil }
	rc := cache.Open(c.Cache.RedisAddr, c.Cache.RedisPassword, c.Cache.RedisDB, c.Cache.TTL)
	if rc == nil {
		log.Info("redis_disabled")
		return nil, noop
	}
	pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rc.Ping(pctx); err != nil {
		log.Warn("redis_ping_error", "addr", c.Cache.RedisAddr, "err", err)
		_ = rc.Close()
		return nil, noop
	}
	log.Info("redis_ping_ok", "addr", c.Cache.RedisAddr)
	return rc, rc.Close
}

// newService wires the use case without storage; commands that persist
// attach it themselves.
func newService() *usecase.Service {
	uc := usecase.NewService(validator.New(), nil, nil, log)
	uc.Workers = cfg.Sweep.Workers
	return uc
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
