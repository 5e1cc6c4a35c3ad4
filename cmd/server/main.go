package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"careerportal/internal/api"
	"careerportal/internal/certs"
	"careerportal/internal/config"
	"careerportal/internal/credentials"
	"careerportal/internal/crypto"
	"careerportal/internal/portal"
	"careerportal/internal/utils"
)

var configPath string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "server",
		Short:        "Career portal HTTP server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "portal.yaml", "path to the YAML config")
	root.AddCommand(initConfigCmd())
	return root
}

// initConfigCmd writes the effective configuration (defaults plus
// environment overrides) so it can be edited.
func initConfigCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write the default configuration to --config",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(configPath); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", configPath)
			}
			cfg, err := config.Load("")
			if err != nil {
				return err
			}
			if err := cfg.Save(configPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", configPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	logger, err := utils.NewLogger(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.File)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := os.MkdirAll(cfg.Store.Dir, 0700); err != nil {
		return fmt.Errorf("failed to create store dir: %w", err)
	}
	var key []byte
	if cfg.Store.Encrypt {
		master, err := crypto.ReadMasterKey(cfg.Store.MasterKeyHex, cfg.Store.MasterKeyFile)
		if err != nil {
			return err
		}
		if key, err = crypto.DeriveStoreKey(master, "users"); err != nil {
			return err
		}
	}
	repo, err := credentials.OpenRepository(cfg.Store.Backend, cfg.Store.Dir, key)
	if err != nil {
		return err
	}
	store := credentials.NewStore(repo, credentials.WithLogger(logger))
	defer store.Close()

	views := portal.NewViews(nil, logger)
	defer views.CloseAll()
	svc := portal.NewService(store,
		portal.WithSubmitDelay(cfg.GetSubmitDelay()),
		portal.WithLogger(logger),
	)
	handler := api.NewHandler(svc, views,
		api.WithLoginRate(cfg.Server.LoginRate, cfg.Server.LoginBurst),
		api.WithAdmin(cfg.Server.EnableAdmin),
		api.WithLogger(logger),
	)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           api.NewRouter(handler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	tlsCert, tlsKey, err := prepareTLS(cfg, logger)
	if err != nil {
		return err
	}

	go sweepIdle(ctx, views, handler, cfg.GetViewTTL())

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running",
			zap.String("addr", cfg.Server.Addr),
			zap.String("backend", cfg.Store.Backend),
			zap.Bool("encrypted", cfg.Store.Encrypt),
			zap.Bool("tls", tlsCert != ""),
		)
		if tlsCert != "" {
			errCh <- srv.ListenAndServeTLS(tlsCert, tlsKey)
			return
		}
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GetShutdownTimeout())
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func sweepIdle(ctx context.Context, views *portal.Views, handler *api.Handler, ttl time.Duration) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			views.Sweep(ttl)
			handler.SweepLimiters(ttl)
		}
	}
}

// prepareTLS returns the certificate pair to serve, or empty paths for plain
// HTTP.
func prepareTLS(cfg *config.Config, logger *zap.Logger) (string, string, error) {
	if cfg.Server.TLSDir == "" {
		return "", "", nil
	}
	cm := certs.NewCertManager(cfg.Server.TLSDir)
	if cfg.Server.TLSSelfSigned {
		wrote, err := cm.EnsureSelfSigned([]string{"localhost", "127.0.0.1"}, 365*24*time.Hour)
		if err != nil {
			return "", "", fmt.Errorf("self-signed certificate: %w", err)
		}
		if wrote {
			logger.Warn("generated self-signed certificate", zap.String("dir", cfg.Server.TLSDir))
		}
	}
	loaded, err := cm.LoadCertificates()
	if err != nil {
		return "", "", err
	}
	for _, c := range loaded {
		if certs.IsExpired(c, time.Now()) {
			logger.Warn("certificate expired", zap.Strings("dns", c.DNSNames), zap.Time("not_after", c.NotAfter))
		}
	}
	certFile, keyFile := cm.Paths()
	return certFile, keyFile, nil
}
