package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/shyptr/gqldb/database"
	"github.com/shyptr/gqldb/logging"
	"github.com/shyptr/gqldb/middleware"
	"github.com/shyptr/gqldb/server"
	"github.com/shyptr/gqldb/store"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	serveThreads   int
	serveProtocols []string
	serveLogLevel  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the database server",
	Long: `Run the database server until SIGINT or SIGTERM.

Flags override the values read from --config.

Examples:
  gqldb serve
  gqldb serve --threads 4 --protocols tcp,ws
  gqldb serve --config gqldb.yaml --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&serveThreads, "threads", "t", 2, "parser threads (1-16)")
	serveCmd.Flags().StringSliceVarP(&serveProtocols, "protocols", "p", []string{"tcp"}, "protocols to serve (tcp, ws)")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "info", "log level")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("threads") {
		cfg.Threads = serveThreads
	}
	if cmd.Flags().Changed("protocols") {
		cfg.Protocols = serveProtocols
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = serveLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var st *store.Store
	if cfg.Store.URL != "" {
		if st, err = store.Open(ctx, cfg.Store.URL); err != nil {
			return err
		}
		defer st.Close()
	}

	db := database.New(cfg, logger, st)
	srv := server.New(db, logger,
		server.MaxMessageBytes(cfg.MaxMessageBytes),
		server.Path(cfg.WS.Path),
	)
	srv.Use(middleware.Recovery(), middleware.Logger())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return db.Run(ctx)
	})
	g.Go(func() error {
		return srv.Run(ctx, cfg)
	})
	err = g.Wait()
	logger.Info("shutdown complete")
	return err
}
