package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/moviatask/moviactl/config"
	"github.com/moviatask/moviactl/movia"
	"github.com/moviatask/moviactl/session"
)

var (
	cfgFile        string
	cfg            *config.Config
	logger         zerolog.Logger
	sessionManager *session.Manager
	apiClient      *movia.Client

	appVersion   = "dev"
	appBuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "moviactl",
	Short: "A client for the Movia movie catalog",
	Long: `moviactl is a CLI client for the Movia movie catalog service.
It signs you in, keeps your session token in secure local storage,
browses and filters the catalog, and manages your liked movies.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion records build metadata injected by the linker.
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp initializes the configuration, logger, session, and API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	store, err := session.NewFileStore(cfg.Session.Dir)
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	sessionManager, err = session.NewManager(store, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize session: %w", err)
	}

	apiClient, err = movia.New(cfg.API.URL, sessionManager, logger,
		movia.WithTimeout(time.Duration(cfg.API.TimeoutSeconds)*time.Second),
		movia.WithUserAgent(cfg.API.UserAgent+"/"+appVersion),
	)
	if err != nil {
		return fmt.Errorf("failed to create Movia client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when stderr is a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// versionCmd prints build metadata
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// Version info needs no config or session
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("moviactl %s (built %s)\n", appVersion, appBuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
