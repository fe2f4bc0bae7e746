package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"homecast/internal/calculation"
	"homecast/internal/config"
	"homecast/internal/output"
	"homecast/internal/server"
	"homecast/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildEngine loads reference data (file override or embedded defaults) and
// constructs the projection engine.
func buildEngine(referencePath string, baseYear int) (*calculation.Engine, error) {
	var ref *config.ReferenceData
	var err error
	if referencePath != "" {
		ref, err = config.LoadReferenceData(referencePath)
	} else {
		ref, err = config.DefaultReferenceData()
	}
	if err != nil {
		return nil, err
	}

	prices, taxRates, creditRates, err := ref.Tables()
	if err != nil {
		return nil, err
	}

	engine := calculation.NewEngine(prices, taxRates, creditRates)
	if baseYear > 0 {
		engine.BaseYear = baseYear
	}
	return engine, nil
}

var rootCmd = &cobra.Command{
	Use:   "homecast",
	Short: "Home Affordability Projection CLI",
	Long:  "Projects future starter-home prices, down-payment savings plans, mortgage terms, and qualifying income",
}

var projectCmd = &cobra.Command{
	Use:   "project [request-file]",
	Short: "Run an affordability projection from a request file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		input, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		referencePath, _ := cmd.Flags().GetString("reference")
		baseYear, _ := cmd.Flags().GetInt("base-year")
		engine, err := buildEngine(referencePath, baseYear)
		if err != nil {
			log.Fatal(err)
		}

		result, err := engine.Project(input)
		if err != nil {
			log.Fatal(err)
		}

		formatName, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(formatName)
		if formatter == nil {
			log.Fatalf("unsupported format: %s", formatName)
		}
		text, err := formatter.Format(result)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(text)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [request-file]",
	Short: "Validate a request file without running the projection",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			fmt.Printf("Request validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Request file %s is valid\n", args[0])
	},
}

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List the locations available in the price table",
	Run: func(cmd *cobra.Command, args []string) {
		referencePath, _ := cmd.Flags().GetString("reference")
		engine, err := buildEngine(referencePath, 0)
		if err != nil {
			log.Fatal(err)
		}
		for _, location := range engine.Prices.Locations() {
			fmt.Println(location)
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the projection engine over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := server.LoadConfig(configPath)
		if err != nil {
			log.Fatal(err)
		}

		logger, err := newLogger(cfg.LogLevel)
		if err != nil {
			log.Fatal(err)
		}
		defer func() { _ = logger.Sync() }()

		engine, err := buildEngine(cfg.ReferencePath, 0)
		if err != nil {
			logger.Fatal("failed to build engine", zap.Error(err))
		}

		ttl := time.Duration(cfg.CacheTTLHours) * time.Hour
		var cache server.ResultCache
		if cfg.RedisAddr != "" {
			cache = server.NewRedisCache(cfg.RedisAddr, ttl)
			logger.Info("using redis result cache", zap.String("addr", cfg.RedisAddr))
		} else {
			cache = server.NewMemoryCache(ttl)
		}

		srv := &http.Server{
			Addr:         cfg.Address,
			Handler:      server.NewHandler(logger, engine, cache, version),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		serverErr := make(chan error, 1)
		go func() {
			logger.Info("listening", zap.String("address", cfg.Address))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				serverErr <- err
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-serverErr:
			logger.Fatal("server failed", zap.Error(err))
		case <-quit:
			logger.Info("shutting down")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive projection form",
	Run: func(cmd *cobra.Command, args []string) {
		referencePath, _ := cmd.Flags().GetString("reference")
		baseYear, _ := cmd.Flags().GetInt("base-year")
		engine, err := buildEngine(referencePath, baseYear)
		if err != nil {
			log.Fatal(err)
		}
		if err := tui.Run(engine); err != nil {
			log.Fatal(err)
		}
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "homecast %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

func newLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "", "info":
		zapLevel = zapcore.InfoLevel
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	return cfg.Build()
}

func init() {
	projectCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
	projectCmd.Flags().String("reference", "", "Reference data file (defaults to built-in tables)")
	projectCmd.Flags().Int("base-year", 0, "Override the base calendar year")

	locationsCmd.Flags().String("reference", "", "Reference data file (defaults to built-in tables)")

	serveCmd.Flags().StringP("config", "c", "", "Server configuration file")

	tuiCmd.Flags().String("reference", "", "Reference data file (defaults to built-in tables)")
	tuiCmd.Flags().Int("base-year", 0, "Override the base calendar year")

	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(locationsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
