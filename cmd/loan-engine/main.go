package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/iwvelando/loan-engine/internal/cache"
	"github.com/iwvelando/loan-engine/internal/config"
	"github.com/iwvelando/loan-engine/internal/server"
	"github.com/iwvelando/loan-engine/pkg/constants"
	"github.com/iwvelando/loan-engine/pkg/engine"
	"github.com/iwvelando/loan-engine/pkg/environment"
	"github.com/iwvelando/loan-engine/pkg/output"
	"github.com/iwvelando/loan-engine/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "0.1.0"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	op := flag.String("op", constants.OpPayment, "operation: payment, max-principal, interest, principal, balance, table")
	principalFlag := flag.Float64("principal", 0, "loan principal")
	rateFlag := flag.Float64("rate", 0, "periodic interest rate (e.g. 0.005 for 6% annual paid monthly)")
	periodsFlag := flag.Int("periods", 0, "number of payment periods")
	paymentFlag := flag.Float64("payment", 0, "periodic payment (max-principal only)")
	periodFlag := flag.Int("period", 0, "period index for interest, principal, and balance")
	startDateFlag := flag.String("start-date", "", "YYYY-MM month of the first payment, labels table rows")
	outputFile := flag.String("output-file", "", "write the table as CSV to this file; relative paths resolve to the environment output directory")
	serve := flag.Bool("serve", false, "run the HTTP API instead of a one-shot computation")
	listen := flag.String("listen", "", "HTTP listen address override")
	flag.Parse()

	setFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		setFlags[f.Name] = true
	})

	// Load the config file to get logging configuration and loan defaults. A
	// missing file at the default location is fine; the flags carry the terms.
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		if setFlags["config"] {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
			return
		}
		conf = &config.Configuration{}
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Merge loan terms: flags override config defaults.
	principal := conf.Loan.Principal
	if setFlags["principal"] {
		principal = *principalFlag
	}
	rate := conf.Loan.Rate
	if setFlags["rate"] {
		rate = *rateFlag
	}
	periods := conf.Loan.Periods
	if setFlags["periods"] {
		periods = *periodsFlag
	}
	startDate := conf.Loan.StartDate
	if setFlags["start-date"] {
		startDate = *startDateFlag
	}

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty // Default to pretty format
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	if *serve {
		runServer(logger, conf, *listen)
		return
	}

	err = validation.ValidateOperation(*op)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	if *op != constants.OpMaxPrincipal {
		for _, warning := range validation.ValidateLoanTerms(principal, rate, periods) {
			logger.Warn("Loan terms warning: "+warning,
				zap.String("op", "main"),
			)
		}
	}

	switch *op {
	case constants.OpPayment:
		result, err := engine.Payment(principal, rate, periods)
		if err != nil {
			logger.Fatal("failed to compute payment",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		fmt.Printf("%.2f\n", result)
	case constants.OpMaxPrincipal:
		result, err := engine.MaxPrincipal(*paymentFlag, rate, periods)
		if err != nil {
			logger.Fatal("failed to compute max principal",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		fmt.Printf("%.2f\n", result)
	case constants.OpInterest:
		result, err := engine.InterestPayment(principal, rate, *periodFlag, periods)
		if err != nil {
			logger.Fatal("failed to compute interest portion",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		fmt.Printf("%.2f\n", result)
	case constants.OpPrincipal:
		result, err := engine.PrincipalPayment(principal, rate, *periodFlag, periods)
		if err != nil {
			logger.Fatal("failed to compute principal portion",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		fmt.Printf("%.2f\n", result)
	case constants.OpBalance:
		result, err := engine.RemainingBalance(principal, rate, *periodFlag, periods)
		if err != nil {
			logger.Fatal("failed to compute remaining balance",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		fmt.Printf("%.2f\n", result)
	case constants.OpTable:
		generator := engine.NewScheduleGenerator(logger)
		schedule, err := generator.GenerateSchedule(principal, rate, periods)
		if err != nil {
			logger.Fatal("failed to generate amortization schedule",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}

		if *outputFile != "" {
			writeScheduleFile(logger, schedule, startDate, *outputFile)
			return
		}

		switch outputFormat {
		case constants.OutputFormatPretty:
			output.PrettyFormat(schedule, startDate)
		case constants.OutputFormatCSV:
			output.CsvFormat(schedule, startDate)
		}
	}
}

// writeScheduleFile writes the schedule as CSV, resolving relative paths
// through the detected execution environment's output directory.
func writeScheduleFile(logger *zap.Logger, schedule engine.Schedule, startDate, location string) {
	if !filepath.IsAbs(location) {
		resolved, err := environment.OutputPath(location)
		if err != nil {
			logger.Fatal("failed to resolve output path",
				zap.String("op", "main.writeScheduleFile"),
				zap.Error(err),
			)
		}
		location = resolved
	}

	file, err := os.Create(location)
	if err != nil {
		logger.Fatal("failed to create output file",
			zap.String("op", "main.writeScheduleFile"),
			zap.String("path", location),
			zap.Error(err),
		)
	}
	defer func() {
		_ = file.Close()
	}()

	output.WriteCsv(file, schedule, startDate)
	logger.Info("wrote amortization schedule",
		zap.String("op", "main.writeScheduleFile"),
		zap.String("path", location),
		zap.String("environment", environment.Detect()),
		zap.Int("rows", len(schedule)),
	)
}

// runServer starts the HTTP API with the configured schedule cache.
func runServer(logger *zap.Logger, conf *config.Configuration, listenOverride string) {
	address := conf.Server.Address
	if listenOverride != "" {
		address = listenOverride
	}
	if address == "" {
		address = constants.DefaultServerAddress
	}

	var scheduleCache cache.ScheduleCache
	if conf.Server.Cache.Type == "redis" && conf.Server.Cache.Address != "" {
		scheduleCache = cache.NewRedisCache(conf.Server.Cache.Address)
		logger.Info("using redis schedule cache",
			zap.String("op", "main.runServer"),
			zap.String("address", conf.Server.Cache.Address),
		)
	} else {
		scheduleCache = cache.NewMemoryCache()
	}

	handler := server.NewHandler(logger, scheduleCache, version)
	logger.Info("starting HTTP API",
		zap.String("op", "main.runServer"),
		zap.String("address", address),
	)
	if err := http.ListenAndServe(address, handler); err != nil {
		logger.Fatal("HTTP server failed",
			zap.String("op", "main.runServer"),
			zap.Error(err),
		)
	}
}
