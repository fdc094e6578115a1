package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iwvelando/credit-simulator/internal/config"
	"github.com/iwvelando/credit-simulator/internal/logging"
	"github.com/iwvelando/credit-simulator/internal/simulator"
	"github.com/iwvelando/credit-simulator/pkg/constants"
	"github.com/iwvelando/credit-simulator/pkg/format"
	"github.com/iwvelando/credit-simulator/pkg/output"
	"github.com/iwvelando/credit-simulator/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	configLocation := flag.String("config", "", "path to configuration file (defaults are used when empty)")
	modeFlag := flag.String("mode", "", "simulation type override: monto-a-cuota, cuota-a-monto")
	amount := flag.String("amount", "", "disbursed amount (monto-a-cuota)")
	installment := flag.String("installment", "", "monthly installment (cuota-a-monto)")
	term := flag.String("term", "", "term in months")
	details := flag.String("details", "", "show cost breakdown and amortization table (true/false, si/no)")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	conf := config.Default()
	if *configLocation != "" {
		loaded, err := config.LoadConfiguration(*configLocation)
		if err != nil {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
			os.Exit(1)
		}
		conf = loaded
	}

	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := conf.Validate(); err != nil {
		logger.Fatal("invalid configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	for _, warning := range conf.Warnings() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	mode := conf.Display.Mode()
	if *modeFlag != "" {
		mode, err = simulator.ParseMode(*modeFlag)
		if err != nil {
			logger.Fatal("invalid simulation type",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	showDetails := conf.Display.ShowDetails
	if *details != "" {
		showDetails, err = validation.ParseBool(*details)
		if err != nil {
			logger.Fatal("invalid -details value",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	formatter, err := format.NewFormatter(conf.Display.Locale)
	if err != nil {
		logger.Fatal("failed to initialize currency formatter",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	sim := simulator.New(logger, conf.Parameters.ToSimulatorParameters(), mode)
	if *amount != "" {
		sim.UpdateAmount(*amount)
	}
	if *installment != "" {
		sim.UpdateInstallment(*installment)
	}
	if *term != "" {
		sim.UpdateTerm(*term)
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		snap := sim.Snapshot(showDetails)
		view := output.BuildView(snap, output.Options{ShowDetails: showDetails, Formatter: formatter})
		err = output.PrettyFormat(os.Stdout, view)
	case constants.OutputFormatCSV:
		if mode != simulator.InstallmentToAmount {
			logger.Fatal("csv output is only available for "+constants.SimulationTypeInstallmentToAmount,
				zap.String("op", "main"),
			)
		}
		err = output.CsvFormat(os.Stdout, sim.Schedule())
	}
	if err != nil {
		logger.Fatal("failed to write output",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
