package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/options-viz/src/cmd/options/run"
	"github.com/jiaming2012/options-viz/src/eventmodels"
	"github.com/jiaming2012/options-viz/src/eventservices"
	"github.com/jiaming2012/options-viz/src/telemetry"
	"github.com/jiaming2012/options-viz/src/utils"
)

var rootCmd = &cobra.Command{
	Use:   "options",
	Short: "Fetch option chains from the command line",
	Long:  `This program runs the options visualization pipeline once, without the http server, and prints the result.`,
}

var fetchCmd = &cobra.Command{
	Use:   "fetch SYMBOL",
	Short: "Print the merged call/put chain around spot",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		formatStr, err := cmd.Flags().GetString("format")
		if err != nil {
			log.Fatalf("error getting format: %v", err)
		}

		format, err := run.ParseOutputFormat(formatStr)
		if err != nil {
			log.Fatalf("error parsing format: %v", err)
		}

		service, runArgs := setup(cmd, args[0])
		runArgs.Format = format

		if err := run.Fetch(context.Background(), service, runArgs, os.Stdout); err != nil {
			log.Fatalf("error running command: %v", err)
		}
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary SYMBOL",
	Short: "Print straddle cost statistics per expiry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, runArgs := setup(cmd, args[0])

		if err := run.Summary(context.Background(), service, runArgs, os.Stdout); err != nil {
			log.Fatalf("error running command: %v", err)
		}
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Validate the config file and print the effective settings",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		config, err := eventmodels.LoadServerConfig(configPath)
		if err != nil {
			log.Fatalf("error loading config: %v", err)
		}

		if err := run.WriteConfig(config, os.Stdout); err != nil {
			log.Fatalf("error running command: %v", err)
		}
	},
}

func setup(cmd *cobra.Command, symbol string) (*eventservices.OptionsChainService, run.RunArgs) {
	goEnv, err := cmd.Flags().GetString("go-env")
	if err != nil {
		log.Fatalf("error getting go-env: %v", err)
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		log.Fatalf("error getting config: %v", err)
	}

	nExpirations, err := cmd.Flags().GetInt("n-expirations")
	if err != nil {
		log.Fatalf("error getting n-expirations: %v", err)
	}

	if err := utils.InitEnvironmentVariables(utils.GetEnvOrDefault("ENV_DIR", "."), goEnv); err != nil {
		log.Fatalf("error loading environment: %v", err)
	}

	// Logs go to stderr so stdout stays parseable.
	if err := telemetry.SetupLogging(utils.GetEnvOrDefault("LOG_LEVEL", "warn"), false); err != nil {
		log.Fatalf("error setting up logging: %v", err)
	}
	log.SetOutput(os.Stderr)

	config, err := eventmodels.LoadServerConfig(configPath)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	provider, err := eventservices.NewMarketDataProvider(config)
	if err != nil {
		log.Fatalf("error creating market data provider: %v", err)
	}

	if nExpirations == 0 {
		nExpirations = config.DefaultExpirations
	}

	runArgs := run.RunArgs{
		Symbol:       eventmodels.NewStockSymbol(symbol),
		NExpirations: nExpirations,
	}

	return eventservices.NewOptionsChainServiceFromConfig(config, provider), runArgs
}

func main() {
	rootCmd.PersistentFlags().IntP("n-expirations", "n", 0, "Number of upcoming expirations to include. Defaults to default_expirations from the config file.")
	rootCmd.PersistentFlags().String("config", utils.GetEnvOrDefault("CONFIG_FILE", "config.yaml"), "Path to the yaml config file.")
	rootCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")

	fetchCmd.Flags().StringP("format", "f", "table", "Output format: json, table or csv.")

	rootCmd.AddCommand(fetchCmd, summaryCmd, configCmd)

	cobra.CheckErr(rootCmd.Execute())
}
