package cmd

import (
	"context"
	"net"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/bstmap/pkg/cmd/cmdutil"
)

var RootCmd = &cobra.Command{
	Use:   "bstmap",
	Short: "bstmap ordered key-value tree",
	Long:  "run operation scripts and benchmarks against a size-augmented binary search tree",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadDotenv(viper.GetString("dotenv")); err != nil {
			return err
		}

		if configFile := viper.GetString("config"); configFile != "" {
			viper.SetConfigFile(configFile)
			if err := viper.ReadInConfig(); err != nil {
				return errors.Wrapf(err, "failed to load config file %s", configFile)
			}
		}

		cmdutil.SetupLogging(viper.GetBool("debug"), viper.GetString("log-file"))

		if addr := viper.GetString("metrics-listen"); addr != "" {
			ctx, cancel := context.WithCancel(context.Background())
			listenAddr, err := cmdutil.ServeMetrics(ctx, addr)
			if err != nil {
				cancel()
				return err
			}
			metricsAddr = listenAddr
			metricsCancel = cancel
		}

		return nil
	},
}

// metricsCancel stops the metrics server started for the running command.
var metricsCancel context.CancelFunc
var metricsAddr net.Addr

func stopMetrics() {
	if metricsCancel != nil {
		metricsCancel()
		metricsCancel = nil
	}
}

// executeRoot runs the root command and releases what the command set up,
// whether it succeeded or not.
func executeRoot() error {
	defer stopMetrics()
	return RootCmd.Execute()
}

func init() {
	cmdutil.PersistentFlags(RootCmd.PersistentFlags())

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}
}

// loadDotenv loads the dotenv file into the process environment. A missing
// file is not an error.
func loadDotenv(dotenvFile string) error {
	if dotenvFile == "" {
		return nil
	}

	if _, err := os.Stat(dotenvFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(dotenvFile); err != nil {
		return errors.Wrapf(err, "error loading dotenv file %s", dotenvFile)
	}

	log.Debugf("loaded dotenv file %s", dotenvFile)
	return nil
}

func Execute() {
	viper.SetEnvPrefix("bstmap")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	if err := executeRoot(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
