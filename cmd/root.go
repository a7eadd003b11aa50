package cmd

import (
	"errors"
	"log"
	"time"

	"github.com/spigell/spkit/internal/diagnostics"
	"github.com/spigell/spkit/internal/pipeline"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "spkit"
)

type Config struct {
	Truncate    *TruncateConfig       `mapstructure:"truncate"`
	Pipeline    []pipeline.StepConfig `mapstructure:"pipeline"`
	Diagnostics *DiagnosticsConfig    `mapstructure:"diagnostics"`
}

type TruncateConfig struct {
	Limit         int    `mapstructure:"limit"`
	Ellipsis      string `mapstructure:"ellipsis"`
	EscapeCut     bool   `mapstructure:"escape-cut"`
	SkipVoid      bool   `mapstructure:"skip-void"`
	MaxIterations int    `mapstructure:"max-iterations"`
}

type DiagnosticsConfig struct {
	Interval time.Duration      `mapstructure:"interval"`
	Areas    []diagnostics.Area `mapstructure:"areas"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:           app,
		Short:         "spkit truncates and cleans up HTML fragments for rendering layers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is spkit.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	viper.SetEnvPrefix(app)
	viper.AutomaticEnv()

	// The config file is optional unless it was requested explicitly.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Truncate == nil {
		config.Truncate = &TruncateConfig{}
	}
	if config.Diagnostics == nil {
		config.Diagnostics = &DiagnosticsConfig{}
	}

	return config, nil
}
