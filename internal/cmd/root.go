// Package cmd implements the logsmith demo CLI.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Iron-Ham/logsmith"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "logsmith",
	Short: "Structured, color-aware logging library demos",
	Long: `Logsmith is a structured, color-aware, concurrency-safe logging
library. This tool exercises its public surface: console formatting,
color themes, gradients, file rotation and global auditing.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/logsmith/config.yaml)")
	rootCmd.PersistentFlags().String("level", "INFO", "default severity for the demos")
	rootCmd.PersistentFlags().String("theme", "", "color theme (light, dark, neon, pastel, fire, ocean)")
	rootCmd.PersistentFlags().String("log-dir", "", "directory for demo log files (default is a temp dir)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("level", rootCmd.PersistentFlags().Lookup("level"))
	_ = viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))
	_ = viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("$HOME/.config/logsmith")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("LOGSMITH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// setupLogging applies the configured default level and theme.
func setupLogging() {
	level := logsmith.INFO
	if v, ok := logsmith.Levels()[strings.ToUpper(viper.GetString("level"))]; ok {
		level = v
	}
	logsmith.Initialize(level)

	if name := viper.GetString("theme"); name != "" {
		theme, ok := logsmith.BuiltinThemes[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown theme %q, keeping defaults\n", name)
			return
		}
		logsmith.ApplyColorTheme(theme)
	}
}

// demoLogDir resolves the directory demo commands write log files to.
func demoLogDir() (string, error) {
	if dir := viper.GetString("log_dir"); dir != "" {
		return dir, nil
	}
	return os.MkdirTemp("", "logsmith-demo-")
}
