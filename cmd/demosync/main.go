package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/loykin/demosync/cmd/demosync/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:           "demosync",
	Short:         "Publish and reclaim demo environments and collections in a Postman workspace",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env is normal; a malformed one is worth a warning.
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to load .env file: %v\n", err)
		}
	},
}

func init() {
	v := viper.GetViper()
	v.SetDefault("config", "")
	v.SetDefault("log_level", "")
	v.SetDefault("log_format", "")

	// DEMOSYNC_CONFIG, DEMOSYNC_LOG_LEVEL, DEMOSYNC_LOG_FORMAT
	v.SetEnvPrefix("DEMOSYNC")
	v.AutomaticEnv()

	rootCmd.PersistentFlags().String("config", v.GetString("config"), "path to an optional config yaml (logging and client blocks)")
	rootCmd.PersistentFlags().String("log-level", v.GetString("log_level"), "log level: error, warn, info, debug")
	rootCmd.PersistentFlags().String("log-format", v.GetString("log_format"), "log format: text, json, color")

	_ = v.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(commands.PublishCmd)
	rootCmd.AddCommand(commands.WizardCmd)
	rootCmd.AddCommand(commands.WizardCICmd)
	rootCmd.AddCommand(commands.ResetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		exitHandler.LogFatalError(err, "command execution failed")
	}
}
