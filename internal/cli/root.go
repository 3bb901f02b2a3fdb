package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string

	viper *viper.Viper
}

// NewRootCommand creates the root command for the dynaql CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{viper: viper.New()}

	cmd := &cobra.Command{
		Use:   "dynaql",
		Short: "Translate DynamoDB query descriptions to SQL",
		Long: `Translate DynamoDB query and scan descriptions into SQL SELECT statements.

Settings are read from flags, DYNAQL_* environment variables and an optional
dynaql config file, in that order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default is ./dynaql.{json,yaml,toml} if present)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "text", "log format (json|text)")

	_ = opts.viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	_ = opts.viper.BindPFlag("log_format", cmd.PersistentFlags().Lookup("log-format"))

	cmd.AddCommand(NewTranslateCommand(opts))

	return cmd
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}
