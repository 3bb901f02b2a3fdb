package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nisimpson/dynaql"
	"github.com/nisimpson/dynaql/internal/specdoc"
	"github.com/spf13/cobra"
)

// ErrMissingTable is returned when no table name is configured.
var ErrMissingTable = errors.New("table name is required: set --table or DYNAQL_TABLE")

// TranslateOptions holds flags for the translate command.
type TranslateOptions struct {
	*RootOptions
	Table           string
	ExistenceChecks bool
}

// NewTranslateCommand creates the translate command.
func NewTranslateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TranslateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "translate [file|-]",
		Short: "Translate a spec document to SQL",
		Long: `Translate a JSON query or scan description into a SQL SELECT statement.

The document is read from the named file, or from stdin when the file is
omitted or "-". The statement is written to stdout followed by a newline.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			source := "-"
			if len(args) == 1 {
				source = args[0]
			}
			return runTranslate(opts, source, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Table, "table", "t", "", "table name to select from")
	cmd.Flags().BoolVar(&opts.ExistenceChecks, "existence-checks", false, "translate NOT_NULL and NULL conditions")

	_ = rootOpts.viper.BindPFlag("table", cmd.Flags().Lookup("table"))
	_ = rootOpts.viper.BindPFlag("existence_checks", cmd.Flags().Lookup("existence-checks"))

	return cmd
}

func runTranslate(opts *TranslateOptions, source string, cmd *cobra.Command) error {
	config, err := loadConfig(opts.viper, opts.ConfigFile)
	if err != nil {
		return err
	}

	log := newLogger(config.LogLevel, config.LogFormat, cmd.ErrOrStderr()).
		WithField("source", source)

	if config.Table == "" {
		return ErrMissingTable
	}

	data, err := readSource(source, cmd.InOrStdin())
	if err != nil {
		return err
	}

	spec, err := specdoc.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", source, err)
	}

	table := dynaql.NewTable(config.Table)
	table.ExistenceChecks = config.ExistenceChecks

	statement, err := table.Marshal(spec)
	if err != nil {
		return err
	}

	log.WithField("table", config.Table).WithField("sql", statement).Debug("translated spec document")

	_, err = fmt.Fprintln(cmd.OutOrStdout(), statement)
	return err
}

func readSource(source string, stdin io.Reader) ([]byte, error) {
	if source == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	return data, nil
}
