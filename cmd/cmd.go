// Entry point for root command - pgconnparms

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lesovsky/pgconnparms/internal/options"
	"github.com/lesovsky/pgconnparms/internal/pgpass"
	"github.com/lesovsky/pgconnparms/internal/postgres"
	"github.com/lesovsky/pgconnparms/internal/version"
	"github.com/spf13/cobra"
)

// Execute runs root command with passed arguments and returns exit code of the program.
func Execute(args []string, stdout io.Writer, stderr io.Writer) int {
	command := NewCommand()
	command.SetArgs(args)
	command.SetOut(stdout)
	command.SetErr(stderr)

	if err := command.Execute(); err != nil {
		fmt.Fprintln(stderr, "error: "+err.Error())
		return 1
	}

	return 0
}

// flags defines values of command-line flags passed by user.
type flags struct {
	names        options.FlagNames
	askPassword  bool
	pgpassDir    string
	pgpassSet    bool
	printHelp    bool
	printVersion bool
}

// config defines validated settings of the program run.
type config struct {
	uri         string
	names       options.FlagNames
	askPassword bool
	pgpassDir   string
}

// NewCommand creates root command of the program.
func NewCommand() *cobra.Command {
	f := flags{names: options.NewFlagNames()}

	command := &cobra.Command{
		Use:           version.Name() + " [OPTIONS]... URI...",
		Short:         "Create connection parameters and .pgpass from postgres: URI",
		Long:          "pgconnparms converts postgres: URI into connection options of Postgres client utilities.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, args []string) error {
			if f.printVersion {
				fmt.Fprintln(command.OutOrStdout(), version.String())
				return nil
			}

			f.pgpassSet = command.Flags().Changed("pgpass")

			cfg, err := f.validate(args)
			if err != nil {
				return err
			}

			return run(cfg, command.OutOrStdout(), command.ErrOrStderr())
		},
	}

	command.Flags().StringVar(&f.pgpassDir, "pgpass", "", "create or append to a .pgpass file at the specified path")
	command.Flags().StringVarP(&f.names.Dbname, "dbname", "d", options.DefaultDbname, "name of the parameter specifying the database")
	command.Flags().StringVarP(&f.names.Host, "host", "h", options.DefaultHost, "name of the parameter specifying the host")
	command.Flags().StringVarP(&f.names.Port, "port", "p", options.DefaultPort, "name of the parameter specifying the port")
	command.Flags().StringVarP(&f.names.Username, "username", "U", options.DefaultUsername, "name of the parameter specifying the username")
	command.Flags().StringVarP(&f.names.NoPassword, "no-password", "w", options.DefaultNoPassword, "name of the no-password parameter")
	command.Flags().BoolVarP(&f.askPassword, "password", "W", false, "generate a --password option")
	command.Flags().BoolVar(&f.printHelp, "help", false, "print help and exit")
	command.Flags().BoolVar(&f.printVersion, "version", false, "print version and exit")

	command.SetHelpFunc(func(command *cobra.Command, _ []string) {
		// Version is printed before help when both are requested.
		if f.printVersion {
			fmt.Fprintln(command.OutOrStdout(), version.String())
		}
		fmt.Fprint(command.OutOrStdout(), printMainHelp(command))
	})

	return command
}

// validate checks flags and arguments and returns config for the run.
func (f flags) validate(args []string) (config, error) {
	if len(args) == 0 {
		return config{}, errors.New("at least one uri component is required")
	}

	if err := f.names.Validate(); err != nil {
		return config{}, err
	}

	// Empty path means current directory.
	pgpassDir := f.pgpassDir
	if f.pgpassSet && pgpassDir == "" {
		pgpassDir = "."
	}

	return config{
		// URI might be split by shell into several arguments.
		uri:         strings.Join(args, ""),
		names:       f.names,
		askPassword: f.askPassword,
		pgpassDir:   pgpassDir,
	}, nil
}

// run parses URI, prints connection options and writes .pgpass entry if requested.
func run(cfg config, stdout io.Writer, stderr io.Writer) error {
	opts, err := postgres.ParseURI(cfg.uri)
	if err != nil {
		return err
	}

	if opts.Password != "" && cfg.pgpassDir == "" {
		fmt.Fprintln(stderr, "warning: password component included but .pgpass file not specified")
	}

	fmt.Fprintln(stdout, cfg.names.Format(opts, cfg.askPassword))

	if cfg.pgpassDir == "" {
		return nil
	}

	return pgpass.Append(cfg.pgpassDir, pgpass.NewEntry(opts))
}
