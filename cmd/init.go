package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/localapi-logger/internal/app"
	"github.com/oshokin/localapi-logger/internal/config"
)

var (
	//nolint:gochecknoglobals // Bound to the --force flag of the init command.
	forceInit bool

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with default settings",
		Long: `Writes a configuration file with default settings to the path given by --config
(default '` + config.DefaultConfigFilename + `').

An existing file is kept unless --force is given.`,
		Args: cobra.NoArgs,
		// The configuration is being created, so there is nothing to load yet.
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteInitCommand(cmd.Context(), configFilenameFromFlag, forceInit)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "overwrite an existing configuration file.")

	rootCmd.AddCommand(initCmd)
}
