package cmd

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/fatih/color"
	"github.com/odpf/salt/cmdx"
	cli "github.com/spf13/cobra"

	"github.com/odpf/shelflife/client/cmd/migration"
	"github.com/odpf/shelflife/client/cmd/probe"
	"github.com/odpf/shelflife/client/cmd/record"
	"github.com/odpf/shelflife/client/cmd/version"
)

// New constructs the 'root' command. It houses all other sub commands
// default output of logging should go to stdout
// interactive output like spinners should go to stderr
func New() *cli.Command {
	var disableColoredOut bool

	cmd := &cli.Command{
		Use: "shelflife <command> [flags]",
		Long: heredoc.Doc(`
			Welcome to ShelfLife!

			ShelfLife keeps track of namespaces on the cluster. It looks up their latest
			deployment and admins, and records them in one of two collections:
			namespaces that have a shelf life, and whitelisted namespaces.

			The cluster is reached with ENDPOINT and OKD_TOKEN, the store with DB_ADDR
			and DB_PORT. A .env file in the working directory is read as well.`),
		SilenceUsage: true,
		Example: heredoc.Doc(`
				$ shelflife view
				$ shelflife check team-x
				$ shelflife check team-x --collection whitelist
				$ shelflife delete team-x
				$ shelflife probe team-x
			`),
		Annotations: map[string]string{
			"group:core": "true",
			"help:learn": heredoc.Doc(`
				Use 'shelflife <command> --help' for more information about a command.
			`),
		},
		PersistentPreRun: func(*cli.Command, []string) {
			if disableColoredOut {
				color.NoColor = true
			}
		},
	}
	cmd.PersistentFlags().BoolVar(&disableColoredOut, "no-color", disableColoredOut, "Disable colored output")

	cmdx.SetHelp(cmd)

	cmd.AddCommand(
		record.NewViewCommand(),
		record.NewCheckCommand(),
		record.NewDeleteCommand(),
		probe.NewProbeCommand(),
		migration.NewMigrateCommand(),
		version.NewVersionCommand(),
	)
	return cmd
}
