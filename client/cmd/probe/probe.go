package probe

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/odpf/salt/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/odpf/shelflife/client/cmd/internal"
	"github.com/odpf/shelflife/client/cmd/internal/logger"
	"github.com/odpf/shelflife/client/cmd/internal/progressbar"
	"github.com/odpf/shelflife/config"
	"github.com/odpf/shelflife/ext/openshift"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

type probeCommand struct {
	logger         log.Logger
	configFilePath string
	clientConfig   *config.ClientConfig

	output string
}

// NewProbeCommand initializes command to print the raw project resource of a namespace
func NewProbeCommand() *cobra.Command {
	probe := &probeCommand{}
	cmd := &cobra.Command{
		Use:     "probe <namespace>",
		Aliases: []string{"p"},
		Short:   "Prints the project resource of a namespace as returned by the cluster",
		Example: "shelflife probe team-x [--output yaml]",
		Args:    cobra.ExactArgs(1),
		PreRunE: probe.PreRunE,
		RunE:    probe.RunE,
	}
	probe.injectFlags(cmd)
	return cmd
}

func (p *probeCommand) injectFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&p.configFilePath, "config", "c", config.EmptyPath, "File path for client configuration")
	cmd.Flags().StringVarP(&p.output, "output", "o", outputJSON, "Output format, json or yaml")
	internal.InjectClusterFlags(cmd.Flags())
}

func (p *probeCommand) PreRunE(cmd *cobra.Command, _ []string) error {
	if p.output != outputJSON && p.output != outputYAML {
		return fmt.Errorf("unknown output [%s], use %s or %s", p.output, outputJSON, outputYAML)
	}
	conf, err := internal.LoadConfig(p.configFilePath, cmd.Flags())
	if err != nil {
		return err
	}
	if err := config.ValidateCluster(conf.Cluster); err != nil {
		return fmt.Errorf("cluster is not configured, set --host/--token or ENDPOINT/OKD_TOKEN: %w", err)
	}
	p.clientConfig = conf
	p.logger = logger.NewClientLoggerWithWriter(conf.Log, cmd.OutOrStdout())
	return nil
}

func (p *probeCommand) RunE(cmd *cobra.Command, args []string) error {
	url := openshift.ProjectURL(p.clientConfig.Cluster.Host, args[0])
	client := internal.NewClusterClient(p.clientConfig.Cluster)

	spinner := progressbar.NewProgressBar()
	spinner.Start("querying cluster...")
	body, err := client.FetchRaw(cmd.Context(), url, p.clientConfig.Cluster.Token)
	spinner.Stop()
	if err != nil {
		return err
	}

	formatted, err := format(body, p.output)
	if err != nil {
		return err
	}
	p.logger.Info("%s", formatted)
	return nil
}

func format(body []byte, output string) (string, error) {
	if output == outputYAML {
		var resource interface{}
		if err := json.Unmarshal(body, &resource); err != nil {
			return "", fmt.Errorf("error decoding project resource: %w", err)
		}
		out, err := yaml.Marshal(resource)
		if err != nil {
			return "", fmt.Errorf("error encoding project resource: %w", err)
		}
		return string(out), nil
	}

	buff := &bytes.Buffer{}
	if err := json.Indent(buff, body, "", "  "); err != nil {
		// not json, print as it came
		return string(body), nil
	}
	return buff.String(), nil
}
