package internal

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/odpf/shelflife/config"
)

// LoadConfig loads and validates the client config, flags in the set override file and env values
func LoadConfig(configFilePath string, flags *pflag.FlagSet) (*config.ClientConfig, error) {
	conf, err := config.LoadClientConfig(configFilePath, flags)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(conf); err != nil {
		return nil, fmt.Errorf("invalid shelflife config: %w", err)
	}
	return conf, nil
}

// InjectConfigFlags adds the flags every command reading the client config accepts
func InjectConfigFlags(flags *pflag.FlagSet, configFilePath *string) {
	flags.StringVarP(configFilePath, "config", "c", config.EmptyPath, "File path for client configuration")
	flags.String("collection", "", "Collection to work on, namespaces or whitelist")
}

// InjectClusterFlags adds the flags for commands calling the cluster api
func InjectClusterFlags(flags *pflag.FlagSet) {
	flags.String("host", "", "Cluster API host, overrides ENDPOINT")
	flags.String("token", "", "Bearer token for the cluster API, overrides OKD_TOKEN")
}
