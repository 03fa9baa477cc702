package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/odpf/salt/config"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultFilename      = "shelflife"
	DefaultFileExtension = "yaml"
	DefaultEnvPrefix     = "SHELFLIFE"
	DefaultHomeDirectory = ".shelflife"
	EmptyPath            = ""

	defaultClusterTimeout = 30 * time.Second
)

var (
	FS       = afero.NewReadOnlyFs(afero.NewOsFs())
	currPath string
	homePath string
)

// legacyEnvs are the environment names understood before the SHELFLIFE_ prefix existed
var legacyEnvs = map[string]string{
	"cluster.token": "OKD_TOKEN",
	"cluster.host":  "ENDPOINT",
	"store.host":    "DB_ADDR",
	"store.port":    "DB_PORT",
}

// flagKeys maps command flags onto config keys, flags win over file and env
var flagKeys = map[string]string{
	"host":       "cluster.host",
	"token":      "cluster.token",
	"collection": "collection",
}

func init() {
	p, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	currPath = p

	p, err = os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	homePath = p
}

// LoadClientConfig load the client config from these locations, later ones win:
// 1. config file: filePath when set, otherwise ./shelflife.yaml or ~/.shelflife/shelflife.yaml
// 2. env var. eg. SHELFLIFE_CLUSTER_HOST, or the legacy OKD_TOKEN, ENDPOINT, DB_ADDR, DB_PORT
// 3. flags bound from the running command
// A missing config file is not an error.
func LoadClientConfig(filePath string, flags *pflag.FlagSet) (*ClientConfig, error) {
	return loadClientConfigFs(FS, filePath, flags)
}

func loadClientConfigFs(fs afero.Fs, filePath string, flags *pflag.FlagSet) (*ClientConfig, error) {
	cfg := &ClientConfig{}

	v := viper.New()
	v.SetFs(fs)
	v.SetEnvPrefix(DefaultEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	if err := bindEnvs(v); err != nil {
		return nil, err
	}
	if err := bindFlags(v, flags); err != nil {
		return nil, err
	}

	opts := []config.LoaderOption{
		config.WithViper(v),
		config.WithName(DefaultFilename),
		config.WithType(DefaultFileExtension),
		config.WithEnvPrefix(DefaultEnvPrefix),
		config.WithEnvKeyReplacer(".", "_"),
	}

	if filePath != EmptyPath {
		if err := validateFilepath(fs, filePath); err != nil {
			return nil, err // if filepath not valid, returns err
		}
		opts = append(opts, config.WithFile(filePath))
	} else {
		opts = append(opts, config.WithPath(currPath), config.WithPath(filepath.Join(homePath, DefaultHomeDirectory)))
	}

	l := config.NewLoader(opts...)
	if err := l.Load(cfg); err != nil {
		if !errors.As(err, &config.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("unable to read shelflife config: %w", err)
		}
		// no file, env and flags still apply
		if err := v.Unmarshal(cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		))); err != nil {
			return nil, fmt.Errorf("unable to decode shelflife config: %w", err)
		}
	}

	cfg.Log.Level = LogLevel(strings.ToUpper(cfg.Log.Level.String()))
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("version", 1)
	v.SetDefault("log.level", LogLevelInfo.String())
	v.SetDefault("log.format", LogFormatPlain)
	v.SetDefault("collection", "namespaces")
	v.SetDefault("cluster.host", "")
	v.SetDefault("cluster.token", "")
	v.SetDefault("cluster.timeout", defaultClusterTimeout)
	v.SetDefault("cluster.insecure_skip_verify", false)
	v.SetDefault("store.driver", StoreDriverPostgres)
	v.SetDefault("store.dsn", "")
	v.SetDefault("store.host", "localhost")
	v.SetDefault("store.port", 5432)
	v.SetDefault("store.database", "SHELFLIFE_NAMESPACES")
	v.SetDefault("store.user", "")
	v.SetDefault("store.password", "")
	v.SetDefault("store.max_idle_connection", 1)
	v.SetDefault("store.max_open_connection", 2)
	v.SetDefault("telemetry.push_gateway", "")
	v.SetDefault("telemetry.job", ClientName)
}

func bindEnvs(v *viper.Viper) error {
	for key, legacy := range legacyEnvs {
		prefixed := DefaultEnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return fmt.Errorf("unable to bind env for [%s]: %w", key, err)
		}
	}
	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("unable to bind flag [%s]: %w", name, err)
		}
	}
	return nil
}

func validateFilepath(fs afero.Fs, fpath string) error {
	f, err := fs.Stat(fpath)
	if err != nil {
		return err
	}
	if !f.Mode().IsRegular() {
		return fmt.Errorf("%s not a file", fpath)
	}
	return nil
}
