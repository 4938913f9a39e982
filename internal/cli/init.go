package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/addressbook/internal/jsonfile"
	"github.com/mesh-intelligence/addressbook/internal/paths"
)

// configFile holds the structure written to config.yaml by init.
type configFile struct {
	File       string `yaml:"file,omitempty"`
	LoadPolicy string `yaml:"load_policy,omitempty"`
	LogLevel   string `yaml:"log_level,omitempty"`
	LogFormat  string `yaml:"log_format,omitempty"`
	LogFile    string `yaml:"log_file,omitempty"`
}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the address book",
		Long: `Init pins the contacts file in config.yaml and creates an empty contacts
file if none exists. An existing contacts file is never modified.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, a)
		},
	}
}

func runInit(cmd *cobra.Command, a *app) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	file, err := a.resolveFile()
	if err != nil {
		return sysError(fmt.Errorf("resolve contacts file: %w", err))
	}

	configPath := filepath.Join(configDir, configFileExt)
	if err := pinContactsFile(configPath, file); err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}

	if _, err := os.Stat(file); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return sysError(fmt.Errorf("create contacts directory: %w", err))
		}
		if err := jsonfile.WriteFile(file, nil); err != nil {
			return sysError(fmt.Errorf("create contacts file: %w", err))
		}
		a.logger.Info("created contacts file", "path", file)
	} else if err != nil {
		return sysError(fmt.Errorf("stat contacts file: %w", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Address book initialized: %s\n", file)
	return nil
}

// pinContactsFile records file in config.yaml unless a file is already set.
// Other settings in the file are kept; comments are not.
func pinContactsFile(path, file string) error {
	var cfg configFile
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		if cfg.File != "" {
			return nil
		}
	case os.IsNotExist(err):
	default:
		return err
	}

	cfg.File = file
	out, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, out, 0o644)
}
