package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/slacktime-io/slack-client/internal/constants"
)

// Config represents the CLI configuration persisted at ~/.slack/config.yml.
type Config struct {
	API    string `json:"api,omitempty"    yaml:"api,omitempty"`
	Token  string `json:"token,omitempty"  yaml:"token,omitempty"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage Slack CLI configuration including the API endpoint and token",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with the token masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			masked := *config
			if masked.Token != "" {
				masked.Token = constants.MaskedSecret
			}

			return renderObject(masked, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Key", "Value")

				for _, row := range [][2]string{
					{"api", config.API},
					{"token", masked.Token},
					{"output", config.Output},
				} {
					value := row[1]
					if value == "" {
						value = NotAvailable
					}

					err := table.Append(row[0], value)
					if err != nil {
						return fmt.Errorf("failed to append table row: %w", err)
					}
				}

				err := table.Render()
				if err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a specific configuration value (api, token or output)",
		Args:  cobra.ExactArgs(constants.KeyValueSplitParts),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := applyConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfig(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a specific configuration value (api, token or output)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := applyConfigValue(config, args[0], "")
			if err != nil {
				return err
			}

			err = saveConfig(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Unset %s\n", args[0])

			return nil
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear configuration",
		Long:  "Remove the configuration file entirely",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configFilePath()
			if err != nil {
				return err
			}

			err = os.Remove(path)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}

			_, _ = os.Stdout.WriteString("Cleared all configuration\n")

			return nil
		},
	}
}

func loadConfig() *Config {
	return &Config{
		API:    viper.GetString("api"),
		Token:  viper.GetString("token"),
		Output: viper.GetString("output"),
	}
}

func applyConfigValue(config *Config, key, value string) error {
	switch key {
	case "api":
		config.API = value
	case "token":
		config.Token = value
	case "output":
		config.Output = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownConfigKey, key)
	}

	return nil
}

func configFilePath() (string, error) {
	if file := viper.ConfigFileUsed(); file != "" {
		return file, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}

	return filepath.Join(home, ".slack", "config.yml"), nil
}

func saveConfig(config *Config) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
