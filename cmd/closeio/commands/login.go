package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/crmkit/closeio/internal/constants"
	"github.com/crmkit/closeio/pkg/closeclient"
	"github.com/crmkit/closeio/pkg/closeio"
)

// fileConfig is the on-disk shape of ~/.closeio/config.yml.
type fileConfig struct {
	APIKey  string `yaml:"api-key,omitempty"`
	BaseURL string `yaml:"base-url,omitempty"`
	Output  string `yaml:"output,omitempty"`
}

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var apiKey string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API key",
		Long:  "Verify an API key against the API and store it in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				fmt.Fprint(cmd.OutOrStdout(), "API key: ")

				keyBytes, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				apiKey = string(keyBytes)

				fmt.Fprintln(cmd.OutOrStdout())
			}

			if apiKey == "" {
				return ErrAPIKeyRequired
			}

			client, err := closeclient.New(&closeio.Config{
				BaseURL: viper.GetString("base-url"),
				APIKey:  apiKey,
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			body, err := client.Users().Me(cmd.Context(), nil)
			if err != nil {
				return fmt.Errorf("failed to verify API key: %w", err)
			}

			if err := saveAPIKey(apiKey); err != nil {
				return err
			}

			email := NotAvailable
			if me, ok := body.Map(); ok {
				if value, ok := me["email"].(string); ok {
					email = value
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", email)

			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key (prompted when omitted)")

	return cmd
}

// saveAPIKey writes the key into the config file viper is using, creating
// ~/.closeio/config.yml when no config file exists yet.
func saveAPIKey(apiKey string) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".closeio")

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	config := &fileConfig{
		APIKey:  apiKey,
		BaseURL: viper.GetString("base-url"),
		Output:  viper.GetString("output"),
	}

	// configFile comes from viper or the user home dir and is not user-controllable
	// #nosec G304
	if data, err := os.ReadFile(configFile); err == nil {
		_ = yaml.Unmarshal(data, config)
		config.APIKey = apiKey
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(configFile, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
