package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/merchkit-io/shopapi-client/internal/constants"
	"github.com/merchkit-io/shopapi-client/internal/filter"
	"github.com/merchkit-io/shopapi-client/pkg/shopapi"
	"github.com/merchkit-io/shopapi-client/pkg/shopclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// CreateClient builds a client from the effective configuration (flags,
// environment, config file).
func CreateClient() (shopapi.Client, error) {
	store := viper.GetString("store")
	if store == "" {
		return nil, constants.ErrNoStoreConfigured
	}

	config := &shopapi.Config{
		Store:       store,
		APIVersion:  viper.GetString("api_version"),
		AccessToken: viper.GetString("token"),
		APIKey:      viper.GetString("api_key"),
		Password:    viper.GetString("password"),
	}

	if config.AccessToken == "" && (config.APIKey == "" || config.Password == "") {
		return nil, constants.ErrNoCredentials
	}

	if viper.GetBool("verbose") {
		config.Logger = newZerologAdapter()
		config.Debug = true
	}

	client, err := shopclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// outputJSON writes v to stdout as indented JSON.
func outputJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode as JSON: %w", err)
	}

	return nil
}

// outputYAML writes v to stdout as YAML.
func outputYAML(v any) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode as YAML: %w", err)
	}

	return nil
}

// applyFilter narrows items by the --filter expression. An empty
// expression passes everything through.
func applyFilter[T any](expression string, items []T) ([]T, error) {
	if expression == "" {
		return items, nil
	}

	compiled, err := filter.Compile(expression)
	if err != nil {
		return nil, err
	}

	kept, err := filter.Apply(compiled, items)
	if err != nil {
		return nil, err
	}

	return kept, nil
}

// formatTime renders an optional timestamp for table output.
func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return NotAvailable
	}

	return t.Format(time.RFC3339)
}

// saveConfig persists the current viper configuration.
func saveConfig() error {
	if err := viper.WriteConfig(); err != nil {
		if err := viper.SafeWriteConfig(); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
	}

	return nil
}
