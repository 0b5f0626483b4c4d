package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/shades/internal/infrastructure/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := config.GetConfigFile()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the configuration file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := config.Schema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Write the default configuration and its JSON schema to the config directory.

An existing file is left untouched unless --force is given.`,
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configSchemaCmd, configInitCmd)
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if err := config.EnsureDirectories(); err != nil {
		return fmt.Errorf("create config directories: %w", err)
	}
	path, err := config.GetConfigFile()
	if err != nil {
		return err
	}
	dir, err := config.GetConfigDir()
	if err != nil {
		return err
	}

	if _, statErr := os.Stat(path); statErr == nil && !configForce {
		fmt.Fprintf(cmd.OutOrStdout(), "%s already exists (use --force to overwrite)\n", path)
		return nil
	} else if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
		return fmt.Errorf("stat config file: %w", statErr)
	}

	if err := config.WriteConfigOrdered(config.DefaultConfig(), path); err != nil {
		return err
	}
	if err := config.WriteSchemaFile(dir); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
