package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"antenna/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigShowCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			dir := filepath.Dir(target)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create config directory %q: %w", dir, err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Edit the file to adjust the listing count, output path, or ntfy topic.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, path, exists, err := config.Load(flagValue(ctx.configFlag))
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", path)
			if !exists {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, exists, err := config.Load(flagValue(ctx.configFlag))
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s (exists: %s)\n\n", path, yesNo(exists))

			fmt.Fprintln(out, "[imdb]")
			fmt.Fprintf(out, "  base_url:   %s\n", cfg.IMDB.BaseURL)
			fmt.Fprintf(out, "  user_agent: %s\n", cfg.IMDB.UserAgent)
			fmt.Fprintf(out, "  timeout:    %ds\n", cfg.IMDB.TimeoutSeconds)

			fmt.Fprintln(out, "[tvmaze]")
			fmt.Fprintf(out, "  base_url: %s\n", cfg.TVMaze.BaseURL)
			fmt.Fprintf(out, "  timeout:  %ds\n", cfg.TVMaze.TimeoutSeconds)

			fmt.Fprintln(out, "[list]")
			fmt.Fprintf(out, "  count:  %d\n", cfg.List.Count)
			fmt.Fprintf(out, "  output: %s\n", cfg.List.Output)

			fmt.Fprintln(out, "[notifications]")
			fmt.Fprintf(out, "  ntfy_topic set: %s\n", yesNo(strings.TrimSpace(cfg.Notifications.NtfyTopic) != ""))
			fmt.Fprintf(out, "  request_timeout: %ds\n", cfg.Notifications.RequestTimeout)
			fmt.Fprintf(out, "  generated: %s\n", yesNo(cfg.Notifications.Generated))
			fmt.Fprintf(out, "  errors:    %s\n", yesNo(cfg.Notifications.Errors))

			fmt.Fprintln(out, "[logging]")
			fmt.Fprintf(out, "  format: %s\n", cfg.Logging.Format)
			fmt.Fprintf(out, "  level:  %s\n", cfg.Logging.Level)
			directory := cfg.Logging.Directory
			if strings.TrimSpace(directory) == "" {
				directory = "(none)"
			}
			fmt.Fprintf(out, "  directory: %s\n", directory)
			return nil
		},
	}
}
