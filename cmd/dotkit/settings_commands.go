package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"dotkit/internal/config"
	"dotkit/internal/jsonc"
	"dotkit/internal/logging"
	"dotkit/internal/settings"
)

const noOrphansMessage = "No orphaned settings found."

func newSettingsCommand(ctx *commandContext) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect merged editor settings against their sources",
	}

	settingsCmd.AddCommand(newSettingsDiffCommand(ctx))
	settingsCmd.AddCommand(newSettingsSourcesCommand(ctx))

	return settingsCmd
}

func newSettingsDiffCommand(ctx *commandContext) *cobra.Command {
	var dirFlag string
	var format string
	var unified bool

	cmd := &cobra.Command{
		Use:   "diff [dir]",
		Short: "Report settings no base or local source explains",
		Long: `Compares settings.json against settings.base.jsonc and
settings.local.jsonc in the settings directory and reports orphaned
content: keys, values, and array elements of the merged file that
neither source carries. Both .jsonc sources are optional and default to
an empty document; settings.json is required.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := ctx.resolveSettingsDir(args, dirFlag)
			if err != nil {
				return err
			}
			logger := logging.NewComponentLogger(ctx.ensureLogger(), "settings-diff")

			docs, err := settings.Load(dir)
			if err != nil {
				return err
			}
			orphans := settings.Orphans(docs.Settings, docs.Base, docs.Local)
			logger.Debug("diff computed",
				logging.String("dir", dir),
				logging.Int("orphaned_keys", orphans.Len()),
			)

			out := cmd.OutOrStdout()
			if orphans.Len() == 0 {
				fmt.Fprintln(out, noOrphansMessage)
				return nil
			}

			switch format {
			case "json":
				cfg, _ := ctx.ensureConfig()
				indent := strings.Repeat(" ", cfg.Output.Indent)
				fmt.Fprintln(out, jsonc.EncodeIndent(orphans, indent))
			case "table":
				fmt.Fprintln(out, renderOrphanTable(orphans))
			default:
				return fmt.Errorf("unsupported format %q (expected json or table)", format)
			}

			if unified {
				explained := settings.Prune(docs.Settings, orphans)
				text, err := renderUnifiedDiff(explained, docs.Settings)
				if err != nil {
					return fmt.Errorf("render unified diff: %w", err)
				}
				fmt.Fprint(out, colorizeDiff(out, text))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "Settings directory (defaults to paths.settings_dir)")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Report format: json or table")
	cmd.Flags().BoolVarP(&unified, "unified", "u", false, "Additionally print a unified diff against the explained subset")
	return cmd
}

func newSettingsSourcesCommand(ctx *commandContext) *cobra.Command {
	var dirFlag string

	cmd := &cobra.Command{
		Use:   "sources [dir]",
		Short: "List the settings files the diff operates on",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := ctx.resolveSettingsDir(args, dirFlag)
			if err != nil {
				return err
			}

			infos := settings.Sources(dir)
			rows := make([][]string, 0, len(infos))
			for _, info := range infos {
				size := "-"
				keys := "-"
				if info.Exists {
					size = strconv.FormatInt(info.Size, 10)
					keys = strconv.Itoa(info.TopKeys)
				}
				rows = append(rows, []string{info.Name, yesNo(info.Exists), size, keys})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"File", "Present", "Bytes", "Top-level keys"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "Settings directory (defaults to paths.settings_dir)")
	return cmd
}

// resolveSettingsDir picks the settings directory: positional argument,
// then --dir flag, then the configured default.
func (c *commandContext) resolveSettingsDir(args []string, dirFlag string) (string, error) {
	candidate := strings.TrimSpace(dirFlag)
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		candidate = strings.TrimSpace(args[0])
	}
	if candidate != "" {
		return config.ExpandPath(candidate)
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	return cfg.Paths.SettingsDir, nil
}

func renderUnifiedDiff(explained, actual *jsonc.Value) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(explained.String() + "\n"),
		B:        difflib.SplitLines(actual.String() + "\n"),
		FromFile: "explained",
		ToFile:   settings.SettingsFile,
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}
