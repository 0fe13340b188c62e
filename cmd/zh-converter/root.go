// --- START OF FINAL REVISED FILE cmd/zh-converter/root.go ---
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/internal/cli"
	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/internal/cli/config"
	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter"
	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter/script"
)

var (
	// These are set during build time using -ldflags
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	cfgFile     string
	profileName string
	verbose     bool
}

// newRootCmd builds the command tree. The root command converts a directory
// tree in place; "text" converts a single string.
func newRootCmd() *cobra.Command {
	gf := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:   "zh-converter -i <dir>",
		Short: "Converts Simplified Chinese files to Traditional Chinese in place.",
		Long: `zh-converter walks a directory, converts every file whose name ends with one of
the configured extensions from Simplified to Traditional Chinese using OpenCC
dictionaries, rewrites lang="zh-CN" to lang="zh-TW" and writes each file back.

Progress is shown in a terminal UI when attached to a TTY, and a final
"all converted" status is printed when the run completes.`,
		Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			req, logger, err := config.LoadAndValidate(gf.cfgFile, gf.profileName, version, gf.verbose, cmd.Flags())
			if err != nil {
				return err
			}
			return cli.Run(ctx, req, logger, commandStreams(cmd))
		},
	}
	rootCmd.SetVersionTemplate(`{{.Name}} version {{.Version}}` + "\n")

	rootCmd.PersistentFlags().StringVar(&gf.cfgFile, "config", "", "Configuration file path (default searches ., $HOME/.config/zh-converter/, $HOME/.zh-converter/)")
	rootCmd.PersistentFlags().StringVar(&gf.profileName, "profile", "", "Name of configuration profile to use")
	rootCmd.PersistentFlags().BoolVarP(&gf.verbose, "verbose", "v", false, "Enable verbose (debug) logging output (disables TUI)")

	// Selection
	rootCmd.Flags().StringP("input", "i", "", "Directory to convert (required unless set in config)")
	rootCmd.Flags().StringSliceP("ext", "e", nil, `File name suffixes to convert, e.g. ".html,.css" (default ".html,.css,.js,.yaml")`)
	rootCmd.Flags().StringSlice("language", nil, `Languages whose extensions are converted, e.g. "HTML,YAML"`)
	rootCmd.Flags().StringArray("ignore", []string{}, "Gitignore-style patterns to exclude (can be specified multiple times)")
	rootCmd.Flags().Bool("skip-vendored", converter.DefaultSkipVendored, "Skip vendored paths such as node_modules and minified bundles")

	// Conversion
	rootCmd.Flags().StringP("mode", "m", string(converter.DefaultMode), "Conversion profile: "+profileList())
	rootCmd.Flags().String("on-decode-error", string(converter.DefaultOnDecodeError), `Behavior for files that are not valid text ("stop" or "skip")`)
	rootCmd.Flags().String("write-mode", string(converter.DefaultWriteMode), `How files are replaced ("inplace" or "atomic")`)
	rootCmd.Flags().String("source-encoding", "", `Decode files from a legacy encoding such as "gbk" or "big5" (default UTF-8)`)
	rootCmd.Flags().Bool("no-tag-rewrite", false, `Do not rewrite lang="zh-CN" to lang="zh-TW"`)
	rootCmd.Flags().Bool("require-clean-git", converter.DefaultRequireCleanGit, "Refuse to convert files with uncommitted git changes")

	// Output
	rootCmd.Flags().Bool("no-tui", false, "Disable interactive Terminal UI even if in a TTY")
	rootCmd.Flags().String("output-format", string(converter.DefaultOutputFormat), `Final report format ("text", "json" or "yaml")`)

	rootCmd.AddCommand(newTextCmd(gf))
	return rootCmd
}

func newTextCmd(gf *globalFlags) *cobra.Command {
	textCmd := &cobra.Command{
		Use:   "text [TEXT|-]",
		Short: "Converts a string (or standard input with \"-\") and prints the result.",
		Long: `text converts the given string with the selected conversion profile and prints
it to standard output. With "-" or no argument the text is read from standard
input. No files are read or written and lang attributes are left untouched.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			mode, logger, err := config.LoadForText(gf.cfgFile, gf.profileName, gf.verbose, cmd.Flags())
			if err != nil {
				return err
			}
			return cli.RunText(input, mode, nil, logger, commandStreams(cmd))
		},
	}
	textCmd.Flags().StringP("mode", "m", string(converter.DefaultMode), "Conversion profile: "+profileList())
	return textCmd
}

func commandStreams(cmd *cobra.Command) cli.Streams {
	return cli.Streams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func profileList() string {
	var names []string
	for _, p := range script.Profiles() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

// --- END OF FINAL REVISED FILE cmd/zh-converter/root.go ---
