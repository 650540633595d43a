package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eringen/pubshell"
	"github.com/eringen/pubshell/site"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	siteFile   string
	contentDir string
	strict     bool
)

var rootCmd = &cobra.Command{
	Use:   "pubshell",
	Short: "pubshell - a blog layout shell built with Go, Echo, and templ",
	Long: `pubshell wraps the pages of a personal blog in a shared layout
(header, footer with social links, light/dark theme switch) and either
serves them over HTTP or writes them out as a static site.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pubshell version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pubshell %s\n", version)
	},
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().StringVar(&siteFile, "site", "", "site metadata file (default $SITE_FILE or site.yaml)")
	rootCmd.PersistentFlags().StringVar(&contentDir, "content", "", "content directory (default $CONTENT_DIR or content)")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "fail on incomplete site metadata")

	rootCmd.AddCommand(serveCmd, buildCmd, newCmd, versionCmd)
}

// loadApp builds an App from the environment, the persistent flags and the
// site metadata file.
func loadApp(cmd *cobra.Command) (*pubshell.App, error) {
	cfg, err := pubshell.LoadConfig()
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("site") {
		cfg.SiteFile = siteFile
	}
	if flags.Changed("content") {
		cfg.ContentDir = contentDir
	}
	if flags.Changed("strict") {
		cfg.Strict = strict
	}

	logger, err := pubshell.NewLogger(cfg.LogLevel, cfg.LogPretty, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	meta, err := site.Load(cfg.SiteFile)
	if err != nil {
		return nil, err
	}
	return pubshell.New(cfg, meta, pubshell.WithLogger(logger)), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
