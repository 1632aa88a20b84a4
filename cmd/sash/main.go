// Package main implements sash, a terminal desktop for exercising window
// frame chrome: caption buttons with hover and pressed states, titlebar
// drags, edge and corner resizes, mirrored layouts, and the
// controls-overlay readout.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	tint "github.com/lrstanley/bubbletint/v2"
	"github.com/spf13/cobra"

	"github.com/Gaurav-Gosain/sash/internal/theme"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	cpuProfile          string
	asciiOnly           bool
	themeName           string
	listThemes          bool
	previewTheme        string
	borderStyle         string
	mirrorLayout        bool
	systemTitleBar      bool
	controlsOverlay     bool
	overlayHeight       int
	buttonOrderLeading  string
	buttonOrderTrailing string
	hideClock           bool
	hideStats           bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sash",
		Short: "Window frame chrome playground",
		Long: `sash - a window frame chrome playground

A terminal desktop where every window carries real non-client chrome:
caption buttons with hover and pressed states, titlebar drags, edge and
corner resizes, right-to-left mirroring, and a controls-overlay readout
for content that extends into the titlebar.`,
		Example: `  # Run sash
  sash

  # Run with a specific theme
  sash --theme dracula

  # List all available themes
  sash --list-themes

  # Preview a theme's colors
  sash --preview-theme dracula

  # Mirror the frame layout (right-to-left)
  sash --mirror

  # Put the caption buttons on the leading edge
  sash --button-order-leading close,minimize,maximize

  # Extend window content into the titlebar
  sash --controls-overlay

  # Run as SSH server
  sash ssh --port 2222

  # Print the configuration path
  sash config path`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			if previewTheme != "" {
				return previewThemeColors(previewTheme)
			}

			if listThemes {
				if err := theme.Initialize("default"); err != nil {
					return fmt.Errorf("failed to initialize themes: %w", err)
				}
				for _, t := range tint.TintIDs() {
					fmt.Println(t)
				}
				return nil
			}
			return runLocal()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cpuProfile, "cpuprofile", "", "Write CPU profile to file")
	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii-only", false, "Use ASCII characters instead of Unicode glyphs")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight). Leave empty to use standard terminal colors")
	rootCmd.PersistentFlags().BoolVar(&listThemes, "list-themes", false, "List all available themes and exit")
	rootCmd.PersistentFlags().StringVar(&previewTheme, "preview-theme", "", "Preview a theme's colors")
	rootCmd.PersistentFlags().StringVar(&borderStyle, "border-style", "", "Window border style: rounded, normal, thick, double, hidden, block, ascii (default: from config or rounded)")
	rootCmd.PersistentFlags().BoolVar(&mirrorLayout, "mirror", false, "Lay window frames out right-to-left")
	rootCmd.PersistentFlags().BoolVar(&systemTitleBar, "system-titlebar", false, "Disable the in-frame titlebar and caption buttons")
	rootCmd.PersistentFlags().BoolVar(&controlsOverlay, "controls-overlay", false, "Extend window content into the titlebar")
	rootCmd.PersistentFlags().IntVar(&overlayHeight, "overlay-height", 0, "Reported controls overlay height in rows (0 derives it from the caption geometry)")
	rootCmd.PersistentFlags().StringVar(&buttonOrderLeading, "button-order-leading", "", "Leading-edge caption buttons, comma separated (minimize, maximize, close)")
	rootCmd.PersistentFlags().StringVar(&buttonOrderTrailing, "button-order-trailing", "", "Trailing-edge caption buttons, comma separated")
	rootCmd.PersistentFlags().BoolVar(&hideClock, "hide-clock", false, "Hide the clock overlay")
	rootCmd.PersistentFlags().BoolVar(&hideStats, "hide-stats", false, "Hide the CPU/memory overlay")

	var sshPort, sshHost, sshKeyPath string

	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Run sash as SSH server",
		Long: `Run sash as an SSH server

Allows remote connections to the desktop via SSH. The server will generate
a host key automatically if not specified. Every connection gets its own
desktop sized to the client terminal.`,
		Example: `  # Start SSH server on default port
  sash ssh

  # Start on custom port
  sash ssh --port 2222

  # Specify custom host key
  sash ssh --key-path /path/to/host_key`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSSHServer(sshHost, sshPort, sshKeyPath)
		},
	}

	sshCmd.Flags().StringVar(&sshPort, "port", "2222", "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage sash configuration",
		Long:  `Manage sash configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Long:  `Print the path to the sash configuration file`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the sash configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return editConfigFile()
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the sash configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return resetConfigToDefaults()
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
		Long:    `View and inspect sash keybinding configuration`,
	}

	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		Long:  `Display all configured keybindings grouped by section`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return listKeybindings()
		},
	}

	keybindsCmd.AddCommand(keybindsListCmd)

	rootCmd.AddCommand(sshCmd, configCmd, keybindsCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
