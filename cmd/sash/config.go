package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"

	"github.com/Gaurav-Gosain/sash/internal/config"
	"github.com/Gaurav-Gosain/sash/internal/theme"
)

// previewThemeColors prints swatches for every color of the named theme.
func previewThemeColors(name string) error {
	if err := theme.Initialize(name); err != nil {
		return fmt.Errorf("failed to initialize themes: %w", err)
	}

	t := theme.Current()
	if t == nil || !strings.EqualFold(t.ID, name) {
		return fmt.Errorf("unknown theme %q (use --list-themes to see available themes)", name)
	}

	fmt.Printf("%s (%s)\n\n", t.DisplayName, t.ID)

	colors := []struct {
		name string
		c    *tint.Color
	}{
		{"fg", t.Fg},
		{"bg", t.Bg},
		{"black", t.Black},
		{"red", t.Red},
		{"green", t.Green},
		{"yellow", t.Yellow},
		{"blue", t.Blue},
		{"purple", t.Purple},
		{"cyan", t.Cyan},
		{"white", t.White},
		{"bright black", t.BrightBlack},
		{"bright red", t.BrightRed},
		{"bright green", t.BrightGreen},
		{"bright yellow", t.BrightYellow},
		{"bright blue", t.BrightBlue},
		{"bright purple", t.BrightPurple},
		{"bright cyan", t.BrightCyan},
		{"bright white", t.BrightWhite},
	}

	for _, entry := range colors {
		if entry.c == nil {
			continue
		}
		block := lipgloss.NewStyle().Background(entry.c).Render("      ")
		fmt.Printf("%s  %-14s %s\n", block, entry.name, theme.ColorToString(entry.c))
	}
	return nil
}

func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to determine config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

// editConfigFile opens the config file in the user's editor, creating the
// file with defaults first if it doesn't exist yet.
func editConfigFile() error {
	if _, err := config.LoadUserConfig(); err != nil {
		return fmt.Errorf("failed to prepare config file: %w", err)
	}

	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to determine config path: %w", err)
	}

	editor := findEditor()
	if editor == "" {
		return fmt.Errorf("no editor found; set $EDITOR or $VISUAL")
	}

	// #nosec G204 - the editor comes from the user's own environment
	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func findEditor() string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if editor := os.Getenv(env); editor != "" {
			return editor
		}
	}
	for _, editor := range []string{"vim", "vi", "nano", "emacs"} {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}
	return ""
}

func resetConfigToDefaults() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to determine config path: %w", err)
	}

	fmt.Printf("This will overwrite %s with defaults. Continue? [y/N] ", path)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer != "y" && answer != "yes" {
		fmt.Println("Aborted.")
		return nil
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove config file: %w", err)
	}
	// Loading with no file on disk recreates it with defaults
	if _, err := config.LoadUserConfig(); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}

	fmt.Printf("Configuration reset: %s\n", path)
	return nil
}

func listKeybindings() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		userConfig = config.DefaultConfig()
	}
	registry := config.NewKeybindRegistry(&userConfig.Keybindings)

	fmt.Printf("Leader key: %s\n", userConfig.Keybindings.LeaderKey)
	for _, section := range config.GetKeybindings(registry) {
		fmt.Printf("\n%s\n", section.Title)
		for _, b := range section.Bindings {
			fmt.Printf("  %-26s %s\n", b.Key, b.Description)
		}
	}
	return nil
}
