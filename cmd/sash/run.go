package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"golang.org/x/term"

	"github.com/Gaurav-Gosain/sash/internal/app"
	"github.com/Gaurav-Gosain/sash/internal/config"
	"github.com/Gaurav-Gosain/sash/internal/input"
	"github.com/Gaurav-Gosain/sash/internal/server"
)

// filterMouseMotion drops mouse motion events that cannot change any state.
// Motion always passes during drags, resizes, and while a caption button is
// held; outside those, only a cell change can affect button hover.
func filterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	motion, ok := msg.(tea.MouseMotionMsg)
	if !ok {
		return msg
	}

	m, ok := model.(*app.Desktop)
	if !ok {
		return msg
	}

	if m.Dragging || m.Resizing || m.PressedButton != nil {
		return msg
	}

	if motion.X == m.LastMouseX && motion.Y == m.LastMouseY {
		return nil
	}

	return msg
}

// overridesFromFlags collects the persistent CLI flags into a config override set.
func overridesFromFlags() config.Overrides {
	return config.Overrides{
		ASCIIOnly:           asciiOnly,
		BorderStyle:         borderStyle,
		HideClock:           hideClock,
		HideStats:           hideStats,
		MirrorLayout:        mirrorLayout,
		SystemTitleBar:      systemTitleBar,
		ControlsOverlay:     controlsOverlay,
		OverlayHeight:       overlayHeight,
		ButtonOrderLeading:  buttonOrderLeading,
		ButtonOrderTrailing: buttonOrderTrailing,
		ThemeName:           themeName,
	}
}

func runLocal() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("sash must be run in a terminal")
	}

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Printf("Warning: Failed to load config, using defaults: %v", err)
		userConfig = config.DefaultConfig()
	}

	overrides := overridesFromFlags()
	// Terminals without color support get the plain ASCII frame up front.
	// Detect handles TERM, COLORTERM, NO_COLOR and terminfo.
	if !overrides.ASCIIOnly {
		switch colorprofile.Detect(os.Stdout, os.Environ()) {
		case colorprofile.Ascii, colorprofile.NoTTY:
			overrides.ASCIIOnly = true
		}
	}
	config.ApplyOverrides(overrides, userConfig)

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				log.Printf("Warning: failed to close CPU profile file: %v", closeErr)
			}
		}()

		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	app.SetInputHandler(input.HandleInput)

	keybindRegistry := config.NewKeybindRegistry(&userConfig.Keybindings)

	initialDesktop := app.NewDesktop(app.DesktopOptions{
		KeybindRegistry: keybindRegistry,
	})

	p := tea.NewProgram(
		initialDesktop,
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
		tea.WithFilter(filterMouseMotion),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}

	return nil
}

func runSSHServer(sshHost, sshPort, sshKeyPath string) error {
	config.ApplyOverrides(overridesFromFlags(), nil)

	app.SetInputHandler(input.HandleInput)

	log.Printf("Starting sash SSH server on %s:%s", sshHost, sshPort)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Println("Shutting down SSH server...")
		cancel()
	}()

	cfg := &server.SSHServerConfig{
		Host:    sshHost,
		Port:    sshPort,
		KeyPath: sshKeyPath,
		Version: version,
	}
	if err := server.StartSSHServer(ctx, cfg); err != nil {
		return fmt.Errorf("SSH server error: %w", err)
	}
	return nil
}
