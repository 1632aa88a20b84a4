// Package server serves the desktop demo over SSH using wish. Every
// connection gets its own desktop sized to the client PTY, so multiple
// clients can poke at the frame chrome independently.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"

	tea "charm.land/bubbletea/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/activeterm"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"github.com/adrg/xdg"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/ssh"

	"github.com/Gaurav-Gosain/sash/internal/app"
	"github.com/Gaurav-Gosain/sash/internal/config"
)

// SSHServerConfig holds the SSH server settings.
type SSHServerConfig struct {
	Host    string
	Port    string
	KeyPath string // empty means a key under the XDG data dir
	Version string
}

// StartSSHServer runs the SSH server until the context is canceled or the
// listener fails. Shutdown drains active sessions with a timeout.
func StartSSHServer(ctx context.Context, cfg *SSHServerConfig) error {
	addr := net.JoinHostPort(cfg.Host, cfg.Port)

	srv, err := wish.NewServer(
		wish.WithAddress(addr),
		wish.WithHostKeyPath(hostKeyPath(cfg.KeyPath)),
		wish.WithMiddleware(
			bubbletea.Middleware(teaHandler),
			activeterm.Middleware(),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("could not create server: %w", err)
	}

	errc := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
	}()

	log.Printf("Listening on %s", addr)

	select {
	case err := <-errc:
		return fmt.Errorf("could not start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ServerShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("could not shut down server: %w", err)
	}
	return nil
}

// teaHandler builds a fresh desktop for each SSH session, sized to the
// client's PTY. The keybind registry comes from the server-side config file.
func teaHandler(s ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := s.Pty()

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		userConfig = config.DefaultConfig()
	}

	m := app.NewDesktop(app.DesktopOptions{
		KeybindRegistry: config.NewKeybindRegistry(&userConfig.Keybindings),
		Width:           pty.Window.Width,
		Height:          pty.Window.Height,
	})
	// The client's color support comes from the forwarded environment,
	// there is no local tty to probe.
	profile := colorprofile.Env(s.Environ())
	m.LogInfo("SSH session from %s (%s, %s)", s.RemoteAddr(), pty.Term, profile)

	return m, []tea.ProgramOption{tea.WithFPS(config.NormalFPS)}
}

func hostKeyPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if path, err := xdg.DataFile("sash/ssh_host_ed25519"); err == nil {
		return path
	}
	return ".sash/ssh_host_ed25519"
}
