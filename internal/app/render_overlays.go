package app

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/sash/internal/config"
	"github.com/Gaurav-Gosain/sash/internal/theme"
)

func (m *Desktop) renderOverlays() []*lipgloss.Layer {
	var layers []*lipgloss.Layer

	// Show clock unless hidden (but always show while the leader prefix
	// is waiting for its second key)
	if !config.HideClock || m.PrefixActive {
		currentTime := time.Now().Format("15:04:05")
		statusText := currentTime
		if m.PrefixActive {
			statusText = "PREFIX | " + currentTime
		}

		timeStyle := lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

		if m.PrefixActive {
			timeStyle = timeStyle.
				Background(theme.ClockOverlayFg()).
				Foreground(theme.ClockOverlayBg())
		} else {
			timeStyle = timeStyle.
				Background(theme.ClockOverlayBg()).
				Foreground(theme.ClockOverlayFg())
		}

		timeLayer := lipgloss.NewLayer(timeStyle.Render(statusText)).
			X(1).
			Y(0).
			Z(config.ZIndexTime).
			ID("time")

		layers = append(layers, timeLayer)
	}

	if m.visibleWindowCount() == 0 {
		layers = append(layers, m.renderWelcome())
	}

	if !config.HideStats {
		layers = append(layers, m.renderStatsOverlay())
	}

	if m.ShowLogs {
		layers = append(layers, m.renderLogsOverlay())
	}

	if m.ShowHelp {
		layers = append(layers, m.renderHelpOverlay())
	}

	if len(m.Notifications) > 0 {
		m.CleanupNotifications()

		notifY := 1
		notifSpacing := 4
		for i, notif := range m.Notifications {
			if i >= 3 {
				break
			}

			timeLeft := notif.Duration - time.Since(notif.StartTime)
			if timeLeft <= 0 {
				continue
			}

			var bgColor, fgColor, icon string
			switch notif.Type {
			case "error":
				bgColor = "#dc2626"
				fgColor = "#ffffff"
				icon = config.NotificationIconError
			case "warning":
				bgColor = "#d97706"
				fgColor = "#ffffff"
				icon = config.NotificationIconWarning
			case "success":
				bgColor = "#16a34a"
				fgColor = "#ffffff"
				icon = config.NotificationIconSuccess
			default:
				bgColor = "#2563eb"
				fgColor = "#ffffff"
				icon = config.NotificationIconInfo
			}

			maxNotifWidth := min(max(m.Width-8, 20), 60)

			message := notif.Message
			maxMessageLen := maxNotifWidth - 10
			if len(message) > maxMessageLen {
				message = message[:maxMessageLen-3] + "..."
			}

			notifContent := fmt.Sprintf(" %s  %s ", icon, message)

			notifBox := lipgloss.NewStyle().
				Background(lipgloss.Color(bgColor)).
				Foreground(lipgloss.Color(fgColor)).
				Padding(1, 2).
				Bold(true).
				MaxWidth(maxNotifWidth).
				Render(notifContent)

			notifX := max(m.Width-lipgloss.Width(notifBox)-2, 0)
			currentY := notifY + (i * notifSpacing)

			notifLayer := lipgloss.NewLayer(notifBox).
				X(notifX).Y(currentY).Z(config.ZIndexNotifications).
				ID(fmt.Sprintf("notif-%s", notif.ID))

			layers = append(layers, notifLayer)
		}
	}

	return layers
}

func (m *Desktop) visibleWindowCount() int {
	count := 0
	for _, w := range m.Windows {
		if !w.Minimized {
			count++
		}
	}
	return count
}

func (m *Desktop) renderWelcome() *lipgloss.Layer {
	var title string
	if config.UseASCIIOnly {
		title = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			Bold(true).
			Render("S A S H")
	} else {
		asciiArt := `███████╗ █████╗ ███████╗██╗  ██╗
██╔════╝██╔══██╗██╔════╝██║  ██║
███████╗███████║███████╗███████║
╚════██║██╔══██║╚════██║██╔══██║
███████║██║  ██║███████║██║  ██║
╚══════╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝`

		title = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			Bold(true).
			Render(asciiArt)
	}

	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).
		Render("A window frame desktop for the terminal")

	instruction := lipgloss.NewStyle().
		Foreground(lipgloss.Color("7")).
		Render("Press 'n' to create a window, '?' for help")

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		subtitle,
		"",
		instruction,
	)

	boxStyle := lipgloss.NewStyle().
		Border(config.GetBorderForStyle()).
		BorderForeground(lipgloss.Color("6")).
		Padding(1, 2)

	centered := lipgloss.Place(
		m.Width, m.UsableHeight(),
		lipgloss.Center, lipgloss.Center,
		boxStyle.Render(content),
	)

	return lipgloss.NewLayer(centered).
		X(0).Y(0).Z(1).ID("welcome")
}

// renderStatsOverlay draws the CPU and memory widget in the bottom right
// corner, above the status bar.
func (m *Desktop) renderStatsOverlay() *lipgloss.Layer {
	titleStyle := lipgloss.NewStyle().Foreground(theme.StatsTitle()).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(theme.StatsLabel())
	valueStyle := lipgloss.NewStyle().Foreground(theme.StatsValue())

	barWidth := config.StatsOverlayWidth - 4

	cpuNow := 0.0
	if len(m.CPUHistory) > 0 {
		cpuNow = m.CPUHistory[len(m.CPUHistory)-1]
	}

	lines := []string{
		titleStyle.Render("SYSTEM"),
		labelStyle.Render("CPU ") + valueStyle.Render(fmt.Sprintf("%5.1f%%", cpuNow)),
		valueStyle.Render(sparkline(m.CPUHistory, barWidth)),
		labelStyle.Render("RAM ") + valueStyle.Render(fmt.Sprintf("%5.1f%%", m.RAMUsage)),
		valueStyle.Render(usageBar(m.RAMUsage, barWidth)),
	}

	statsBox := lipgloss.NewStyle().
		Border(config.GetBorderForStyle()).
		BorderForeground(theme.HelpBorder()).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))

	x := max(m.Width-lipgloss.Width(statsBox)-1, 0)
	y := max(m.UsableHeight()-lipgloss.Height(statsBox), 0)

	return lipgloss.NewLayer(statsBox).
		X(x).Y(y).Z(config.ZIndexStats).ID("stats")
}

// sparkline maps percentage samples onto one row of bar glyphs, keeping
// the newest samples when there are more than fit.
func sparkline(values []float64, width int) string {
	glyphs := []rune("▁▂▃▄▅▆▇█")
	if config.UseASCIIOnly {
		glyphs = []rune(" .:-=+*#")
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}
	var sb strings.Builder
	for _, v := range values {
		idx := int(v / 100 * float64(len(glyphs)-1))
		idx = max(0, min(idx, len(glyphs)-1))
		sb.WriteRune(glyphs[idx])
	}
	for i := len(values); i < width; i++ {
		sb.WriteRune(' ')
	}
	return sb.String()
}

func usageBar(pct float64, width int) string {
	filled := int(pct / 100 * float64(width))
	filled = max(0, min(filled, width))
	full, empty := "█", "░"
	if config.UseASCIIOnly {
		full, empty = "#", "."
	}
	return strings.Repeat(full, filled) + strings.Repeat(empty, width-filled)
}

func (m *Desktop) renderLogsOverlay() *lipgloss.Layer {
	logTitle := lipgloss.NewStyle().
		Foreground(theme.LogViewerTitle()).
		Bold(true).
		Render("System Logs")

	totalLogs := len(m.LogMessages)
	logsPerPage, maxScroll := logPageBounds(m.Height, totalLogs)
	m.LogScrollOffset = max(0, min(m.LogScrollOffset, maxScroll))

	timeStyle := lipgloss.NewStyle().Foreground(theme.HelpGray())
	hintStyle := lipgloss.NewStyle().Foreground(theme.HelpGray())

	var logLines []string
	logLines = append(logLines, logTitle)
	logLines = append(logLines, "")

	startIdx := m.LogScrollOffset

	displayCount := 0
	for i := startIdx; i < len(m.LogMessages) && displayCount < logsPerPage; i++ {
		msg := m.LogMessages[i]

		var levelColor = theme.LogViewerInfo()
		switch msg.Level {
		case "ERROR":
			levelColor = theme.LogViewerError()
		case "WARN":
			levelColor = theme.LogViewerWarn()
		case "DEBUG":
			levelColor = theme.LogViewerDebug()
		}

		timeStr := timeStyle.Render(msg.Time.Format("15:04:05"))
		levelStr := lipgloss.NewStyle().
			Foreground(levelColor).
			Render(fmt.Sprintf("[%s]", msg.Level))

		logLines = append(logLines, fmt.Sprintf("%s %s %s", timeStr, levelStr, msg.Message))
		displayCount++
	}

	if maxScroll > 0 {
		scrollInfo := fmt.Sprintf("Showing %d-%d of %d logs (↑/↓ to scroll)",
			startIdx+1, startIdx+displayCount, len(m.LogMessages))
		logLines = append(logLines, "")
		logLines = append(logLines, hintStyle.Render(scrollInfo))
	}

	logLines = append(logLines, "")
	logLines = append(logLines, hintStyle.Render("Press 'q'/'esc' to exit, j/k or ↑/↓ to scroll"))

	logBox := lipgloss.NewStyle().
		Border(config.GetBorderForStyle()).
		BorderForeground(theme.HelpBorder()).
		Padding(1, 2).
		Width(config.LogViewerWidth).
		Background(theme.LogViewerBg()).
		Render(strings.Join(logLines, "\n"))

	centeredLogs := lipgloss.Place(m.Width, m.UsableHeight(),
		lipgloss.Center, lipgloss.Center, logBox)

	return lipgloss.NewLayer(centeredLogs).
		X(0).Y(0).Z(config.ZIndexLogs).ID("logs")
}

func (m *Desktop) renderHelpOverlay() *lipgloss.Layer {
	sections := config.GetKeybindings(m.KeybindRegistry)

	blocks := make([]string, len(sections))
	totalLines := 0
	for i, section := range sections {
		blocks[i] = renderHelpSection(section)
		totalLines += lipgloss.Height(blocks[i]) + 1
	}

	// Pack the sections into two balanced columns
	var left, right []string
	leftLines := 0
	for i, block := range blocks {
		if leftLines < totalLines/2 || i == 0 {
			left = append(left, block)
			leftLines += lipgloss.Height(block) + 1
		} else {
			right = append(right, block)
		}
	}

	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(left, "\n\n"),
		"    ",
		strings.Join(right, "\n\n"),
	)

	hint := lipgloss.NewStyle().
		Foreground(theme.HelpGray()).
		Render(fmt.Sprintf("Leader: %s    Press '?' or 'esc' to close", config.LeaderKey))

	content := lipgloss.JoinVertical(lipgloss.Left, columns, "", hint)

	helpBox := lipgloss.NewStyle().
		Border(config.GetBorderForStyle()).
		BorderForeground(theme.HelpBorder()).
		Padding(1, 2).
		Background(theme.LogViewerBg()).
		Render(content)

	centered := lipgloss.Place(m.Width, m.UsableHeight(),
		lipgloss.Center, lipgloss.Center, helpBox)

	return lipgloss.NewLayer(centered).
		X(0).Y(0).Z(config.ZIndexHelp).ID("help")
}

func renderHelpSection(section config.KeybindingSection) string {
	titleStyle := lipgloss.NewStyle().Foreground(theme.StatsTitle()).Bold(true)
	keyStyle := lipgloss.NewStyle().
		Foreground(theme.HelpKeyBadge()).
		Background(theme.HelpKeyBadgeBg())
	descStyle := lipgloss.NewStyle().Foreground(theme.HelpGray())

	maxKey := 0
	for _, b := range section.Bindings {
		maxKey = max(maxKey, lipgloss.Width(b.Key))
	}

	lines := []string{titleStyle.Render(section.Title)}
	for _, b := range section.Bindings {
		badge := keyStyle.Render(" " + b.Key + " ")
		pad := spaces(maxKey - lipgloss.Width(b.Key) + 1)
		lines = append(lines, badge+pad+descStyle.Render(b.Description))
	}
	return strings.Join(lines, "\n")
}
