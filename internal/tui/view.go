package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/projtimer/internal/store"
)

// chromeHeight is every row of the screen except the session list.
const chromeHeight = 14

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var body string
	if a.formActive && a.exportForm != nil {
		body = a.renderExportForm()
	} else {
		parts := []string{
			a.renderInput(),
			"",
			a.renderStatus(),
			"",
			a.renderButton(),
			"",
			a.list.View(),
		}
		if a.showChart {
			parts = append(parts, a.renderChart())
		}
		body = a.styles.panel.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, footer)
}

func (a App) renderHeader() string {
	title := a.styles.title.Render(appTitle + " 👋")
	return a.styles.header.Width(a.width).Render(title)
}

func (a App) renderInput() string {
	return a.styles.input.Width(max(10, a.width-6)).Render(a.input.View())
}

func (a App) renderStatus() string {
	return a.styles.timer.Width(max(10, a.width-4)).Render(statusLine(a.timer.running(), a.timer.currentElapsed()))
}

func (a App) renderButton() string {
	label := "[ " + buttonLabel(a.timer.running()) + " ]"
	if a.timer.running() {
		return a.styles.buttonStop.Render(label)
	}
	return a.styles.button.Render(label)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		if a.statusErr {
			status = a.styles.errorText.Render(" " + a.status)
		} else {
			status = a.styles.muted.Render(" " + a.status)
		}
	}

	timerInfo := ""
	if a.timer.running() {
		timerInfo = a.styles.success.Render(" ● " + formatSeconds(a.timer.currentElapsed()))
	}

	left := a.styles.footer.Render(helpView)
	right := timerInfo + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

// renderSessions draws the session list, or the empty message.
func (a App) renderSessions() string {
	if len(a.sessions) == 0 {
		return a.styles.empty.Width(max(10, a.width-4)).Render(emptySessions)
	}
	rows := make([]string, 0, len(a.sessions))
	for _, s := range a.sessions {
		rows = append(rows, a.styles.item.Width(max(10, a.width-4)).Render(sessionRow(s)))
	}
	return strings.Join(rows, "\n")
}

// syncList pushes the sessions into the scrollable list and keeps the
// newest one in view.
func (a *App) syncList() {
	a.list.SetContent(a.renderSessions())
	a.list.GotoBottom()
}

func (a *App) resizeList() {
	h := a.height - chromeHeight
	if a.showChart {
		h -= chartHeight + 1
	}
	a.list.Width = max(10, a.width-4)
	a.list.Height = max(3, h)
	a.syncList()
}

func buttonLabel(running bool) string {
	if running {
		return labelStop
	}
	return labelStart
}

func statusLine(running bool, elapsed int64) string {
	if running {
		return "Current time: " + formatSeconds(elapsed)
	}
	return timerStopped
}

func sessionRow(s store.Session) string {
	return fmt.Sprintf("%s - %s", s.Name, s.ElapsedDisplay)
}
