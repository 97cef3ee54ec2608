package tui

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/projtimer/internal/export"
	"github.com/sadopc/projtimer/internal/store"
)

func (a App) showExportForm() (App, tea.Cmd) {
	if len(a.sessions) == 0 {
		a.status = "Nothing to export"
		a.statusErr = false
		return a, nil
	}

	*a.exportFormat = a.defaultFormat
	*a.exportDir = a.defaultDir

	a.exportForm = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Format").
				Options(
					huh.NewOption("CSV", export.FormatCSV),
					huh.NewOption("JSON", export.FormatJSON),
				).Value(a.exportFormat),
			huh.NewInput().Title("Directory").Value(a.exportDir).Validate(validateExportDir),
		),
	).WithShowHelp(true).WithShowErrors(true)

	a.formActive = true
	a.input.Blur()
	return a, a.exportForm.Init()
}

func (a App) updateExportForm(msg tea.Msg) (App, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "esc" {
		return a.closeExportForm(), nil
	}

	form, cmd := a.exportForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.exportForm = f
	}

	switch a.exportForm.State {
	case huh.StateCompleted:
		a = a.closeExportForm()
		return a, a.doExport(*a.exportFormat, *a.exportDir)
	case huh.StateAborted:
		return a.closeExportForm(), nil
	}
	return a, cmd
}

func (a App) closeExportForm() App {
	a.formActive = false
	a.exportForm = nil
	a.input.Focus()
	return a
}

func (a App) doExport(format, dir string) tea.Cmd {
	sessions := append([]store.Session(nil), a.sessions...)
	dir = strings.TrimSpace(dir)
	return func() tea.Msg {
		path, err := export.ToFile(sessions, format, dir)
		if err != nil {
			log.Printf("export %s: %v", format, err)
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}
		log.Printf("exported %d sessions to %s", len(sessions), path)
		return exportDoneMsg{path: path}
	}
}

func (a App) renderExportForm() string {
	title := a.styles.title.Render("Export Sessions")
	count := a.styles.muted.Render(fmt.Sprintf("%d recorded", len(a.sessions)))
	content := lipgloss.JoinVertical(lipgloss.Left, title, count, "", a.exportForm.View())
	return a.styles.panel.Render(content)
}

func validateExportDir(dir string) error {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return errors.New("directory is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot use %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}
