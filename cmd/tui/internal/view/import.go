package view

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/gymd/internal/importer"
	"github.com/MrJamesThe3rd/gymd/internal/membership"
	"github.com/MrJamesThe3rd/gymd/internal/user"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateFilePick importState = iota
	importStateImporting
	importStateResult
)

// ImportModel drives a roster import: pick a CSV export, then create the
// users and memberships it describes.
type ImportModel struct {
	CommonModel
	importService     *importer.Service
	userService       *user.Service
	membershipService *membership.Service

	state      importState
	filePicker filepicker.Model

	status string
	err    error
}

func NewImportModel(impSvc *importer.Service, uSvc *user.Service, mSvc *membership.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		importService:     impSvc,
		userService:       uSvc,
		membershipService: mSvc,
		filePicker:        fp,
	}
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			if m.state == importStateResult {
				m.state = importStateFilePick
				m.err = nil
				m.status = ""

				return m, nil
			}

			return m, Back
		}

	case rosterImportResultMsg:
		m.state = importStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.status = fmt.Sprintf("Imported %d memberships (%d rows skipped).", msg.imported, msg.skipped)

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateImporting
		m.status = fmt.Sprintf("Importing from %s...", path)

		return m, m.importCmd(path)
	}

	return m, cmd
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			"Select roster file to import:\n\n" + m.filePicker.View(),
		)
	case importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)
	if m.err != nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.status) +
				"\n\n(Esc to go back)",
		)
	}

	return style.Render(
		lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render(m.status) +
			"\n\n(Esc to go back)",
	)
}

// Messages

type rosterImportResultMsg struct {
	imported int
	skipped  int
	err      error
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return rosterImportResultMsg{err: err}
		}
		defer f.Close()

		records, err := m.importService.Import(importer.FormatRoster, f)
		if err != nil {
			return rosterImportResultMsg{err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		var imported, skipped int

		for _, rec := range records {
			u, err := m.userService.EnsureByEmail(ctx, rec.Email, rec.Name)
			if err != nil {
				skipped++
				continue
			}

			_, err = m.membershipService.Create(ctx, membership.CreateParams{
				UserID:    u.ID,
				State:     rec.State,
				Credits:   rec.Credits,
				StartDate: rec.StartDate,
				EndDate:   rec.EndDate,
			})
			if err != nil {
				skipped++
				continue
			}

			imported++
		}

		return rosterImportResultMsg{imported: imported, skipped: skipped}
	}
}
