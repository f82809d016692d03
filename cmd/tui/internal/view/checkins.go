package view

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/gymd/internal/checkin"
	"github.com/MrJamesThe3rd/gymd/internal/user"
)

// checkinItem wraps a check-in to implement list.Item.
type checkinItem struct {
	c     *checkin.Checkin
	email string
}

func (i checkinItem) Title() string {
	return fmt.Sprintf("%s  %s", i.c.Timestamp.Format("2006-01-02 15:04"), i.email)
}

func (i checkinItem) Description() string { return "" }

func (i checkinItem) FilterValue() string { return i.email }

// CheckinsModel shows the recorded check-ins, newest first.
type CheckinsModel struct {
	CommonModel
	checkinService *checkin.Service
	userService    *user.Service

	list list.Model

	loading bool
	status  string
}

func NewCheckinsModel(cSvc *checkin.Service, uSvc *user.Service) CheckinsModel {
	l := list.New([]list.Item{}, checkinItemDelegate{}, 0, 0)
	l.Title = "Check-ins"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	return CheckinsModel{
		checkinService: cSvc,
		userService:    uSvc,
		list:           l,
		loading:        true,
	}
}

func (m CheckinsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m CheckinsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadCheckinsMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		items := make([]list.Item, len(msg.checkins))
		for i, c := range msg.checkins {
			email := msg.emails[c.UserID.String()]
			if email == "" {
				email = c.UserID.String()
			}

			items[i] = checkinItem{c: c, email: email}
		}

		m.list.SetItems(items)

		if len(msg.checkins) == 0 {
			m.status = "No check-ins recorded."
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" && m.list.FilterState() != list.Filtering {
			return m, Back
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m CheckinsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading check-ins...")
	}

	statusLine := ""
	if m.status != "" {
		statusLine = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n"
	}

	return lipgloss.NewStyle().Padding(1).Render(statusLine + m.list.View())
}

// Messages

type loadCheckinsMsg struct {
	checkins []*checkin.Checkin
	emails   map[string]string
	err      error
}

func (m CheckinsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		checkins, err := m.checkinService.List(ctx, checkin.ListFilter{})
		if err != nil {
			return loadCheckinsMsg{err: err}
		}

		emails := make(map[string]string, len(checkins))

		for _, c := range checkins {
			if _, ok := emails[c.UserID.String()]; ok {
				continue
			}

			u, err := m.userService.Get(ctx, c.UserID)
			if err != nil {
				continue
			}

			emails[c.UserID.String()] = u.Email
		}

		return loadCheckinsMsg{checkins: checkins, emails: emails}
	}
}

// checkinItemDelegate renders items in the list.
type checkinItemDelegate struct{}

func (d checkinItemDelegate) Height() int                             { return 1 }
func (d checkinItemDelegate) Spacing() int                            { return 0 }
func (d checkinItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d checkinItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(checkinItem)
	if !ok {
		return
	}

	title := i.Title()
	if index == m.Index() {
		title = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("> " + title)
	} else {
		title = "  " + title
	}

	fmt.Fprintf(w, "%s\n", title)
}
