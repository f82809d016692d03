package view

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/gymd/internal/checkin"
	"github.com/MrJamesThe3rd/gymd/internal/membership"
	"github.com/MrJamesThe3rd/gymd/internal/user"
)

type membershipsState int

const (
	membershipsStateList membershipsState = iota
	membershipsStateCreating
)

// membershipItem wraps a membership to implement list.Item.
type membershipItem struct {
	m     *membership.Membership
	email string
}

func (i membershipItem) Title() string {
	state := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("[%s]", i.m.State))

	end := "open"
	if i.m.EndDate != nil {
		end = FormatDate(*i.m.EndDate)
	}

	return fmt.Sprintf("%s  %s  credits: %d  %s → %s", i.email, state, i.m.Credits, FormatDate(i.m.StartDate), end)
}

func (i membershipItem) Description() string { return "" }

func (i membershipItem) FilterValue() string { return i.email }

type MembershipsModel struct {
	CommonModel
	membershipService *membership.Service
	checkinService    *checkin.Service
	userService       *user.Service

	state membershipsState
	list  list.Model
	form  *huh.Form

	memberships []*membership.Membership
	emails      map[string]string

	loading bool
	status  string

	// Form field bindings
	formEmail   string
	formName    string
	formCredits string
	formStart   string
	formEnd     string
}

func NewMembershipsModel(mSvc *membership.Service, cSvc *checkin.Service, uSvc *user.Service) MembershipsModel {
	l := list.New([]list.Item{}, membershipItemDelegate{}, 0, 0)
	l.Title = "Memberships"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	return MembershipsModel{
		membershipService: mSvc,
		checkinService:    cSvc,
		userService:       uSvc,
		list:              l,
		emails:            make(map[string]string),
		loading:           true,
	}
}

func (m MembershipsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m MembershipsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadMembershipsMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.memberships = msg.memberships
		m.emails = msg.emails
		m.refreshListItems()

		if len(msg.memberships) == 0 {
			m.status = "No memberships found."
		}

		return m, nil

	case checkinResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Check-in rejected: %v", msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("Checked in %s.", msg.email)

		return m, m.loadCmd()

	case createMembershipResultMsg:
		m.state = membershipsStateList
		m.form = nil

		if msg.err != nil {
			m.status = fmt.Sprintf("Error creating membership: %v", msg.err)
			return m, nil
		}

		m.status = "Membership created."

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil
	}

	switch m.state {
	case membershipsStateList:
		return m.updateList(msg)
	case membershipsStateCreating:
		return m.updateCreating(msg)
	}

	return m, nil
}

func (m MembershipsModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.list.FilterState() != list.Filtering {
			switch keyMsg.String() {
			case "esc":
				return m, Back
			case "enter", "c":
				return m, m.checkinCmd()
			case "n":
				return m.startCreating()
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m MembershipsModel) startCreating() (tea.Model, tea.Cmd) {
	m.formEmail = ""
	m.formName = ""
	m.formCredits = "10"
	m.formStart = FormatDate(time.Now())
	m.formEnd = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("email").
				Title("Member email").
				Value(&m.formEmail).
				Validate(func(s string) error {
					if !strings.Contains(s, "@") {
						return fmt.Errorf("invalid email")
					}
					return nil
				}),

			huh.NewInput().
				Key("name").
				Title("Member name (optional)").
				Value(&m.formName),

			huh.NewInput().
				Key("credits").
				Title("Credits").
				Value(&m.formCredits).
				Validate(func(s string) error {
					if _, err := strconv.Atoi(s); err != nil {
						return fmt.Errorf("must be a number")
					}
					return nil
				}),

			huh.NewInput().
				Key("start_date").
				Title("Start date (YYYY-MM-DD)").
				Value(&m.formStart).
				Validate(func(s string) error {
					if _, err := time.Parse(time.DateOnly, s); err != nil {
						return fmt.Errorf("invalid date")
					}
					return nil
				}),

			huh.NewInput().
				Key("end_date").
				Title("End date (optional)").
				Value(&m.formEnd).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if _, err := time.Parse(time.DateOnly, s); err != nil {
						return fmt.Errorf("invalid date")
					}
					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = membershipsStateCreating

	return m, m.form.Init()
}

func (m MembershipsModel) updateCreating(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = membershipsStateList
			m.form = nil

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.createCmd()
}

func (m MembershipsModel) View() string {
	switch m.state {
	case membershipsStateList:
		if m.loading {
			return lipgloss.NewStyle().Padding(2).Render("Loading memberships...")
		}

		statusLine := ""
		if m.status != "" {
			statusLine = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n"
		}

		help := lipgloss.NewStyle().Faint(true).Render("enter/c: check in | n: new | /: filter | esc: back")

		return lipgloss.NewStyle().Padding(1).Render(statusLine + m.list.View() + "\n" + help)

	case membershipsStateCreating:
		if m.form == nil {
			return ""
		}

		return lipgloss.NewStyle().Padding(1).Render("New Membership\n\n" + m.form.View())
	}

	return ""
}

func (m *MembershipsModel) refreshListItems() {
	items := make([]list.Item, len(m.memberships))
	for i, mem := range m.memberships {
		email := m.emails[mem.UserID.String()]
		if email == "" {
			email = mem.UserID.String()
		}

		items[i] = membershipItem{m: mem, email: email}
	}

	m.list.SetItems(items)
}

// Messages

type loadMembershipsMsg struct {
	memberships []*membership.Membership
	emails      map[string]string
	err         error
}

func (m MembershipsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		memberships, err := m.membershipService.List(ctx, membership.ListFilter{})
		if err != nil {
			return loadMembershipsMsg{err: err}
		}

		emails := make(map[string]string, len(memberships))

		for _, mem := range memberships {
			if _, ok := emails[mem.UserID.String()]; ok {
				continue
			}

			u, err := m.userService.Get(ctx, mem.UserID)
			if err != nil {
				continue
			}

			emails[mem.UserID.String()] = u.Email
		}

		return loadMembershipsMsg{memberships: memberships, emails: emails}
	}
}

type checkinResultMsg struct {
	email string
	err   error
}

func (m MembershipsModel) checkinCmd() tea.Cmd {
	selected, ok := m.list.SelectedItem().(membershipItem)
	if !ok {
		return nil
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if _, err := m.checkinService.Create(ctx, selected.m.UserID, selected.m.ID); err != nil {
			return checkinResultMsg{email: selected.email, err: err}
		}

		return checkinResultMsg{email: selected.email}
	}
}

type createMembershipResultMsg struct {
	err error
}

func (m MembershipsModel) createCmd() tea.Cmd {
	email := m.formEmail
	name := m.formName
	credits, _ := strconv.Atoi(m.formCredits)
	startStr := m.formStart
	endStr := m.formEnd

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		u, err := m.userService.EnsureByEmail(ctx, email, name)
		if err != nil {
			return createMembershipResultMsg{err: err}
		}

		start, err := time.Parse(time.DateOnly, startStr)
		if err != nil {
			return createMembershipResultMsg{err: err}
		}

		var end *time.Time

		if endStr != "" {
			t, err := time.Parse(time.DateOnly, endStr)
			if err != nil {
				return createMembershipResultMsg{err: err}
			}

			end = &t
		}

		_, err = m.membershipService.Create(ctx, membership.CreateParams{
			UserID:    u.ID,
			State:     membership.StateActive,
			Credits:   credits,
			StartDate: start,
			EndDate:   end,
		})

		return createMembershipResultMsg{err: err}
	}
}

// membershipItemDelegate renders items in the list.
type membershipItemDelegate struct{}

func (d membershipItemDelegate) Height() int                             { return 1 }
func (d membershipItemDelegate) Spacing() int                            { return 0 }
func (d membershipItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d membershipItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(membershipItem)
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
