package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/gymd/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/gymd/internal/billing"
	billingStore "github.com/MrJamesThe3rd/gymd/internal/billing/store"
	"github.com/MrJamesThe3rd/gymd/internal/checkin"
	checkinStore "github.com/MrJamesThe3rd/gymd/internal/checkin/store"
	"github.com/MrJamesThe3rd/gymd/internal/config"
	"github.com/MrJamesThe3rd/gymd/internal/database"
	"github.com/MrJamesThe3rd/gymd/internal/importer"
	"github.com/MrJamesThe3rd/gymd/internal/membership"
	membershipStore "github.com/MrJamesThe3rd/gymd/internal/membership/store"
	"github.com/MrJamesThe3rd/gymd/internal/user"
	userStore "github.com/MrJamesThe3rd/gymd/internal/user/store"
)

type model struct {
	membershipService *membership.Service
	billingService    *billing.Service
	checkinService    *checkin.Service
	userService       *user.Service
	importService     *importer.Service

	currentView View

	membershipsView view.MembershipsModel
	invoicesView    view.InvoicesModel
	checkinsView    view.CheckinsModel
	importView      view.ImportModel
}

type View int

const (
	ViewMenu        View = 0
	ViewMemberships View = 1
	ViewInvoices    View = 2
	ViewCheckins    View = 3
	ViewImport      View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	membershipSvc := membership.NewService(membershipStore.New(db))
	billingSvc := billing.NewService(billingStore.New(db))
	checkinSvc := checkin.NewService(checkinStore.New(db))
	userSvc := user.NewService(userStore.New(db))
	importSvc := importer.NewService()

	return model{
		membershipService: membershipSvc,
		billingService:    billingSvc,
		checkinService:    checkinSvc,
		userService:       userSvc,
		importService:     importSvc,
		currentView:       ViewMenu,
		membershipsView:   view.NewMembershipsModel(membershipSvc, checkinSvc, userSvc),
		invoicesView:      view.NewInvoicesModel(billingSvc),
		checkinsView:      view.NewCheckinsModel(checkinSvc, userSvc),
		importView:        view.NewImportModel(importSvc, userSvc, membershipSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewMemberships
				m.membershipsView = view.NewMembershipsModel(m.membershipService, m.checkinService, m.userService)

				return m, m.membershipsView.Init()
			case "2":
				m.currentView = ViewInvoices
				m.invoicesView = view.NewInvoicesModel(m.billingService)

				return m, m.invoicesView.Init()
			case "3":
				m.currentView = ViewCheckins
				m.checkinsView = view.NewCheckinsModel(m.checkinService, m.userService)

				return m, m.checkinsView.Init()
			case "4":
				m.currentView = ViewImport
				return m, m.importView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewMemberships:
		var newModel tea.Model
		newModel, cmd = m.membershipsView.Update(msg)
		m.membershipsView = newModel.(view.MembershipsModel)
	case ViewInvoices:
		var newModel tea.Model
		newModel, cmd = m.invoicesView.Update(msg)
		m.invoicesView = newModel.(view.InvoicesModel)
	case ViewCheckins:
		var newModel tea.Model
		newModel, cmd = m.checkinsView.Update(msg)
		m.checkinsView = newModel.(view.CheckinsModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Gym Desk\n\n" +
				"1. Memberships & Check-in\n" +
				"2. Invoices\n" +
				"3. Check-in History\n" +
				"4. Import Roster\n\n" +
				"q. Quit",
		)
	case ViewMemberships:
		return m.membershipsView.View()
	case ViewInvoices:
		return m.invoicesView.View()
	case ViewCheckins:
		return m.checkinsView.View()
	case ViewImport:
		return m.importView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
