package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gymd/internal/billing"
)

type invoicesState int

const (
	invoicesStateList invoicesState = iota
	invoicesStateDetail
	invoicesStateAddingLine
)

// invoiceItem wraps an invoice to implement list.Item.
type invoiceItem struct {
	inv *billing.Invoice
}

func (i invoiceItem) Title() string {
	status := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("[%s]", i.inv.Status))
	return fmt.Sprintf("%s  %s  %s  %d lines", FormatDate(i.inv.Date), status, FormatAmount(i.inv.Amount), len(i.inv.Lines))
}

func (i invoiceItem) Description() string { return i.inv.Description }

func (i invoiceItem) FilterValue() string { return i.inv.Description }

type InvoicesModel struct {
	CommonModel
	billingService *billing.Service

	state invoicesState
	list  list.Model
	form  *huh.Form

	invoices []*billing.Invoice
	selected *billing.Invoice

	loading bool
	status  string

	// Form field bindings
	formDesc   string
	formAmount string
}

func NewInvoicesModel(bSvc *billing.Service) InvoicesModel {
	l := list.New([]list.Item{}, invoiceItemDelegate{}, 0, 0)
	l.Title = "Invoices"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	return InvoicesModel{
		billingService: bSvc,
		list:           l,
		loading:        true,
	}
}

func (m InvoicesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m InvoicesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadInvoicesMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.invoices = msg.invoices
		m.refreshListItems()

		if len(msg.invoices) == 0 {
			m.status = "No invoices found."
		}

		return m, nil

	case addLineResultMsg:
		m.state = invoicesStateDetail
		m.form = nil

		if msg.err != nil {
			m.status = fmt.Sprintf("Error adding line: %v", msg.err)
			return m, nil
		}

		m.selected = msg.invoice
		m.status = "Line added."

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil
	}

	switch m.state {
	case invoicesStateList:
		return m.updateList(msg)
	case invoicesStateDetail:
		return m.updateDetail(msg)
	case invoicesStateAddingLine:
		return m.updateAddingLine(msg)
	}

	return m, nil
}

func (m InvoicesModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.list.FilterState() != list.Filtering {
			switch keyMsg.String() {
			case "esc":
				return m, Back
			case "enter":
				if selected, ok := m.list.SelectedItem().(invoiceItem); ok {
					m.selected = selected.inv
					m.state = invoicesStateDetail
				}

				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m InvoicesModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.state = invoicesStateList
			m.selected = nil

			return m, nil
		case "a":
			return m.startAddingLine()
		}
	}

	return m, nil
}

func (m InvoicesModel) startAddingLine() (tea.Model, tea.Cmd) {
	m.formDesc = ""
	m.formAmount = "0.00"

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDesc).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("description cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Value(&m.formAmount).
				Validate(func(s string) error {
					d, err := decimal.NewFromString(s)
					if err != nil {
						return fmt.Errorf("must be a number")
					}
					if d.IsNegative() {
						return fmt.Errorf("must not be negative")
					}
					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = invoicesStateAddingLine

	return m, m.form.Init()
}

func (m InvoicesModel) updateAddingLine(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = invoicesStateDetail
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

	return m, m.addLineCmd()
}

func (m InvoicesModel) View() string {
	switch m.state {
	case invoicesStateList:
		if m.loading {
			return lipgloss.NewStyle().Padding(2).Render("Loading invoices...")
		}

		statusLine := ""
		if m.status != "" {
			statusLine = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n"
		}

		return lipgloss.NewStyle().Padding(1).Render(statusLine + m.list.View())

	case invoicesStateDetail:
		return m.viewDetail()

	case invoicesStateAddingLine:
		if m.form == nil {
			return ""
		}

		return lipgloss.NewStyle().Padding(1).Render("Add Invoice Line\n\n" + m.form.View())
	}

	return ""
}

func (m InvoicesModel) viewDetail() string {
	if m.selected == nil {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Invoice %s\n", m.selected.ID)
	fmt.Fprintf(&b, "Date: %s  Status: %s  Amount: %s\n", FormatDate(m.selected.Date), m.selected.Status, FormatAmount(m.selected.Amount))

	if m.selected.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", m.selected.Description)
	}

	b.WriteString("\nLines:\n")

	if len(m.selected.Lines) == 0 {
		b.WriteString("  (none)\n")
	}

	for _, line := range m.selected.Lines {
		fmt.Fprintf(&b, "  %s  %s\n", FormatAmount(line.Amount), line.Description)
	}

	b.WriteString("\n('a' to add line, Esc to back)")

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

func (m *InvoicesModel) refreshListItems() {
	items := make([]list.Item, len(m.invoices))
	for i, inv := range m.invoices {
		items[i] = invoiceItem{inv: inv}

		if m.selected != nil && inv.ID == m.selected.ID {
			m.selected = inv
		}
	}

	m.list.SetItems(items)
}

// Messages

type loadInvoicesMsg struct {
	invoices []*billing.Invoice
	err      error
}

func (m InvoicesModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		invoices, err := m.billingService.List(ctx, billing.ListFilter{})

		return loadInvoicesMsg{invoices: invoices, err: err}
	}
}

type addLineResultMsg struct {
	invoice *billing.Invoice
	err     error
}

func (m InvoicesModel) addLineCmd() tea.Cmd {
	inv := m.selected
	desc := m.formDesc
	amount, _ := decimal.NewFromString(m.formAmount)

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if _, err := m.billingService.AddLine(ctx, inv.ID, desc, amount); err != nil {
			return addLineResultMsg{err: err}
		}

		refreshed, err := m.billingService.Get(ctx, inv.ID)
		if err != nil {
			return addLineResultMsg{err: err}
		}

		return addLineResultMsg{invoice: refreshed}
	}
}

// invoiceItemDelegate renders items in the list.
type invoiceItemDelegate struct{}

func (d invoiceItemDelegate) Height() int                             { return 2 }
func (d invoiceItemDelegate) Spacing() int                            { return 0 }
func (d invoiceItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d invoiceItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(invoiceItem)
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

	if i.Description() == "" {
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "    %s\n", lipgloss.NewStyle().Faint(true).Render(i.Description()))
}
