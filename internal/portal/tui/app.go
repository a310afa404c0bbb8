// Package tui is the terminal customer portal.
package tui

import (
	"context"
	"strings"
	"time"

	"cleanrecord/internal/delivery/api/dto"
	"cleanrecord/internal/errors"
	"cleanrecord/internal/portal/calendar"
	"cleanrecord/internal/portal/client"
	"cleanrecord/internal/portal/live"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// API is the subset of the portal REST API the terminal portal drives.
type API interface {
	calendar.BookingCreator
	live.StatusFetcher

	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
	CancelBooking(ctx context.Context, id string) error
	GetProfile(ctx context.Context) (*dto.ProfileResponse, error)
	ListAddresses(ctx context.Context) ([]*dto.AddressResponse, error)
	CreateAddress(ctx context.Context, req *dto.AddressRequest) (*dto.AddressResponse, error)
	UpdateAddress(ctx context.Context, req *dto.AddressRequest) (*dto.AddressResponse, error)
	DeleteAddress(ctx context.Context, id string) error
}

// View is the active screen.
type View int

const (
	ViewDashboard View = iota
	ViewBooking
	ViewAccount
	ViewLive
)

var viewOrder = []View{ViewDashboard, ViewBooking, ViewAccount, ViewLive}

func (v View) title() string {
	switch v {
	case ViewDashboard:
		return "Pulpit"
	case ViewBooking:
		return "Rezerwacja"
	case ViewAccount:
		return "Konto"
	case ViewLive:
		return "Na żywo"
	default:
		return ""
	}
}

const (
	liveRefreshTick = time.Second
	requestTimeout  = 15 * time.Second
)

// Options configures the portal.
type Options struct {
	Context      context.Context
	API          API
	Now          func() time.Time
	LiveInterval time.Duration
}

// Model is the root portal state.
type Model struct {
	ctx          context.Context
	api          API
	now          func() time.Time
	liveInterval time.Duration
	keys         keyMap
	styles       Styles

	currentView View
	width       int
	height      int
	showHelp    bool
	loading     int
	spinner     spinner.Model
	status      string
	err         error

	dashboard     *dto.DashboardResponse
	historyCursor int
	profile       *dto.ProfileResponse
	addresses     []*dto.AddressResponse

	booking bookingState
	account accountState
	live    liveState
}

// New creates the portal model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:          ctx,
		api:          opts.API,
		now:          now,
		liveInterval: opts.LiveInterval,
		keys:         DefaultKeyMap(),
		styles:       DefaultTheme().Styles(),
		currentView:  ViewDashboard,
		spinner:      sp,
	}
	m.booking = newBookingState(now)
	m.account = newAccountState()
	m.loading = 3

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		fetchDashboardCmd(m.ctx, m.api),
		fetchAddressesCmd(m.ctx, m.api),
		fetchProfileCmd(m.ctx, m.api),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case dashboardMsg:
		m.doneLoading()
		m.dashboard = msg.dashboard
		if m.historyCursor >= len(m.dashboard.History) {
			m.historyCursor = 0
		}
		if m.currentView == ViewLive && m.live.poller == nil {
			cmd := m.startLive()

			return m, cmd
		}

		return m, nil

	case addressesMsg:
		m.doneLoading()
		m.addresses = msg.addresses
		m.clampAddressCursors()

		return m, nil

	case profileMsg:
		m.doneLoading()
		m.profile = msg.profile

		return m, nil

	case advanceMsg:
		m.booking.wizard.Advance()

		return m, nil

	case bookingCreatedMsg:
		m.booking.submitting = false
		m.booking.wizard.Reset()
		m.status = msg.resp.Message
		m.err = nil
		m.loading++

		return m, fetchDashboardCmd(m.ctx, m.api)

	case bookingFailedMsg:
		m.booking.submitting = false
		m.err = msg.err

		return m, nil

	case bookingCancelledMsg:
		m.status = dto.MessageBookingDeleted
		m.err = nil
		m.loading++

		return m, fetchDashboardCmd(m.ctx, m.api)

	case addressSavedMsg:
		m.account.form = nil
		m.status = "Adres zapisany: " + msg.address.Name
		m.err = nil
		m.loading++

		return m, fetchAddressesCmd(m.ctx, m.api)

	case addressFailedMsg:
		if m.account.form != nil {
			m.account.form.saving = false
		}
		m.err = msg.err

		return m, nil

	case addressDeletedMsg:
		m.status = "Adres usunięty"
		m.err = nil
		m.loading++

		return m, fetchAddressesCmd(m.ctx, m.api)

	case liveTickMsg:
		if m.live.poller == nil || msg.id != m.live.id {
			return m, nil
		}
		m.live.snapshot = m.live.poller.Snapshot()

		return m, liveTickCmd(m.live.id)

	case errMsg:
		if msg.load {
			m.doneLoading()
		}
		m.err = msg.err

		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.currentView {
	case ViewDashboard:
		b.WriteString(m.renderDashboard())
	case ViewBooking:
		b.WriteString(m.renderBooking())
	case ViewAccount:
		b.WriteString(m.renderAccount())
	case ViewLive:
		b.WriteString(m.renderLive())
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderStatus())

	return b.String()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false

		return m, nil
	}

	// The address form owns the keyboard while it is open.
	if m.account.form != nil && m.currentView == ViewAccount {
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stopLive()

		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

		return m, nil
	case key.Matches(msg, m.keys.Reload):
		m.err = nil
		m.loading += 3

		return m, tea.Batch(
			fetchDashboardCmd(m.ctx, m.api),
			fetchAddressesCmd(m.ctx, m.api),
			fetchProfileCmd(m.ctx, m.api),
		)
	case key.Matches(msg, m.keys.Tab):
		return m.switchView(nextView(m.currentView))
	case key.Matches(msg, m.keys.ViewDashboard):
		return m.switchView(ViewDashboard)
	case key.Matches(msg, m.keys.ViewBooking):
		return m.switchView(ViewBooking)
	case key.Matches(msg, m.keys.ViewAccount):
		return m.switchView(ViewAccount)
	case key.Matches(msg, m.keys.ViewLive):
		return m.switchView(ViewLive)
	}

	switch m.currentView {
	case ViewDashboard:
		return m.handleDashboardKey(msg)
	case ViewBooking:
		return m.handleBookingKey(msg)
	case ViewAccount:
		return m.handleAccountKey(msg)
	}

	return m, nil
}

func (m Model) switchView(v View) (tea.Model, tea.Cmd) {
	if v == m.currentView {
		return m, nil
	}

	m.stopLive()
	m.currentView = v
	m.status = ""
	m.err = nil

	if v == ViewLive {
		cmd := m.startLive()

		return m, cmd
	}

	return m, nil
}

func (m *Model) doneLoading() {
	if m.loading > 0 {
		m.loading--
	}
}

func nextView(v View) View {
	for i, candidate := range viewOrder {
		if candidate == v {
			return viewOrder[(i+1)%len(viewOrder)]
		}
	}

	return ViewDashboard
}

func (m Model) renderHeader() string {
	tabs := make([]string, 0, len(viewOrder))
	for i, v := range viewOrder {
		label := string(rune('1'+i)) + " " + v.title()
		if v == m.currentView {
			tabs = append(tabs, m.styles.TabOn.Render(label))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(label))
		}
	}

	title := m.styles.Title.Render("CleanRecord")
	if m.loading > 0 {
		title += " " + m.spinner.View()
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", strings.Join(tabs, ""))
}

func (m Model) renderStatus() string {
	if m.err != nil {
		return m.styles.Danger.Render(errorText(m.err))
	}
	if m.status != "" {
		return m.styles.Success.Render(m.status)
	}

	return m.styles.Muted.Render("? pomoc  q wyjście")
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Skróty klawiszowe"))
	b.WriteString("\n")
	for _, group := range m.keys.helpGroups() {
		b.WriteString("\n")
		b.WriteString(m.styles.Heading.Render(group.title))
		b.WriteString("\n")
		for _, binding := range group.bindings {
			h := binding.Help()
			b.WriteString("  ")
			b.WriteString(m.styles.Accent.Render(padRight(h.Key, 8)))
			b.WriteString(h.Desc)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("Dowolny klawisz zamyka pomoc"))

	return b.String()
}

// errorText prefers the API's own message over the transport wrapping.
func errorText(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	return err.Error()
}

func padRight(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}

	return s + " "
}

// Messages

type dashboardMsg struct{ dashboard *dto.DashboardResponse }

type addressesMsg struct{ addresses []*dto.AddressResponse }

type profileMsg struct{ profile *dto.ProfileResponse }

type advanceMsg struct{}

type bookingCreatedMsg struct{ resp *dto.BookingCreatedResponse }

type bookingFailedMsg struct{ err error }

type bookingCancelledMsg struct{}

type addressSavedMsg struct{ address *dto.AddressResponse }

type addressDeletedMsg struct{}

type liveTickMsg struct{ id int }

type errMsg struct {
	err  error
	load bool
}

// Commands

func fetchDashboardCmd(ctx context.Context, api API) tea.Cmd {
	return func() tea.Msg {
		reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()

		dashboard, err := api.GetDashboard(reqCtx)
		if err != nil {
			return errMsg{err: err, load: true}
		}

		return dashboardMsg{dashboard: dashboard}
	}
}

func fetchAddressesCmd(ctx context.Context, api API) tea.Cmd {
	return func() tea.Msg {
		reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()

		addresses, err := api.ListAddresses(reqCtx)
		if err != nil {
			return errMsg{err: err, load: true}
		}

		return addressesMsg{addresses: addresses}
	}
}

func fetchProfileCmd(ctx context.Context, api API) tea.Cmd {
	return func() tea.Msg {
		reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()

		profile, err := api.GetProfile(reqCtx)
		if err != nil {
			return errMsg{err: err, load: true}
		}

		return profileMsg{profile: profile}
	}
}

func advanceCmd() tea.Cmd {
	return tea.Tick(calendar.AdvanceDelay, func(time.Time) tea.Msg {
		return advanceMsg{}
	})
}

func liveTickCmd(id int) tea.Cmd {
	return tea.Tick(liveRefreshTick, func(time.Time) tea.Msg {
		return liveTickMsg{id: id}
	})
}

// Run starts the portal and blocks until the user quits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()

	return err
}
