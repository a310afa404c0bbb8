package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the portal.
type keyMap struct {
	// Global
	Quit   key.Binding
	Help   key.Binding
	Tab    key.Binding
	Reload key.Binding

	// View switching
	ViewDashboard key.Binding
	ViewBooking   key.Binding
	ViewAccount   key.Binding
	ViewLive      key.Binding

	// Navigation
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Escape  key.Binding

	// Booking
	PrevMonth    key.Binding
	NextMonth    key.Binding
	ReopenDate   key.Binding
	ReopenTime   key.Binding
	ReopenPlace  key.Binding
	CycleService key.Binding
	Cancel       key.Binding

	// Account
	ToggleProfile   key.Binding
	ToggleAddresses key.Binding
	ToggleBalance   key.Binding
	NewAddress      key.Binding
	EditAddress     key.Binding
	DeleteAddress   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Wyjście"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Pomoc"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Następny widok"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Odśwież"),
		),

		ViewDashboard: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Pulpit"),
		),
		ViewBooking: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Rezerwacja"),
		),
		ViewAccount: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Konto"),
		),
		ViewLive: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Na żywo"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "W górę"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "W dół"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "W lewo"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "W prawo"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Wybierz"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Zwiń / anuluj"),
		),

		PrevMonth: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Poprzedni miesiąc"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Następny miesiąc"),
		),
		ReopenDate: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Zmień datę"),
		),
		ReopenTime: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Zmień godzinę"),
		),
		ReopenPlace: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Zmień adres"),
		),
		CycleService: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Rodzaj usługi"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Anuluj najbliższą rezerwację"),
		),

		ToggleProfile: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Profil"),
		),
		ToggleAddresses: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Adresy"),
		),
		ToggleBalance: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "Saldo"),
		),
		NewAddress: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Nowy adres"),
		),
		EditAddress: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Edytuj adres"),
		),
		DeleteAddress: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Usuń adres"),
		),
	}
}

// helpGroups lists bindings per view for the help overlay.
func (k keyMap) helpGroups() []struct {
	title    string
	bindings []key.Binding
} {
	return []struct {
		title    string
		bindings []key.Binding
	}{
		{"Ogólne", []key.Binding{k.ViewDashboard, k.ViewBooking, k.ViewAccount, k.ViewLive, k.Tab, k.Reload, k.Help, k.Quit}},
		{"Pulpit", []key.Binding{k.Up, k.Down, k.Cancel}},
		{"Rezerwacja", []key.Binding{k.Left, k.Right, k.Up, k.Down, k.PrevMonth, k.NextMonth, k.Confirm, k.ReopenDate, k.ReopenTime, k.ReopenPlace, k.CycleService, k.Escape}},
		{"Konto", []key.Binding{k.ToggleProfile, k.ToggleAddresses, k.ToggleBalance, k.NewAddress, k.EditAddress, k.DeleteAddress}},
	}
}
