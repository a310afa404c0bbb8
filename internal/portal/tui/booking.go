package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cleanrecord/internal/domain/entity"
	"cleanrecord/internal/errors"
	"cleanrecord/internal/portal/calendar"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoAddresses = errors.New("dodaj adres w zakładce Konto")

var serviceTypes = []entity.ServiceType{
	entity.ServiceTypeStandard,
	entity.ServiceTypeDeep,
	entity.ServiceTypeWindow,
	entity.ServiceTypeOffice,
	entity.ServiceTypePostRenovation,
}

type bookingState struct {
	wizard        *calendar.Wizard
	month         calendar.Month
	cursor        time.Time
	slotCursor    int
	addressCursor int
	serviceIdx    int
	submitting    bool
}

func newBookingState(now func() time.Time) bookingState {
	today := calendar.StartOfDay(now())

	return bookingState{
		wizard: calendar.NewWizard(now),
		month:  calendar.MonthOf(today),
		cursor: today,
	}
}

func (m Model) handleBookingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.booking.submitting {
		return m, nil
	}

	b := &m.booking
	w := b.wizard

	switch {
	case key.Matches(msg, m.keys.Escape):
		w.Collapse()

		return m, nil
	case key.Matches(msg, m.keys.ReopenDate):
		return m.reopen(calendar.StepDate)
	case key.Matches(msg, m.keys.ReopenTime):
		return m.reopen(calendar.StepTime)
	case key.Matches(msg, m.keys.ReopenPlace):
		return m.reopen(calendar.StepAddress)
	case key.Matches(msg, m.keys.CycleService):
		b.serviceIdx = (b.serviceIdx + 1) % len(serviceTypes)
		if err := w.SetServiceType(serviceTypes[b.serviceIdx].String()); err != nil {
			m.err = err
		}

		return m, nil
	}

	if _, pending := w.Pending(); pending {
		return m, nil
	}

	switch w.Open() {
	case calendar.StepDate:
		return m.handleDateKey(msg)
	case calendar.StepTime:
		return m.handleTimeKey(msg)
	case calendar.StepAddress:
		return m.handleAddressKey(msg)
	case calendar.StepReady, calendar.StepNone:
		if key.Matches(msg, m.keys.Confirm) {
			return m.submitBooking()
		}
	}

	return m, nil
}

func (m Model) reopen(step calendar.Step) (tea.Model, tea.Cmd) {
	if err := m.booking.wizard.Reopen(step); err != nil {
		m.err = err

		return m, nil
	}
	m.err = nil

	return m, nil
}

func (m Model) handleDateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := &m.booking

	switch {
	case key.Matches(msg, m.keys.Left):
		b.moveCursor(b.cursor.AddDate(0, 0, -1))
	case key.Matches(msg, m.keys.Right):
		b.moveCursor(b.cursor.AddDate(0, 0, 1))
	case key.Matches(msg, m.keys.Up):
		b.moveCursor(b.cursor.AddDate(0, 0, -7))
	case key.Matches(msg, m.keys.Down):
		b.moveCursor(b.cursor.AddDate(0, 0, 7))
	case key.Matches(msg, m.keys.PrevMonth):
		b.month = b.month.Prev()
		b.cursor = b.month.FirstDay()
	case key.Matches(msg, m.keys.NextMonth):
		b.month = b.month.Next()
		b.cursor = b.month.FirstDay()
	case key.Matches(msg, m.keys.Confirm):
		if err := b.wizard.SelectDate(b.cursor.Format(calendar.DateLayout)); err != nil {
			m.err = err

			return m, nil
		}
		m.err = nil
		b.slotCursor = firstAvailableSlot()

		return m, advanceCmd()
	}

	return m, nil
}

func (b *bookingState) moveCursor(t time.Time) {
	b.cursor = t
	b.month = calendar.MonthOf(t)
}

func firstAvailableSlot() int {
	for i, slot := range calendar.Slots() {
		if slot.Available {
			return i
		}
	}

	return 0
}

func (m Model) handleTimeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := &m.booking
	slots := calendar.Slots()

	switch {
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Left):
		if b.slotCursor > 0 {
			b.slotCursor--
		}
	case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Right):
		if b.slotCursor < len(slots)-1 {
			b.slotCursor++
		}
	case key.Matches(msg, m.keys.Confirm):
		if err := b.wizard.SelectTime(slots[b.slotCursor].Time); err != nil {
			m.err = err

			return m, nil
		}
		m.err = nil

		return m, advanceCmd()
	}

	return m, nil
}

func (m Model) handleAddressKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := &m.booking

	switch {
	case key.Matches(msg, m.keys.Up):
		if b.addressCursor > 0 {
			b.addressCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if b.addressCursor < len(m.addresses)-1 {
			b.addressCursor++
		}
	case key.Matches(msg, m.keys.Confirm):
		if len(m.addresses) == 0 {
			m.err = errNoAddresses

			return m, nil
		}
		if err := b.wizard.SelectAddress(m.addresses[b.addressCursor].ID); err != nil {
			m.err = err

			return m, nil
		}
		m.err = nil

		return m, advanceCmd()
	}

	return m, nil
}

// submitBooking sends a copy of the wizard so the running command never shares state with Update.
func (m Model) submitBooking() (tea.Model, tea.Cmd) {
	w := m.booking.wizard
	if !w.CanSubmit() {
		m.err = calendar.ErrIncomplete

		return m, nil
	}

	m.booking.submitting = true
	m.status = ""
	snapshot := *w
	ctx, api := m.ctx, m.api

	return m, func() tea.Msg {
		reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()

		resp, err := snapshot.Submit(reqCtx, api)
		if err != nil {
			return bookingFailedMsg{err: err}
		}

		return bookingCreatedMsg{resp: resp}
	}
}

func (m Model) renderBooking() string {
	w := m.booking.wizard

	var b strings.Builder
	b.WriteString(m.renderStep(calendar.StepDate, "1. Data", calendar.DisplayDate(w.Date()), m.renderMonth))
	b.WriteString("\n")
	b.WriteString(m.renderStep(calendar.StepTime, "2. Godzina", w.Time(), m.renderSlots))
	b.WriteString("\n")
	b.WriteString(m.renderStep(calendar.StepAddress, "3. Adres", m.addressName(w.AddressID()), m.renderAddressChoices))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Muted.Render("Usługa: "))
	b.WriteString(m.styles.Text.Render(serviceLabel(w.ServiceType())))
	b.WriteString("\n\n")

	switch {
	case m.booking.submitting:
		b.WriteString(m.spinner.View() + " Wysyłanie rezerwacji...")
	case w.CanSubmit():
		b.WriteString(m.styles.Success.Render("enter: Zarezerwuj"))
	default:
		b.WriteString(m.styles.Faint.Render("Zarezerwuj"))
	}

	return b.String()
}

func (m Model) renderStep(step calendar.Step, title, value string, body func() string) string {
	w := m.booking.wizard
	header := m.styles.Heading.Render(title)
	if value != "" {
		header += "  " + m.styles.Accent.Render(value)
	}

	if w.Open() != step {
		return m.styles.Box.Render(header)
	}

	return m.styles.BoxFocus.Render(header + "\n" + body())
}

func (m Model) renderMonth() string {
	b := m.booking
	today := m.now()

	var out strings.Builder
	out.WriteString(m.styles.Title.Render(b.month.Title()))
	out.WriteString("\n")
	for _, day := range calendar.Weekdays {
		out.WriteString(padRight(day, 3))
	}
	out.WriteString("\n")

	selected := m.booking.wizard.Date()
	cursor := b.cursor.Format(calendar.DateLayout)
	for i, cell := range b.month.Cells(today) {
		if i > 0 && i%7 == 0 {
			out.WriteString("\n")
		}
		if cell.Blank {
			out.WriteString("   ")

			continue
		}

		label := fmt.Sprintf("%2d", cell.Day)
		switch {
		case cell.Date == cursor:
			label = m.styles.Selected.Render(label)
		case cell.Date == selected:
			label = m.styles.Accent.Render(label)
		case cell.Disabled:
			label = m.styles.Faint.Render(label)
		}
		out.WriteString(label + " ")
	}

	return out.String()
}

func (m Model) renderSlots() string {
	var out strings.Builder
	for i, slot := range calendar.Slots() {
		label := slot.Time
		switch {
		case i == m.booking.slotCursor:
			label = m.styles.Selected.Render(label)
		case !slot.Available:
			label = m.styles.Faint.Render(label)
		case slot.Time == m.booking.wizard.Time():
			label = m.styles.Accent.Render(label)
		}
		out.WriteString(label)
		if i%4 == 3 {
			out.WriteString("\n")
		} else {
			out.WriteString("  ")
		}
	}

	return strings.TrimRight(out.String(), "\n ")
}

func (m Model) renderAddressChoices() string {
	if len(m.addresses) == 0 {
		return m.styles.Muted.Render("Brak adresów. Dodaj adres w zakładce Konto.")
	}

	lines := make([]string, 0, len(m.addresses))
	for i, address := range m.addresses {
		line := fmt.Sprintf("%s  %s, %s %s", address.Name, address.Street, address.PostalCode, address.City)
		if i == m.booking.addressCursor {
			line = m.styles.Selected.Render(line)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

func (m Model) addressName(id string) string {
	for _, address := range m.addresses {
		if address.ID == id {
			return address.Name
		}
	}

	return ""
}
