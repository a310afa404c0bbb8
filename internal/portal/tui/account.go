package tui

import (
	"context"
	"fmt"
	"strings"

	"cleanrecord/internal/delivery/api/dto"
	"cleanrecord/internal/portal/account"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldStreet
	fieldPostalCode
	fieldCity
	fieldCount
)

var formFields = [fieldCount]struct {
	key         string
	label       string
	placeholder string
}{
	{"name", "Nazwa", "np. Dom"},
	{"street", "Ulica", "ul. Prosta 1/2"},
	{"postalCode", "Kod pocztowy", "00-001"},
	{"city", "Miasto", "Warszawa"},
}

type accountState struct {
	accordion     account.Accordion
	addressCursor int
	form          *addressForm
}

type addressForm struct {
	id       string
	inputs   [fieldCount]textinput.Model
	focus    int
	problems map[string]string
	saving   bool
}

func newAccountState() accountState {
	return accountState{accordion: account.NewAccordion(account.SectionProfile)}
}

func newAddressForm(values account.AddressForm) *addressForm {
	f := &addressForm{id: values.ID}
	initial := [fieldCount]string{values.Name, values.Street, values.PostalCode, values.City}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = formFields[i].placeholder
		ti.CharLimit = 100
		ti.Width = 40
		ti.SetValue(initial[i])
		f.inputs[i] = ti
	}
	f.inputs[fieldName].Focus()

	return f
}

func (f *addressForm) values() account.AddressForm {
	return account.AddressForm{
		ID:         f.id,
		Name:       f.inputs[fieldName].Value(),
		Street:     f.inputs[fieldStreet].Value(),
		PostalCode: f.inputs[fieldPostalCode].Value(),
		City:       f.inputs[fieldCity].Value(),
	}
}

func (f *addressForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = (i + fieldCount) % fieldCount
	f.inputs[f.focus].Focus()
}

func (m *Model) clampAddressCursors() {
	last := len(m.addresses) - 1
	if last < 0 {
		last = 0
	}
	if m.account.addressCursor > last {
		m.account.addressCursor = last
	}
	if m.booking.addressCursor > last {
		m.booking.addressCursor = last
	}
}

func (m Model) handleAccountKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := &m.account

	switch {
	case key.Matches(msg, m.keys.ToggleProfile):
		a.accordion.Toggle(account.SectionProfile)
	case key.Matches(msg, m.keys.ToggleAddresses):
		a.accordion.Toggle(account.SectionAddresses)
	case key.Matches(msg, m.keys.ToggleBalance):
		a.accordion.Toggle(account.SectionBalance)
	}

	if !a.accordion.IsOpen(account.SectionAddresses) {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if a.addressCursor > 0 {
			a.addressCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if a.addressCursor < len(m.addresses)-1 {
			a.addressCursor++
		}
	case key.Matches(msg, m.keys.NewAddress):
		a.form = newAddressForm(account.AddressForm{})
		m.status = ""

		return m, textinput.Blink
	case key.Matches(msg, m.keys.EditAddress):
		if len(m.addresses) == 0 {
			return m, nil
		}
		a.form = newAddressForm(account.FormFromAddress(m.addresses[a.addressCursor]))
		m.status = ""

		return m, textinput.Blink
	case key.Matches(msg, m.keys.DeleteAddress):
		if len(m.addresses) == 0 {
			return m, nil
		}

		return m, deleteAddressCmd(m.ctx, m.api, m.addresses[a.addressCursor].ID)
	}

	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.account.form
	if f.saving {
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.account.form = nil

		return m, nil
	case "tab", "down":
		f.setFocus(f.focus + 1)

		return m, nil
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)

		return m, nil
	case "enter":
		values := f.values()
		f.problems = values.Validate()
		if len(f.problems) > 0 {
			return m, nil
		}
		f.saving = true

		return m, saveAddressCmd(m.ctx, m.api, values.Request())
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	if len(f.problems) > 0 {
		f.problems = f.values().Validate()
	}

	return m, cmd
}

func saveAddressCmd(ctx context.Context, api API, req *dto.AddressRequest) tea.Cmd {
	return func() tea.Msg {
		reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()

		var (
			address *dto.AddressResponse
			err     error
		)
		if req.ID == "" {
			address, err = api.CreateAddress(reqCtx, req)
		} else {
			address, err = api.UpdateAddress(reqCtx, req)
		}
		if err != nil {
			return addressFailedMsg{err: err}
		}

		return addressSavedMsg{address: address}
	}
}

func deleteAddressCmd(ctx context.Context, api API, id string) tea.Cmd {
	return func() tea.Msg {
		reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()

		if err := api.DeleteAddress(reqCtx, id); err != nil {
			return errMsg{err: err}
		}

		return addressDeletedMsg{}
	}
}

type addressFailedMsg struct{ err error }

func (m Model) renderAccount() string {
	if m.account.form != nil {
		return m.renderAddressForm()
	}

	var b strings.Builder
	for _, section := range account.Sections {
		header := m.styles.Heading.Render(section.Title())
		if !m.account.accordion.IsOpen(section) {
			b.WriteString(m.styles.Box.Render("▸ " + header))
			b.WriteString("\n")

			continue
		}

		var body string
		switch section {
		case account.SectionProfile:
			body = m.renderProfile()
		case account.SectionAddresses:
			body = m.renderAddresses()
		case account.SectionBalance:
			body = m.renderBalance()
		}
		b.WriteString(m.styles.BoxFocus.Render("▾ " + header + "\n" + body))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderProfile() string {
	p := m.profile
	if p == nil {
		return m.styles.Muted.Render("Profil nie został jeszcze uzupełniony")
	}

	lines := []string{
		fmt.Sprintf("%s %s", p.FirstName, p.LastName),
		p.Email,
	}
	if p.Phone != nil {
		lines = append(lines, *p.Phone)
	}
	lines = append(lines, m.styles.Muted.Render("Język: "+p.Language))

	return strings.Join(lines, "\n")
}

func (m Model) renderAddresses() string {
	var b strings.Builder
	if len(m.addresses) == 0 {
		b.WriteString(m.styles.Muted.Render("Brak zapisanych adresów"))
	}
	for i, address := range m.addresses {
		line := fmt.Sprintf("%s  %s, %s %s", address.Name, address.Street, address.PostalCode, address.City)
		if i == m.account.addressCursor {
			line = m.styles.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("n nowy  e edytuj  x usuń"))

	return b.String()
}

func (m Model) renderBalance() string {
	if m.profile == nil {
		return m.styles.Muted.Render("Saldo: 0.00 zł")
	}

	return m.styles.Title.Render(m.profile.BalanceFormatted + " zł")
}

func (m Model) renderAddressForm() string {
	f := m.account.form

	title := "Nowy adres"
	if f.id != "" {
		title = "Edycja adresu"
	}

	var b strings.Builder
	b.WriteString(m.styles.Heading.Render(title))
	b.WriteString("\n")
	for i, field := range formFields {
		label := field.label
		if i == fieldName {
			label += m.styles.Muted.Render(fmt.Sprintf(" (pozostało %d)", f.values().NameRemaining()))
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
		if problem, ok := f.problems[field.key]; ok {
			b.WriteString(m.styles.Danger.Render(problem))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	if f.saving {
		b.WriteString(m.spinner.View() + " Zapisywanie...")
	} else {
		b.WriteString(m.styles.Muted.Render("enter zapisz  tab następne pole  esc anuluj"))
	}

	return b.String()
}
