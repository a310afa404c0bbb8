package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cleanrecord/internal/delivery/api/dto"
	"cleanrecord/internal/domain/entity"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const displayTimeLayout = "02.01.2006 15:04"

var statusLabels = map[string]string{
	entity.SessionStatusScheduled.String(): "Zaplanowana",
	entity.SessionStatusLive.String():      "Na żywo",
	entity.SessionStatusCompleted.String(): "Zakończona",
	entity.SessionStatusCancelled.String(): "Anulowana",
}

var serviceLabels = map[string]string{
	entity.ServiceTypeStandard.String():       "Sprzątanie standardowe",
	entity.ServiceTypeDeep.String():           "Sprzątanie gruntowne",
	entity.ServiceTypeWindow.String():         "Mycie okien",
	entity.ServiceTypeOffice.String():         "Sprzątanie biura",
	entity.ServiceTypePostRenovation.String(): "Sprzątanie po remoncie",
}

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dashboard == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.historyCursor > 0 {
			m.historyCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.historyCursor < len(m.dashboard.History)-1 {
			m.historyCursor++
		}
	case key.Matches(msg, m.keys.Cancel):
		next := m.dashboard.NextBooking
		if next == nil {
			return m, nil
		}

		return m, cancelBookingCmd(m.ctx, m.api, next.ID)
	}

	return m, nil
}

func cancelBookingCmd(ctx context.Context, api API, id string) tea.Cmd {
	return func() tea.Msg {
		reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()

		if err := api.CancelBooking(reqCtx, id); err != nil {
			return errMsg{err: err}
		}

		return bookingCancelledMsg{}
	}
}

func (m Model) renderDashboard() string {
	if m.dashboard == nil {
		return m.styles.Muted.Render("Ładowanie pulpitu...")
	}

	d := m.dashboard
	stats := []string{
		m.statCard("Zakończone", fmt.Sprintf("%d", d.Stats.CompletedCount)),
		m.statCard("Łączny czas", formatMinutes(d.Stats.TotalDuration)),
		m.statCard("Średnia ocena", d.Stats.AverageRatingLabel),
		m.statCard("Nadchodzące", fmt.Sprintf("%d", d.Stats.UpcomingCount)),
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, stats...))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Heading.Render("Najbliższa rezerwacja"))
	b.WriteString("\n")
	if d.NextBooking == nil {
		b.WriteString(m.styles.Muted.Render("Brak zaplanowanych rezerwacji"))
	} else {
		b.WriteString(m.sessionLine(d.NextBooking, false))
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render("c anuluje rezerwację"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.styles.Heading.Render("Historia"))
	b.WriteString("\n")
	if len(d.History) == 0 {
		b.WriteString(m.styles.Muted.Render("Brak sesji"))
	}
	for i, session := range d.History {
		b.WriteString(m.sessionLine(session, i == m.historyCursor))
		b.WriteString("\n")
	}

	if len(d.Gallery) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Heading.Render("Nagrania"))
		b.WriteString("\n")
		for _, session := range d.Gallery {
			b.WriteString(m.galleryLine(session))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) statCard(label, value string) string {
	return m.styles.Box.Render(m.styles.Muted.Render(label) + "\n" + m.styles.Title.Render(value))
}

func (m Model) sessionLine(s *dto.SessionResponse, selected bool) string {
	parts := []string{
		s.ScheduledTime.In(time.Local).Format(displayTimeLayout),
		serviceLabel(s.ServiceType),
		statusLabel(s.Status),
	}
	if s.AddressName != nil {
		parts = append(parts, *s.AddressName)
	}
	if s.Duration != nil {
		parts = append(parts, formatMinutes(*s.Duration))
	}
	if s.Rating != nil {
		parts = append(parts, strings.Repeat("★", *s.Rating))
	}

	line := strings.Join(parts, "  ·  ")
	if selected {
		return m.styles.Selected.Render(line)
	}

	return m.styles.Text.Render(line)
}

func (m Model) galleryLine(s *dto.SessionResponse) string {
	when := s.ScheduledTime
	if s.StartTime != nil {
		when = *s.StartTime
	}

	line := when.In(time.Local).Format(displayTimeLayout) + "  " + s.CleanerName
	if s.Status == entity.SessionStatusLive.String() {
		return m.styles.Danger.Render("● NA ŻYWO ") + line
	}
	if s.RecordingURL != nil {
		line += "  " + m.styles.Muted.Render(*s.RecordingURL)
	}

	return m.styles.Accent.Render("▶ ") + line
}

func statusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}

	return status
}

func serviceLabel(serviceType string) string {
	if label, ok := serviceLabels[serviceType]; ok {
		return label
	}

	return serviceType
}

func formatMinutes(total int) string {
	if total < 60 {
		return fmt.Sprintf("%d min", total)
	}

	return fmt.Sprintf("%d h %d min", total/60, total%60)
}
