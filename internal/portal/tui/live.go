package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cleanrecord/internal/delivery/api/dto"
	"cleanrecord/internal/portal/live"

	tea "github.com/charmbracelet/bubbletea"
)

const watchURLBase = "https://iframe.cloudflarestream.com/"

type liveState struct {
	id       int
	session  *dto.SessionResponse
	poller   *live.Poller
	cancel   context.CancelFunc
	snapshot live.Snapshot
}

// liveSession picks the session currently being cleaned, if any.
func (m Model) liveSession() *dto.SessionResponse {
	if m.dashboard == nil {
		return nil
	}
	for _, session := range m.dashboard.Gallery {
		if live.ShouldPoll(session) {
			return session
		}
	}

	return nil
}

// startLive begins polling the live session. Nothing is polled unless a session is live.
func (m *Model) startLive() tea.Cmd {
	m.stopLive()
	m.live.id++

	session := m.liveSession()
	m.live.session = session
	if session == nil {
		return nil
	}

	ctx, cancel := context.WithCancel(m.ctx)
	poller := live.NewPoller(m.api, *session.LiveInputID, m.liveInterval)
	poller.Start(ctx)

	m.live.poller = poller
	m.live.cancel = cancel

	return liveTickCmd(m.live.id)
}

func (m *Model) stopLive() {
	if m.live.cancel != nil {
		m.live.cancel()
	}
	m.live.poller = nil
	m.live.cancel = nil
	m.live.snapshot = live.Snapshot{}
}

func (m Model) renderLive() string {
	session := m.live.session
	if session == nil {
		return m.styles.Muted.Render("Żadna sesja nie jest teraz transmitowana")
	}

	var b strings.Builder
	b.WriteString(m.styles.Heading.Render(fmt.Sprintf("%s  ·  %s", serviceLabel(session.ServiceType), session.CleanerName)))
	b.WriteString("\n")
	if session.AddressName != nil {
		b.WriteString(m.styles.Muted.Render(*session.AddressName))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	snap := m.live.snapshot
	switch snap.View() {
	case live.ViewLoading:
		b.WriteString(m.spinner.View() + " Ładowanie transmisji...")
	case live.ViewActive:
		b.WriteString(m.styles.Danger.Render("● NA ŻYWO"))
		if snap.Status.ViewerCount != nil {
			b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  %d oglądających", *snap.Status.ViewerCount)))
		}
		b.WriteString("\n")
		b.WriteString(m.styles.Accent.Render(watchURLBase + *session.LiveInputID))
	case live.ViewOffline:
		b.WriteString(m.styles.Warning.Render("Transmisja offline"))
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render(snap.OfflineReason()))
	}

	if !snap.LastUpdated.IsZero() {
		b.WriteString("\n\n")
		b.WriteString(m.styles.Muted.Render("Ostatnie sprawdzenie: " + snap.LastUpdated.In(time.Local).Format("15:04:05")))
	}

	return b.String()
}
