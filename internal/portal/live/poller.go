// Package live follows the video state of a session that is being cleaned right now.
package live

import (
	"context"
	"sync"
	"time"

	"cleanrecord/internal/delivery/api/dto"
	"cleanrecord/internal/domain/entity"
)

// DefaultInterval is how often a live input is polled while its session is live.
const DefaultInterval = 30 * time.Second

// View is what the viewer should render.
type View int

const (
	ViewLoading View = iota
	ViewActive
	ViewOffline
)

func (v View) String() string {
	switch v {
	case ViewLoading:
		return "loading"
	case ViewActive:
		return "active"
	case ViewOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// StatusFetcher reads the state of a live input.
type StatusFetcher interface {
	GetStreamStatus(ctx context.Context, liveInputID string) (entity.LiveInputStatus, error)
}

// Snapshot is the latest poll result.
type Snapshot struct {
	Status      entity.LiveInputStatus
	Loaded      bool
	LastError   error
	LastUpdated time.Time
}

// View maps the snapshot to a render state. Anything other than a connected input is offline.
func (s Snapshot) View() View {
	if !s.Loaded {
		return ViewLoading
	}
	if s.Status.Status == entity.LiveInputConnected {
		return ViewActive
	}

	return ViewOffline
}

// OfflineReason is the caption shown under an offline player.
func (s Snapshot) OfflineReason() string {
	if s.Status.Status == entity.LiveInputDisconnected {
		return "Transmisja jest obecnie rozłączona"
	}

	return "Oczekiwanie na rozpoczęcie transmisji..."
}

// ShouldPoll reports whether a session has a live input worth polling.
func ShouldPoll(session *dto.SessionResponse) bool {
	return session != nil &&
		session.Status == entity.SessionStatusLive.String() &&
		session.LiveInputID != nil && *session.LiveInputID != ""
}

// Poller keeps a Snapshot of one live input fresh.
type Poller struct {
	fetcher     StatusFetcher
	liveInputID string
	interval    time.Duration

	mu       sync.RWMutex
	snapshot Snapshot
	start    sync.Once
	done     chan struct{}
}

// NewPoller builds a Poller for liveInputID. A non-positive interval uses DefaultInterval.
func NewPoller(fetcher StatusFetcher, liveInputID string, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Poller{
		fetcher:     fetcher,
		liveInputID: liveInputID,
		interval:    interval,
		done:        make(chan struct{}),
	}
}

// Start refreshes immediately and then on every tick until ctx is cancelled. It returns immediately.
// Only the first call starts the loop; later calls are no-ops.
func (p *Poller) Start(ctx context.Context) {
	p.start.Do(func() { go p.run(ctx) })
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.Refresh(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Done is closed once a started poller has stopped.
func (p *Poller) Done() <-chan struct{} {
	return p.done
}

// Refresh polls once. Failures are recorded as an unknown status.
func (p *Poller) Refresh(ctx context.Context) Snapshot {
	status, err := p.fetcher.GetStreamStatus(ctx, p.liveInputID)
	if err != nil || status.Status == "" {
		status = entity.UnknownLiveInputStatus()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.snapshot = Snapshot{
		Status:      status,
		Loaded:      true,
		LastError:   err,
		LastUpdated: time.Now(),
	}

	return p.snapshot
}

// Snapshot returns the latest poll result.
func (p *Poller) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.snapshot
}
