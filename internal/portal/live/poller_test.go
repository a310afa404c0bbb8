package live

import (
	"context"
	"sync"
	"testing"
	"time"

	"cleanrecord/internal/delivery/api/dto"
	"cleanrecord/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	mu     sync.Mutex
	calls  int
	ids    []string
	status entity.LiveInputStatus
	err    error
}

func (f *fakeFetcher) GetStreamStatus(_ context.Context, liveInputID string) (entity.LiveInputStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.ids = append(f.ids, liveInputID)

	return f.status, f.err
}

func (f *fakeFetcher) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls
}

func strPtr(s string) *string { return &s }

func TestShouldPoll(t *testing.T) {
	tests := []struct {
		name    string
		session *dto.SessionResponse
		want    bool
	}{
		{"nil", nil, false},
		{"live with input", &dto.SessionResponse{Status: "live", LiveInputID: strPtr("li_1")}, true},
		{"live without input", &dto.SessionResponse{Status: "live"}, false},
		{"live with blank input", &dto.SessionResponse{Status: "live", LiveInputID: strPtr("")}, false},
		{"scheduled", &dto.SessionResponse{Status: "scheduled", LiveInputID: strPtr("li_1")}, false},
		{"completed", &dto.SessionResponse{Status: "completed", LiveInputID: strPtr("li_1")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldPoll(tt.session))
		})
	}
}

func TestSnapshot_View(t *testing.T) {
	assert.Equal(t, ViewLoading, Snapshot{}.View())
	assert.Equal(t, ViewActive, Snapshot{Loaded: true, Status: entity.LiveInputStatus{Status: entity.LiveInputConnected}}.View())
	assert.Equal(t, ViewOffline, Snapshot{Loaded: true, Status: entity.LiveInputStatus{Status: entity.LiveInputDisconnected}}.View())
	assert.Equal(t, ViewOffline, Snapshot{Loaded: true, Status: entity.UnknownLiveInputStatus()}.View())
}

func TestSnapshot_OfflineReason(t *testing.T) {
	disconnected := Snapshot{Loaded: true, Status: entity.LiveInputStatus{Status: entity.LiveInputDisconnected}}
	unknown := Snapshot{Loaded: true, Status: entity.UnknownLiveInputStatus()}

	assert.Contains(t, disconnected.OfflineReason(), "rozłączona")
	assert.Contains(t, unknown.OfflineReason(), "Oczekiwanie")
}

func TestPoller_RefreshRecordsStatus(t *testing.T) {
	viewers := 3
	fetcher := &fakeFetcher{status: entity.LiveInputStatus{Status: entity.LiveInputConnected, ViewerCount: &viewers}}
	p := NewPoller(fetcher, "li_1", time.Minute)

	snap := p.Refresh(context.Background())

	assert.True(t, snap.Loaded)
	assert.Equal(t, ViewActive, snap.View())
	require.NotNil(t, snap.Status.ViewerCount)
	assert.Equal(t, 3, *snap.Status.ViewerCount)
	assert.Equal(t, snap, p.Snapshot())
	assert.Equal(t, []string{"li_1"}, fetcher.ids)
}

func TestPoller_FailureBecomesUnknown(t *testing.T) {
	fetcher := &fakeFetcher{status: entity.LiveInputStatus{Status: entity.LiveInputConnected}, err: assert.AnError}
	p := NewPoller(fetcher, "li_1", time.Minute)

	snap := p.Refresh(context.Background())

	assert.Equal(t, entity.LiveInputUnknown, snap.Status.Status)
	assert.ErrorIs(t, snap.LastError, assert.AnError)
	assert.Equal(t, ViewOffline, snap.View())
}

func TestPoller_EmptyStatusBecomesUnknown(t *testing.T) {
	p := NewPoller(&fakeFetcher{}, "li_1", time.Minute)

	snap := p.Refresh(context.Background())

	assert.Equal(t, entity.LiveInputUnknown, snap.Status.Status)
	assert.NoError(t, snap.LastError)
}

func TestPoller_DefaultInterval(t *testing.T) {
	p := NewPoller(&fakeFetcher{}, "li_1", 0)

	assert.Equal(t, DefaultInterval, p.interval)
	assert.Equal(t, 30*time.Second, p.interval)
}

func TestPoller_StartPollsUntilCancelled(t *testing.T) {
	fetcher := &fakeFetcher{status: entity.LiveInputStatus{Status: entity.LiveInputConnected}}
	p := NewPoller(fetcher, "li_1", 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	p.Start(ctx)

	assert.Eventually(t, func() bool { return fetcher.Calls() >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-p.Done():
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancel")
	}

	stopped := fetcher.Calls()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, fetcher.Calls())
	assert.Equal(t, ViewActive, p.Snapshot().View())
}

func TestPoller_StartTwiceRunsOneLoop(t *testing.T) {
	fetcher := &fakeFetcher{status: entity.LiveInputStatus{Status: entity.LiveInputConnected}}
	p := NewPoller(fetcher, "li_1", time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	p.Start(ctx)
	p.Start(ctx)

	require.Eventually(t, func() bool { return fetcher.Calls() >= 1 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-p.Done():
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancel")
	}
	assert.Equal(t, 1, fetcher.Calls())
}
