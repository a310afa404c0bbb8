package handler

import (
	"net/http"
	"testing"

	"cleanrecord/internal/delivery/api/dto"
	"cleanrecord/internal/domain/entity"
	domainerrors "cleanrecord/internal/domain/errors"
	mockUsecase "cleanrecord/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDashboardHandler(t *testing.T) (*DashboardHandler, *mockUsecase.MockDashboardUsecase, *mockUsecase.MockStreamUsecase) {
	dashboardUC := mockUsecase.NewMockDashboardUsecase(t)
	streamUC := mockUsecase.NewMockStreamUsecase(t)

	return NewDashboardHandler(DashboardHandlerParams{
		DashboardUC: dashboardUC,
		StreamUC:    streamUC,
		Logger:      testLogger(),
	}), dashboardUC, streamUC
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	h, dashboardUC, _ := createTestDashboardHandler(t)
	next := &entity.CleaningSession{ID: uuid.New(), Status: entity.SessionStatusScheduled}
	dashboardUC.EXPECT().GetDashboard(mock.Anything, testUserID).Return(&entity.Dashboard{
		Stats:       entity.DashboardStats{CompletedCount: 2, TotalDuration: 180, AverageRating: 4.5, UpcomingCount: 1},
		NextBooking: next,
	}, nil)

	c, rec := newContext(http.MethodGet, "/api/dashboard", "", testUserID)
	require.NoError(t, h.GetDashboard(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeData[dto.DashboardResponse](t, rec)
	assert.Equal(t, "4.5", resp.Stats.AverageRatingLabel)
	assert.Equal(t, 180, resp.Stats.TotalDuration)
	require.NotNil(t, resp.NextBooking)
	assert.Equal(t, next.ID.String(), resp.NextBooking.ID)
}

func TestDashboardHandler_GetStreamStatus(t *testing.T) {
	viewers := 3

	tests := map[string]struct {
		status     entity.LiveInputStatus
		err        error
		wantStatus int
	}{
		"connected": {
			status:     entity.LiveInputStatus{Status: entity.LiveInputConnected, ViewerCount: &viewers},
			wantStatus: http.StatusOK,
		},
		"platform unavailable": {
			status:     entity.UnknownLiveInputStatus(),
			wantStatus: http.StatusOK,
		},
		"foreign live input": {
			err:        domainerrors.ErrLiveInputNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h, _, streamUC := createTestDashboardHandler(t)
			streamUC.EXPECT().GetLiveInputStatus(mock.Anything, testUserID, "li_123").Return(tt.status, tt.err)

			c, rec := newContext(http.MethodGet, "/api/stream/status/li_123", "", testUserID)
			c.SetParamNames("liveInputId")
			c.SetParamValues("li_123")
			require.NoError(t, h.GetStreamStatus(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				assert.Equal(t, tt.status, decodeData[entity.LiveInputStatus](t, rec))
			}
		})
	}
}
