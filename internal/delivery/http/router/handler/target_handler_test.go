package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"geotarget/internal/domain/entity"
	"geotarget/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTargetUsecase returns canned results for the handler tests.
type stubTargetUsecase struct {
	differences *usecase.Differences
}

func (s *stubTargetUsecase) Load(ctx context.Context) error { return nil }

func (s *stubTargetUsecase) Targets(ctx context.Context) []*entity.Target { return nil }

func (s *stubTargetUsecase) Target(ctx context.Context, id uuid.UUID) *entity.Target { return nil }

func (s *stubTargetUsecase) AddTarget(ctx context.Context, input *usecase.AddTargetInput) (*entity.Target, error) {
	return nil, nil
}

func (s *stubTargetUsecase) UpdateTarget(ctx context.Context, id uuid.UUID, input *usecase.UpdateTargetInput) (*entity.Target, error) {
	return nil, nil
}

func (s *stubTargetUsecase) RemoveTarget(ctx context.Context, id uuid.UUID) error { return nil }

func (s *stubTargetUsecase) ResetAttendance(ctx context.Context, id uuid.UUID) (*entity.Target, error) {
	return nil, nil
}

func (s *stubTargetUsecase) ComputeDifferences(ctx context.Context) *usecase.Differences {
	return s.differences
}

func TestTargetHandler_GetChanges_IncludesBaseline(t *testing.T) {
	baseline := entity.NewTarget("Office", 25.0330, 121.5654)
	baseline.CreatedAt = time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	added := entity.NewTarget("Gym", 25.0418, 121.5081)

	handler := &TargetHandler{
		targetUC: &stubTargetUsecase{
			differences: &usecase.Differences{
				Before: entity.NewTargetCollection(baseline),
				Added:  []*entity.Target{added},
			},
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/targets/changes", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.GetChanges(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data DifferencesResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	// The baseline the changes were computed against rides along so the
	// consumer can reconcile against the same snapshot.
	require.Len(t, envelope.Data.Baseline, 1)
	assert.Equal(t, baseline.ID.String(), envelope.Data.Baseline[0].ID)
	assert.Equal(t, "Office", envelope.Data.Baseline[0].Title)

	require.Len(t, envelope.Data.Added, 1)
	assert.Equal(t, added.ID.String(), envelope.Data.Added[0].ID)
	assert.Empty(t, envelope.Data.Removed)
	assert.Empty(t, envelope.Data.Updated)
}
