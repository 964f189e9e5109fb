package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/GCA-LessonService/internal/usecase/get_available_slots"
)

type stubUseCase struct {
	resp *getAvailableSlots.Response
	err  error

	gotReq *getAvailableSlots.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.gotReq = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestRouter(uc *stubUseCase) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/coaches/{coachId}/available-slots", NewHandler(uc, nopLogger{}).Handle).
		Methods(http.MethodGet)
	return r
}

func TestHandle_ReturnsSlots(t *testing.T) {
	date := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	uc := &stubUseCase{
		resp: &getAvailableSlots.Response{
			CoachID:         10,
			Date:            date,
			DurationMinutes: 60,
			Slots: []getAvailableSlots.Slot{
				{
					StartTime:       date.Add(9 * time.Hour),
					EndTime:         date.Add(10 * time.Hour),
					DurationMinutes: 60,
				},
			},
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/coaches/10/available-slots?date=2025-10-13", nil)
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.CoachID)
	assert.Equal(t, "2025-10-13", resp.Date)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "2025-10-13T09:00:00Z", resp.Slots[0].StartTime)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(10), uc.gotReq.CoachID)
}

func TestHandle_MissingDate(t *testing.T) {
	uc := &stubUseCase{}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/coaches/10/available-slots", nil)
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandle_InvalidCoachID(t *testing.T) {
	uc := &stubUseCase{}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/coaches/abc/available-slots?date=2025-10-13", nil)
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_CoachNotFound(t *testing.T) {
	uc := &stubUseCase{err: getAvailableSlots.ErrCoachNotFound}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/coaches/404/available-slots?date=2025-10-13", nil)
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
