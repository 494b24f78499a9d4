//go:build e2e

package reservation_test

import (
	"net/http"
	"testing"

	"ticketboss/internal/handler/dto/response"
	"ticketboss/tests/common/builder"
	"ticketboss/tests/common/httptest"
	"ticketboss/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	eventsURL       = "/api/events/"
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func (s *ReservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

func (s *ReservationSuite) eventSummary(t *testing.T, eventID string) response.EventSummaryResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, eventsURL+eventID, nil, "")
	require.Equal(t, http.StatusOK, w.Code, "Should fetch event summary")

	var summary response.EventSummaryResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &summary))
	return summary
}

func (s *ReservationSuite) createReservation(t *testing.T, seats int) response.ReservationResponse {
	t.Helper()
	reqBody := builder.NewReservationBuilder().WithSeats(seats).BuildCreateRequestDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, "")
	require.Equal(t, http.StatusCreated, w.Code, "Should create reservation: %s", w.Body.String())

	var created response.ReservationResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

// =============================================================================
// TestReservationLifecycle - create, read, cancel round trip
// =============================================================================

func (s *ReservationSuite) TestReservationLifecycle() {
	s.Run("Normal case: create reservation and observe it in the event summary", func() {
		t := s.T()
		seed := s.Config.Seed

		created := s.createReservation(t, 4)
		require.Equal(t, seed.EventID, created.EventID)
		require.Equal(t, "confirmed", created.Status)
		require.Equal(t, 4, created.Seats)
		require.Nil(t, created.CancelledAt)

		summary := s.eventSummary(t, seed.EventID)
		expected := response.EventSummaryResponse{
			EventID:          seed.EventID,
			Name:             seed.EventName,
			TotalSeats:       seed.TotalSeats,
			AvailableSeats:   seed.TotalSeats - 4,
			ReservationCount: 4,
			Version:          1,
		}
		require.Empty(t, cmp.Diff(expected, summary))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+created.ReservationID.String(), nil, "")
		var fetched response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fetched)
		require.Empty(t, cmp.Diff(created, fetched))
	})

	s.Run("Normal case: cancelling returns the seats and bumps the version", func() {
		t := s.T()
		seed := s.Config.Seed

		created := s.createReservation(t, 4)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationsURL+"/"+created.ReservationID.String(), nil, "")
		require.Equal(t, http.StatusNoContent, w.Code, "Should cancel reservation")

		summary := s.eventSummary(t, seed.EventID)
		require.Equal(t, seed.TotalSeats, summary.AvailableSeats, "Seats should return to the pool")
		require.Equal(t, 0, summary.ReservationCount, "Cancelled seats leave the confirmed total")
		require.Equal(t, int64(2), summary.Version)

		// 取消済みでも監査用に照会できる
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+created.ReservationID.String(), nil, "")
		var fetched response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fetched)
		require.Equal(t, "cancelled", fetched.Status)
		require.NotNil(t, fetched.CancelledAt)
	})

	s.Run("Normal case: omitted eventId falls back to the seeded event", func() {
		t := s.T()

		reqBody := map[string]any{"partnerId": "acme-tickets", "seats": 2}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, "")

		var created response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, s.Config.Seed.EventID, created.EventID)
	})
}

// =============================================================================
// TestCapacityExhaustion - pool drains to zero and rejects further requests
// =============================================================================

func (s *ReservationSuite) TestCapacityExhaustion() {
	s.Run("Error case: requests beyond the pool are rejected with 409", func() {
		t := s.T()
		seed := s.Config.Seed

		for range seed.TotalSeats / 10 {
			s.createReservation(t, 10)
		}

		summary := s.eventSummary(t, seed.EventID)
		require.Equal(t, 0, summary.AvailableSeats)
		require.Equal(t, seed.TotalSeats, summary.ReservationCount)

		reqBody := builder.NewReservationBuilder().WithSeats(1).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Not enough seats left")

		// 失敗したリクエストはバージョンを進めない
		after := s.eventSummary(t, seed.EventID)
		require.Equal(t, summary.Version, after.Version)
	})
}

// =============================================================================
// TestErrorResponses - failure taxonomy over the wire
// =============================================================================

func (s *ReservationSuite) TestErrorResponses() {
	s.Run("Error case: unknown event returns 404", func() {
		t := s.T()

		reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()
		ghost := "ghost-event"
		reqBody.EventID = &ghost

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Event not found")
	})

	s.Run("Error case: double cancel returns 404 with a distinct message", func() {
		t := s.T()

		created := s.createReservation(t, 2)
		url := reservationsURL + "/" + created.ReservationID.String()

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, "")
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Reservation already cancelled")

		// 二重取消は在庫に影響しない
		summary := s.eventSummary(t, s.Config.Seed.EventID)
		require.Equal(t, s.Config.Seed.TotalSeats, summary.AvailableSeats)
	})

	s.Run("Error case: unknown reservation id returns 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/4f4e7e6a-0000-4000-8000-000000000000", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Reservation not found")
	})

	s.Run("Error case: malformed reservation id returns 400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationsURL+"/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid reservation id")
	})
}

// =============================================================================
// TestHealthCheck
// =============================================================================

func (s *ReservationSuite) TestHealthCheck() {
	s.Run("Normal case: health endpoint responds", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/health", nil, "")

		var body map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, "ok", body["status"])
	})
}
