//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"ticketboss/internal/handler/api"
	resdto "ticketboss/internal/handler/dto/response"
	"ticketboss/internal/pkg/errs"
	"ticketboss/tests/common/builder"
	"ticketboss/tests/common/httptest"
	queriesmock "ticketboss/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EventHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockEventQueries
	handler     *api.EventHandler
}

func (s *EventHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockEventQueries(s.mockCtrl)
	s.handler = api.NewEventHandler(s.mockQueries)

	s.router.GET("/api/events/:id", s.handler.GetSummary)
}

func (s *EventHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEventHandlerSuite(t *testing.T) {
	suite.Run(t, new(EventHandlerTestSuite))
}

func (s *EventHandlerTestSuite) TestGetSummary() {
	returnView := builder.NewEventSummaryBuilder().BuildView()
	url := "/api/events/" + returnView.EventID

	s.Run("success: returns 200 OK with EventSummaryResponse", func() {
		s.mockQueries.EXPECT().GetSummary(gomock.Any(), returnView.EventID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.EventSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.EventID, response.EventID)
		s.Equal(returnView.Name, response.Name)
		s.Equal(returnView.TotalSeats, response.TotalSeats)
		s.Equal(returnView.AvailableSeats, response.AvailableSeats)
		s.Equal(returnView.ReservationCount, response.ReservationCount)
		s.Equal(returnView.Version, response.Version)
	})

	s.Run("error: 404 Not Found for unknown event", func() {
		s.mockQueries.EXPECT().GetSummary(gomock.Any(), "ghost-event").
			Return(nil, errs.ErrEventNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/events/ghost-event", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Event not found")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockQueries.EXPECT().GetSummary(gomock.Any(), returnView.EventID).
			Return(nil, errors.New("inventory corrupted")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
