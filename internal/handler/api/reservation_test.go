//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"
	"room-booking/internal/handler/api"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"
	"room-booking/tests/common/builder"
	"room-booking/tests/common/httptest"
	commandsmock "room-booking/tests/mock/commands"
	queriesmock "room-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// 2025-05-20 in Tokyo
var handlerNow = time.Date(2025, 5, 20, 10, 0, 0, 0, time.FixedZone("JST", 9*60*60))

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries, clock.NewMockClock(handlerNow))

	s.router.POST("/api/rooms/:id/reservations", s.handler.Create)
	s.router.GET("/api/rooms/:id/reservations", s.handler.ListUpcoming)
	s.router.GET("/api/rooms/:id/reservations/:date", s.handler.Status)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	b := builder.NewReservationBuilder()
	path := "/api/rooms/" + b.RoomID.String() + "/reservations"
	created, err := b.BuildDomain()
	s.Require().NoError(err)

	s.Run("success: JSON body returns 201", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), b.BuildCommand()).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, b.BuildRequestDTO())

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID(), body.ID)
		s.Equal(b.RoomID, body.RoomID)
		s.Equal("2025-06-01", body.Date)
		s.Equal("Team sync", *body.Comment)
	})

	s.Run("success: form body without comment", func() {
		expected := commands.CreateReservationRequest{RoomID: b.RoomID, Date: reservation.NewDate(2025, time.June, 1)}
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, cmd commands.CreateReservationRequest) (*reservation.Reservation, error) {
				s.Equal(expected.RoomID, cmd.RoomID)
				s.True(expected.Date.Equal(cmd.Date))
				return created, nil
			}).Times(1)

		rec := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, path, url.Values{"date": {"2025-06-01"}})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 on unusable dates before reaching the usecase", func() {
		testCases := []struct {
			name      string
			date      string
			expectMsg string
		}{
			{name: "missing", date: "", expectMsg: "required"},
			{name: "wrong layout", date: "01/06/2025", expectMsg: "YYYY-MM-DD"},
			{name: "impossible day", date: "2025-13-01", expectMsg: "YYYY-MM-DD"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, map[string]any{"date": tc.date})
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectMsg, "validation")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name         string
			err          error
			expectStatus int
			expectMsg    string
			expectKind   string
		}{
			{name: "past date", err: reservation.ErrDateInPast, expectStatus: http.StatusBadRequest, expectMsg: "in the past", expectKind: "validation"},
			{name: "already reserved", err: reservation.ErrAlreadyReserved, expectStatus: http.StatusConflict, expectMsg: "already reserved", expectKind: "validation"},
			{name: "room missing", err: room.ErrNotFound, expectStatus: http.StatusNotFound, expectMsg: "room not found", expectKind: "not_found"},
			{name: "unexpected", err: errors.New("connection reset"), expectStatus: http.StatusInternalServerError, expectMsg: "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, b.BuildRequestDTO())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectStatus, tc.expectMsg, tc.expectKind)
			})
		}
	})

	s.Run("error: 400 on malformed room id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/rooms/abc/reservations", b.BuildRequestDTO())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room id", "validation")
	})
}

// ================================================================================
// TestListUpcoming
// ================================================================================

func (s *ReservationHandlerTestSuite) TestListUpcoming() {
	roomID := uuid.New()
	path := "/api/rooms/" + roomID.String() + "/reservations"
	views := []*queries.ReservationView{
		builder.NewReservationBuilder().WithRoomID(roomID).BuildView(),
		builder.NewReservationBuilder().WithRoomID(roomID).WithDate(reservation.NewDate(2025, time.June, 2)).WithComment(nil).BuildView(),
	}

	s.Run("success: defaults to today in the clock's zone", func() {
		s.mockQueries.EXPECT().ListUpcoming(gomock.Any(), roomID, reservation.NewDate(2025, time.May, 20)).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil)

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("2025-06-01", body[0].Date)
		s.Equal("2025-06-02", body[1].Date)
		s.Nil(body[1].Comment)
	})

	s.Run("success: explicit from date", func() {
		s.mockQueries.EXPECT().ListUpcoming(gomock.Any(), roomID, reservation.NewDate(2025, time.June, 2)).Return(views[1:], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path+"?from=2025-06-02", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on malformed from", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path+"?from=tomorrow", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD", "validation")
	})

	s.Run("error: 404 when the room is missing", func() {
		s.mockQueries.EXPECT().ListUpcoming(gomock.Any(), roomID, gomock.Any()).Return(nil, room.ErrNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "room not found", "not_found")
	})
}

// ================================================================================
// TestStatus
// ================================================================================

func (s *ReservationHandlerTestSuite) TestStatus() {
	roomID := uuid.New()
	path := "/api/rooms/" + roomID.String() + "/reservations/"

	s.Run("success: reports whether the day is taken", func() {
		for _, reserved := range []bool{true, false} {
			s.mockQueries.EXPECT().IsReserved(gomock.Any(), roomID, reservation.NewDate(2025, time.June, 1)).Return(reserved, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path+"2025-06-01", nil)

			var body resdto.ReservationStatusResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			s.Equal(roomID, body.RoomID)
			s.Equal("2025-06-01", body.Date)
			s.Equal(reserved, body.Reserved)
		}
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path+"2025-02-30", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD", "validation")
	})

	s.Run("error: 400 on malformed room id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms/abc/reservations/2025-06-01", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room id", "validation")
	})

	s.Run("error: 404 when the room is missing", func() {
		s.mockQueries.EXPECT().IsReserved(gomock.Any(), roomID, gomock.Any()).Return(false, room.ErrNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path+"2025-06-01", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "room not found", "not_found")
	})

	s.Run("error: 500 on store failure", func() {
		s.mockQueries.EXPECT().IsReserved(gomock.Any(), roomID, gomock.Any()).Return(false, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path+"2025-06-01", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error", "")
	})
}
