//go:build e2e

package room_test

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"net/url"
	"testing"
	"time"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/handler/dto/request"
	"room-booking/internal/handler/dto/response"
	"room-booking/tests/common/builder"
	"room-booking/tests/common/dbtest"
	"room-booking/tests/common/httptest"
	"room-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	roomsURL        = "/api/rooms"
	roomURL         = "/api/rooms/%s"
	reservationsURL = "/api/rooms/%s/reservations"
	availabilityURL = "/api/availability"
)

type RoomSuite struct {
	e2e.SharedSuite
}

func (s *RoomSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestRoomSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RoomSuite))
}

// daysFromToday is a calendar day relative to today in the application time zone.
func (s *RoomSuite) daysFromToday(n int) reservation.Date {
	return reservation.DateOf(time.Now().In(s.Config.App.Location())).AddDays(n)
}

func (s *RoomSuite) createRoom(t *testing.T, name string, capacity int, projector bool) response.RoomResponse {
	t.Helper()
	body := request.RoomRequest{Name: name, Capacity: capacity, ProjectorAvailable: projector}

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, body)
	var created response.RoomResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	require.NotEqual(t, uuid.Nil, created.ID)
	return created
}

func (s *RoomSuite) reserve(t *testing.T, roomID uuid.UUID, date string, comment *string) *nethttptest.ResponseRecorder {
	t.Helper()
	return httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(reservationsURL, roomID),
		request.CreateReservationRequest{Date: date, Comment: comment})
}

// =============================================================================
// Room registry
// =============================================================================

func (s *RoomSuite) TestRoomLifecycle() {
	s.Run("create then list returns exactly that room", func() {
		t := s.T()
		created := s.createRoom(t, "Lab A", 20, true)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL, nil)
		var list []response.RoomListItemResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)

		require.Len(t, list, 1)
		s.Equal(created.ID, list[0].ID)
		s.Equal("Lab A", list[0].Name)
		s.Equal(20, list[0].Capacity)
		s.True(list[0].ProjectorAvailable)
		s.False(list[0].ReservedToday)
	})

	s.Run("Location header points at the new room", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, builder.NewRoomBuilder().BuildRequestDTO())
		var created response.RoomResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		httptest.AssertHeaders(t, w, map[string]string{"Location": fmt.Sprintf(roomURL, created.ID)})

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, w.Header().Get("Location"), nil)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
	})

	s.Run("form submission is accepted", func() {
		t := s.T()
		w := httptest.PerformFormRequest(t, s.Router, http.MethodPost, roomsURL, url.Values{
			"room-name":      {"Board Room"},
			"room-capacity":  {"12"},
			"room-projector": {"on"},
		})
		var created response.RoomResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		s.Equal("Board Room", created.Name)
		s.True(created.ProjectorAvailable)
	})

	s.Run("listing keeps registration order", func() {
		t := s.T()
		names := []string{"Zeta", "Alpha", "Mid"}
		for _, n := range names {
			s.createRoom(t, n, 4, false)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL, nil)
		var list []response.RoomListItemResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)

		got := make([]string, len(list))
		for i, r := range list {
			got[i] = r.Name
		}
		if diff := cmp.Diff(names, got); diff != "" {
			t.Errorf("room order mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("validation failures", func() {
		t := s.T()
		s.createRoom(t, "Lab A", 20, true)

		cases := []struct {
			name       string
			body       request.RoomRequest
			wantStatus int
		}{
			{name: "empty name", body: request.RoomRequest{Name: "  ", Capacity: 5}, wantStatus: http.StatusBadRequest},
			{name: "zero capacity", body: request.RoomRequest{Name: "Lab B", Capacity: 0}, wantStatus: http.StatusBadRequest},
			{name: "negative capacity", body: request.RoomRequest{Name: "Lab B", Capacity: -1}, wantStatus: http.StatusBadRequest},
			{name: "capacity beyond column range", body: request.RoomRequest{Name: "Lab B", Capacity: 3_000_000_000}, wantStatus: http.StatusBadRequest},
			{name: "duplicate name", body: request.RoomRequest{Name: "Lab A", Capacity: 5}, wantStatus: http.StatusConflict},
		}
		for _, tc := range cases {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, tc.body)
			httptest.AssertErrorResponse(t, w, tc.wantStatus, "", "validation")
		}
	})

	s.Run("update keeps own name and rejects another room's", func() {
		t := s.T()
		a := s.createRoom(t, "Lab A", 20, true)
		b := s.createRoom(t, "Lab B", 8, false)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(roomURL, a.ID),
			request.RoomRequest{Name: "Lab A", Capacity: 25, ProjectorAvailable: false})
		var updated response.RoomResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		s.Equal(25, updated.Capacity)
		s.False(updated.ProjectorAvailable)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(roomURL, b.ID),
			request.RoomRequest{Name: "Lab A", Capacity: 8})
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already exists", "validation")

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(roomURL, uuid.New()),
			request.RoomRequest{Name: "Lab C", Capacity: 8})
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "", "not_found")
	})

	s.Run("delete cascades to reservations", func() {
		t := s.T()
		a := s.createRoom(t, "Lab A", 20, true)
		dbtest.CreateTestReservation(t, s.DB, a.ID, s.daysFromToday(3).Time(), nil)
		dbtest.CreateTestReservation(t, s.DB, a.ID, s.daysFromToday(4).Time(), nil)
		require.Equal(t, 2, dbtest.CountReservations(t, s.DB, a.ID))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(roomURL, a.ID), nil)
		s.Equal(http.StatusNoContent, w.Code)
		s.Equal(0, dbtest.CountReservations(t, s.DB, a.ID))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(roomURL, a.ID), nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "room not found", "not_found")
	})

	s.Run("delete of a missing room is not found", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(roomURL, uuid.New()), nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "", "not_found")
	})
}

// =============================================================================
// Reservation ledger
// =============================================================================

func (s *RoomSuite) TestReservations() {
	s.Run("Lab A scenario", func() {
		t := s.T()
		lab := s.createRoom(t, "Lab A", 20, true)
		day := s.daysFromToday(30).String()
		comment := "Team sync"

		w := s.reserve(t, lab.ID, day, &comment)
		var created response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		s.Equal(day, created.Date)
		s.Equal("Team sync", *created.Comment)

		w = s.reserve(t, lab.ID, day, nil)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already reserved", "validation")

		w = s.reserve(t, lab.ID, "2020-01-01", nil)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "in the past", "validation")

		s.Equal(1, dbtest.CountReservations(t, s.DB, lab.ID))

		statusURL := roomsURL + "/" + lab.ID.String() + "/reservations/"
		for _, tc := range []struct {
			date     string
			reserved bool
		}{
			{date: day, reserved: true},
			{date: s.daysFromToday(31).String(), reserved: false},
		} {
			w = httptest.PerformRequest(t, s.Router, http.MethodGet, statusURL+tc.date, nil)
			var status response.ReservationStatusResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &status)
			s.Equal(tc.reserved, status.Reserved, tc.date)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL+"/"+uuid.New().String()+"/reservations/"+day, nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "room not found", "not_found")
	})

	s.Run("unknown room and bad dates", func() {
		t := s.T()
		lab := s.createRoom(t, "Lab A", 20, true)

		w := s.reserve(t, uuid.New(), s.daysFromToday(1).String(), nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "room not found", "not_found")

		w = s.reserve(t, lab.ID, "", nil)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "required", "validation")

		w = s.reserve(t, lab.ID, "next friday", nil)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "YYYY-MM-DD", "validation")
	})

	s.Run("blank comment is stored as NULL", func() {
		t := s.T()
		lab := s.createRoom(t, "Lab A", 20, true)
		blank := "   "

		w := s.reserve(t, lab.ID, s.daysFromToday(2).String(), &blank)
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)

		var isNull bool
		err := s.DB.QueryRow(t.Context(), "SELECT comment IS NULL FROM reservations WHERE room_id = $1", lab.ID).Scan(&isNull)
		require.NoError(t, err)
		s.True(isNull)
	})

	s.Run("upcoming list is ascending and starts today", func() {
		t := s.T()
		lab := s.createRoom(t, "Lab A", 20, true)
		dbtest.CreateTestReservation(t, s.DB, lab.ID, s.daysFromToday(-1).Time(), nil)
		for _, n := range []int{9, 0, 5} {
			w := s.reserve(t, lab.ID, s.daysFromToday(n).String(), nil)
			httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationsURL, lab.ID), nil)
		var list []response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)

		got := make([]string, len(list))
		for i, r := range list {
			got[i] = r.Date
		}
		want := []string{s.daysFromToday(0).String(), s.daysFromToday(5).String(), s.daysFromToday(9).String()}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("upcoming mismatch (-want +got):\n%s", diff)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationsURL, lab.ID)+"?from="+s.daysFromToday(5).String(), nil)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		s.Len(list, 2)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(roomsURL+"/%s", lab.ID), nil)
		var detail response.RoomDetailResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &detail)
		s.Len(detail.UpcomingReservations, 3)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL, nil)
		var rooms []response.RoomListItemResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &rooms)
		require.Len(t, rooms, 1)
		s.True(rooms[0].ReservedToday)
	})

	s.Run("upcoming list of a missing room is not found", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationsURL, uuid.New()), nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "", "not_found")
	})
}

// =============================================================================
// Availability
// =============================================================================

func (s *RoomSuite) TestAvailability() {
	s.Run("filters by capacity, projector and same-day bookings", func() {
		t := s.T()
		day := s.daysFromToday(7)
		small := s.createRoom(t, "Small", 5, false)
		s.createRoom(t, "Large", 20, true)
		booked := s.createRoom(t, "Booked", 30, true)
		dbtest.CreateTestReservation(t, s.DB, booked.ID, day.Time(), nil)
		dbtest.CreateTestReservation(t, s.DB, small.ID, day.AddDays(1).Time(), nil)

		search := func(query string) []string {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL+query, nil)
			var rooms []response.RoomResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &rooms)
			names := make([]string, len(rooms))
			for i, r := range rooms {
				names[i] = r.Name
			}
			return names
		}

		date := "?date=" + day.String()
		s.Equal([]string{"Large"}, search(date+"&capacity=10"))
		s.Equal([]string{"Large"}, search(date+"&projector=on"))
		s.Equal([]string{"Small", "Large"}, search(date+"&capacity=1"))
		s.Equal([]string{}, search(date))
		s.Equal([]string{"Large", "Booked"}, search("?date="+day.AddDays(1).String()+"&capacity=1"))
	})

	s.Run("bad filters are rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL+"?capacity=lots", nil)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "whole number", "validation")
	})
}
