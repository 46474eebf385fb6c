//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"rentradar/internal/domain/booking"
	"rentradar/internal/handler/api"
	reqdto "rentradar/internal/handler/dto/request"
	resdto "rentradar/internal/handler/dto/response"
	"rentradar/internal/usecase/commands"
	"rentradar/internal/usecase/queries"
	"rentradar/tests/common/builder"
	"rentradar/tests/common/httptest"
	commandsmock "rentradar/tests/mock/commands"
	queriesmock "rentradar/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	actorID      uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.actorID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", s.withAuth(s.handler.Create))
	s.router.GET("/bookings", s.withAuth(s.handler.List))
	s.router.GET("/bookings/:id", s.withAuth(s.handler.GetByID))
	s.router.POST("/bookings/:id/accept", s.withAuth(s.handler.Accept))
	s.router.POST("/bookings/:id/reject", s.withAuth(s.handler.Reject))
	s.router.POST("/bookings/:id/complete", s.withAuth(s.handler.Complete))
}

// withAuth mimics the auth middleware: a bearer header stands in for a
// verified session.
func (s *BookingHandlerTestSuite) withAuth(h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", s.actorID)
			c.Set("username", "testrenter")
		}
		h(c)
	}
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	start := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	end := start.Add(10 * time.Hour)
	reqBody := reqdto.CreateBookingRequest{
		ItemID:    uuid.New(),
		StartTime: start,
		EndTime:   &end,
	}

	s.Run("success: returns 201 Created with the booking", func() {
		view := builder.NewBookingBuilder().BuildView()
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actorID, gomock.Any()).
			Return(view.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("pending", response.Status)
	})

	s.Run("success: duration form instead of an end time", func() {
		hours := 10.0
		durationReq := reqdto.CreateBookingRequest{
			ItemID:        reqBody.ItemID,
			StartTime:     start,
			DurationHours: &hours,
		}
		view := builder.NewBookingBuilder().BuildView()

		s.mockCommands.EXPECT().Create(gomock.Any(), s.actorID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, in commands.CreateBookingInput) (uuid.UUID, error) {
				s.Require().NotNil(in.DurationHours)
				s.Equal(10.0, *in.DurationHours)
				return view.ID, nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, durationReq, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 401 when not authenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "item not found",
				commandsError:  commands.ErrItemNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Item not found",
			},
			{
				name:           "item unavailable",
				commandsError:  commands.ErrItemUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not available",
			},
			{
				name:           "own item",
				commandsError:  booking.ErrOwnItem,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Cannot book your own item",
			},
			{
				name:           "window in the past",
				commandsError:  booking.ErrStartInPast,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "must not be in the past",
			},
			{
				name:           "inverted window",
				commandsError:  booking.ErrEndNotAfterStart,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "end must be after start",
			},
			{
				name:           "overlapping booking",
				commandsError:  commands.ErrBookingConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already booked",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), s.actorID, gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("success: returns the user's bookings newest first", func() {
		items := []*queries.BookingListItem{
			{ID: uuid.New(), BookingCode: "AAA111", Status: "pending"},
			{ID: uuid.New(), BookingCode: "BBB222", Status: "completed"},
		}
		s.mockQueries.EXPECT().ListForUser(gomock.Any(), s.actorID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("AAA111", response[0].BookingCode)
	})

	s.Run("success: no bookings yields an empty array", func() {
		s.mockQueries.EXPECT().ListForUser(gomock.Any(), s.actorID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})
}

func (s *BookingHandlerTestSuite) TestGetByID() {
	view := builder.NewBookingBuilder().BuildView()
	url := "/bookings/" + view.ID.String()

	s.Run("success: participant sees the booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.BookingCode, response.BookingCode)
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: a stranger's booking looks missing", func() {
		for _, qErr := range []error{queries.ErrBookingNotFound, queries.ErrNotBookingParty} {
			s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, view.ID).
				Return(nil, qErr).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
		}
	})
}

func (s *BookingHandlerTestSuite) TestTransitions() {
	view := builder.NewBookingBuilder().BuildView()

	type transitionCase struct {
		name   string
		path   string
		expect func() *gomock.Call
	}

	cases := []transitionCase{
		{
			name: "accept",
			path: "/bookings/" + view.ID.String() + "/accept",
			expect: func() *gomock.Call {
				return s.mockCommands.EXPECT().Accept(gomock.Any(), s.actorID, view.ID)
			},
		},
		{
			name: "reject",
			path: "/bookings/" + view.ID.String() + "/reject",
			expect: func() *gomock.Call {
				return s.mockCommands.EXPECT().Reject(gomock.Any(), s.actorID, view.ID)
			},
		},
		{
			name: "complete",
			path: "/bookings/" + view.ID.String() + "/complete",
			expect: func() *gomock.Call {
				return s.mockCommands.EXPECT().Complete(gomock.Any(), s.actorID, view.ID)
			},
		},
	}

	for _, tc := range cases {
		s.Run(tc.name+" success returns the updated booking", func() {
			tc.expect().Return(nil).Times(1)
			s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, view.ID).
				Return(view, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, tc.path, nil, "bearer-token")
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		})
	}

	s.Run("error: maps transition errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "not the owner",
				commandsError:  booking.ErrNotOwner,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "only the item owner",
			},
			{
				name:           "not a participant",
				commandsError:  booking.ErrNotParticipant,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "only the renter or the item owner",
			},
			{
				name:           "no longer pending",
				commandsError:  booking.ErrNotPending,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "no longer pending",
			},
			{
				name:           "not accepted yet",
				commandsError:  booking.ErrNotAccepted,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not been accepted",
			},
			{
				name:           "lost the transition race",
				commandsError:  commands.ErrStaleBooking,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		path := "/bookings/" + view.ID.String() + "/accept"
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Accept(gomock.Any(), s.actorID, view.ID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
