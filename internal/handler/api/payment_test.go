//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"rentradar/internal/handler/api"
	reqdto "rentradar/internal/handler/dto/request"
	resdto "rentradar/internal/handler/dto/response"
	"rentradar/internal/usecase/commands"
	"rentradar/tests/common/httptest"
	commandsmock "rentradar/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	handler      *api.PaymentHandler
	actorID      uuid.UUID
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.actorID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockCommands)

	s.router.POST("/payments/authorize", s.withAuth(s.handler.Authorize))
}

func (s *PaymentHandlerTestSuite) withAuth(h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", s.actorID)
			c.Set("username", "testrenter")
		}
		h(c)
	}
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestAuthorize() {
	url := "/payments/authorize"
	bookingID := uuid.New()
	reqBody := reqdto.AuthorizePaymentRequest{BookingID: bookingID}

	s.Run("success: returns 200 OK with the authorization", func() {
		auth := &commands.PaymentAuthorization{
			Reference: "AUTH-7KQ2RD",
			Amount:    58.33,
			Currency:  "USD",
			Status:    "authorized",
			CreatedAt: time.Now().UTC(),
		}
		s.mockCommands.EXPECT().Authorize(gomock.Any(), s.actorID, bookingID).
			Return(auth, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		s.Equal(http.StatusOK, w.Code)
		var resp resdto.PaymentAuthorizationResponse
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), w.Body, &resp))
		s.Equal("AUTH-7KQ2RD", resp.Reference)
		s.InDelta(58.33, resp.Amount, 0.001)
		s.Equal("authorized", resp.Status)
	})

	s.Run("error: returns 401 without authentication", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(http.StatusUnauthorized, w.Code)
		s.Contains(w.Body.String(), "Unauthorized")
	})

	s.Run("error: returns 400 when booking_id is missing", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "token")

		s.Equal(http.StatusBadRequest, w.Code)
		s.Contains(w.Body.String(), "Invalid request format")
	})

	s.Run("error cases: command failures map to status codes", func() {
		tests := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"booking not found", commands.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
			{"not the renter", commands.ErrNotRenter, http.StatusForbidden, "Only the renter can authorize payment"},
			{"not payable", commands.ErrBookingNotPayable, http.StatusConflict, "Booking is not awaiting payment"},
			{"gateway declined", commands.ErrAuthorizationFail, http.StatusBadGateway, "Payment authorization failed"},
			{"unexpected failure", errors.New("db down"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tt := range tests {
			s.Run(tt.name, func() {
				s.mockCommands.EXPECT().Authorize(gomock.Any(), s.actorID, bookingID).
					Return(nil, tt.err).Times(1)

				w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

				s.Equal(tt.expectedStatus, w.Code)
				s.Contains(w.Body.String(), tt.expectedMsg)
			})
		}
	})
}
