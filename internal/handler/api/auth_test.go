//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"rentradar/internal/domain/user"
	"rentradar/internal/handler/api"
	reqdto "rentradar/internal/handler/dto/request"
	resdto "rentradar/internal/handler/dto/response"
	"rentradar/internal/pkg/config"
	"rentradar/internal/usecase/commands"
	"rentradar/internal/usecase/queries"
	"rentradar/tests/common/builder"
	"rentradar/tests/common/httptest"
	"rentradar/tests/common/testutil"
	commandsmock "rentradar/tests/mock/commands"
	queriesmock "rentradar/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, config.NewTestConfig().Cookie)

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", s.withAuth(s.handler.Me))
	s.router.GET("/auth/wallet", s.withAuth(s.handler.Wallet))
}

// withAuth mimics the auth middleware: a bearer header stands in for a
// verified session.
func (s *AuthHandlerTestSuite) withAuth(h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", uuid.New())
			c.Set("username", "testrenter")
		}
		h(c)
	}
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func newSession(userID uuid.UUID) *commands.AuthSession {
	return &commands.AuthSession{
		UserID:    userID,
		Username:  "testrenter",
		Token:     "test-jwt-token",
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	returnUser := builder.NewUserBuilder().BuildView()
	reqBody := reqdto.RegisterRequest{
		Username: "testrenter",
		Email:    "renter@example.com",
		Password: "password123",
	}

	s.Run("success: returns 201 Created with a session", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(newSession(returnUser.ID), nil).Times(1)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), returnUser.ID).
			Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("test-jwt-token", response.AccessToken)
		s.Require().NotNil(response.User)
		s.Equal(returnUser.Email, response.User.Email)

		cookies := httptest.ExtractCookies(rec)
		s.Require().NotEmpty(cookies)
		s.Equal("access_token", cookies[0].Name)
	})

	s.Run("error: 400 Bad Request when required fields missing", func() {
		for _, field := range []string{"username", "email", "password"} {
			s.Run("missing "+field, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid email",
				commandsError:  user.ErrInvalidEmail,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "invalid email format",
			},
			{
				name:           "weak password",
				commandsError:  user.ErrPasswordTooWeak,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "at least 8 characters",
			},
			{
				name:           "latitude out of range",
				commandsError:  user.ErrInvalidLatitude,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "latitude must be between",
			},
			{
				name:           "account taken",
				commandsError:  commands.ErrAccountTaken,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already in use",
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
				s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	returnUser := builder.NewUserBuilder().BuildView()
	reqBody := reqdto.LoginRequest{
		Email:    "renter@example.com",
		Password: "password123",
	}

	s.Run("success: returns 200 OK for valid credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "renter@example.com", "password123").
			Return(newSession(returnUser.ID), nil).Times(1)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), returnUser.ID).
			Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response.User.Email)
	})

	s.Run("success: email is normalized before lookup", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "renter@example.com", "password123").
			Return(newSession(returnUser.ID), nil).Times(1)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), returnUser.ID).
			Return(returnUser, nil).Times(1)

		shouting := reqdto.LoginRequest{Email: "  RENTER@Example.com ", Password: "password123"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, shouting, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				commandsError:  commands.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "account disabled",
				commandsError:  commands.ErrAccountDisabled,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Account is inactive",
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
				s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 and clears the cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)

		cookies := httptest.ExtractCookies(rec)
		s.Require().NotEmpty(cookies)
		s.Equal("access_token", cookies[0].Name)
		s.Empty(cookies[0].Value)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"
	returnUser := builder.NewUserBuilder().BuildView()

	s.Run("success: returns current user info", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
			Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response["email"])
	})

	s.Run("error: 401 when not authenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "user not found",
				queriesError:   queries.ErrUserNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "User not found",
			},
			{
				name:           "user inactive",
				queriesError:   queries.ErrUserInactive,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Account is inactive",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestWallet() {
	url := "/auth/wallet"

	s.Run("success: returns the wallet", func() {
		userID := uuid.New()
		s.mockQueries.EXPECT().GetWallet(gomock.Any(), gomock.Any()).
			Return(&queries.WalletView{UserID: userID, Balance: 12.5, RewardPoints: 80}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.WalletResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(12.5, response.Balance)
		s.Equal(80, response.RewardPoints)
	})

	s.Run("error: 404 when the wallet is missing", func() {
		s.mockQueries.EXPECT().GetWallet(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Wallet not found")
	})
}
