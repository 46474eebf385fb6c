//go:build e2e

package booking_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"rentradar/internal/handler/dto/request"
	"rentradar/internal/handler/dto/response"
	"rentradar/tests/common/authtest"
	"rentradar/tests/common/dbtest"
	"rentradar/tests/common/httptest"
	"rentradar/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/api/bookings"

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) createListing(ownerID uuid.UUID) uuid.UUID {
	daily := 20.0
	return dbtest.CreateTestItem(s.T(), s.DB, ownerID, "Cordless Drill", 3.0, &daily)
}

func futureWindow(hours float64) (time.Time, time.Time) {
	start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	return start, start.Add(time.Duration(hours * float64(time.Hour)))
}

// =============================================================================
// TestBookingLifecycle - request, accept, complete, settlement
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: request is accepted and completed with wallet settlement", func() {
		t := s.T()

		ownerID, ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "driller", "owner@example.com")
		_, renterToken := authtest.CreateAndLogin(t, s.DB, s.Router, "borrower", "renter@example.com")
		itemID := s.createListing(ownerID)

		start, end := futureWindow(10)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{ItemID: itemID, StartTime: start, EndTime: &end}, renterToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "pending", created.Status)
		require.Len(t, created.BookingCode, 6)
		// 10h at $3/h is $30; the daily rate prorates to 20 x 10/24 = $8.33.
		require.InDelta(t, 8.33, created.TotalPrice, 0.001)
		require.InDelta(t, 50.0, created.DepositHold, 0.001)

		bookingURL := bookingsURL + "/" + created.ID.String()

		// Owner accepts.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingURL+"/accept", nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var accepted response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &accepted))
		require.Equal(t, "accepted", accepted.Status)

		// Renter confirms the return.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingURL+"/complete", nil, renterToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var completed response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &completed))
		require.Equal(t, "completed", completed.Status)

		// Owner wallet: $8.33 earned, 8 whole dollars x 50 points.
		var ownerBalance float64
		var ownerPoints int
		err := s.DB.QueryRow(context.Background(),
			"SELECT balance, reward_points FROM wallets WHERE user_id = $1", ownerID).
			Scan(&ownerBalance, &ownerPoints)
		require.NoError(t, err)
		require.InDelta(t, 8.33, ownerBalance, 0.001)
		require.Equal(t, 400, ownerPoints)

		// Renter wallet: 8 whole dollars x 10 points.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/auth/wallet", nil, renterToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var wallet response.WalletResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &wallet))
		require.Equal(t, 80, wallet.RewardPoints)
	})

	s.Run("Normal case: owner rejects a pending request", func() {
		t := s.T()

		ownerID, ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "driller", "owner@example.com")
		_, renterToken := authtest.CreateAndLogin(t, s.DB, s.Router, "borrower", "renter@example.com")
		itemID := s.createListing(ownerID)

		start, end := futureWindow(4)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{ItemID: itemID, StartTime: start, EndTime: &end}, renterToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+created.ID.String()+"/reject", nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var rejected response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rejected))
		require.Equal(t, "rejected", rejected.Status)

		// Rejection is terminal.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+created.ID.String()+"/accept", nil, ownerToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: renter cannot accept their own request", func() {
		t := s.T()

		ownerID, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "driller", "owner@example.com")
		_, renterToken := authtest.CreateAndLogin(t, s.DB, s.Router, "borrower", "renter@example.com")
		itemID := s.createListing(ownerID)

		start, end := futureWindow(4)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{ItemID: itemID, StartTime: start, EndTime: &end}, renterToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+created.ID.String()+"/accept", nil, renterToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestBookingConflicts - double booking and visibility rules
// =============================================================================

func (s *BookingSuite) TestBookingConflicts() {
	s.Run("Error case: overlapping window is rejected", func() {
		t := s.T()

		ownerID, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "driller", "owner@example.com")
		_, renterToken := authtest.CreateAndLogin(t, s.DB, s.Router, "borrower", "renter@example.com")
		_, otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "latecomer", "other@example.com")
		itemID := s.createListing(ownerID)

		start, end := futureWindow(10)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{ItemID: itemID, StartTime: start, EndTime: &end}, renterToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// Second request overlaps the middle of the first window.
		overlapStart := start.Add(5 * time.Hour)
		overlapEnd := overlapStart.Add(4 * time.Hour)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{ItemID: itemID, StartTime: overlapStart, EndTime: &overlapEnd}, otherToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Normal case: back-to-back windows do not conflict", func() {
		t := s.T()

		ownerID, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "driller", "owner@example.com")
		_, renterToken := authtest.CreateAndLogin(t, s.DB, s.Router, "borrower", "renter@example.com")
		_, otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "latecomer", "other@example.com")
		itemID := s.createListing(ownerID)

		start, end := futureWindow(4)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{ItemID: itemID, StartTime: start, EndTime: &end}, renterToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// The next rental starts exactly when the first ends.
		nextEnd := end.Add(4 * time.Hour)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{ItemID: itemID, StartTime: end, EndTime: &nextEnd}, otherToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Error case: a stranger cannot see the booking", func() {
		t := s.T()

		ownerID, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "driller", "owner@example.com")
		_, renterToken := authtest.CreateAndLogin(t, s.DB, s.Router, "borrower", "renter@example.com")
		_, strangerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "nosy", "stranger@example.com")
		itemID := s.createListing(ownerID)

		start, end := futureWindow(4)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{ItemID: itemID, StartTime: start, EndTime: &end}, renterToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		// Existence is not leaked to non-parties.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			bookingsURL+"/"+created.ID.String(), nil, strangerToken)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

		// Both parties see it.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			bookingsURL+"/"+created.ID.String(), nil, renterToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("Error case: owner cannot book their own item", func() {
		t := s.T()

		ownerID, ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "driller", "owner@example.com")
		itemID := s.createListing(ownerID)

		start, end := futureWindow(4)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{ItemID: itemID, StartTime: start, EndTime: &end}, ownerToken)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}
