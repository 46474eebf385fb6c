package booking

import (
	"math"
	"time"

	"rentradar/internal/domain/item"
)

// Quote is a full pricing breakdown for a rental window. All amounts are
// dollars in full float64 precision; rounding to cents happens only when
// a quote is presented, never between recalculations.
type Quote struct {
	DurationHours      float64
	DurationDays       float64
	HourlyTotal        float64
	DailyTotal         float64 // +Inf when the item has no daily rate
	RentalFee          float64
	DepositHold        float64
	TotalAuthorization float64
}

// Computable reports whether the quote was derived from a complete time
// window. An incomplete window yields the zero Quote, not an error.
func (q Quote) Computable() bool {
	return q.DurationHours > 0
}

// DailyRateApplied reports whether the daily rate won the comparison.
func (q Quote) DailyRateApplied() bool {
	return q.Computable() && q.DailyTotal < q.HourlyTotal
}

// QuoteCalculator prices rental windows against an item's rate card.
// The only state is the policy fallback for items without a deposit.
type QuoteCalculator struct {
	defaultDeposit float64
}

func NewQuoteCalculator(defaultDeposit float64) *QuoteCalculator {
	return &QuoteCalculator{defaultDeposit: defaultDeposit}
}

// Quote prices the window [start, end) against rates:
//
//	rental_fee = min(hourly_rate x hours, daily_rate x days)
//
// The daily candidate is +Inf when no daily rate is set, so the hourly
// total always wins then. Both candidates use fractional durations; the
// min rewards the renter and must be preserved exactly.
func (c *QuoteCalculator) Quote(rates item.RateCard, start, end time.Time) Quote {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return Quote{}
	}

	hours := end.Sub(start).Hours()
	days := hours / 24

	hourlyTotal := rates.PricePerHour() * hours
	dailyTotal := math.Inf(1)
	if rate := rates.PricePerDay(); rate != nil {
		dailyTotal = *rate * days
	}

	fee := math.Min(hourlyTotal, dailyTotal)
	deposit := rates.DepositOr(c.defaultDeposit)

	return Quote{
		DurationHours:      hours,
		DurationDays:       days,
		HourlyTotal:        hourlyTotal,
		DailyTotal:         dailyTotal,
		RentalFee:          fee,
		DepositHold:        deposit,
		TotalAuthorization: fee + deposit,
	}
}

// QuoteWindow prices an already-validated rental window.
func (c *QuoteCalculator) QuoteWindow(rates item.RateCard, window RentalWindow) Quote {
	return c.Quote(rates, window.Start(), window.End())
}

// RoundCents rounds a dollar amount to two decimal places for
// presentation.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
