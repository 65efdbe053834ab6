package queries

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const defaultTransactionPeriodDays = 30

var allowedTransactionPeriods = map[string]int{"30": 30, "90": 90, "365": 365}

var ErrGetStoreTransactionsQueryIsNotConstructed = errors.New(
	"GetStoreTransactionsQuery must be created via NewGetStoreTransactionsQuery constructor",
)

// GetStoreTransactionsQuery asks for the delivered orders of the operator's stores,
// either over the last 30, 90 or 365 days or over an explicit range of calendar dates.
type GetStoreTransactionsQuery struct {
	operator kernel.Actor
	days     int
	from     *dateOnly
	to       *dateOnly

	guard guard.ConstructorGuard
}

type dateOnly struct {
	year  int
	month time.Month
	day   int
}

func parseDateOnly(name, raw string) (*dateOnly, error) {
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return &dateOnly{year: d.Year(), month: d.Month(), day: d.Day()}, nil
}

func (d dateOnly) in(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

// NewGetStoreTransactionsQuery builds the query. A range needs both rawStart and
// rawEnd as YYYY-MM-DD and takes precedence over rawPeriod. Without a range the
// period defaults to 30 days.
func NewGetStoreTransactionsQuery(
	operator kernel.Actor,
	rawPeriod, rawStart, rawEnd string,
) (GetStoreTransactionsQuery, error) {
	if err := operator.Validate(); err != nil {
		return GetStoreTransactionsQuery{}, err
	}
	if !operator.IsOperator() {
		return GetStoreTransactionsQuery{}, errs.NewAccessDeniedError("store transactions", operator.String())
	}

	q := GetStoreTransactionsQuery{operator: operator, guard: guard.NewConstructorGuard()}

	switch {
	case rawStart != "" && rawEnd != "":
		from, err := parseDateOnly("startDate", rawStart)
		if err != nil {
			return GetStoreTransactionsQuery{}, err
		}
		to, err := parseDateOnly("endDate", rawEnd)
		if err != nil {
			return GetStoreTransactionsQuery{}, err
		}
		if from.in(time.UTC).After(to.in(time.UTC)) {
			return GetStoreTransactionsQuery{}, errs.NewValueIsInvalidErrorWithCause("startDate",
				errors.New("Start date cannot be after end date"))
		}
		q.from, q.to = from, to
	case rawStart != "":
		return GetStoreTransactionsQuery{}, errs.NewValueIsRequiredError("endDate")
	case rawEnd != "":
		return GetStoreTransactionsQuery{}, errs.NewValueIsRequiredError("startDate")
	case rawPeriod == "":
		q.days = defaultTransactionPeriodDays
	default:
		days, ok := allowedTransactionPeriods[rawPeriod]
		if !ok {
			return GetStoreTransactionsQuery{}, errs.NewValueIsInvalidErrorWithCause("period",
				fmt.Errorf("Invalid period %q. Allowed values: 30, 90, or 365 days", rawPeriod))
		}
		q.days = days
	}

	return q, nil
}

func (q GetStoreTransactionsQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreTransactionsQueryIsNotConstructed)
}

func (q GetStoreTransactionsQuery) Operator() kernel.Actor {
	return q.operator
}

// Days is the look-back period, 0 when a date range was given.
func (q GetStoreTransactionsQuery) Days() int {
	return q.days
}

// Window returns the half-open interval [from, to) of delivery instants. A date
// range covers whole days in loc, the end date included.
func (q GetStoreTransactionsQuery) Window(now time.Time, loc *time.Location) (time.Time, time.Time) {
	if q.from != nil && q.to != nil {
		return q.from.in(loc), q.to.in(loc).AddDate(0, 0, 1)
	}
	return now.AddDate(0, 0, -q.days), now
}

// TransactionView is one delivered order and the revenue it brought.
type TransactionView struct {
	OrderID     int64
	LocationID  int64
	CustomerID  int64
	DeliveredAt time.Time
	PaymentMode string
	TotalAmount decimal.Decimal
}

type PaymentModeSummary struct {
	Count  int
	Amount decimal.Decimal
}

// TransactionsView reports the delivered orders of a window, latest delivery first.
type TransactionsView struct {
	Days              int
	From              time.Time
	To                time.Time
	TotalTransactions int
	TotalRevenue      decimal.Decimal
	PaymentModes      map[string]PaymentModeSummary
	Transactions      []TransactionView
}
