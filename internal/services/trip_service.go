package services

import (
	"strconv"
	"time"

	"github.com/fortunegablin-rgb/PSC170/internal/repositories"
	"github.com/fortunegablin-rgb/PSC170/internal/utils"
)

// Effective fare schedule. The settings table also carries fare rows, but the
// deduction path reads these constants, matching the reference system.
const (
	FareOneWay          = 6.28
	FareTwoWay          = 12.56
	LowBalanceThreshold = 12.56

	LowBalanceWarning = "Balance running low. Please recharge soon."
)

// ResolveFare maps a trip type onto the fare schedule. Anything other than
// "two-way" (including empty) falls back to one-way without complaint.
func ResolveFare(tripType string) float64 {
	if tripType == "two-way" {
		return FareTwoWay
	}
	return FareOneWay
}

// TripService coordinates duplicate suppression and the fare debit.
type TripService struct {
	TripRepo  repositories.TripRepository
	Guard     *DeductionGuard
	RequestID string
	Now       func() time.Time
}

type DeductionResult struct {
	MemberID   int64
	MemberName string
	Deducted   float64
	OldBalance float64
	NewBalance float64
	Warning    string
}

// Deduct charges one fare against the member's balance.
//
// Order matters: the guard is consulted before touching the store, and the
// deduction is recorded in the guard only after the debit committed, so a
// failed attempt never blocks a legitimate retry.
func (s TripService) Deduct(memberID int64, conductorID, tripType string) (DeductionResult, error) {
	fare := ResolveFare(tripType)
	if conductorID == "" {
		conductorID = "Unknown"
	}

	if err := s.Guard.Check(memberID, fare, conductorID); err != nil {
		utils.LogEvent(s.RequestID, "trip", "deduct", "duplicate suppressed")
		return DeductionResult{}, err
	}

	row, err := s.TripRepo.DeductFare(memberID, fare, conductorID, s.nowUTC())
	if err != nil {
		return DeductionResult{}, err
	}

	s.Guard.Record(memberID, fare, conductorID)

	res := DeductionResult{
		MemberID:   row.MemberID,
		MemberName: row.MemberName,
		Deducted:   fare,
		OldBalance: row.OldBalance,
		NewBalance: row.NewBalance,
	}
	if row.NewBalance < LowBalanceThreshold {
		res.Warning = LowBalanceWarning
	}

	utils.LogEvent(s.RequestID, "trip", "deduct",
		"member_id="+strconv.FormatInt(memberID, 10)+" fare="+utils.FormatMoney(fare))
	return res, nil
}

func (s TripService) nowUTC() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}
