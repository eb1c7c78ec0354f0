package services

import (
	"database/sql"
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/fortunegablin-rgb/PSC170/internal/domain"
	"github.com/fortunegablin-rgb/PSC170/internal/repositories"
	"github.com/fortunegablin-rgb/PSC170/internal/utils"
)

// PaymentService handles balance recharges.
type PaymentService struct {
	MemberRepo  repositories.MemberRepository
	PaymentRepo repositories.PaymentRepository
	RequestID   string
	Now         func() time.Time
}

type RechargeResult struct {
	MemberID      int64
	OldBalance    float64
	NewBalance    float64
	ReceiptNumber string
}

// Recharge credits the member balance and appends the payment row.
func (s PaymentService) Recharge(memberID int64, amount float64) (RechargeResult, error) {
	if memberID <= 0 || math.IsNaN(amount) || amount <= 0 {
		return RechargeResult{}, domain.ValidationError{Msg: "Invalid member ID or amount"}
	}

	oldBalance, newBalance, err := s.MemberRepo.CreditBalance(memberID, amount)
	if errors.Is(err, sql.ErrNoRows) {
		return RechargeResult{}, domain.NotFoundError{Resource: "member", Err: err}
	}
	if err != nil {
		return RechargeResult{}, err
	}

	now := s.nowUTC()
	receipt := utils.NewReceiptNumber(now)
	if _, err := s.PaymentRepo.Insert(memberID, amount, receipt, utils.FormatISO(now)); err != nil {
		// The credit already landed; surface the missing payment log loudly.
		utils.LogEvent(s.RequestID, "payment", "recharge", "payment log failed: "+err.Error())
		return RechargeResult{}, domain.InternalError{Msg: "recharge applied but payment log failed", Err: err}
	}

	utils.LogEvent(s.RequestID, "payment", "recharge",
		"member_id="+strconv.FormatInt(memberID, 10)+" amount="+utils.FormatMoney(amount))

	return RechargeResult{
		MemberID:      memberID,
		OldBalance:    oldBalance,
		NewBalance:    newBalance,
		ReceiptNumber: receipt,
	}, nil
}

func (s PaymentService) nowUTC() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}
