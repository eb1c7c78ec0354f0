package services

import (
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/fortunegablin-rgb/PSC170/internal/domain"
	"github.com/fortunegablin-rgb/PSC170/internal/domain/models"
	"github.com/fortunegablin-rgb/PSC170/internal/repositories"
	"github.com/fortunegablin-rgb/PSC170/internal/utils"
)

// MemberService covers member lifecycle: creation with an optional initial
// deposit, lookups, activity logs, and admin-authorized deletion.
type MemberService struct {
	MemberRepo   repositories.MemberRepository
	PaymentRepo  repositories.PaymentRepository
	TripRepo     repositories.TripRepository
	SettingsRepo repositories.SettingsRepository
	RequestID    string
	Now          func() time.Time
}

// MemberLogs groups a member's payments and trips, both newest first.
type MemberLogs struct {
	Payments []models.Payment `json:"payments"`
	Trips    []models.Trip    `json:"trips"`
}

// Create registers a member. A positive initial payment both seeds the
// balance and appends a payment row with a time-derived receipt number.
func (s MemberService) Create(name, contact string, initialPayment float64) (models.Member, error) {
	if name == "" {
		return models.Member{}, domain.ValidationError{Field: "name", Msg: "name is required"}
	}
	if initialPayment < 0 {
		return models.Member{}, domain.ValidationError{Field: "initial_payment", Msg: "must not be negative"}
	}

	member, err := s.MemberRepo.Create(name, contact, initialPayment)
	if err != nil {
		return models.Member{}, err
	}

	if initialPayment > 0 {
		now := s.nowUTC()
		receipt := utils.NewReceiptNumber(now)
		if _, err := s.PaymentRepo.Insert(member.ID, initialPayment, receipt, utils.FormatISO(now)); err != nil {
			// The member row exists either way; the missing payment log is
			// reported but does not fail the creation.
			utils.LogEvent(s.RequestID, "member", "create", "initial payment log failed: "+err.Error())
		}
	}

	utils.LogEvent(s.RequestID, "member", "create", "member_id="+strconv.FormatInt(member.ID, 10))
	return member, nil
}

func (s MemberService) Get(id int64) (models.Member, error) {
	member, err := s.MemberRepo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Member{}, domain.NotFoundError{Resource: "member", Err: err}
	}
	if err != nil {
		return models.Member{}, err
	}
	return member, nil
}

func (s MemberService) List() ([]models.Member, error) {
	return s.MemberRepo.List()
}

// Logs returns the member's payment and trip history. An unknown member
// yields empty lists rather than an error.
func (s MemberService) Logs(memberID int64) (MemberLogs, error) {
	payments, err := s.PaymentRepo.ListByMember(memberID)
	if err != nil {
		return MemberLogs{}, err
	}
	trips, err := s.TripRepo.ListByMember(memberID)
	if err != nil {
		return MemberLogs{}, err
	}
	return MemberLogs{Payments: payments, Trips: trips}, nil
}

// Delete removes the member and all of its payments and trips after
// verifying the admin password.
func (s MemberService) Delete(memberID int64, adminPassword string) error {
	if err := verifyAdminPassword(s.SettingsRepo, adminPassword); err != nil {
		return err
	}

	err := s.MemberRepo.DeleteCascade(memberID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "member", Err: err}
	}
	if err != nil {
		return err
	}

	utils.LogEvent(s.RequestID, "member", "delete", "member_id="+strconv.FormatInt(memberID, 10))
	return nil
}

func (s MemberService) nowUTC() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}
