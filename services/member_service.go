package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"kickconnect.net/configs/configslog"
	"kickconnect.net/models"
	"kickconnect.net/repositories"

	"go.uber.org/zap"
)

type MemberServiceError string

func (e MemberServiceError) Error() string { return string(e) }

const (
	ErrMemberNotFound       MemberServiceError = "member not found"
	ErrMemberNameRequired   MemberServiceError = "member first and last name are required"
	ErrMemberCreationFailed MemberServiceError = "member could not be created"
	ErrMemberUpdateFailed   MemberServiceError = "member could not be updated"
	ErrAttendanceFailed     MemberServiceError = "attendance could not be recorded"
	ErrPlanNotFound         MemberServiceError = "membership plan not found"
	ErrPlanWriteFailed      MemberServiceError = "membership plan could not be saved"
)

// MemberInput is the payload for creating or updating a member.
type MemberInput struct {
	MemberPlanID   uint
	HomeLocationID uint
	FirstName      string
	LastName       string
	Phone          string
	Email          string
	Birthday       *time.Time
	ContactName    string
	ContactPhone   string
	SignupDate     *time.Time
	RenewalDate    *time.Time
	IsActive       bool
}

// IMemberService manages members, their plans and attendance history.
type IMemberService interface {
	CreateMember(ctx context.Context, accountID uint, input MemberInput) (*models.Member, error)
	GetMember(ctx context.Context, memberID uint) (*models.Member, error)
	ListMembers(ctx context.Context, accountID uint) ([]repositories.MemberRow, error)
	UpdateMember(ctx context.Context, memberID uint, input MemberInput) error
	DeactivateMember(ctx context.Context, memberID uint) error

	ListPlans(ctx context.Context) ([]models.MembershipPlan, error)
	CreatePlan(ctx context.Context, description string, cost float64) (*models.MembershipPlan, error)
	UpdatePlan(ctx context.Context, planID uint, description string, cost float64) error

	RecordAttendance(ctx context.Context, memberID, locationID, eventID uint, date time.Time) error
	ListAttendance(ctx context.Context, memberID uint) ([]models.MembershipAttendance, error)
	ListLocationAttendance(ctx context.Context, locationID uint, from, to time.Time) ([]models.MembershipAttendance, error)
}

type MemberService struct {
	repo repositories.IMemberRepository
	uow  repositories.IUnitOfWork
}

func NewMemberService() IMemberService {
	return &MemberService{
		repo: repositories.NewMemberRepository(),
		uow:  repositories.NewUnitOfWork(),
	}
}

// CreateMember inserts the member and its account link in one transaction.
func (s *MemberService) CreateMember(ctx context.Context, accountID uint, input MemberInput) (*models.Member, error) {
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return nil, ErrMemberNameRequired
	}
	member := &models.Member{
		MemberPlanID:   input.MemberPlanID,
		HomeLocationID: input.HomeLocationID,
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		Phone:          input.Phone,
		Email:          input.Email,
		Birthday:       input.Birthday,
		ContactName:    input.ContactName,
		ContactPhone:   input.ContactPhone,
		SignupDate:     input.SignupDate,
		RenewalDate:    input.RenewalDate,
		IsActive:       true,
	}
	err := s.uow.InTx(ctx, func(r repositories.Repos) error {
		if err := r.Members.Create(ctx, member); err != nil {
			return err
		}
		return r.Members.LinkAccount(ctx, member.MemberID, accountID)
	})
	if err != nil {
		configslog.Log.Error("MemberService.CreateMember failed", zap.Uint("accountId", accountID), zap.Error(err))
		return nil, ErrMemberCreationFailed
	}
	return member, nil
}

func (s *MemberService) GetMember(ctx context.Context, memberID uint) (*models.Member, error) {
	member, err := s.repo.FindByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

func (s *MemberService) ListMembers(ctx context.Context, accountID uint) ([]repositories.MemberRow, error) {
	return s.repo.ListByAccount(ctx, accountID)
}

func (s *MemberService) UpdateMember(ctx context.Context, memberID uint, input MemberInput) error {
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return ErrMemberNameRequired
	}
	upd := repositories.MemberUpdate{
		MemberPlanID:   input.MemberPlanID,
		HomeLocationID: input.HomeLocationID,
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		Phone:          input.Phone,
		Email:          input.Email,
		Birthday:       input.Birthday,
		ContactName:    input.ContactName,
		ContactPhone:   input.ContactPhone,
		SignupDate:     input.SignupDate,
		RenewalDate:    input.RenewalDate,
		IsActive:       input.IsActive,
	}
	if err := s.repo.Update(ctx, memberID, upd); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMemberNotFound
		}
		configslog.Log.Error("MemberService.UpdateMember failed", zap.Uint("memberId", memberID), zap.Error(err))
		return ErrMemberUpdateFailed
	}
	return nil
}

func (s *MemberService) DeactivateMember(ctx context.Context, memberID uint) error {
	if err := s.repo.Deactivate(ctx, memberID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMemberNotFound
		}
		return ErrMemberUpdateFailed
	}
	return nil
}

func (s *MemberService) ListPlans(ctx context.Context) ([]models.MembershipPlan, error) {
	return s.repo.ListPlans(ctx)
}

func (s *MemberService) CreatePlan(ctx context.Context, description string, cost float64) (*models.MembershipPlan, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrPlanWriteFailed
	}
	plan := &models.MembershipPlan{PlanDescription: strings.TrimSpace(description), PlanCost: cost}
	if err := s.repo.CreatePlan(ctx, plan); err != nil {
		configslog.Log.Error("MemberService.CreatePlan failed", zap.Error(err))
		return nil, ErrPlanWriteFailed
	}
	return plan, nil
}

func (s *MemberService) UpdatePlan(ctx context.Context, planID uint, description string, cost float64) error {
	if err := s.repo.UpdatePlan(ctx, planID, strings.TrimSpace(description), cost); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPlanNotFound
		}
		return ErrPlanWriteFailed
	}
	return nil
}

func (s *MemberService) RecordAttendance(ctx context.Context, memberID, locationID, eventID uint, date time.Time) error {
	if memberID == 0 || locationID == 0 || eventID == 0 {
		return ErrAttendanceFailed
	}
	row := &models.MembershipAttendance{
		MemberID:       memberID,
		LocationID:     locationID,
		EventID:        eventID,
		AttendanceDate: date,
	}
	if err := s.repo.RecordAttendance(ctx, row); err != nil {
		configslog.Log.Error("MemberService.RecordAttendance failed", zap.Uint("memberId", memberID), zap.Error(err))
		return ErrAttendanceFailed
	}
	return nil
}

func (s *MemberService) ListAttendance(ctx context.Context, memberID uint) ([]models.MembershipAttendance, error) {
	return s.repo.ListAttendance(ctx, memberID)
}

func (s *MemberService) ListLocationAttendance(ctx context.Context, locationID uint, from, to time.Time) ([]models.MembershipAttendance, error) {
	return s.repo.ListAttendanceByLocation(ctx, locationID, from, to)
}

var _ IMemberService = (*MemberService)(nil)
