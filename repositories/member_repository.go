package repositories

import (
	"context"
	"errors"
	"time"

	"kickconnect.net/configs/configsdatabase"
	"kickconnect.net/configs/configslog"
	"kickconnect.net/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MemberUpdate carries the fields update-member may change.
type MemberUpdate struct {
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

// MemberRow is one row of the member listing with its plan and home
// location resolved.
type MemberRow struct {
	models.Member
	PlanDescription  string `json:"planDescription"`
	HomeLocationName string `json:"homeLocationName"`
}

// IMemberRepository is persistence for members, plans and attendance.
type IMemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	LinkAccount(ctx context.Context, memberID, accountID uint) error
	FindByID(ctx context.Context, memberID uint) (*models.Member, error)
	ListByAccount(ctx context.Context, accountID uint) ([]MemberRow, error)
	Update(ctx context.Context, memberID uint, upd MemberUpdate) error
	Deactivate(ctx context.Context, memberID uint) error

	ListPlans(ctx context.Context) ([]models.MembershipPlan, error)
	CreatePlan(ctx context.Context, plan *models.MembershipPlan) error
	UpdatePlan(ctx context.Context, planID uint, description string, cost float64) error

	RecordAttendance(ctx context.Context, row *models.MembershipAttendance) error
	ListAttendance(ctx context.Context, memberID uint) ([]models.MembershipAttendance, error)
	ListAttendanceByLocation(ctx context.Context, locationID uint, from, to time.Time) ([]models.MembershipAttendance, error)
}

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository() IMemberRepository {
	return &MemberRepository{db: configsdatabase.GetDB()}
}

func NewMemberRepositoryTx(tx *gorm.DB) IMemberRepository {
	return &MemberRepository{db: tx}
}

func (r *MemberRepository) Create(ctx context.Context, member *models.Member) error {
	if member.CreatedBy == "" {
		member.CreatedBy = "API add-member"
	}
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *MemberRepository) LinkAccount(ctx context.Context, memberID, accountID uint) error {
	link := models.MemberAccount{MemberID: memberID, AccountID: accountID}
	return r.db.WithContext(ctx).Create(&link).Error
}

func (r *MemberRepository) FindByID(ctx context.Context, memberID uint) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).First(&member, "member_id = ?", memberID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("MemberRepository.FindByID: DB error", zap.Uint("memberId", memberID), zap.Error(err))
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepository) ListByAccount(ctx context.Context, accountID uint) ([]MemberRow, error) {
	var members []models.Member
	err := r.db.WithContext(ctx).
		Joins("JOIN member_accounts ON member_accounts.member_id = members.member_id AND member_accounts.account_id = ?", accountID).
		Order("members.last_name ASC, members.first_name ASC").
		Find(&members).Error
	if err != nil {
		configslog.Log.Error("MemberRepository.ListByAccount: DB error", zap.Uint("accountId", accountID), zap.Error(err))
		return nil, err
	}
	if len(members) == 0 {
		return []MemberRow{}, nil
	}

	planIDs := make([]uint, 0, len(members))
	locationIDs := make([]uint, 0, len(members))
	for _, m := range members {
		planIDs = append(planIDs, m.MemberPlanID)
		locationIDs = append(locationIDs, m.HomeLocationID)
	}
	var plans []models.MembershipPlan
	if err := r.db.WithContext(ctx).Where("plan_id IN ?", planIDs).Find(&plans).Error; err != nil {
		return nil, err
	}
	var locations []models.Location
	if err := r.db.WithContext(ctx).Where("location_id IN ?", locationIDs).Find(&locations).Error; err != nil {
		return nil, err
	}
	planByID := make(map[uint]models.MembershipPlan, len(plans))
	for _, p := range plans {
		planByID[p.PlanID] = p
	}
	locationByID := make(map[uint]models.Location, len(locations))
	for _, l := range locations {
		locationByID[l.LocationID] = l
	}

	rows := make([]MemberRow, 0, len(members))
	for _, m := range members {
		row := MemberRow{Member: m}
		if p, ok := planByID[m.MemberPlanID]; ok {
			row.PlanDescription = p.PlanDescription
		}
		if l, ok := locationByID[m.HomeLocationID]; ok {
			row.HomeLocationName = l.LocationName
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (r *MemberRepository) Update(ctx context.Context, memberID uint, upd MemberUpdate) error {
	result := r.db.WithContext(ctx).Model(&models.Member{}).
		Where("member_id = ?", memberID).
		Updates(map[string]any{
			"member_plan_id":   upd.MemberPlanID,
			"home_location_id": upd.HomeLocationID,
			"first_name":       upd.FirstName,
			"last_name":        upd.LastName,
			"phone":            upd.Phone,
			"email":            upd.Email,
			"birthday":         upd.Birthday,
			"contact_name":     upd.ContactName,
			"contact_phone":    upd.ContactPhone,
			"signup_date":      upd.SignupDate,
			"renewal_date":     upd.RenewalDate,
			"is_active":        upd.IsActive,
			"updated_by":       "API update-member",
		})
	if result.Error != nil {
		configslog.Log.Error("MemberRepository.Update: DB error", zap.Uint("memberId", memberID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MemberRepository) Deactivate(ctx context.Context, memberID uint) error {
	result := r.db.WithContext(ctx).Model(&models.Member{}).
		Where("member_id = ?", memberID).
		Updates(map[string]any{"is_active": false, "updated_by": "API deactivate-member"})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MemberRepository) ListPlans(ctx context.Context) ([]models.MembershipPlan, error) {
	var plans []models.MembershipPlan
	err := r.db.WithContext(ctx).Order("plan_cost ASC").Find(&plans).Error
	if err != nil {
		configslog.Log.Error("MemberRepository.ListPlans: DB error", zap.Error(err))
		return nil, err
	}
	return plans, nil
}

func (r *MemberRepository) CreatePlan(ctx context.Context, plan *models.MembershipPlan) error {
	if plan.CreatedBy == "" {
		plan.CreatedBy = "API add-plan"
	}
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *MemberRepository) UpdatePlan(ctx context.Context, planID uint, description string, cost float64) error {
	result := r.db.WithContext(ctx).Model(&models.MembershipPlan{}).
		Where("plan_id = ?", planID).
		Updates(map[string]any{
			"plan_description": description,
			"plan_cost":        cost,
			"updated_by":       "API update-plan",
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MemberRepository) RecordAttendance(ctx context.Context, row *models.MembershipAttendance) error {
	if row.CreatedBy == "" {
		row.CreatedBy = "API record-attendance"
	}
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *MemberRepository) ListAttendance(ctx context.Context, memberID uint) ([]models.MembershipAttendance, error) {
	var rows []models.MembershipAttendance
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("attendance_date DESC").
		Find(&rows).Error
	if err != nil {
		configslog.Log.Error("MemberRepository.ListAttendance: DB error", zap.Uint("memberId", memberID), zap.Error(err))
		return nil, err
	}
	return rows, nil
}

func (r *MemberRepository) ListAttendanceByLocation(ctx context.Context, locationID uint, from, to time.Time) ([]models.MembershipAttendance, error) {
	var rows []models.MembershipAttendance
	err := r.db.WithContext(ctx).
		Where("location_id = ? AND attendance_date BETWEEN ? AND ?", locationID, from, to).
		Order("attendance_date ASC").
		Find(&rows).Error
	if err != nil {
		configslog.Log.Error("MemberRepository.ListAttendanceByLocation: DB error",
			zap.Uint("locationId", locationID), zap.Error(err))
		return nil, err
	}
	return rows, nil
}

var _ IMemberRepository = (*MemberRepository)(nil)
