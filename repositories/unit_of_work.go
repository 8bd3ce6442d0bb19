package repositories

import (
	"context"

	"kickconnect.net/configs/configsdatabase"

	"gorm.io/gorm"
)

// Repos bundles every repository bound to one transaction.
type Repos struct {
	Schedules IScheduleRepository
	Locations ILocationRepository
	Events    IEventRepository
	Accounts  IAccountRepository
	Users     IUserRepository
	Roles     IRoleRepository
	Skills    ISkillRepository
	Members   IMemberRepository
	Lookups   ILookupRepository
}

// IUnitOfWork runs a function with transaction-bound repositories. The
// transaction commits when fn returns nil and rolls back otherwise.
type IUnitOfWork interface {
	InTx(ctx context.Context, fn func(r Repos) error) error
}

type UnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork() IUnitOfWork {
	return &UnitOfWork{db: configsdatabase.GetDB()}
}

func (u *UnitOfWork) InTx(ctx context.Context, fn func(r Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(Repos{
			Schedules: NewScheduleRepositoryTx(tx),
			Locations: NewLocationRepositoryTx(tx),
			Events:    NewEventRepositoryTx(tx),
			Accounts:  NewAccountRepositoryTx(tx),
			Users:     NewUserRepositoryTx(tx),
			Roles:     NewRoleRepositoryTx(tx),
			Skills:    NewSkillRepositoryTx(tx),
			Members:   NewMemberRepositoryTx(tx),
			Lookups:   NewLookupRepositoryTx(tx),
		})
	})
}

var _ IUnitOfWork = (*UnitOfWork)(nil)
