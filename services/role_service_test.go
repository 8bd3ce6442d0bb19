package services

import (
	"context"
	"errors"
	"sort"
	"testing"

	"kickconnect.net/models"
	"kickconnect.net/repositories"
)

type stubRoleRepo struct {
	roles  map[uint]*models.Role
	nextID uint
}

func newStubRoleRepo(seed ...models.Role) *stubRoleRepo {
	s := &stubRoleRepo{roles: map[uint]*models.Role{}}
	for _, role := range seed {
		copied := role
		s.roles[role.RoleID] = &copied
		if role.RoleID > s.nextID {
			s.nextID = role.RoleID
		}
	}
	return s
}

func (s *stubRoleRepo) sorted() []models.Role {
	var out []models.Role
	for _, r := range s.roles {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoleOrderID < out[j].RoleOrderID })
	return out
}

func (s *stubRoleRepo) ListAll(context.Context) ([]models.Role, error) { return s.sorted(), nil }

func (s *stubRoleRepo) ListAssignable(context.Context) ([]models.Role, error) {
	var out []models.Role
	for _, r := range s.sorted() {
		if r.RoleID != models.RoleSuperAdmin {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubRoleRepo) FindByID(_ context.Context, roleID uint) (*models.Role, error) {
	role, ok := s.roles[roleID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return role, nil
}

func (s *stubRoleRepo) Create(_ context.Context, role *models.Role) error {
	s.nextID++
	role.RoleID = s.nextID
	copied := *role
	s.roles[role.RoleID] = &copied
	return nil
}

func (s *stubRoleRepo) Update(_ context.Context, roleID uint, name, description string) error {
	role, ok := s.roles[roleID]
	if !ok {
		return repositories.ErrNotFound
	}
	role.RoleName = name
	role.RoleDescription = description
	return nil
}

func (s *stubRoleRepo) UpdateOrder(_ context.Context, roleID uint, orderID int) error {
	role, ok := s.roles[roleID]
	if !ok {
		return repositories.ErrNotFound
	}
	role.RoleOrderID = orderID
	return nil
}

func (s *stubRoleRepo) MaxOrderID(context.Context) (int, error) {
	max := 0
	for _, r := range s.roles {
		if r.RoleOrderID > max {
			max = r.RoleOrderID
		}
	}
	return max, nil
}

func (s *stubRoleRepo) ShiftOrderRange(_ context.Context, lo, hi, delta int) error {
	for _, r := range s.roles {
		if r.RoleOrderID >= lo && r.RoleOrderID <= hi {
			r.RoleOrderID += delta
		}
	}
	return nil
}

func (s *stubRoleRepo) ShiftOrdersFrom(_ context.Context, orderID int) error {
	for _, r := range s.roles {
		if r.RoleOrderID > orderID {
			r.RoleOrderID--
		}
	}
	return nil
}

func (s *stubRoleRepo) Delete(_ context.Context, roleID uint) error {
	if _, ok := s.roles[roleID]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.roles, roleID)
	return nil
}

func seededRoles() []models.Role {
	return []models.Role{
		{RoleID: models.RoleSuperAdmin, RoleName: "SuperAdmin", RoleOrderID: 1},
		{RoleID: models.RoleOwner, RoleName: "Owner", RoleOrderID: 2},
		{RoleID: models.RoleAdmin, RoleName: "Admin", RoleOrderID: 3},
		{RoleID: models.RoleLocalAdmin, RoleName: "LocalAdmin", RoleOrderID: 4},
		{RoleID: models.RoleInstructor, RoleName: "Instructor", RoleOrderID: 5},
		{RoleID: models.RoleStaff, RoleName: "Staff", RoleOrderID: 6},
	}
}

func newRoleTestService(repo *stubRoleRepo) *RoleService {
	return &RoleService{
		repo: repo,
		uow:  &stubUnitOfWork{repos: repositories.Repos{Roles: repo}},
	}
}

func TestCreateRoleAppendsToOrder(t *testing.T) {
	repo := newStubRoleRepo(seededRoles()...)
	svc := newRoleTestService(repo)

	role, err := svc.CreateRole(context.Background(), "Front Desk", "reception staff")
	if err != nil {
		t.Fatalf("CreateRole: %v", err)
	}
	if role.RoleOrderID != 7 {
		t.Errorf("orderID = %d, want 7", role.RoleOrderID)
	}
}

func TestListAssignableExcludesSuperAdmin(t *testing.T) {
	repo := newStubRoleRepo(seededRoles()...)
	svc := newRoleTestService(repo)

	roles, err := svc.ListAssignableRoles(context.Background())
	if err != nil {
		t.Fatalf("ListAssignableRoles: %v", err)
	}
	for _, role := range roles {
		if role.RoleID == models.RoleSuperAdmin {
			t.Errorf("SuperAdmin leaked into the assignable list")
		}
	}
	if len(roles) != 5 {
		t.Errorf("roles = %d, want 5", len(roles))
	}
}

func TestDeleteRoleClosesOrderGap(t *testing.T) {
	repo := newStubRoleRepo(seededRoles()...)
	svc := newRoleTestService(repo)

	custom, _ := svc.CreateRole(context.Background(), "Front Desk", "")   // order 7
	trailing, _ := svc.CreateRole(context.Background(), "Janitor", "")    // order 8

	if err := svc.DeleteRole(context.Background(), custom.RoleID); err != nil {
		t.Fatalf("DeleteRole: %v", err)
	}
	if got := repo.roles[trailing.RoleID].RoleOrderID; got != 7 {
		t.Errorf("trailing role order = %d, want 7 after the gap closes", got)
	}
}

func TestReorderRoleShiftsPassedRoles(t *testing.T) {
	repo := newStubRoleRepo(seededRoles()...)
	svc := newRoleTestService(repo)

	custom, _ := svc.CreateRole(context.Background(), "Front Desk", "") // order 7

	if err := svc.ReorderRole(context.Background(), custom.RoleID, 2); err != nil {
		t.Fatalf("ReorderRole: %v", err)
	}

	want := map[uint]int{
		models.RoleSuperAdmin: 1,
		custom.RoleID:         2,
		models.RoleOwner:      3,
		models.RoleAdmin:      4,
		models.RoleLocalAdmin: 5,
		models.RoleInstructor: 6,
		models.RoleStaff:      7,
	}
	for id, order := range want {
		if got := repo.roles[id].RoleOrderID; got != order {
			t.Errorf("role %d order = %d, want %d", id, got, order)
		}
	}
}

func TestReorderRoleKeepsOrdersContiguous(t *testing.T) {
	repo := newStubRoleRepo(seededRoles()...)
	svc := newRoleTestService(repo)
	custom, _ := svc.CreateRole(context.Background(), "Front Desk", "") // order 7

	// Move down then back up; each step must leave a permutation of 1..7.
	moves := []struct {
		roleID uint
		order  int
	}{
		{models.RoleOwner, 6}, // order 2 -> 6
		{custom.RoleID, 2},    // order 7 -> 2
		{custom.RoleID, 2},    // no-op
	}
	for _, m := range moves {
		if err := svc.ReorderRole(context.Background(), m.roleID, m.order); err != nil {
			t.Fatalf("ReorderRole(%d, %d): %v", m.roleID, m.order, err)
		}
		seen := map[int]bool{}
		for _, r := range repo.roles {
			if seen[r.RoleOrderID] {
				t.Fatalf("after move to %d: duplicate order %d", m.order, r.RoleOrderID)
			}
			seen[r.RoleOrderID] = true
		}
		for order := 1; order <= len(repo.roles); order++ {
			if !seen[order] {
				t.Errorf("after move to %d: order %d missing", m.order, order)
			}
		}
	}
}

func TestReorderRoleUnknownRole(t *testing.T) {
	svc := newRoleTestService(newStubRoleRepo(seededRoles()...))
	if err := svc.ReorderRole(context.Background(), 99, 2); !errors.Is(err, ErrRoleNotFound) {
		t.Errorf("err = %v, want %v", err, ErrRoleNotFound)
	}
}

func TestDeleteRoleProtectsSeededRoles(t *testing.T) {
	repo := newStubRoleRepo(seededRoles()...)
	svc := newRoleTestService(repo)

	for _, id := range []uint{models.RoleSuperAdmin, models.RoleOwner, models.RoleStaff} {
		if err := svc.DeleteRole(context.Background(), id); !errors.Is(err, ErrRoleProtected) {
			t.Errorf("deleting role %d: err = %v, want %v", id, err, ErrRoleProtected)
		}
	}
}

func TestUpdateRoleProtectsSuperAdmin(t *testing.T) {
	svc := newRoleTestService(newStubRoleRepo(seededRoles()...))
	err := svc.UpdateRole(context.Background(), models.RoleSuperAdmin, "Root", "")
	if !errors.Is(err, ErrRoleProtected) {
		t.Errorf("err = %v, want %v", err, ErrRoleProtected)
	}
}
