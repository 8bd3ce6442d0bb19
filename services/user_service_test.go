package services

import (
	"context"
	"errors"
	"testing"

	"kickconnect.net/models"
	"kickconnect.net/repositories"

	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	users            map[uint]*models.User
	roles            map[uint][]uint // userID -> roleIDs
	profiles         map[uint]uint   // userID -> profileID
	profileLocations map[uint][]models.ProfileLocation
	nextUserID       uint
	nextProfileID    uint
	duplicate        bool
	passwordUpdates  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		users:            map[uint]*models.User{},
		roles:            map[uint][]uint{},
		profiles:         map[uint]uint{},
		profileLocations: map[uint][]models.ProfileLocation{},
	}
}

func (s *stubUserRepo) Create(_ context.Context, user *models.User) error {
	s.nextUserID++
	user.UserID = s.nextUserID
	copied := *user
	s.users[user.UserID] = &copied
	return nil
}

func (s *stubUserRepo) FindByID(_ context.Context, userID uint) (*models.User, error) {
	user, ok := s.users[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *stubUserRepo) FindDuplicate(context.Context, *models.User) (bool, error) {
	return s.duplicate, nil
}

func (s *stubUserRepo) Update(_ context.Context, userID uint, upd repositories.UserUpdate) error {
	user, ok := s.users[userID]
	if !ok {
		return repositories.ErrNotFound
	}
	user.Name = upd.Name
	user.Email = upd.Email
	user.IsActive = upd.IsActive
	return nil
}

func (s *stubUserRepo) UpdatePassword(_ context.Context, userID, _ uint, _ string, hash string) error {
	user, ok := s.users[userID]
	if !ok {
		return repositories.ErrNotFound
	}
	user.Password = hash
	s.passwordUpdates++
	return nil
}

func (s *stubUserRepo) Deactivate(_ context.Context, userID uint) error {
	user, ok := s.users[userID]
	if !ok {
		return repositories.ErrNotFound
	}
	user.IsActive = -1
	return nil
}

func (s *stubUserRepo) ReplaceRoles(_ context.Context, userID uint, roleIDs []uint) error {
	s.roles[userID] = append([]uint(nil), roleIDs...)
	return nil
}

func (s *stubUserRepo) ListAll(context.Context) ([]models.UserSummary, error) { return nil, nil }
func (s *stubUserRepo) ListByAccount(context.Context, uint) ([]models.UserSummary, error) {
	return nil, nil
}
func (s *stubUserRepo) ListFiltered(context.Context, uint, int) ([]models.UserSummary, error) {
	return nil, nil
}
func (s *stubUserRepo) ListByRole(context.Context, uint) ([]models.InstructorSummary, error) {
	return nil, nil
}
func (s *stubUserRepo) ListByRoleAndLocation(context.Context, uint, uint) ([]models.InstructorSummary, error) {
	return nil, nil
}

func (s *stubUserRepo) GetDetail(_ context.Context, userID uint) (*models.UserDetail, error) {
	user, ok := s.users[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	detail := &models.UserDetail{}
	detail.User = *user
	detail.RoleIDs = s.roles[userID]
	return detail, nil
}

func (s *stubUserRepo) CreateEmptyProfile(_ context.Context, userID uint) error {
	s.nextProfileID++
	s.profiles[userID] = s.nextProfileID
	return nil
}

func (s *stubUserRepo) UpdateProfile(_ context.Context, userID uint, _, _, _ string) error {
	if _, ok := s.profiles[userID]; !ok {
		return repositories.ErrNotFound
	}
	return nil
}

func (s *stubUserRepo) FindProfileID(_ context.Context, userID uint) (uint, error) {
	id, ok := s.profiles[userID]
	if !ok {
		return 0, repositories.ErrNotFound
	}
	return id, nil
}

func (s *stubUserRepo) ReplaceProfileLocations(_ context.Context, profileID, homeLocationID uint, altLocationIDs []uint) error {
	rows := []models.ProfileLocation{{ProfileID: profileID, LocationID: homeLocationID, IsHome: true}}
	for _, id := range altLocationIDs {
		rows = append(rows, models.ProfileLocation{ProfileID: profileID, LocationID: id})
	}
	s.profileLocations[profileID] = rows
	return nil
}

func newUserTestService(repo *stubUserRepo) *UserService {
	return &UserService{
		repo:     repo,
		uow:      &stubUnitOfWork{repos: repositories.Repos{Users: repo}},
		notifier: NewLogNotifier(),
	}
}

func TestCreateUserHashesPasswordAndAssignsRoles(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserTestService(repo)

	user, err := svc.CreateUser(context.Background(), 1, UserInput{
		Name: "Pat Jones", Email: "pat@example.com", Password: "opensesame",
		RoleIDs: []uint{models.RoleAdmin, models.RoleStaff},
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	stored := repo.users[user.UserID]
	if stored.Password == "opensesame" || stored.Password == "" {
		t.Errorf("password stored in the clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("opensesame")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
	if got := repo.roles[user.UserID]; len(got) != 2 {
		t.Errorf("roles = %v, want 2 entries", got)
	}
	if _, ok := repo.profiles[user.UserID]; ok {
		t.Errorf("profile created for a non-instructor")
	}
}

func TestCreateUserInstructorGetsProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserTestService(repo)

	user, err := svc.CreateUser(context.Background(), 1, UserInput{
		Name: "Sam Lee", Email: "sam@example.com", Password: "pw",
		RoleIDs: []uint{models.RoleInstructor},
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if _, ok := repo.profiles[user.UserID]; !ok {
		t.Errorf("instructor did not get an empty profile row")
	}
}

func TestCreateUserRejectsDuplicate(t *testing.T) {
	repo := newStubUserRepo()
	repo.duplicate = true
	svc := newUserTestService(repo)

	_, err := svc.CreateUser(context.Background(), 1, UserInput{
		Name: "Pat Jones", Email: "pat@example.com", Password: "pw",
		RoleIDs: []uint{models.RoleStaff},
	})
	if !errors.Is(err, ErrUserDuplicate) {
		t.Errorf("err = %v, want %v", err, ErrUserDuplicate)
	}
	if len(repo.users) != 0 {
		t.Errorf("duplicate user was persisted")
	}
}

func TestCreateUserValidatesInput(t *testing.T) {
	svc := newUserTestService(newStubUserRepo())

	_, err := svc.CreateUser(context.Background(), 1, UserInput{Email: "x@example.com", RoleIDs: []uint{1}})
	if !errors.Is(err, ErrUserInvalidInput) {
		t.Errorf("missing name: err = %v", err)
	}
	_, err = svc.CreateUser(context.Background(), 1, UserInput{Name: "Pat", Email: "x@example.com"})
	if !errors.Is(err, ErrUserInvalidInput) {
		t.Errorf("missing roles: err = %v", err)
	}
}

func TestUpdateUserGainingInstructorRoleCreatesMissingProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserTestService(repo)

	user, _ := svc.CreateUser(context.Background(), 1, UserInput{
		Name: "Sam Lee", Email: "sam@example.com", Password: "pw",
		RoleIDs: []uint{models.RoleStaff},
	})

	err := svc.UpdateUser(context.Background(), user.UserID, UserInput{
		Name: "Sam Lee", Email: "sam@example.com", IsActive: 1,
		RoleIDs: []uint{models.RoleStaff, models.RoleInstructor},
	})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if _, ok := repo.profiles[user.UserID]; !ok {
		t.Errorf("profile was not created when the instructor role was gained")
	}
}

func TestDeactivateUserSetsAdminFlag(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserTestService(repo)
	user, _ := svc.CreateUser(context.Background(), 1, UserInput{
		Name: "Pat", Email: "p@example.com", Password: "pw", RoleIDs: []uint{models.RoleStaff},
	})

	if err := svc.DeactivateUser(context.Background(), user.UserID); err != nil {
		t.Fatalf("DeactivateUser: %v", err)
	}
	if got := repo.users[user.UserID].IsActive; got != -1 {
		t.Errorf("isActive = %d, want -1", got)
	}
}

func TestChangePasswordUnknownUser(t *testing.T) {
	svc := newUserTestService(newStubUserRepo())
	err := svc.ChangePassword(context.Background(), 99, 1, "code", "newpw")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want %v", err, ErrUserNotFound)
	}
}

func TestUpdateProfileReplacesLocations(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserTestService(repo)
	user, _ := svc.CreateUser(context.Background(), 1, UserInput{
		Name: "Sam", Email: "s@example.com", Password: "pw", RoleIDs: []uint{models.RoleInstructor},
	})

	err := svc.UpdateProfile(context.Background(), user.UserID, ProfileInput{
		Description:     "Muay Thai coach",
		Skills:          "Muay Thai, Boxing",
		PrimaryLocation: 10,
		AltLocations:    []uint{11, 12},
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	profileID := repo.profiles[user.UserID]
	rows := repo.profileLocations[profileID]
	if len(rows) != 3 {
		t.Fatalf("location rows = %d, want 3", len(rows))
	}
	homes := 0
	for _, row := range rows {
		if row.IsHome {
			homes++
			if row.LocationID != 10 {
				t.Errorf("home location = %d, want 10", row.LocationID)
			}
		}
	}
	if homes != 1 {
		t.Errorf("home rows = %d, want exactly 1", homes)
	}
}
