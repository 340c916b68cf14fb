package worklogs

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/warehousehq/warehouse-backend/pkg/db/models"
	"github.com/warehousehq/warehouse-backend/pkg/enums"
	pkgerrors "github.com/warehousehq/warehouse-backend/pkg/errors"
)

func TestCreateLogRejectsDanglingUser(t *testing.T) {
	svc := newTestService(t, newStubWorklogRepo(), &stubUsers{})

	_, err := svc.CreateLog(context.Background(), CreateUserLogDTO{
		UserID:   uuid.New(),
		LoggedAt: time.Now(),
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateLogRejectsInvalidShift(t *testing.T) {
	user := &models.User{ID: uuid.New(), FullName: "Dana Packer"}
	users := &stubUsers{users: map[uuid.UUID]*models.User{user.ID: user}}
	svc := newTestService(t, newStubWorklogRepo(), users)

	bad := enums.Shift("graveyard")
	_, err := svc.CreateLog(context.Background(), CreateUserLogDTO{
		UserID:   user.ID,
		LoggedAt: time.Now(),
		Shift:    &bad,
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListLogsByUserFilters(t *testing.T) {
	userA := &models.User{ID: uuid.New(), FullName: "Dana Packer"}
	userB := &models.User{ID: uuid.New(), FullName: "Sam Picker"}
	users := &stubUsers{users: map[uuid.UUID]*models.User{userA.ID: userA, userB.ID: userB}}
	svc := newTestService(t, newStubWorklogRepo(), users)

	shift := enums.ShiftDay
	for _, uid := range []uuid.UUID{userA.ID, userA.ID, userB.ID} {
		if _, err := svc.CreateLog(context.Background(), CreateUserLogDTO{
			UserID:      uid,
			LoggedAt:    time.Now(),
			Shift:       &shift,
			ItemsPacked: 10,
		}); err != nil {
			t.Fatalf("create log: %v", err)
		}
	}

	logs, err := svc.ListLogsByUser(context.Background(), userA.ID)
	if err != nil {
		t.Fatalf("list logs: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs for user, got %d", len(logs))
	}
	for _, log := range logs {
		if log.UserID != userA.ID {
			t.Fatalf("foreign log leaked into filtered list")
		}
		if log.UserName == nil || *log.UserName != "Dana Packer" {
			t.Fatalf("expected resolved user name, got %v", log.UserName)
		}
	}
}

func TestUpdateDailyPartialPreservesFields(t *testing.T) {
	user := &models.User{ID: uuid.New(), FullName: "Dana Packer"}
	users := &stubUsers{users: map[uuid.UUID]*models.User{user.ID: user}}
	svc := newTestService(t, newStubWorklogRepo(), users)

	created, err := svc.CreateDaily(context.Background(), CreateUserDailyDetailDTO{
		UserID:      user.ID,
		LoggedAt:    time.Now(),
		ItemsPacked: 40,
		ItemsPicked: 25,
	})
	if err != nil {
		t.Fatalf("create daily: %v", err)
	}

	packed := 55
	updated, err := svc.UpdateDaily(context.Background(), created.ID, UpdateUserDailyDetailInput{ItemsPacked: &packed})
	if err != nil {
		t.Fatalf("update daily: %v", err)
	}
	if updated.ItemsPacked != 55 {
		t.Fatalf("expected items packed updated, got %d", updated.ItemsPacked)
	}
	if updated.ItemsPicked != 25 {
		t.Fatalf("omitted items picked should be preserved, got %d", updated.ItemsPicked)
	}
}

func TestDeleteDailyThenGetNotFound(t *testing.T) {
	user := &models.User{ID: uuid.New(), FullName: "Dana Packer"}
	users := &stubUsers{users: map[uuid.UUID]*models.User{user.ID: user}}
	svc := newTestService(t, newStubWorklogRepo(), users)

	created, err := svc.CreateDaily(context.Background(), CreateUserDailyDetailDTO{
		UserID:   user.ID,
		LoggedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("create daily: %v", err)
	}
	if err := svc.DeleteDaily(context.Background(), created.ID); err != nil {
		t.Fatalf("delete daily: %v", err)
	}
	_, err = svc.GetDailyByID(context.Background(), created.ID)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLogsKeepOrphansAfterUserDelete(t *testing.T) {
	user := &models.User{ID: uuid.New(), FullName: "Dana Packer"}
	users := &stubUsers{users: map[uuid.UUID]*models.User{user.ID: user}}
	svc := newTestService(t, newStubWorklogRepo(), users)

	if _, err := svc.CreateLog(context.Background(), CreateUserLogDTO{
		UserID:   user.ID,
		LoggedAt: time.Now(),
	}); err != nil {
		t.Fatalf("create log: %v", err)
	}

	delete(users.users, user.ID)

	logs, err := svc.ListLogs(context.Background())
	if err != nil {
		t.Fatalf("list logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("orphan log should still list")
	}
	if logs[0].UserName != nil {
		t.Fatalf("deleted user should not resolve")
	}
}

func newTestService(t *testing.T, repo worklogRepository, users usersReader) Service {
	t.Helper()
	svc, err := NewService(repo, users)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

type stubWorklogRepo struct {
	logs    map[uuid.UUID]*models.UserLog
	dailies map[uuid.UUID]*models.UserDailyDetail
}

func newStubWorklogRepo() *stubWorklogRepo {
	return &stubWorklogRepo{
		logs:    make(map[uuid.UUID]*models.UserLog),
		dailies: make(map[uuid.UUID]*models.UserDailyDetail),
	}
}

func (s *stubWorklogRepo) CreateLog(ctx context.Context, dto CreateUserLogDTO) (*models.UserLog, error) {
	log := dto.toModel()
	s.logs[log.ID] = log
	return log, nil
}

func (s *stubWorklogRepo) FindLogByID(ctx context.Context, id uuid.UUID) (*models.UserLog, error) {
	log, ok := s.logs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return log, nil
}

func (s *stubWorklogRepo) ListLogs(ctx context.Context) ([]models.UserLog, error) {
	out := make([]models.UserLog, 0, len(s.logs))
	for _, log := range s.logs {
		out = append(out, *log)
	}
	return out, nil
}

func (s *stubWorklogRepo) ListLogsByUser(ctx context.Context, userID uuid.UUID) ([]models.UserLog, error) {
	var out []models.UserLog
	for _, log := range s.logs {
		if log.UserID == userID {
			out = append(out, *log)
		}
	}
	return out, nil
}

func (s *stubWorklogRepo) UpdateLog(ctx context.Context, log *models.UserLog) error {
	s.logs[log.ID] = log
	return nil
}

func (s *stubWorklogRepo) DeleteLog(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.logs[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.logs, id)
	return nil
}

func (s *stubWorklogRepo) CreateDaily(ctx context.Context, dto CreateUserDailyDetailDTO) (*models.UserDailyDetail, error) {
	daily := dto.toModel()
	s.dailies[daily.ID] = daily
	return daily, nil
}

func (s *stubWorklogRepo) FindDailyByID(ctx context.Context, id uuid.UUID) (*models.UserDailyDetail, error) {
	daily, ok := s.dailies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return daily, nil
}

func (s *stubWorklogRepo) ListDailies(ctx context.Context) ([]models.UserDailyDetail, error) {
	out := make([]models.UserDailyDetail, 0, len(s.dailies))
	for _, daily := range s.dailies {
		out = append(out, *daily)
	}
	return out, nil
}

func (s *stubWorklogRepo) ListDailiesByUser(ctx context.Context, userID uuid.UUID) ([]models.UserDailyDetail, error) {
	var out []models.UserDailyDetail
	for _, daily := range s.dailies {
		if daily.UserID == userID {
			out = append(out, *daily)
		}
	}
	return out, nil
}

func (s *stubWorklogRepo) UpdateDaily(ctx context.Context, daily *models.UserDailyDetail) error {
	s.dailies[daily.ID] = daily
	return nil
}

func (s *stubWorklogRepo) DeleteDaily(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.dailies[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.dailies, id)
	return nil
}

type stubUsers struct {
	users map[uuid.UUID]*models.User
}

func (s *stubUsers) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}
