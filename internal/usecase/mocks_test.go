package usecase_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"talent-marketplace-backend/internal/domain"
	"talent-marketplace-backend/pkg/logger"

	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetWithTalentProfile(ctx context.Context, id string) (*domain.User, *domain.TalentProfile, error) {
	args := m.Called(ctx, id)
	var user *domain.User
	var profile *domain.TalentProfile
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	if args.Get(1) != nil {
		profile = args.Get(1).(*domain.TalentProfile)
	}
	return user, profile, args.Error(2)
}

type MockTalentRepo struct {
	mock.Mock
}

func (m *MockTalentRepo) Search(ctx context.Context, filter *domain.TalentFilter) ([]domain.TalentCard, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TalentCard), args.Error(1)
}

func (m *MockTalentRepo) SearchSaved(ctx context.Context, recruiterID string, filter *domain.TalentFilter) ([]domain.TalentCard, error) {
	args := m.Called(ctx, recruiterID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TalentCard), args.Error(1)
}

func (m *MockTalentRepo) GetDiscoverable(ctx context.Context, userID string) (*domain.TalentCard, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TalentCard), args.Error(1)
}

func (m *MockTalentRepo) ListApproved(ctx context.Context) ([]domain.TalentCard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TalentCard), args.Error(1)
}

func (m *MockTalentRepo) ListTop(ctx context.Context, limit int) ([]domain.TalentCard, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TalentCard), args.Error(1)
}

type MockInteractionRepo struct {
	mock.Mock
}

func (m *MockInteractionRepo) GetSave(ctx context.Context, recruiterID, talentID string) (*domain.SavedTalent, error) {
	args := m.Called(ctx, recruiterID, talentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedTalent), args.Error(1)
}

func (m *MockInteractionRepo) CreateSave(ctx context.Context, save *domain.SavedTalent) error {
	return m.Called(ctx, save).Error(0)
}

func (m *MockInteractionRepo) ListSavedTalentIDs(ctx context.Context, recruiterID string) ([]string, error) {
	args := m.Called(ctx, recruiterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockInteractionRepo) GetUpvote(ctx context.Context, recruiterID, talentID string) (*domain.TalentUpvote, error) {
	args := m.Called(ctx, recruiterID, talentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TalentUpvote), args.Error(1)
}

func (m *MockInteractionRepo) CreateUpvote(ctx context.Context, upvote *domain.TalentUpvote) error {
	return m.Called(ctx, upvote).Error(0)
}

func (m *MockInteractionRepo) DeleteUpvote(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockInteractionRepo) ListUpvotedTalentIDs(ctx context.Context, recruiterID string) ([]string, error) {
	args := m.Called(ctx, recruiterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockMetricsRepo struct {
	mock.Mock
}

func (m *MockMetricsRepo) Get(ctx context.Context, userID string) (*domain.Metrics, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Metrics), args.Error(1)
}

func (m *MockMetricsRepo) Increment(ctx context.Context, userID, field string) error {
	return m.Called(ctx, userID, field).Error(0)
}

func (m *MockMetricsRepo) Decrement(ctx context.Context, userID, field string) error {
	return m.Called(ctx, userID, field).Error(0)
}

type MockRecruiterRepo struct {
	mock.Mock
}

func (m *MockRecruiterRepo) GetByUserID(ctx context.Context, userID string) (*domain.RecruiterProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecruiterProfile), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, typ domain.NotificationType, senderID, recipientID string) (*domain.Notification, error) {
	args := m.Called(ctx, typ, senderID, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}

// fakeCache is an in-memory domain.Cache that records invalidations.
type fakeCache struct {
	mu      sync.Mutex
	deleted []string
	store   map[string]any
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string]any{}}
}

func (c *fakeCache) Get(ctx context.Context, key string, dest any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.store[key]
	if !ok {
		return false
	}
	// Tests store and read the same concrete type.
	switch d := dest.(type) {
	case *[]domain.TalentCard:
		*d = v.([]domain.TalentCard)
		return true
	default:
		return false
	}
}

func (c *fakeCache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = value
}

func (c *fakeCache) Del(ctx context.Context, keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.store, k)
		c.deleted = append(c.deleted, k)
	}
}
