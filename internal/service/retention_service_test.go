package service

import (
	"errors"
	"testing"
	"time"

	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func trashedMessage(id uint64, daysAgo int) *domain.Message {
	deleted := time.Now().AddDate(0, 0, -daysAgo)
	return &domain.Message{
		ID:        id,
		SenderID:  "admin",
		Status:    domain.MessageStatusTrash,
		DeletedAt: &deleted,
	}
}

func TestNewRetentionService_Defaults(t *testing.T) {
	svc, err := NewRetentionService(new(MockMessageRepository), "", 0)

	assert.NoError(t, err)
	assert.Equal(t, "0 2 * * *", svc.cron)
	assert.Equal(t, domain.TrashRetentionDays, svc.days)
}

func TestNewRetentionService_InvalidCron(t *testing.T) {
	_, err := NewRetentionService(new(MockMessageRepository), "not a cron", 30)

	assert.Error(t, err)
}

func TestRunOnce_PurgesExpired(t *testing.T) {
	repo := new(MockMessageRepository)
	svc, err := NewRetentionService(repo, "", 30)
	assert.NoError(t, err)

	expired := []*domain.Message{trashedMessage(1, 45), trashedMessage(2, 31)}
	repo.On("FindTrashedBefore", mock.AnythingOfType("time.Time")).Return(expired, nil)
	repo.On("Delete", uint64(1)).Return(nil)
	repo.On("Delete", uint64(2)).Return(nil)

	purged, err := svc.RunOnce()

	assert.NoError(t, err)
	assert.Equal(t, 2, purged)
	repo.AssertExpectations(t)
}

func TestRunOnce_NothingExpired(t *testing.T) {
	repo := new(MockMessageRepository)
	svc, err := NewRetentionService(repo, "", 30)
	assert.NoError(t, err)

	repo.On("FindTrashedBefore", mock.AnythingOfType("time.Time")).Return([]*domain.Message{}, nil)

	purged, err := svc.RunOnce()

	assert.NoError(t, err)
	assert.Equal(t, 0, purged)
	repo.AssertNotCalled(t, "Delete")
}

func TestRunOnce_SkipsFailedDeletes(t *testing.T) {
	repo := new(MockMessageRepository)
	svc, err := NewRetentionService(repo, "", 30)
	assert.NoError(t, err)

	expired := []*domain.Message{trashedMessage(1, 40), trashedMessage(2, 40), trashedMessage(3, 40)}
	repo.On("FindTrashedBefore", mock.AnythingOfType("time.Time")).Return(expired, nil)
	repo.On("Delete", uint64(1)).Return(nil)
	repo.On("Delete", uint64(2)).Return(errors.New("deadlock"))
	repo.On("Delete", uint64(3)).Return(nil)

	purged, err := svc.RunOnce()

	assert.NoError(t, err)
	assert.Equal(t, 2, purged)
}

func TestRunOnce_LookupError(t *testing.T) {
	repo := new(MockMessageRepository)
	svc, err := NewRetentionService(repo, "", 30)
	assert.NoError(t, err)

	dbErr := errors.New("connection lost")
	repo.On("FindTrashedBefore", mock.AnythingOfType("time.Time")).Return(nil, dbErr)

	_, err = svc.RunOnce()

	assert.ErrorIs(t, err, dbErr)
}
