package service

import (
	"errors"
	"testing"
	"time"

	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockMessageRepository is a mock implementation of MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(msg *domain.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockMessageRepository) FindByID(id uint64) (*domain.Message, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}

func (m *MockMessageRepository) UpdateFields(id uint64, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

func (m *MockMessageRepository) ReplaceChildren(msg *domain.Message, recipients []domain.MessageRecipient, attachments []domain.MessageAttachment) error {
	args := m.Called(msg, recipients, attachments)
	return args.Error(0)
}

func (m *MockMessageRepository) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMessageRepository) ListForUser(userID string, tab domain.MessageTab, filter domain.MessageFilter, page, limit int) ([]*domain.Message, int64, error) {
	args := m.Called(userID, tab, filter, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.Message), args.Get(1).(int64), args.Error(2)
}

func (m *MockMessageRepository) FindTrashedBefore(cutoff time.Time) ([]*domain.Message, error) {
	args := m.Called(cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Message), args.Error(1)
}

// MockNotifier records push events
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyUser(userID string, event string, payload interface{}) {
	m.Called(userID, event, payload)
}

func (m *MockNotifier) Broadcast(event string, payload interface{}) {
	m.Called(event, payload)
}

func sentMessage(id uint64, sender string, recipients ...string) *domain.Message {
	now := time.Now()
	msg := &domain.Message{
		ID:       id,
		SenderID: sender,
		Subject:  "Test",
		Content:  "Hello",
		Status:   domain.MessageStatusSent,
		SentAt:   &now,
	}
	for _, r := range recipients {
		msg.Recipients = append(msg.Recipients, domain.MessageRecipient{MessageID: id, RecipientID: r})
	}
	return msg
}

func TestSend(t *testing.T) {
	repo := new(MockMessageRepository)
	notifier := new(MockNotifier)
	svc := NewMessageService(repo, notifier)

	repo.On("Create", mock.AnythingOfType("*domain.Message")).Return(nil)
	notifier.On("NotifyUser", "T001", "message.new", mock.Anything).Return()

	resp, err := svc.Send("admin", &domain.ComposeMessageRequest{
		Subject:    "Test",
		Content:    "Hello",
		Recipients: []string{"T001"},
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.MessageStatusSent, resp.Status)
	assert.False(t, resp.Read)
	assert.Equal(t, []string{"T001"}, resp.Recipients)
	assert.NotNil(t, resp.SentAt)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestSend_MissingFields(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo, nil)

	_, err := svc.Send("admin", &domain.ComposeMessageRequest{})

	assert.ErrorIs(t, err, common.ErrInvalidInput)
	var verr *common.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "subject")
	assert.Contains(t, verr.Fields, "content")
	assert.Contains(t, verr.Fields, "recipients")
	repo.AssertNotCalled(t, "Create")
}

func TestSaveDraft_EmptyRecipientsAccepted(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo, nil)

	repo.On("Create", mock.AnythingOfType("*domain.Message")).Return(nil)

	resp, err := svc.SaveDraft("admin", &domain.ComposeMessageRequest{
		Subject: "Half-written",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.MessageStatusDraft, resp.Status)
	assert.Empty(t, resp.Recipients)
	assert.Nil(t, resp.SentAt)
}

func TestUpdateDraft_NotDraftRejected(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo, nil)

	repo.On("FindByID", uint64(1)).Return(sentMessage(1, "admin", "T001"), nil)

	_, err := svc.UpdateDraft(1, "admin", &domain.ComposeMessageRequest{Subject: "x"})

	assert.ErrorIs(t, err, common.ErrInvalidTransition)
}

func TestSendDraft(t *testing.T) {
	repo := new(MockMessageRepository)
	notifier := new(MockNotifier)
	svc := NewMessageService(repo, notifier)

	draft := &domain.Message{
		ID:       3,
		SenderID: "admin",
		Subject:  "Ready",
		Content:  "Body",
		Status:   domain.MessageStatusDraft,
		Recipients: []domain.MessageRecipient{
			{MessageID: 3, RecipientID: "S001"},
		},
	}
	repo.On("FindByID", uint64(3)).Return(draft, nil)
	repo.On("UpdateFields", uint64(3), mock.Anything).Return(nil)
	notifier.On("NotifyUser", "S001", "message.new", mock.Anything).Return()

	resp, err := svc.SendDraft(3, "admin")

	assert.NoError(t, err)
	assert.Equal(t, domain.MessageStatusSent, resp.Status)
	assert.NotNil(t, resp.SentAt)
}

func TestSendDraft_EmptyRecipientsRejected(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo, nil)

	draft := &domain.Message{ID: 4, SenderID: "admin", Subject: "s", Content: "c", Status: domain.MessageStatusDraft}
	repo.On("FindByID", uint64(4)).Return(draft, nil)

	_, err := svc.SendDraft(4, "admin")

	assert.ErrorIs(t, err, common.ErrInvalidInput)
	repo.AssertNotCalled(t, "UpdateFields")
}

func TestMoveToTrash(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo, nil)

	repo.On("FindByID", uint64(1)).Return(sentMessage(1, "admin", "T001"), nil)
	repo.On("UpdateFields", uint64(1), mock.Anything).Return(nil)

	resp, err := svc.MoveToTrash(1, "admin")

	assert.NoError(t, err)
	assert.Equal(t, domain.MessageStatusTrash, resp.Status)
	assert.NotNil(t, resp.DeletedAt)
	assert.NotNil(t, resp.ExpiresIn)
	assert.Equal(t, domain.TrashRetentionDays, *resp.ExpiresIn)
}

func TestMoveToTrash_UnknownID(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo, nil)

	repo.On("FindByID", uint64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.MoveToTrash(99, "admin")

	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMoveToTrash_NotOwnerForbidden(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo, nil)

	repo.On("FindByID", uint64(1)).Return(sentMessage(1, "admin", "T001"), nil)

	_, err := svc.MoveToTrash(1, "someone-else")

	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestRestore_RoundTrip(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo, nil)

	msg := sentMessage(1, "admin", "T001")
	repo.On("FindByID", uint64(1)).Return(msg, nil)
	repo.On("UpdateFields", uint64(1), mock.Anything).Return(nil)

	trashed, err := svc.MoveToTrash(1, "admin")
	assert.NoError(t, err)
	assert.Equal(t, domain.MessageStatusTrash, trashed.Status)

	restored, err := svc.Restore(1, "admin")
	assert.NoError(t, err)
	assert.Equal(t, domain.MessageStatusSent, restored.Status)
	assert.Nil(t, restored.DeletedAt)
}

func TestRestore_NotTrashedRejected(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo, nil)

	repo.On("FindByID", uint64(1)).Return(sentMessage(1, "admin", "T001"), nil)

	_, err := svc.Restore(1, "admin")

	assert.ErrorIs(t, err, common.ErrInvalidTransition)
}

func TestPermanentlyDelete(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo, nil)

	repo.On("FindByID", uint64(1)).Return(sentMessage(1, "admin", "T001"), nil)
	repo.On("Delete", uint64(1)).Return(nil)

	err := svc.PermanentlyDelete(1, "admin")

	assert.NoError(t, err)
	repo.AssertCalled(t, "Delete", uint64(1))
}

func TestPermanentlyDelete_ThenLookupNotFound(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo, nil)

	repo.On("FindByID", uint64(7)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(7, "admin")

	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMarkRead_Idempotent(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo, nil)

	msg := sentMessage(1, "admin", "T001")
	repo.On("FindByID", uint64(1)).Return(msg, nil)
	repo.On("UpdateFields", uint64(1), map[string]interface{}{"read": true}).Return(nil).Once()

	first, err := svc.MarkRead(1, "T001")
	assert.NoError(t, err)
	assert.True(t, first.Read)

	second, err := svc.MarkRead(1, "T001")
	assert.NoError(t, err)
	assert.True(t, second.Read)

	repo.AssertNumberOfCalls(t, "UpdateFields", 1)
}

func TestToggleStar_TwiceReverts(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo, nil)

	msg := sentMessage(1, "admin", "T001")
	repo.On("FindByID", uint64(1)).Return(msg, nil)
	repo.On("UpdateFields", uint64(1), mock.Anything).Return(nil)

	first, err := svc.ToggleStar(1, "T001")
	assert.NoError(t, err)
	assert.True(t, first.Starred)

	second, err := svc.ToggleStar(1, "T001")
	assert.NoError(t, err)
	assert.False(t, second.Starred)
}

func TestList_UnknownTabRejected(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo, nil)

	_, _, err := svc.List("admin", domain.MessageTab("spam"), domain.MessageFilter{}, 1, 20)

	assert.ErrorIs(t, err, common.ErrInvalidInput)
	repo.AssertNotCalled(t, "ListForUser")
}

func TestList_ClampsPagination(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo, nil)

	repo.On("ListForUser", "admin", domain.TabInbox, domain.MessageFilter{}, 1, 20).
		Return([]*domain.Message{}, int64(0), nil)

	_, meta, err := svc.List("admin", domain.TabInbox, domain.MessageFilter{}, -5, 9999)

	assert.NoError(t, err)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 20, meta.PerPage)
	repo.AssertExpectations(t)
}

func TestList_PassesFilter(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo, nil)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	filter := domain.MessageFilter{Search: "exam", Status: domain.MessageStatusSent, DateFrom: &from}

	repo.On("ListForUser", "admin", domain.TabTrash, filter, 2, 10).
		Return([]*domain.Message{sentMessage(1, "admin", "T001")}, int64(11), nil)

	items, meta, err := svc.List("admin", domain.TabTrash, filter, 2, 10)

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int64(11), meta.Total)
	assert.Equal(t, int64(2), meta.TotalPages)
}

func TestGet_RecipientCanRead(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo, nil)

	repo.On("FindByID", uint64(1)).Return(sentMessage(1, "admin", "T001"), nil)

	resp, err := svc.Get(1, "T001")

	assert.NoError(t, err)
	assert.Equal(t, uint64(1), resp.ID)
}

func TestGet_StrangerForbidden(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo, nil)

	repo.On("FindByID", uint64(1)).Return(sentMessage(1, "admin", "T001"), nil)

	_, err := svc.Get(1, "intruder")

	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestSend_RepoError(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo, nil)

	dbErr := errors.New("connection lost")
	repo.On("Create", mock.Anything).Return(dbErr)

	_, err := svc.Send("admin", &domain.ComposeMessageRequest{
		Subject:    "Test",
		Content:    "Hello",
		Recipients: []string{"T001"},
	})

	assert.ErrorIs(t, err, dbErr)
}
