package service

import (
	"errors"
	"time"

	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/internal/repository"
	"gorm.io/gorm"
)

// Notifier pushes real-time events to connected users. The websocket hub
// implements it; a nil Notifier disables push.
type Notifier interface {
	NotifyUser(userID string, event string, payload interface{})
	Broadcast(event string, payload interface{})
}

// MessageService owns the message lifecycle: draft/sent/trash transitions,
// the read and starred flags, and mailbox listing.
type MessageService interface {
	Send(senderID string, req *domain.ComposeMessageRequest) (*domain.MessageResponse, error)
	SaveDraft(senderID string, req *domain.ComposeMessageRequest) (*domain.MessageResponse, error)
	UpdateDraft(id uint64, senderID string, req *domain.ComposeMessageRequest) (*domain.MessageResponse, error)
	SendDraft(id uint64, senderID string) (*domain.MessageResponse, error)
	Get(id uint64, userID string) (*domain.MessageResponse, error)
	List(userID string, tab domain.MessageTab, filter domain.MessageFilter, page, limit int) ([]*domain.MessageResponse, *common.Meta, error)
	MoveToTrash(id uint64, userID string) (*domain.MessageResponse, error)
	Restore(id uint64, userID string) (*domain.MessageResponse, error)
	PermanentlyDelete(id uint64, userID string) error
	MarkRead(id uint64, userID string) (*domain.MessageResponse, error)
	ToggleStar(id uint64, userID string) (*domain.MessageResponse, error)
}

type messageService struct {
	repo     repository.MessageRepository
	notifier Notifier
}

// NewMessageService creates a new MessageService
func NewMessageService(repo repository.MessageRepository, notifier Notifier) MessageService {
	return &messageService{repo: repo, notifier: notifier}
}

// validateSend checks the rules for a non-draft send: subject, content
// and at least one recipient.
func validateSend(subject, content string, recipients []string) error {
	fields := map[string]string{}
	if subject == "" {
		fields["subject"] = "subject is required"
	}
	if content == "" {
		fields["content"] = "content is required"
	}
	if len(recipients) == 0 {
		fields["recipients"] = "at least one recipient is required"
	}
	if len(fields) > 0 {
		return common.NewValidationError(fields)
	}
	return nil
}

func buildChildren(req *domain.ComposeMessageRequest) ([]domain.MessageRecipient, []domain.MessageAttachment) {
	recipients := make([]domain.MessageRecipient, len(req.Recipients))
	for i, r := range req.Recipients {
		recipients[i] = domain.MessageRecipient{RecipientID: r}
	}
	attachments := make([]domain.MessageAttachment, len(req.Attachments))
	for i, a := range req.Attachments {
		attachments[i] = domain.MessageAttachment{
			Position:    i,
			FileName:    a.FileName,
			FileKey:     a.FileKey,
			FileURL:     a.FileURL,
			ContentType: a.ContentType,
			Size:        a.Size,
		}
	}
	return recipients, attachments
}

// Send creates a message directly in the sent state
func (s *messageService) Send(senderID string, req *domain.ComposeMessageRequest) (*domain.MessageResponse, error) {
	if err := validateSend(req.Subject, req.Content, req.Recipients); err != nil {
		return nil, err
	}

	recipients, attachments := buildChildren(req)
	now := time.Now()
	msg := &domain.Message{
		SenderID:    senderID,
		Subject:     req.Subject,
		Content:     req.Content,
		Status:      domain.MessageStatusSent,
		Read:        false,
		SentAt:      &now,
		Recipients:  recipients,
		Attachments: attachments,
	}
	if err := s.repo.Create(msg); err != nil {
		return nil, err
	}

	s.notifyRecipients(msg)
	return msg.ToResponse(), nil
}

// SaveDraft creates a message in the draft state. Drafts have no
// required fields: empty recipients are accepted.
func (s *messageService) SaveDraft(senderID string, req *domain.ComposeMessageRequest) (*domain.MessageResponse, error) {
	recipients, attachments := buildChildren(req)
	msg := &domain.Message{
		SenderID:    senderID,
		Subject:     req.Subject,
		Content:     req.Content,
		Status:      domain.MessageStatusDraft,
		Recipients:  recipients,
		Attachments: attachments,
	}
	if err := s.repo.Create(msg); err != nil {
		return nil, err
	}
	return msg.ToResponse(), nil
}

// UpdateDraft edits an existing draft in place
func (s *messageService) UpdateDraft(id uint64, senderID string, req *domain.ComposeMessageRequest) (*domain.MessageResponse, error) {
	msg, err := s.findOwned(id, senderID)
	if err != nil {
		return nil, err
	}
	if msg.Status != domain.MessageStatusDraft {
		return nil, common.ErrInvalidTransition
	}

	msg.Subject = req.Subject
	msg.Content = req.Content
	if err := s.repo.UpdateFields(id, map[string]interface{}{
		"subject": req.Subject,
		"content": req.Content,
	}); err != nil {
		return nil, err
	}
	recipients, attachments := buildChildren(req)
	if err := s.repo.ReplaceChildren(msg, recipients, attachments); err != nil {
		return nil, err
	}
	return msg.ToResponse(), nil
}

// SendDraft transitions a draft to sent after full send validation
func (s *messageService) SendDraft(id uint64, senderID string) (*domain.MessageResponse, error) {
	msg, err := s.findOwned(id, senderID)
	if err != nil {
		return nil, err
	}
	if msg.Status != domain.MessageStatusDraft {
		return nil, common.ErrInvalidTransition
	}
	recipients := make([]string, len(msg.Recipients))
	for i, r := range msg.Recipients {
		recipients[i] = r.RecipientID
	}
	if err := validateSend(msg.Subject, msg.Content, recipients); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.repo.UpdateFields(id, map[string]interface{}{
		"status":  domain.MessageStatusSent,
		"sent_at": now,
	}); err != nil {
		return nil, err
	}
	msg.Status = domain.MessageStatusSent
	msg.SentAt = &now

	s.notifyRecipients(msg)
	return msg.ToResponse(), nil
}

// Get returns one message visible to the caller
func (s *messageService) Get(id uint64, userID string) (*domain.MessageResponse, error) {
	msg, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if !msg.IsOwnedBy(userID) && !msg.HasRecipient(userID) {
		return nil, common.ErrForbidden
	}
	return msg.ToResponse(), nil
}

// List returns one mailbox tab with the explicit filter applied
func (s *messageService) List(userID string, tab domain.MessageTab, filter domain.MessageFilter, page, limit int) ([]*domain.MessageResponse, *common.Meta, error) {
	if !domain.ValidTab(tab) {
		return nil, nil, common.NewValidationError(map[string]string{"tab": "unknown tab"})
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	messages, total, err := s.repo.ListForUser(userID, tab, filter, page, limit)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]*domain.MessageResponse, len(messages))
	for i, m := range messages {
		responses[i] = m.ToResponse()
	}
	return responses, common.NewMeta(page, limit, total), nil
}

// MoveToTrash transitions a sent message to trash and stamps DeletedAt
func (s *messageService) MoveToTrash(id uint64, userID string) (*domain.MessageResponse, error) {
	msg, err := s.findOwned(id, userID)
	if err != nil {
		return nil, err
	}
	if msg.Status != domain.MessageStatusSent {
		return nil, common.ErrInvalidTransition
	}

	now := time.Now()
	if err := s.repo.UpdateFields(id, map[string]interface{}{
		"status":     domain.MessageStatusTrash,
		"deleted_at": now,
	}); err != nil {
		return nil, err
	}
	msg.Status = domain.MessageStatusTrash
	msg.DeletedAt = &now
	return msg.ToResponse(), nil
}

// Restore moves a trashed message back to sent and clears DeletedAt.
// Restoring a message that is not in trash is rejected.
func (s *messageService) Restore(id uint64, userID string) (*domain.MessageResponse, error) {
	msg, err := s.findOwned(id, userID)
	if err != nil {
		return nil, err
	}
	if msg.Status != domain.MessageStatusTrash {
		return nil, common.ErrInvalidTransition
	}

	if err := s.repo.UpdateFields(id, map[string]interface{}{
		"status":     domain.MessageStatusSent,
		"deleted_at": nil,
	}); err != nil {
		return nil, err
	}
	msg.Status = domain.MessageStatusSent
	msg.DeletedAt = nil
	return msg.ToResponse(), nil
}

// PermanentlyDelete removes a message unconditionally. Terminal.
func (s *messageService) PermanentlyDelete(id uint64, userID string) error {
	if _, err := s.findOwned(id, userID); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrNotFound
		}
		return err
	}
	return nil
}

// MarkRead sets the read flag. Idempotent.
func (s *messageService) MarkRead(id uint64, userID string) (*domain.MessageResponse, error) {
	msg, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if !msg.IsOwnedBy(userID) && !msg.HasRecipient(userID) {
		return nil, common.ErrForbidden
	}
	if !msg.Read {
		if err := s.repo.UpdateFields(id, map[string]interface{}{"read": true}); err != nil {
			return nil, err
		}
		msg.Read = true
	}
	return msg.ToResponse(), nil
}

// ToggleStar flips the starred flag, independent of status
func (s *messageService) ToggleStar(id uint64, userID string) (*domain.MessageResponse, error) {
	msg, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if !msg.IsOwnedBy(userID) && !msg.HasRecipient(userID) {
		return nil, common.ErrForbidden
	}
	starred := !msg.Starred
	if err := s.repo.UpdateFields(id, map[string]interface{}{"starred": starred}); err != nil {
		return nil, err
	}
	msg.Starred = starred
	return msg.ToResponse(), nil
}

func (s *messageService) find(id uint64) (*domain.Message, error) {
	msg, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return msg, nil
}

func (s *messageService) findOwned(id uint64, userID string) (*domain.Message, error) {
	msg, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if !msg.IsOwnedBy(userID) {
		return nil, common.ErrForbidden
	}
	return msg, nil
}

func (s *messageService) notifyRecipients(msg *domain.Message) {
	if s.notifier == nil {
		return
	}
	for _, r := range msg.Recipients {
		s.notifier.NotifyUser(r.RecipientID, "message.new", map[string]interface{}{
			"id":      msg.ID,
			"subject": msg.Subject,
			"sender":  msg.SenderID,
		})
	}
}
