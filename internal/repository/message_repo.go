package repository

import (
	"time"

	"github.com/schoolhub/sims-backend/internal/domain"
	"gorm.io/gorm"
)

// MessageRepository is the message lifecycle data access layer
type MessageRepository interface {
	Create(msg *domain.Message) error
	FindByID(id uint64) (*domain.Message, error)
	UpdateFields(id uint64, fields map[string]interface{}) error
	ReplaceChildren(msg *domain.Message, recipients []domain.MessageRecipient, attachments []domain.MessageAttachment) error
	Delete(id uint64) error
	ListForUser(userID string, tab domain.MessageTab, filter domain.MessageFilter, page, limit int) ([]*domain.Message, int64, error)
	FindTrashedBefore(cutoff time.Time) ([]*domain.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(msg *domain.Message) error {
	return r.db.Create(msg).Error
}

func (r *messageRepository) FindByID(id uint64) (*domain.Message, error) {
	var msg domain.Message
	err := r.db.Preload("Recipients").Preload("Attachments").
		Where("id = ?", id).First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepository) UpdateFields(id uint64, fields map[string]interface{}) error {
	return r.db.Model(&domain.Message{}).Where("id = ?", id).Updates(fields).Error
}

// ReplaceChildren swaps the recipient and attachment rows of a message in
// one transaction. Used when a draft is edited.
func (r *messageRepository) ReplaceChildren(msg *domain.Message, recipients []domain.MessageRecipient, attachments []domain.MessageAttachment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("message_id = ?", msg.ID).Delete(&domain.MessageRecipient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("message_id = ?", msg.ID).Delete(&domain.MessageAttachment{}).Error; err != nil {
			return err
		}
		for i := range recipients {
			recipients[i].MessageID = msg.ID
		}
		for i := range attachments {
			attachments[i].MessageID = msg.ID
		}
		if len(recipients) > 0 {
			if err := tx.Create(&recipients).Error; err != nil {
				return err
			}
		}
		if len(attachments) > 0 {
			if err := tx.Create(&attachments).Error; err != nil {
				return err
			}
		}
		msg.Recipients = recipients
		msg.Attachments = attachments
		return nil
	})
}

// Delete removes a message and its child rows permanently
func (r *messageRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("message_id = ?", id).Delete(&domain.MessageRecipient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("message_id = ?", id).Delete(&domain.MessageAttachment{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&domain.Message{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ListForUser returns one mailbox tab. The filter is an enumerated
// structure; every field compiles to a bounded predicate.
func (r *messageRepository) ListForUser(userID string, tab domain.MessageTab, filter domain.MessageFilter, page, limit int) ([]*domain.Message, int64, error) {
	query := r.db.Model(&domain.Message{}).
		Preload("Recipients").Preload("Attachments")

	switch tab {
	case domain.TabInbox:
		query = query.Where("status = ?", domain.MessageStatusSent).
			Where("id IN (?)", r.db.Model(&domain.MessageRecipient{}).
				Select("message_id").Where("recipient_id = ?", userID))
	case domain.TabSent:
		query = query.Where("status = ? AND sender_id = ?", domain.MessageStatusSent, userID)
	case domain.TabDrafts:
		query = query.Where("status = ? AND sender_id = ?", domain.MessageStatusDraft, userID)
	case domain.TabTrash:
		query = query.Where("status = ? AND sender_id = ?", domain.MessageStatusTrash, userID)
	}

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("subject LIKE ? OR content LIKE ?", like, like)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DateFrom != nil {
		query = query.Where("created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("created_at < ?", *filter.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []*domain.Message
	offset := (page - 1) * limit
	if err := query.Order("id DESC").Offset(offset).Limit(limit).Find(&messages).Error; err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// FindTrashedBefore returns trashed messages whose deletion timestamp is
// older than the cutoff. Used by the retention sweep.
func (r *messageRepository) FindTrashedBefore(cutoff time.Time) ([]*domain.Message, error) {
	var messages []*domain.Message
	err := r.db.Where("status = ? AND deleted_at < ?", domain.MessageStatusTrash, cutoff).
		Find(&messages).Error
	return messages, err
}
