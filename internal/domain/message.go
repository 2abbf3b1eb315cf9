package domain

import "time"

// MessageStatus is the lifecycle state of a message
type MessageStatus string

const (
	MessageStatusDraft MessageStatus = "draft"
	MessageStatusSent  MessageStatus = "sent"
	MessageStatusTrash MessageStatus = "trash"
)

// TrashRetentionDays is the retention window for trashed messages.
// Messages older than this are purged by the retention sweep.
const TrashRetentionDays = 30

// Message is an internal message from a staff user to teachers/students.
// Status covers the draft/sent/trash lifecycle; read and starred are
// orthogonal flags on top of it. DeletedAt is set when the message moves
// to trash and cleared on restore.
type Message struct {
	ID          uint64              `gorm:"primaryKey;autoIncrement" json:"id"`
	SenderID    string              `gorm:"size:64;index" json:"sender_id"`
	Subject     string              `gorm:"size:255" json:"subject"`
	Content     string              `gorm:"type:text" json:"content"`
	Status      MessageStatus       `gorm:"size:16;index;default:'draft'" json:"status"`
	Read        bool                `gorm:"default:false" json:"read"`
	Starred     bool                `gorm:"default:false" json:"starred"`
	SentAt      *time.Time          `json:"sent_at,omitempty"`
	DeletedAt   *time.Time          `gorm:"index" json:"deleted_at,omitempty"`
	Recipients  []MessageRecipient  `gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE" json:"recipients"`
	Attachments []MessageAttachment `gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE" json:"attachments"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func (Message) TableName() string {
	return "messages"
}

// MessageRecipient stores one recipient reference of a message.
// Recipient IDs are opaque user references; no referential integrity is
// enforced against the students/teachers tables.
type MessageRecipient struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement" json:"-"`
	MessageID   uint64 `gorm:"index" json:"-"`
	RecipientID string `gorm:"size:64;index" json:"recipient_id"`
}

func (MessageRecipient) TableName() string {
	return "message_recipients"
}

// MessageAttachment is an ordered uploaded-file reference on a message
type MessageAttachment struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement" json:"-"`
	MessageID   uint64 `gorm:"index" json:"-"`
	Position    int    `json:"position"`
	FileName    string `gorm:"size:255" json:"file_name"`
	FileKey     string `gorm:"size:512" json:"-"`
	FileURL     string `gorm:"size:512" json:"file_url"`
	ContentType string `gorm:"size:128" json:"content_type"`
	Size        int64  `json:"size"`
}

func (MessageAttachment) TableName() string {
	return "message_attachments"
}

// IsOwnedBy reports whether the given user sent this message
func (m *Message) IsOwnedBy(userID string) bool {
	return m.SenderID == userID
}

// HasRecipient reports whether the given user is among the recipients
func (m *Message) HasRecipient(userID string) bool {
	for _, r := range m.Recipients {
		if r.RecipientID == userID {
			return true
		}
	}
	return false
}

// DaysSinceDeletion returns whole days since the message was trashed,
// or 0 when it is not in trash.
func (m *Message) DaysSinceDeletion(now time.Time) int {
	if m.DeletedAt == nil {
		return 0
	}
	days := int(now.Sub(*m.DeletedAt).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// ExpiresInDays returns how many days remain before the retention sweep
// may purge this message. Negative values mean the window already passed.
func (m *Message) ExpiresInDays(now time.Time) int {
	if m.DeletedAt == nil {
		return TrashRetentionDays
	}
	return TrashRetentionDays - m.DaysSinceDeletion(now)
}

// ComposeMessageRequest is the payload for sending or drafting a message.
// Status selects between sending and saving a draft; anything other than
// "draft" sends. Attachments are uploaded file references produced by the
// upload endpoint or by inline multipart parts.
type ComposeMessageRequest struct {
	Subject     string          `json:"subject" form:"subject"`
	Content     string          `json:"content" form:"content"`
	Recipients  []string        `json:"recipients" form:"recipients[]"`
	Status      string          `json:"status" form:"status"`
	Attachments []AttachmentRef `json:"attachments"`
}

// AttachmentRef points at an already-uploaded object
type AttachmentRef struct {
	FileName    string `json:"file_name"`
	FileKey     string `json:"file_key"`
	FileURL     string `json:"file_url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// MessageResponse is the API shape of a message
type MessageResponse struct {
	ID          uint64              `json:"id"`
	SenderID    string              `json:"sender_id"`
	Subject     string              `json:"subject"`
	Content     string              `json:"content"`
	Status      MessageStatus       `json:"status"`
	Read        bool                `json:"read"`
	Starred     bool                `json:"starred"`
	Recipients  []string            `json:"recipients"`
	Attachments []MessageAttachment `json:"attachments"`
	SentAt      *time.Time          `json:"sent_at,omitempty"`
	DeletedAt   *time.Time          `json:"deleted_at,omitempty"`
	ExpiresIn   *int                `json:"expires_in_days,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

// ToResponse converts Message to MessageResponse
func (m *Message) ToResponse() *MessageResponse {
	recipients := make([]string, len(m.Recipients))
	for i, r := range m.Recipients {
		recipients[i] = r.RecipientID
	}
	resp := &MessageResponse{
		ID:          m.ID,
		SenderID:    m.SenderID,
		Subject:     m.Subject,
		Content:     m.Content,
		Status:      m.Status,
		Read:        m.Read,
		Starred:     m.Starred,
		Recipients:  recipients,
		Attachments: m.Attachments,
		SentAt:      m.SentAt,
		DeletedAt:   m.DeletedAt,
		CreatedAt:   m.CreatedAt,
	}
	if m.Status == MessageStatusTrash {
		days := m.ExpiresInDays(time.Now())
		resp.ExpiresIn = &days
	}
	return resp
}

// MessageTab selects a mailbox view
type MessageTab string

const (
	TabInbox  MessageTab = "inbox"
	TabDrafts MessageTab = "drafts"
	TabTrash  MessageTab = "trash"
	TabSent   MessageTab = "sent"
)

// ValidTab reports whether the tab value is one of the known views
func ValidTab(tab MessageTab) bool {
	switch tab {
	case TabInbox, TabDrafts, TabTrash, TabSent:
		return true
	}
	return false
}

// MessageFilter narrows a mailbox listing. All fields are optional;
// zero values mean "no constraint".
type MessageFilter struct {
	Search   string
	Status   MessageStatus
	DateFrom *time.Time
	DateTo   *time.Time
}
