package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysSinceDeletion(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		deletedAt *time.Time
		want      int
	}{
		{"not trashed", nil, 0},
		{"trashed today", timePtr(now.Add(-2 * time.Hour)), 0},
		{"trashed five days ago", timePtr(now.AddDate(0, 0, -5)), 5},
		{"trashed past the window", timePtr(now.AddDate(0, 0, -45)), 45},
		{"clock skew ahead of now", timePtr(now.Add(time.Hour)), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := &Message{DeletedAt: tt.deletedAt}
			assert.Equal(t, tt.want, msg.DaysSinceDeletion(now))
		})
	}
}

func TestExpiresInDays(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	msg := &Message{}
	assert.Equal(t, TrashRetentionDays, msg.ExpiresInDays(now))

	msg.DeletedAt = timePtr(now.AddDate(0, 0, -10))
	assert.Equal(t, 20, msg.ExpiresInDays(now))

	msg.DeletedAt = timePtr(now.AddDate(0, 0, -35))
	assert.Equal(t, -5, msg.ExpiresInDays(now))
}

func TestValidTab(t *testing.T) {
	assert.True(t, ValidTab(TabInbox))
	assert.True(t, ValidTab(TabDrafts))
	assert.True(t, ValidTab(TabTrash))
	assert.True(t, ValidTab(TabSent))
	assert.False(t, ValidTab(MessageTab("spam")))
	assert.False(t, ValidTab(MessageTab("")))
}

func TestHasRecipient(t *testing.T) {
	msg := &Message{
		Recipients: []MessageRecipient{
			{RecipientID: "T001"},
			{RecipientID: "S042"},
		},
	}

	assert.True(t, msg.HasRecipient("T001"))
	assert.True(t, msg.HasRecipient("S042"))
	assert.False(t, msg.HasRecipient("S999"))
}

func TestToResponse_TrashCarriesExpiry(t *testing.T) {
	deleted := time.Now().AddDate(0, 0, -3)
	msg := &Message{
		ID:        1,
		Status:    MessageStatusTrash,
		DeletedAt: &deleted,
		Recipients: []MessageRecipient{
			{RecipientID: "T001"},
		},
	}

	resp := msg.ToResponse()

	assert.Equal(t, []string{"T001"}, resp.Recipients)
	if assert.NotNil(t, resp.ExpiresIn) {
		assert.Equal(t, TrashRetentionDays-3, *resp.ExpiresIn)
	}
}

func TestToResponse_SentHasNoExpiry(t *testing.T) {
	msg := &Message{ID: 1, Status: MessageStatusSent}

	resp := msg.ToResponse()

	assert.Nil(t, resp.ExpiresIn)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
