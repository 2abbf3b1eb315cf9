package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockMessageService is a mock implementation of MessageService
type MockMessageService struct {
	mock.Mock
}

func (m *MockMessageService) Send(senderID string, req *domain.ComposeMessageRequest) (*domain.MessageResponse, error) {
	args := m.Called(senderID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessageResponse), args.Error(1)
}

func (m *MockMessageService) SaveDraft(senderID string, req *domain.ComposeMessageRequest) (*domain.MessageResponse, error) {
	args := m.Called(senderID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessageResponse), args.Error(1)
}

func (m *MockMessageService) UpdateDraft(id uint64, senderID string, req *domain.ComposeMessageRequest) (*domain.MessageResponse, error) {
	args := m.Called(id, senderID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessageResponse), args.Error(1)
}

func (m *MockMessageService) SendDraft(id uint64, senderID string) (*domain.MessageResponse, error) {
	args := m.Called(id, senderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessageResponse), args.Error(1)
}

func (m *MockMessageService) Get(id uint64, userID string) (*domain.MessageResponse, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessageResponse), args.Error(1)
}

func (m *MockMessageService) List(userID string, tab domain.MessageTab, filter domain.MessageFilter, page, limit int) ([]*domain.MessageResponse, *common.Meta, error) {
	args := m.Called(userID, tab, filter, page, limit)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]*domain.MessageResponse), args.Get(1).(*common.Meta), args.Error(2)
}

func (m *MockMessageService) MoveToTrash(id uint64, userID string) (*domain.MessageResponse, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessageResponse), args.Error(1)
}

func (m *MockMessageService) Restore(id uint64, userID string) (*domain.MessageResponse, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessageResponse), args.Error(1)
}

func (m *MockMessageService) PermanentlyDelete(id uint64, userID string) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

func (m *MockMessageService) MarkRead(id uint64, userID string) (*domain.MessageResponse, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessageResponse), args.Error(1)
}

func (m *MockMessageService) ToggleStar(id uint64, userID string) (*domain.MessageResponse, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessageResponse), args.Error(1)
}

func composeRouter(svc *MockMessageService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", "u-1")
		c.Next()
	})
	h := NewMessageHandler(svc, nil)
	r.POST("/messages", h.Compose)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCompose_JSONBodyStatusDraft(t *testing.T) {
	svc := new(MockMessageService)
	svc.On("SaveDraft", "u-1", mock.AnythingOfType("*domain.ComposeMessageRequest")).
		Return(&domain.MessageResponse{ID: 1, Status: domain.MessageStatusDraft}, nil)

	w := postJSON(composeRouter(svc),
		"/messages",
		`{"subject":"s","content":"c","recipients":["T001"],"status":"draft"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertCalled(t, "SaveDraft", "u-1", mock.Anything)
	svc.AssertNotCalled(t, "Send")
}

func TestCompose_JSONWithoutStatusSends(t *testing.T) {
	svc := new(MockMessageService)
	svc.On("Send", "u-1", mock.AnythingOfType("*domain.ComposeMessageRequest")).
		Return(&domain.MessageResponse{ID: 1, Status: domain.MessageStatusSent}, nil)

	w := postJSON(composeRouter(svc),
		"/messages",
		`{"subject":"s","content":"c","recipients":["T001"]}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertCalled(t, "Send", "u-1", mock.Anything)
	svc.AssertNotCalled(t, "SaveDraft")
}

func TestCompose_QueryStatusDraft(t *testing.T) {
	svc := new(MockMessageService)
	svc.On("SaveDraft", "u-1", mock.AnythingOfType("*domain.ComposeMessageRequest")).
		Return(&domain.MessageResponse{ID: 1, Status: domain.MessageStatusDraft}, nil)

	w := postJSON(composeRouter(svc),
		"/messages?status=draft",
		`{"subject":"s","content":"c"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertCalled(t, "SaveDraft", "u-1", mock.Anything)
	svc.AssertNotCalled(t, "Send")
}

func TestCompose_InvalidJSON(t *testing.T) {
	svc := new(MockMessageService)

	w := postJSON(composeRouter(svc), "/messages", `{"subject":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Send")
	svc.AssertNotCalled(t, "SaveDraft")
}
