package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/internal/middleware"
	"github.com/schoolhub/sims-backend/internal/service"
)

// MessageHandler handles message HTTP requests
type MessageHandler struct {
	service service.MessageService
	files   service.FileService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(service service.MessageService, files service.FileService) *MessageHandler {
	return &MessageHandler{service: service, files: files}
}

// List handles GET /api/v1/messages
// @Summary List messages
// @Description Lists messages in the selected mailbox tab with optional filters
// @Tags messages
// @Produce json
// @Param tab query string true "Mailbox tab (inbox, drafts, trash, sent)"
// @Param search query string false "Free-text search over subject and content"
// @Param status query string false "Status filter"
// @Param date_from query string false "Lower date bound (RFC 3339)"
// @Param date_to query string false "Upper date bound (RFC 3339)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} common.APIResponse{data=[]domain.MessageResponse}
// @Failure 400 {object} common.APIResponse
// @Security BearerAuth
// @Router /messages [get]
func (h *MessageHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)

	tab := domain.MessageTab(c.DefaultQuery("tab", string(domain.TabInbox)))

	filter := domain.MessageFilter{
		Search: c.Query("search"),
		Status: domain.MessageStatus(c.Query("status")),
	}
	if v := c.Query("date_from"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			common.ErrorResponse(c, http.StatusBadRequest, "Invalid date_from", err)
			return
		}
		filter.DateFrom = &t
	}
	if v := c.Query("date_to"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			common.ErrorResponse(c, http.StatusBadRequest, "Invalid date_to", err)
			return
		}
		filter.DateTo = &t
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	messages, meta, err := h.service.List(userID, tab, filter, page, limit)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessWithMeta(c, messages, meta)
}

// Compose handles POST /api/v1/messages
// @Summary Send a message or save a draft
// @Description Creates a message. status=draft saves a draft, anything else sends immediately. Accepts JSON or multipart form with file parts.
// @Tags messages
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param request body domain.ComposeMessageRequest true "Message payload"
// @Success 201 {object} common.APIResponse{data=domain.MessageResponse}
// @Failure 400 {object} common.APIResponse
// @Security BearerAuth
// @Router /messages [post]
func (h *MessageHandler) Compose(c *gin.Context) {
	userID := middleware.GetUserID(c)

	req, status, err := h.bindCompose(c)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	var msg *domain.MessageResponse
	if status == string(domain.MessageStatusDraft) {
		msg, err = h.service.SaveDraft(userID, req)
	} else {
		msg, err = h.service.Send(userID, req)
	}
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.CreatedResponse(c, msg)
}

// Get handles GET /api/v1/messages/:id
// @Summary Get one message
// @Tags messages
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} common.APIResponse{data=domain.MessageResponse}
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /messages/{id} [get]
func (h *MessageHandler) Get(c *gin.Context) {
	id, err := messageID(c)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid message ID", err)
		return
	}
	msg, err := h.service.Get(id, middleware.GetUserID(c))
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, msg)
}

// UpdateDraft handles PUT /api/v1/messages/:id
// @Summary Update a draft
// @Description Replaces the subject, content, recipients and attachments of a draft
// @Tags messages
// @Accept json
// @Produce json
// @Param id path int true "Message ID"
// @Param request body domain.ComposeMessageRequest true "Draft payload"
// @Success 200 {object} common.APIResponse{data=domain.MessageResponse}
// @Failure 400 {object} common.APIResponse
// @Security BearerAuth
// @Router /messages/{id} [put]
func (h *MessageHandler) UpdateDraft(c *gin.Context) {
	id, err := messageID(c)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid message ID", err)
		return
	}
	req, _, err := h.bindCompose(c)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	msg, err := h.service.UpdateDraft(id, middleware.GetUserID(c), req)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, msg)
}

// SendDraft handles PATCH /api/v1/messages/:id/send
// @Summary Send a saved draft
// @Tags messages
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} common.APIResponse{data=domain.MessageResponse}
// @Failure 400 {object} common.APIResponse
// @Security BearerAuth
// @Router /messages/{id}/send [patch]
func (h *MessageHandler) SendDraft(c *gin.Context) {
	id, err := messageID(c)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid message ID", err)
		return
	}
	msg, err := h.service.SendDraft(id, middleware.GetUserID(c))
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, msg)
}

// MoveToTrash handles PATCH /api/v1/messages/:id/delete
// @Summary Move a message to trash
// @Tags messages
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} common.APIResponse{data=domain.MessageResponse}
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /messages/{id}/delete [patch]
func (h *MessageHandler) MoveToTrash(c *gin.Context) {
	id, err := messageID(c)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid message ID", err)
		return
	}
	msg, err := h.service.MoveToTrash(id, middleware.GetUserID(c))
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, msg)
}

// Restore handles PATCH /api/v1/messages/:id/undo
// @Summary Restore a message from trash
// @Tags messages
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} common.APIResponse{data=domain.MessageResponse}
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /messages/{id}/undo [patch]
func (h *MessageHandler) Restore(c *gin.Context) {
	id, err := messageID(c)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid message ID", err)
		return
	}
	msg, err := h.service.Restore(id, middleware.GetUserID(c))
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, msg)
}

// PermanentlyDelete handles DELETE /api/v1/messages/:id
// @Summary Permanently delete a message
// @Tags messages
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /messages/{id} [delete]
func (h *MessageHandler) PermanentlyDelete(c *gin.Context) {
	id, err := messageID(c)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid message ID", err)
		return
	}
	if err := h.service.PermanentlyDelete(id, middleware.GetUserID(c)); err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true})
}

// MarkRead handles PUT /api/v1/messages/:id/read
// @Summary Mark a message as read
// @Tags messages
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} common.APIResponse{data=domain.MessageResponse}
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /messages/{id}/read [put]
func (h *MessageHandler) MarkRead(c *gin.Context) {
	id, err := messageID(c)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid message ID", err)
		return
	}
	msg, err := h.service.MarkRead(id, middleware.GetUserID(c))
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, msg)
}

// ToggleStar handles PATCH /api/v1/messages/:id/star
// @Summary Toggle the star flag on a message
// @Tags messages
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} common.APIResponse{data=domain.MessageResponse}
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /messages/{id}/star [patch]
func (h *MessageHandler) ToggleStar(c *gin.Context) {
	id, err := messageID(c)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid message ID", err)
		return
	}
	msg, err := h.service.ToggleStar(id, middleware.GetUserID(c))
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, msg)
}

// bindCompose reads a compose payload from either a JSON body or a
// multipart form. Multipart file parts named "attachments" are uploaded
// to object storage and become attachment references.
func (h *MessageHandler) bindCompose(c *gin.Context) (*domain.ComposeMessageRequest, string, error) {
	contentType := c.ContentType()

	if !strings.HasPrefix(contentType, "multipart/form-data") {
		var req domain.ComposeMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, "", err
		}
		status := req.Status
		if status == "" {
			status = c.Query("status")
		}
		return &req, status, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, "", err
	}

	req := &domain.ComposeMessageRequest{
		Subject:    c.PostForm("subject"),
		Content:    c.PostForm("content"),
		Recipients: form.Value["recipients[]"],
	}
	if len(req.Recipients) == 0 {
		req.Recipients = form.Value["recipients"]
	}

	if h.files != nil {
		for _, fh := range form.File["attachments"] {
			ref, err := h.files.Upload(c.Request.Context(), "messages", fh)
			if err != nil {
				return nil, "", err
			}
			req.Attachments = append(req.Attachments, *ref)
		}
	}

	return req, c.PostForm("status"), nil
}

func messageID(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// parseDate accepts RFC 3339 timestamps or plain YYYY-MM-DD dates
func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}
