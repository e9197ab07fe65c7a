package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/gatherle/gatherle-backend/internal/services"
)

type NotificationHandler struct {
  notificationService services.NotificationService
}

func NewNotificationHandler(notificationService services.NotificationService) *NotificationHandler {
  return &NotificationHandler{notificationService: notificationService}
}

// GET /notifications
func (h *NotificationHandler) ReadMine(c *gin.Context) {
  unreadOnly := c.Query("unread") == "true"
  limit := queryInt(c, "limit", 50)
  notifications, err := h.notificationService.ReadMine(c.Request.Context(), unreadOnly, limit)
  if err != nil {
    RespondError(c, http.StatusUnauthorized, "read_failed", err)
    return
  }
  RespondOK(c, notifications)
}

// GET /notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
  count, err := h.notificationService.UnreadCount(c.Request.Context())
  if err != nil {
    RespondError(c, http.StatusUnauthorized, "count_failed", err)
    return
  }
  RespondOK(c, gin.H{"unread_count": count})
}

// POST /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
  notificationID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  if mErr := h.notificationService.MarkRead(c.Request.Context(), notificationID); mErr != nil {
    RespondError(c, http.StatusBadRequest, "mark_read_failed", mErr)
    return
  }
  RespondOK(c, gin.H{"ok": true})
}
