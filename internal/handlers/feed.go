package handlers

import (
  "net/http"
  "strconv"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/gatherle/gatherle-backend/internal/logger"
  "github.com/gatherle/gatherle-backend/internal/requestdata"
  "github.com/gatherle/gatherle-backend/internal/services"
)

type FeedHandler struct {
  log          *logger.Logger
  feedService  services.FeedService
}

func NewFeedHandler(log *logger.Logger, feedService services.FeedService) *FeedHandler {
  return &FeedHandler{
    log:         log.With("handler", "FeedHandler"),
    feedService: feedService,
  }
}

// GET /feed
func (h *FeedHandler) GetFeed(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil || rd.UserID == uuid.Nil {
    RespondError(c, http.StatusUnauthorized, "not_authenticated", nil)
    return
  }

  limit := queryInt(c, "limit", 50)
  skip := queryInt(c, "skip", 0)

  items, err := h.feedService.ReadFeed(c.Request.Context(), rd.UserID, limit, skip)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "feed_read_failed", err)
    return
  }
  RespondOK(c, items)
}

// POST /feed/refresh
// Explicit full recompute for the authenticated user, for a "Refresh" button.
func (h *FeedHandler) Refresh(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil || rd.UserID == uuid.Nil {
    RespondError(c, http.StatusUnauthorized, "not_authenticated", nil)
    return
  }
  if err := h.feedService.Refresh(c.Request.Context(), rd.UserID); err != nil {
    RespondError(c, http.StatusInternalServerError, "feed_refresh_failed", err)
    return
  }
  RespondOK(c, gin.H{"ok": true})
}

func queryInt(c *gin.Context, key string, defaultVal int) int {
  raw := c.Query(key)
  if raw == "" {
    return defaultVal
  }
  val, err := strconv.Atoi(raw)
  if err != nil {
    return defaultVal
  }
  return val
}
