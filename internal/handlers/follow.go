package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/gatherle/gatherle-backend/internal/services"
  "github.com/gatherle/gatherle-backend/internal/types"
)

type FollowHandler struct {
  followService services.FollowService
}

func NewFollowHandler(followService services.FollowService) *FollowHandler {
  return &FollowHandler{followService: followService}
}

type followRequest struct {
  TargetType  string    `json:"target_type" binding:"required"`
  TargetID    string    `json:"target_id" binding:"required"`
}

// POST /follows
func (h *FollowHandler) Follow(c *gin.Context) {
  var req followRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }
  targetID, err := uuid.Parse(req.TargetID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  follow, fErr := h.followService.FollowTarget(c.Request.Context(), types.FollowTargetType(req.TargetType), targetID)
  if fErr != nil {
    RespondError(c, http.StatusBadRequest, "follow_failed", fErr)
    return
  }
  c.JSON(http.StatusCreated, follow)
}

// DELETE /follows
func (h *FollowHandler) Unfollow(c *gin.Context) {
  var req followRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }
  targetID, err := uuid.Parse(req.TargetID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  if uErr := h.followService.Unfollow(c.Request.Context(), types.FollowTargetType(req.TargetType), targetID); uErr != nil {
    RespondError(c, http.StatusBadRequest, "unfollow_failed", uErr)
    return
  }
  RespondOK(c, gin.H{"ok": true})
}

type respondFollowRequest struct {
  Accept    bool    `json:"accept"`
}

// POST /follows/:id/respond
func (h *FollowHandler) Respond(c *gin.Context) {
  followID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  var req respondFollowRequest
  if bErr := c.ShouldBindJSON(&req); bErr != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", bErr)
    return
  }
  follow, rErr := h.followService.RespondToFollow(c.Request.Context(), followID, req.Accept)
  if rErr != nil {
    RespondError(c, http.StatusBadRequest, "respond_failed", rErr)
    return
  }
  RespondOK(c, follow)
}

// GET /follows
func (h *FollowHandler) ReadFollowing(c *gin.Context) {
  follows, err := h.followService.ReadFollowing(c.Request.Context())
  if err != nil {
    RespondError(c, http.StatusUnauthorized, "read_failed", err)
    return
  }
  RespondOK(c, follows)
}
