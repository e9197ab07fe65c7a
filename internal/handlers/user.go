package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/gatherle/gatherle-backend/internal/services"
)

type UserHandler struct {
  userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
  return &UserHandler{userService: userService}
}

// GET /user
func (h *UserHandler) GetMe(c *gin.Context) {
  user, err := h.userService.GetMe(c.Request.Context())
  if err != nil {
    RespondError(c, http.StatusNotFound, "user_not_found", err)
    return
  }
  RespondOK(c, user)
}

type updateInterestsRequest struct {
  Interests   []string    `json:"interests"`
}

// PUT /user/interests
func (h *UserHandler) UpdateInterests(c *gin.Context) {
  var req updateInterestsRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }
  user, err := h.userService.UpdateInterests(c.Request.Context(), req.Interests)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "update_failed", err)
    return
  }
  RespondOK(c, user)
}

// POST /user/mute/org/:id
func (h *UserHandler) MuteOrganization(c *gin.Context) {
  orgID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  user, mErr := h.userService.MuteOrganization(c.Request.Context(), orgID)
  if mErr != nil {
    RespondError(c, http.StatusBadRequest, "mute_failed", mErr)
    return
  }
  RespondOK(c, user)
}

// POST /user/mute/user/:id
func (h *UserHandler) MuteUser(c *gin.Context) {
  mutedID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  user, mErr := h.userService.MuteUser(c.Request.Context(), mutedID)
  if mErr != nil {
    RespondError(c, http.StatusBadRequest, "mute_failed", mErr)
    return
  }
  RespondOK(c, user)
}
