package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/gatherle/gatherle-backend/internal/services"
  "github.com/gatherle/gatherle-backend/internal/types"
)

type ParticipantHandler struct {
  participationService services.ParticipationService
}

func NewParticipantHandler(participationService services.ParticipationService) *ParticipantHandler {
  return &ParticipantHandler{participationService: participationService}
}

type rsvpRequest struct {
  Status    string    `json:"status,omitempty"`
}

// POST /events/:id/rsvp
func (h *ParticipantHandler) Rsvp(c *gin.Context) {
  eventID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  var req rsvpRequest
  if c.Request.ContentLength > 0 {
    if bErr := c.ShouldBindJSON(&req); bErr != nil {
      RespondError(c, http.StatusBadRequest, "invalid_request", bErr)
      return
    }
  }
  participant, rErr := h.participationService.Rsvp(c.Request.Context(), eventID, types.ParticipantStatus(req.Status))
  if rErr != nil {
    RespondError(c, http.StatusBadRequest, "rsvp_failed", rErr)
    return
  }
  RespondOK(c, participant)
}

// DELETE /events/:id/rsvp
func (h *ParticipantHandler) CancelRsvp(c *gin.Context) {
  eventID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  if cErr := h.participationService.CancelRsvp(c.Request.Context(), eventID); cErr != nil {
    RespondError(c, http.StatusBadRequest, "cancel_failed", cErr)
    return
  }
  RespondOK(c, gin.H{"ok": true})
}

// GET /rsvps
func (h *ParticipantHandler) ReadMine(c *gin.Context) {
  participants, err := h.participationService.ReadMine(c.Request.Context())
  if err != nil {
    RespondError(c, http.StatusUnauthorized, "read_failed", err)
    return
  }
  RespondOK(c, participants)
}
