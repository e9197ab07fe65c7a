package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/gatherle/gatherle-backend/internal/services"
)

type VenueHandler struct {
  venueService services.VenueService
}

func NewVenueHandler(venueService services.VenueService) *VenueHandler {
  return &VenueHandler{venueService: venueService}
}

// POST /venues
func (h *VenueHandler) Create(c *gin.Context) {
  var input services.CreateVenueInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }
  venue, err := h.venueService.CreateVenue(c.Request.Context(), input)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "create_failed", err)
    return
  }
  c.JSON(http.StatusCreated, venue)
}

// GET /venues/:id
func (h *VenueHandler) Get(c *gin.Context) {
  venueID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  venue, gErr := h.venueService.GetVenue(c.Request.Context(), venueID)
  if gErr != nil {
    RespondError(c, http.StatusNotFound, "venue_not_found", gErr)
    return
  }
  RespondOK(c, venue)
}
