package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/gatherle/gatherle-backend/internal/logger"
  "github.com/gatherle/gatherle-backend/internal/services"
)

type EventHandler struct {
  log           *logger.Logger
  eventService  services.EventService
}

func NewEventHandler(log *logger.Logger, eventService services.EventService) *EventHandler {
  return &EventHandler{
    log:          log.With("handler", "EventHandler"),
    eventService: eventService,
  }
}

// POST /events
func (h *EventHandler) Create(c *gin.Context) {
  var input services.CreateEventInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }
  event, err := h.eventService.CreateEvent(c.Request.Context(), input)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "create_failed", err)
    return
  }
  c.JSON(http.StatusCreated, event)
}

// GET /events/:id
func (h *EventHandler) Get(c *gin.Context) {
  eventID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  event, gErr := h.eventService.GetEvent(c.Request.Context(), eventID)
  if gErr != nil {
    RespondError(c, http.StatusNotFound, "event_not_found", gErr)
    return
  }
  RespondOK(c, event)
}

// POST /events/:id/publish
func (h *EventHandler) Publish(c *gin.Context) {
  eventID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  event, pErr := h.eventService.PublishEvent(c.Request.Context(), eventID)
  if pErr != nil {
    RespondError(c, http.StatusBadRequest, "publish_failed", pErr)
    return
  }
  RespondOK(c, event)
}

// GET /events/upcoming
func (h *EventHandler) ListUpcoming(c *gin.Context) {
  limit := queryInt(c, "limit", 50)
  events, err := h.eventService.ReadUpcoming(c.Request.Context(), limit)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "list_failed", err)
    return
  }
  RespondOK(c, events)
}
