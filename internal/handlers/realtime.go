package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/gatherle/gatherle-backend/internal/logger"
  "github.com/gatherle/gatherle-backend/internal/realtime"
  "github.com/gatherle/gatherle-backend/internal/requestdata"
)

type RealtimeHandler struct {
  log *logger.Logger
  hub *realtime.SSEHub
}

func NewRealtimeHandler(log *logger.Logger, hub *realtime.SSEHub) *RealtimeHandler {
  return &RealtimeHandler{
    log: log.With("handler", "RealtimeHandler"),
    hub: hub,
  }
}

// GET /sse/stream
func (h *RealtimeHandler) SSEStream(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil || rd.UserID == uuid.Nil {
    RespondError(c, http.StatusUnauthorized, "not_authenticated", nil)
    return
  }
  userID := rd.UserID

  client := h.hub.NewSSEClient(userID)
  h.log.Info("SSE stream open", "user_id", userID.String(), "client_id", client.ID.String())

  // Every connection listens on the user's own channel.
  h.hub.AddChannel(client, realtime.UserChannel(userID))

  h.hub.ServeHTTP(c.Writer, c.Request, client)

  h.hub.CloseClient(client)
  h.log.Info("SSE stream closed", "user_id", userID.String(), "client_id", client.ID.String())
}
