package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/gatherle/gatherle-backend/internal/services"
)

type OrganizationHandler struct {
  organizationService services.OrganizationService
}

func NewOrganizationHandler(organizationService services.OrganizationService) *OrganizationHandler {
  return &OrganizationHandler{organizationService: organizationService}
}

// POST /orgs
func (h *OrganizationHandler) Create(c *gin.Context) {
  var input services.CreateOrganizationInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }
  org, err := h.organizationService.CreateOrganization(c.Request.Context(), input)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "create_failed", err)
    return
  }
  c.JSON(http.StatusCreated, org)
}

// GET /orgs/:id
func (h *OrganizationHandler) Get(c *gin.Context) {
  orgID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  org, gErr := h.organizationService.GetOrganization(c.Request.Context(), orgID)
  if gErr != nil {
    RespondError(c, http.StatusNotFound, "organization_not_found", gErr)
    return
  }
  RespondOK(c, org)
}
