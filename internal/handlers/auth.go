package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/gatherle/gatherle-backend/internal/requestdata"
  "github.com/gatherle/gatherle-backend/internal/services"
  "github.com/gatherle/gatherle-backend/internal/types"
)

type AuthHandler struct {
  authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
  return &AuthHandler{authService: authService}
}

type registerRequest struct {
  Email       string    `json:"email" binding:"required"`
  Password    string    `json:"password" binding:"required"`
  FirstName   string    `json:"first_name" binding:"required"`
  LastName    string    `json:"last_name" binding:"required"`
}

// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
  var req registerRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }
  user := &types.User{
    Email:     req.Email,
    Password:  req.Password,
    FirstName: req.FirstName,
    LastName:  req.LastName,
  }
  if err := h.authService.RegisterUser(c.Request.Context(), user); err != nil {
    RespondError(c, http.StatusBadRequest, "registration_failed", err)
    return
  }
  c.JSON(http.StatusCreated, user)
}

type loginRequest struct {
  Email     string    `json:"email" binding:"required"`
  Password  string    `json:"password" binding:"required"`
}

// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
  var req loginRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }
  accessToken, refreshToken, err := h.authService.LoginUser(c.Request.Context(), req.Email, req.Password)
  if err != nil {
    RespondError(c, http.StatusUnauthorized, "login_failed", err)
    return
  }
  RespondOK(c, gin.H{"access_token": accessToken, "refresh_token": refreshToken})
}

type refreshRequest struct {
  RefreshToken  string    `json:"refresh_token" binding:"required"`
}

// POST /refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
  var req refreshRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }
  ctx := requestdata.WithRequestData(c.Request.Context(), &requestdata.RequestData{RefreshToken: req.RefreshToken})
  accessToken, refreshToken, err := h.authService.RefreshUser(ctx)
  if err != nil {
    RespondError(c, http.StatusUnauthorized, "refresh_failed", err)
    return
  }
  RespondOK(c, gin.H{"access_token": accessToken, "refresh_token": refreshToken})
}

// POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
  if err := h.authService.LogoutUser(c.Request.Context()); err != nil {
    RespondError(c, http.StatusUnauthorized, "logout_failed", err)
    return
  }
  RespondOK(c, gin.H{"ok": true})
}
