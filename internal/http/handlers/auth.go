package handlers

import (
	"net/http"

	"itinerary/internal/http/middleware"
	"itinerary/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const adminRole = "admin"

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (h Handler) Login(c *gin.Context) {
	if !h.Env.Auth.Enabled() {
		respondError(c, http.StatusNotFound, "auth_disabled", "authentication is not enabled", nil)
		return
	}

	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	auth := h.Env.Auth
	if req.Username != auth.AdminUsername ||
		bcrypt.CompareHashAndPassword([]byte(auth.AdminPasswordHash), []byte(req.Password)) != nil {
		respondError(c, http.StatusUnauthorized, "invalid_credentials", "invalid username or password", nil)
		return
	}

	token, err := middleware.IssueToken([]byte(auth.JWTSecret), req.Username, adminRole, h.now())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "token_failed", "could not create token", nil)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "user="+req.Username)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  gin.H{"username": req.Username, "role": adminRole},
	})
}
