package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lifeline-salud/backend/internal/model"
	"github.com/lifeline-salud/backend/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Signup godoc
// @Summary Register a user and its account
// @Description Creates the account and user rows atomically through the store.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.SignupRequest true "Signup payload"
// @Success 201 {object} model.APIResponse
// @Failure 400 {object} model.APIResponse
// @Failure 500 {object} model.APIResponse
// @Router /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.Fail("signup failed", "invalid request body"))
		return
	}

	res, err := h.svc.Signup(c.Request.Context(), req)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			c.JSON(http.StatusInternalServerError, model.Fail("signup failed", model.ErrorDetail{
				Message: pgErr.Message,
				Detail:  pgErr.Detail,
			}))
			return
		}
		c.JSON(http.StatusInternalServerError, model.Fail("signup failed", "server error"))
		return
	}

	c.JSON(http.StatusCreated, model.Success("user and account registered", res))
}

// Login godoc
// @Summary Authenticate and open a session
// @Description Sets the session token as an HttpOnly cookie. The token is
// also returned in the body for non-browser clients.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Email and password"
// @Success 200 {object} model.APIResponse
// @Failure 400 {object} model.APIResponse
// @Failure 401 {object} model.APIResponse
// @Failure 500 {object} model.APIResponse
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, model.Fail("login failed", "missing email or password"))
		return
	}

	res, err := h.svc.Login(c.Request.Context(), req.Email, req.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, model.Fail("login failed", "invalid credentials"))
			return
		}
		c.JSON(http.StatusInternalServerError, model.Fail("login failed", "server error"))
		return
	}

	h.setTokenCookie(c, res.Token)
	c.JSON(http.StatusOK, model.Success("login successful", res))
}

// UserData godoc
// @Summary Get the caller's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.APIResponse
// @Failure 401 {object} model.APIResponse
// @Failure 404 {object} model.APIResponse
// @Failure 500 {object} model.APIResponse
// @Router /user-data [get]
func (h *AuthHandler) UserData(c *gin.Context) {
	user := GetAuthUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, model.Fail("authentication failed", "unauthorized"))
		return
	}

	profile, err := h.svc.GetProfile(c.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.Fail("user not found", "no user matches the authenticated id"))
			return
		}
		c.JSON(http.StatusInternalServerError, model.Fail("profile lookup failed", "server error"))
		return
	}

	c.JSON(http.StatusOK, model.Success("user data retrieved", profile))
}

// Logout godoc
// @Summary Revoke the current session
// @Description Idempotent: revoking an already revoked session succeeds.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.APIResponse
// @Failure 401 {object} model.APIResponse
// @Failure 500 {object} model.APIResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	user := GetAuthUser(c)
	token := GetAuthToken(c)
	if user == nil || token == "" {
		c.JSON(http.StatusUnauthorized, model.Fail("authentication failed", "unauthorized"))
		return
	}

	if err := h.svc.Logout(c.Request.Context(), user.ID, token); err != nil {
		c.JSON(http.StatusInternalServerError, model.Fail("logout failed", "server error"))
		return
	}

	h.clearTokenCookie(c)
	c.JSON(http.StatusOK, model.Success("session closed", nil))
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string) {
	cfg := h.svc.CookieConfig()
	c.SetSameSite(cfg.SameSite)
	c.SetCookie(cfg.Name, token, cfg.MaxAge, cfg.Path, "", cfg.Secure, true)
}

func (h *AuthHandler) clearTokenCookie(c *gin.Context) {
	cfg := h.svc.CookieConfig()
	c.SetSameSite(cfg.SameSite)
	c.SetCookie(cfg.Name, "", -1, cfg.Path, "", cfg.Secure, true)
}
