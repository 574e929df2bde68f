package identity

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/praana/praana-care/internal/domain/patient"
	"github.com/praana/praana-care/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// sessionUser is the sanitized account view returned by the auth endpoints.
type sessionUser struct {
	ID             string           `json:"id"`
	Email          string           `json:"email"`
	Name           string           `json:"name"`
	Role           string           `json:"role"`
	AdditionalData *patient.Patient `json:"additionalData"`
}

type loginResponse struct {
	User         sessionUser `json:"user"`
	Token        string      `json:"token"`
	RedirectPath string      `json:"redirectPath"`
}

// Login handles POST /auth/login. Patient-role users get their profile
// embedded as additionalData; everyone gets a role-specific redirect path.
func (h *Handler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	u, profile, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
	}

	return c.JSON(http.StatusOK, loginResponse{
		User: sessionUser{
			ID:             u.ID,
			Email:          u.Email,
			Name:           u.Name,
			Role:           u.Role,
			AdditionalData: profile,
		},
		Token:        auth.Token(u.ID),
		RedirectPath: u.DashboardPath(),
	})
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type registeredUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type registerResponse struct {
	User  registeredUser `json:"user"`
	Token string         `json:"token"`
}

// Register handles POST /auth/register. Duplicate emails fail with 400
// regardless of role or password.
func (h *Handler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	u, err := h.svc.Register(c.Request().Context(), req.Email, req.Password, req.Name, req.Role)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "User already exists"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, registerResponse{
		User: registeredUser{
			ID:    u.ID,
			Email: u.Email,
			Name:  u.Name,
			Role:  u.Role,
		},
		Token: auth.Token(u.ID),
	})
}
