package handler

import (
	"net/http"

	"github.com/profasthq/profast-api/internal/server"
	"github.com/profasthq/profast-api/internal/service"
	"github.com/profasthq/profast-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// UserHandler exposes user registration.
type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, services *service.Services) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   services.Users,
	}
}

// Register handles POST /users. The status code depends on the
// outcome (201 created, 200 already existed), so this is a plain echo
// handler rather than a fixed-status typed one.
func (h *UserHandler) Register(c echo.Context) error {
	req := new(RegisterUserRequest)
	if err := validation.BindAndValidate(c, req); err != nil {
		return err
	}

	result, err := h.users.Register(c.Request().Context(), req.Email)
	if err != nil {
		return err
	}

	if !result.Created {
		return c.JSON(http.StatusOK, map[string]any{
			"message": "User already exists",
			"user":    result.User,
		})
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"insertedId": result.User.ID,
		"user":       result.User,
	})
}
