package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/leadfunnel-backend/internal/domain/errors"
	"github.com/rafabene/leadfunnel-backend/internal/domain/ports"
	"github.com/rafabene/leadfunnel-backend/internal/handlers/dto"
	"github.com/rafabene/leadfunnel-backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
	logger      ports.Logger
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService, logger ports.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// GetCurrentUser godoc
// @Summary      Usuário autenticado
// @Tags         auth
// @Produce      json
// @Success      200  {object}  entities.User
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /auth/user [get]
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID := CurrentUserID(c)
	if userID == "" {
		dto.Abort(c, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errs.Is(err, errors.ErrUserNotFound) {
			dto.Abort(c, dto.NotFoundErrorResponseI18n(c, "user.not_found"))
			return
		}
		respondInternal(c, h.logger, "user.get_failed", err)
		return
	}

	c.JSON(http.StatusOK, user)
}
