package handler

import (
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/rideboard/internal/usecase"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUsecase *usecase.UserUsecase
	logger      *slog.Logger
}

func NewUserHandler(userUsecase *usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{userUsecase: userUsecase, logger: logger.With("component", "user_handler")}
}

type userResponse struct {
	ID      int64  `json:"id"`
	Surname string `json:"nachname"`
	Email   string `json:"email"`
	Status  string `json:"status"`
	Token   string `json:"token"`
}

// GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userUsecase.List(c.Request.Context())
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list users", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	resp := make([]userResponse, len(users))
	for i, u := range users {
		resp[i] = userResponse{
			ID:      u.ID,
			Surname: u.Surname,
			Email:   u.Email,
			Status:  u.Status,
			Token:   u.Token,
		}
	}
	c.JSON(http.StatusOK, resp)
}
