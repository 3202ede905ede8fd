package controllers

import (
	"CampusTour/services"
	"CampusTour/utils"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		UserService: userService,
	}
}

// LoginRequest is the body of POST /user/login. Missing fields are stored
// as empty strings and scalar values are stored as text.
type LoginRequest struct {
	Username utils.LooseString `json:"username"`
	Password utils.LooseString `json:"password"`
}

func (h *UserController) RecordLogin(ctx *gin.Context) {
	var req LoginRequest

	// an empty body is an empty login, not an error
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.Error(utils.WrapError(http.StatusInternalServerError, "Failed to save login", err))
		return
	}

	if _, err := h.UserService.RecordLogin(ctx.Request.Context(), req.Username.String(), req.Password.String()); err != nil {
		ctx.Error(utils.WrapError(http.StatusInternalServerError, "Failed to save login", err))
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Login saved!")
}

// ListLogins returns every login record, newest first.
func (h *UserController) ListLogins(ctx *gin.Context) {
	users, err := h.UserService.ListLogins(ctx.Request.Context())
	if err != nil {
		ctx.Error(utils.WrapError(http.StatusInternalServerError, "Failed to fetch logins", err))
		return
	}

	ctx.JSON(http.StatusOK, users)
}
