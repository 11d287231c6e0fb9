// Package controllers holds the HTTP handlers for the shop API.
package controllers

import (
	"errors"
	"net/http"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/services"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/bind"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/response"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type loginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login verifies the admin credential and returns a bearer token.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	token, err := c.auth.Login(r.Context(), in.Username, in.Password)
	if err != nil {
		if errors.Is(err, services.ErrAdminNotConfigured) {
			response.Error(w, http.StatusServiceUnavailable, "Admin login is not configured")
			return
		}
		response.Unauthorized(w)
		return
	}

	response.Success(w, map[string]string{"token": token})
}
