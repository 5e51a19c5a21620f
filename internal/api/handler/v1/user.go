package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/contestcorner/contest-corner-api/internal/api/handler/v1/request"
	"github.com/contestcorner/contest-corner-api/internal/api/handler/v1/response"
	"github.com/contestcorner/contest-corner-api/internal/domain"
	"github.com/contestcorner/contest-corner-api/internal/service"
)

type UserService interface {
	Upsert(ctx context.Context, user domain.User) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
	UpdateByEmail(ctx context.Context, email string, fields map[string]interface{}) (domain.User, error)
	DeleteByID(ctx context.Context, id uint) error
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleUpsertUser godoc
// @Summary      Upsert a user by email
// @Description  Returns the stored record unchanged when the email already exists.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request   body      request.UpsertUserRequest true "request body"
// @Success      200      {object}   domain.User
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /user [put]
func (h *UserHandler) HandleUpsertUser(ctx *gin.Context) {
	req := request.UpsertUserRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.Upsert(ctx.Request.Context(), domain.User{
		Email:   req.Email,
		Name:    req.Name,
		Image:   req.Image,
		Address: req.Address,
		Role:    req.Role,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleUpsertUser -> h.svc.Upsert -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleUpdateProfile godoc
// @Summary      Update a user's profile fields
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        email    path       string true "user email"
// @Param        request  body       request.UpdateUserRequest true "request body"
// @Success      200      {object}   domain.User
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /user/update/{email} [put]
func (h *UserHandler) HandleUpdateProfile(ctx *gin.Context) {
	email := ctx.Param("email")

	req := request.UpdateUserRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	// Profile edits never touch the role; that path is the PATCH route.
	fields := req.Fields()
	delete(fields, "role")

	h.update(ctx, email, fields)
}

// HandleUpdateUser godoc
// @Summary      Update a user's fields, including role
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        email    path       string true "user email"
// @Param        request  body       request.UpdateUserRequest true "request body"
// @Success      200      {object}   domain.User
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /user/update/{email} [patch]
func (h *UserHandler) HandleUpdateUser(ctx *gin.Context) {
	email := ctx.Param("email")

	req := request.UpdateUserRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	h.update(ctx, email, req.Fields())
}

func (h *UserHandler) update(ctx *gin.Context, email string, fields map[string]interface{}) {
	user, err := h.svc.UpdateByEmail(ctx.Request.Context(), email, fields)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "email", email))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateUser -> h.svc.UpdateByEmail -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleDeleteUser godoc
// @Summary      Delete a user by id
// @Tags         users
// @Produce      json
// @Param        id   path       int true "user ID"
// @Success      204
// @Failure      400  {object}   response.Err
// @Failure      404  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /user/delete/{id} [delete]
func (h *UserHandler) HandleDeleteUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid user ID: %w", err)))

		return
	}

	if err = h.svc.DeleteByID(ctx.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteUser -> h.svc.DeleteByID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListUsers godoc
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}    domain.User
// @Failure      401  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /users [get]
// @Security BearerAuth
func (h *UserHandler) HandleListUsers(ctx *gin.Context) {
	users, err := h.svc.ListAll(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListUsers -> h.svc.ListAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, users)
}

// HandleGetUser godoc
// @Summary      Fetch one user by email
// @Tags         users
// @Produce      json
// @Param        email path       string true "user email"
// @Success      200   {object}   domain.User
// @Failure      401   {object}   response.Err
// @Failure      404   {object}   response.Err
// @Failure      500   {object}   response.Err
// @Router       /user/{email} [get]
// @Security BearerAuth
func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	email := ctx.Param("email")

	user, err := h.svc.GetByEmail(ctx.Request.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "email", email))

			return
		}

		err = fmt.Errorf("v1.HandleGetUser -> h.svc.GetByEmail -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, user)
}
