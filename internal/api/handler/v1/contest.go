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

const (
	defaultPage     = 0
	defaultPageSize = 10
)

type ContestService interface {
	Create(ctx context.Context, contest domain.Contest) (domain.Contest, error)
	GetByID(ctx context.Context, id uint) (domain.Contest, error)
	GetPage(ctx context.Context, page, size int) ([]domain.Contest, error)
	Count(ctx context.Context) (int64, error)
	SearchByTags(ctx context.Context, value string) ([]domain.Contest, error)
	GetPopular(ctx context.Context) ([]domain.Contest, error)
	GetByCreator(ctx context.Context, email string) ([]domain.Contest, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (domain.Contest, error)
	DeleteByID(ctx context.Context, id uint) error
	DeclareWin(ctx context.Context, decl domain.WinnerDeclaration) error
	GetLatestWinner(ctx context.Context) (domain.Contest, error)
	GetTopCreators(ctx context.Context) ([]domain.Contest, error)
	GetWonByEmail(ctx context.Context, email string) ([]domain.Contest, error)
}

type ContestHandler struct {
	svc ContestService
}

func NewContestHandler(svc ContestService) *ContestHandler {
	return &ContestHandler{
		svc: svc,
	}
}

// HandleCreateContest godoc
// @Summary      Create a contest
// @Tags         contests
// @Accept       json
// @Produce      json
// @Param        request   body      request.CreateContestRequest true "request body"
// @Success      201      {object}   domain.Contest
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /addContest [post]
func (h *ContestHandler) HandleCreateContest(ctx *gin.Context) {
	req := request.CreateContestRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	contest, err := h.svc.Create(ctx.Request.Context(), domain.Contest{
		Title:        req.Title,
		Image:        req.Image,
		Description:  req.Description,
		Tags:         req.Tags,
		Price:        req.Price,
		PrizeMoney:   req.PrizeMoney,
		Deadline:     req.Deadline,
		CreatorEmail: req.CreatorEmail,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateContest -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, contest)
}

// HandleGetContests godoc
// @Summary      List contests, paginated
// @Tags         contests
// @Produce      json
// @Param        page  query      int false "page number, starting at 0"
// @Param        size  query      int false "page size"
// @Success      200   {array}    domain.Contest
// @Failure      400   {object}   response.Err
// @Failure      500   {object}   response.Err
// @Router       /contests [get]
func (h *ContestHandler) HandleGetContests(ctx *gin.Context) {
	page, err := queryInt(ctx, "page", defaultPage)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	size, err := queryInt(ctx, "size", defaultPageSize)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}
	if size <= 0 {
		size = defaultPageSize
	}

	contests, err := h.svc.GetPage(ctx.Request.Context(), page, size)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetContests -> h.svc.GetPage -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, contests)
}

// HandleSearchContests godoc
// @Summary      Search contests by tag substring
// @Tags         contests
// @Produce      json
// @Param        value query      string true "substring matched against tags, case-insensitive"
// @Success      200   {array}    domain.Contest
// @Failure      500   {object}   response.Err
// @Router       /contests/search [get]
func (h *ContestHandler) HandleSearchContests(ctx *gin.Context) {
	value := ctx.Query("value")

	contests, err := h.svc.SearchByTags(ctx.Request.Context(), value)
	if err != nil {
		err = fmt.Errorf("v1.HandleSearchContests -> h.svc.SearchByTags -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, contests)
}

// HandlePopularContests godoc
// @Summary      List approved contests by participation
// @Tags         contests
// @Produce      json
// @Success      200  {array}    domain.Contest
// @Failure      500  {object}   response.Err
// @Router       /popularContests [get]
func (h *ContestHandler) HandlePopularContests(ctx *gin.Context) {
	contests, err := h.svc.GetPopular(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandlePopularContests -> h.svc.GetPopular -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, contests)
}

// HandleContestCount godoc
// @Summary      Total contest count
// @Tags         contests
// @Produce      json
// @Success      200  {object}   response.ContestCountResponse
// @Failure      500  {object}   response.Err
// @Router       /contestCount [get]
func (h *ContestHandler) HandleContestCount(ctx *gin.Context) {
	count, err := h.svc.Count(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleContestCount -> h.svc.Count -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.ContestCountResponse{Count: count})
}

// HandleGetContest godoc
// @Summary      Fetch one contest by id
// @Tags         contests
// @Produce      json
// @Param        id   path       int true "contest ID"
// @Success      200  {object}   domain.Contest
// @Failure      400  {object}   response.Err
// @Failure      404  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /contestDetails/{id} [get]
func (h *ContestHandler) HandleGetContest(ctx *gin.Context) {
	id, err := contestID(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	contest, err := h.svc.GetByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrContestNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("contest", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetContest -> h.svc.GetByID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, contest)
}

// HandleUpdateContest godoc
// @Summary      Partially update a contest
// @Tags         contests
// @Accept       json
// @Produce      json
// @Param        id       path       int true "contest ID"
// @Param        request  body       request.UpdateContestRequest true "request body"
// @Success      200      {object}   domain.Contest
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /contests/update/{id} [patch]
func (h *ContestHandler) HandleUpdateContest(ctx *gin.Context) {
	id, err := contestID(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	req := request.UpdateContestRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	contest, err := h.svc.Update(ctx.Request.Context(), id, req.Fields())
	if err != nil {
		if errors.Is(err, service.ErrContestNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("contest", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateContest -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, contest)
}

// HandleDeleteContest godoc
// @Summary      Delete a contest
// @Tags         contests
// @Produce      json
// @Param        id   path       int true "contest ID"
// @Success      204
// @Failure      400  {object}   response.Err
// @Failure      404  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /contests/delete/{id} [delete]
func (h *ContestHandler) HandleDeleteContest(ctx *gin.Context) {
	id, err := contestID(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteByID(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrContestNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("contest", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteContest -> h.svc.DeleteByID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleMyContests godoc
// @Summary      List contests created by a user
// @Tags         contests
// @Produce      json
// @Param        email path       string true "creator email"
// @Success      200   {array}    domain.Contest
// @Failure      500   {object}   response.Err
// @Router       /myContest/{email} [get]
func (h *ContestHandler) HandleMyContests(ctx *gin.Context) {
	email := ctx.Param("email")

	contests, err := h.svc.GetByCreator(ctx.Request.Context(), email)
	if err != nil {
		err = fmt.Errorf("v1.HandleMyContests -> h.svc.GetByCreator -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, contests)
}

// HandleDeclareWin godoc
// @Summary      Declare a contest winner
// @Description  Propagates the result fields to the contest and all of its submissions and payments.
// @Tags         contests
// @Accept       json
// @Produce      json
// @Param        request   body      request.DeclareWinRequest true "request body"
// @Success      200      {object}   domain.Contest
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /declareWin [patch]
// @Security BearerAuth
func (h *ContestHandler) HandleDeclareWin(ctx *gin.Context) {
	req := request.DeclareWinRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	err := h.svc.DeclareWin(ctx.Request.Context(), domain.WinnerDeclaration{
		ContestID:   req.ContestID,
		Result:      req.Result,
		WinnerName:  req.WinnerName,
		WinnerEmail: req.WinnerEmail,
		WinnerImage: req.WinnerImage,
	})
	if err != nil {
		if errors.Is(err, service.ErrContestNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("contest", "ID", req.ContestID))

			return
		}

		err = fmt.Errorf("v1.HandleDeclareWin -> h.svc.DeclareWin -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	contest, err := h.svc.GetByID(ctx.Request.Context(), req.ContestID)
	if err != nil {
		err = fmt.Errorf("v1.HandleDeclareWin -> h.svc.GetByID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, contest)
}

// HandleLatestWinner godoc
// @Summary      Most recent contest with a declared result
// @Tags         reports
// @Produce      json
// @Success      200  {object}   domain.Contest
// @Failure      404  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /latestWinner [get]
func (h *ContestHandler) HandleLatestWinner(ctx *gin.Context) {
	contest, err := h.svc.GetLatestWinner(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrContestNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("contest", "result", "declared"))

			return
		}

		err = fmt.Errorf("v1.HandleLatestWinner -> h.svc.GetLatestWinner -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, contest)
}

// HandleTopCreators godoc
// @Summary      Contests with the highest participation
// @Tags         reports
// @Produce      json
// @Success      200  {array}    domain.Contest
// @Failure      500  {object}   response.Err
// @Router       /topCreators [get]
func (h *ContestHandler) HandleTopCreators(ctx *gin.Context) {
	contests, err := h.svc.GetTopCreators(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleTopCreators -> h.svc.GetTopCreators -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, contests)
}

// HandleWinningContests godoc
// @Summary      Contests won by a user
// @Tags         reports
// @Produce      json
// @Param        email path       string true "winner email"
// @Success      200   {array}    domain.Contest
// @Failure      500   {object}   response.Err
// @Router       /winningContest/{email} [get]
func (h *ContestHandler) HandleWinningContests(ctx *gin.Context) {
	email := ctx.Param("email")

	contests, err := h.svc.GetWonByEmail(ctx.Request.Context(), email)
	if err != nil {
		err = fmt.Errorf("v1.HandleWinningContests -> h.svc.GetWonByEmail -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, contests)
}

func contestID(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid contest ID: %w", err)
	}

	return uint(id), nil
}

func queryInt(ctx *gin.Context, name string, fallback int) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("invalid %v query param: %q", name, raw)
	}

	return value, nil
}
