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

type SubmissionService interface {
	Create(ctx context.Context, submission domain.Submission) (domain.Submission, error)
	ListAll(ctx context.Context) ([]domain.Submission, error)
	GetByContestID(ctx context.Context, contestID uint) ([]domain.Submission, error)
	GetWinStats(ctx context.Context, email string) (domain.WinStats, error)
	GetLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

type SubmissionHandler struct {
	svc SubmissionService
}

func NewSubmissionHandler(svc SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		svc: svc,
	}
}

// HandleCreateSubmission godoc
// @Summary      Submit a task for a contest
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        request   body      request.CreateSubmissionRequest true "request body"
// @Success      201      {object}   domain.Submission
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /submittedTask [post]
// @Security BearerAuth
func (h *SubmissionHandler) HandleCreateSubmission(ctx *gin.Context) {
	req := request.CreateSubmissionRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	submission, err := h.svc.Create(ctx.Request.Context(), domain.Submission{
		ContestID:        req.ContestID,
		ParticipantEmail: req.ParticipantEmail,
		ParticipantName:  req.ParticipantName,
		Task:             req.Task,
	})
	if err != nil {
		if errors.Is(err, service.ErrContestNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("contest", "ID", req.ContestID))

			return
		}

		err = fmt.Errorf("v1.HandleCreateSubmission -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, submission)
}

// HandleListSubmissions godoc
// @Summary      List all submissions
// @Tags         submissions
// @Produce      json
// @Success      200  {array}    domain.Submission
// @Failure      401  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /submittedTask [get]
// @Security BearerAuth
func (h *SubmissionHandler) HandleListSubmissions(ctx *gin.Context) {
	submissions, err := h.svc.ListAll(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListSubmissions -> h.svc.ListAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, submissions)
}

// HandleContestSubmissions godoc
// @Summary      List submissions for one contest
// @Tags         submissions
// @Produce      json
// @Param        id   path       int true "contest ID"
// @Success      200  {array}    domain.Submission
// @Failure      400  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /contestSubmitDetails/{id} [get]
// @Security BearerAuth
func (h *SubmissionHandler) HandleContestSubmissions(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid contest ID: %w", err)))

		return
	}

	submissions, err := h.svc.GetByContestID(ctx.Request.Context(), uint(id))
	if err != nil {
		err = fmt.Errorf("v1.HandleContestSubmissions -> h.svc.GetByContestID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, submissions)
}

// HandleUserWinStats godoc
// @Summary      Win-rate record for a participant
// @Description  Attempted and completed counts computed in one pass; both are zero for an unknown participant.
// @Tags         reports
// @Produce      json
// @Param        email path       string true "participant email"
// @Success      200   {object}   domain.WinStats
// @Failure      500   {object}   response.Err
// @Router       /userWin/{email} [get]
func (h *SubmissionHandler) HandleUserWinStats(ctx *gin.Context) {
	email := ctx.Param("email")

	stats, err := h.svc.GetWinStats(ctx.Request.Context(), email)
	if err != nil {
		err = fmt.Errorf("v1.HandleUserWinStats -> h.svc.GetWinStats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleLeaderboard godoc
// @Summary      Winners ranked by win count
// @Tags         reports
// @Produce      json
// @Success      200  {array}    domain.LeaderboardEntry
// @Failure      500  {object}   response.Err
// @Router       /leaderBoard [get]
func (h *SubmissionHandler) HandleLeaderboard(ctx *gin.Context) {
	entries, err := h.svc.GetLeaderboard(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleLeaderboard -> h.svc.GetLeaderboard -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, entries)
}
