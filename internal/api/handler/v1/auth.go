package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/contestcorner/contest-corner-api/internal/api/handler/v1/request"
	"github.com/contestcorner/contest-corner-api/internal/api/handler/v1/response"
	"github.com/contestcorner/contest-corner-api/internal/api/middleware"
	"github.com/contestcorner/contest-corner-api/internal/config"
	"github.com/contestcorner/contest-corner-api/internal/pkg/jwthelper"
)

const defaultTokenExpiry = 24 * time.Hour

type AuthHandler struct {
	conf *config.APIConfig
}

func NewAuthHandler(conf *config.APIConfig) *AuthHandler {
	return &AuthHandler{
		conf: conf,
	}
}

// HandleIssueToken godoc
// @Summary      Issue a signed token for a user payload
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.TokenRequest true "request body"
// @Success      200      {object}   response.TokenResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /jwt [post]
func (h *AuthHandler) HandleIssueToken(ctx *gin.Context) {
	req := request.TokenRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), req.Email, req.Name, req.Role, h.tokenExpiry())
	if err != nil {
		err = fmt.Errorf("v1.HandleIssueToken -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	resp := response.TokenResponse{Success: true}

	switch h.conf.JWTTransport {
	case middleware.TransportHeader:
		resp.Token = token
	case middleware.TransportCookie:
		h.setTokenCookie(ctx, token)
	default:
		h.setTokenCookie(ctx, token)
		resp.Token = token
	}

	ctx.JSON(http.StatusOK, resp)
}

// HandleLogout godoc
// @Summary      Clear the auth cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.LogoutResponse
// @Router       /logout [get]
func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	h.setCookie(ctx, "", -1)

	ctx.JSON(http.StatusOK, response.LogoutResponse{Success: true})
}

func (h *AuthHandler) tokenExpiry() time.Duration {
	if h.conf.JWTExpiryHours <= 0 {
		return defaultTokenExpiry
	}

	return time.Duration(h.conf.JWTExpiryHours) * time.Hour
}

func (h *AuthHandler) setTokenCookie(ctx *gin.Context, token string) {
	h.setCookie(ctx, token, int(h.tokenExpiry().Seconds()))
}

func (h *AuthHandler) setCookie(ctx *gin.Context, token string, maxAge int) {
	secure := h.conf.Environment != "development"
	if secure {
		ctx.SetSameSite(http.SameSiteNoneMode)
	} else {
		ctx.SetSameSite(http.SameSiteStrictMode)
	}

	ctx.SetCookie(middleware.TokenCookieName, token, maxAge, "/", "", secure, true)
}

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Produce      plain
// @Success      200 {string} string
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.String(http.StatusOK, "Hello from Contest Corner server")
}
