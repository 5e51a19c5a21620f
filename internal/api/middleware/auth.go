package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/contestcorner/contest-corner-api/internal/api/handler/v1/response"
	"github.com/contestcorner/contest-corner-api/internal/pkg/jwthelper"
)

const (
	// TokenCookieName is the httpOnly cookie holding the credential in
	// cookie transport mode.
	TokenCookieName = "token"

	// ClaimsKey is the gin context key the verified claims are stored
	// under.
	ClaimsKey = "claims"

	TransportCookie = "cookie"
	TransportHeader = "header"
	TransportAuto   = "auto"
)

var errMissingToken = errors.New("missing token")

// Authenticator verifies the signed credential on protected routes. The
// extraction strategy (cookie, bearer header, or both) is configured
// once instead of duplicated per route.
type Authenticator struct {
	signingKey []byte
	transport  string
}

func NewAuthenticator(signingKey, transport string) *Authenticator {
	if transport == "" {
		transport = TransportAuto
	}

	return &Authenticator{
		signingKey: []byte(signingKey),
		transport:  transport,
	}
}

func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := a.extractToken(ctx)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, tokenString)
		if err != nil {
			// A present but invalid or expired credential is rejected
			// distinctly from a missing one.
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
			return
		}

		ctx.Set(ClaimsKey, claims)
		ctx.Next()
	}
}

func (a *Authenticator) extractToken(ctx *gin.Context) (string, error) {
	if a.transport == TransportCookie || a.transport == TransportAuto {
		if cookie, err := ctx.Cookie(TokenCookieName); err == nil && cookie != "" {
			return cookie, nil
		}
		if a.transport == TransportCookie {
			return "", errMissingToken
		}
	}

	header := ctx.GetHeader("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", errMissingToken
	}

	return token, nil
}

// ClaimsFromContext returns the verified claims set by VerifyJWT.
func ClaimsFromContext(ctx *gin.Context) (*jwthelper.UserClaims, bool) {
	value, exists := ctx.Get(ClaimsKey)
	if !exists {
		return nil, false
	}

	claims, ok := value.(*jwthelper.UserClaims)
	if !ok {
		return nil, false
	}

	return claims, ok
}
