package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"nexus-tube/domain/dto"
	"nexus-tube/infrastructure/logger"
	"nexus-tube/infrastructure/utils"
	"nexus-tube/usecase"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// SessionGuard admits requests carrying a valid bearer token issued for the
// identity that is currently active in the store. The store holds a single
// session, so a token for a user who has since been switched away from or
// logged out is refused. EventSource and WebSocket clients cannot set
// headers, so GET requests may pass the token as ?access_token= instead.
func SessionGuard(session usecase.ISessionUsecase, secretKey string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res := dto.Res{ResponseCode: "401", ResponseMessage: "Unauthorized"}
		authorization := ctx.Request.Header.Get("Authorization")
		raw, found := strings.CutPrefix(authorization, "Bearer ")
		if !found && ctx.Request.Method == http.MethodGet {
			raw, found = ctx.Query("access_token"), true
		}
		if !found || raw == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		claims, err := utils.ParseSessionToken(raw, secretKey)
		if err != nil {
			res.ResponseMessage = rejection(err)
			logger.GetLogger().WithField("error", err).Debug("Session token rejected")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		if !session.IsAuthenticated() || session.ActiveUser().ID != claims.UserID {
			res.ResponseMessage = "Session is no longer active"
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		ctx.Set("user_id", claims.UserID)
		ctx.Set("director", claims.Director)
		ctx.Next()
	}
}

// DirectorOnly must run after SessionGuard
func DirectorOnly() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !ctx.GetBool("director") {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.Res{ResponseCode: "403", ResponseMessage: "Creative Director access required"})
			return
		}
		ctx.Next()
	}
}

func rejection(err error) string {
	var ve *jwt.ValidationError
	if errors.As(err, &ve) {
		if ve.Errors&jwt.ValidationErrorMalformed != 0 {
			return "That's not even a token"
		}
		if ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
			return "Timing is everything"
		}
		return fmt.Sprintf("Couldn't handle this token:%v", err)
	}
	return "Unauthorized"
}
