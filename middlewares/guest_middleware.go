package middlewares

import (
	"gotaskr/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GuestMiddleware is the mirror of AuthMiddleware: login and register
// are for visitors, so a request carrying a valid token is sent to the
// task list instead.
func GuestMiddleware(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, ok := bearerToken(ctx)
		if !ok {
			ctx.Next()
			return
		}

		if _, err := authService.GetUserFromToken(tokenString); err != nil {
			ctx.Next()
			return
		}

		ctx.Redirect(http.StatusFound, "/tasks/")
		ctx.Abort()
	}
}
