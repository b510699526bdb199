package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Middleware wraps an http.Handler. Cross-cutting middleware is written
// against this signature; gin-specific pieces adapt through GinWrap.
type Middleware func(http.Handler) http.Handler

// Chain composes middlewares outermost first: the first one sees the
// request first and the response last.
func Chain(middlewares ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}

// GinWrap lifts a Middleware into a gin handler chain.
func GinWrap(mw Middleware) gin.HandlerFunc {
	return func(c *gin.Context) {
		next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			// Request mutations made by the middleware must be visible
			// to the handlers behind it.
			c.Request = r
			c.Next()
		})
		mw(next).ServeHTTP(c.Writer, c.Request)
	}
}
