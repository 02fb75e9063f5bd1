package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/garageflow/garageflow/internal/store"
)

// RequireReady rejects API calls until the startup load has finished,
// so clients can tell "failed to load" apart from an empty dataset.
func RequireReady(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.Ready() {
			c.Next()
			return
		}

		message := "Store is still loading"
		code := "STORE_LOADING"
		if err := s.Err(); err != nil {
			message = "Store failed to load: " + err.Error()
			code = "STORE_LOAD_FAILED"
		}
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error": gin.H{
				"code":    code,
				"message": message,
			},
		})
	}
}
