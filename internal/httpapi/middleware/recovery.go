package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/textloom/rephrase-api/internal/common"
)

// Recovery converts panics into the JSON error envelope instead of gin's
// default plain-text 500.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic recovered path=%s err=%v", c.FullPath(), r)
				common.Fail(c, http.StatusInternalServerError, common.CodeInternal, "internal error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
