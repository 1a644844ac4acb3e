package httpx

import (
	"github.com/gin-gonic/gin"
)

// Parse extracts request parameters from path, query and body in one call
// Supports uri/form/json tags on the request struct
func Parse(c *gin.Context, req interface{}) error {
	// uri and query bindings are best-effort: the struct may carry no
	// uri or form tags at all
	_ = c.ShouldBindUri(req)
	_ = c.ShouldBindQuery(req)

	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(req); err != nil {
			return err
		}
	}

	return nil
}
