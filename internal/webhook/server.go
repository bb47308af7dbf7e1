package webhook

import "github.com/gin-gonic/gin"

// NewRouter builds the service router. mode is a gin mode string
// ("release" in production, "test" in tests).
func NewRouter(mode string, h *Handler) *gin.Engine {
	if mode != "" {
		gin.SetMode(mode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	h.Register(r)
	return r
}
