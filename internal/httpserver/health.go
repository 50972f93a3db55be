package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atrova/pkg/response"
)

const (
	HealthMessage = "Atrova task assistant"
	HealthVersion = "1.0.0"
	ServiceName   = "atrova"
)

func probeBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck reports that the process serves HTTP.
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, probeBody("healthy"))
}

// readyCheck reports ready once the database answers a ping.
// @Summary Readiness Check
// @Description Check if the API can reach its database
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "Database unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if err := srv.db.PingContext(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck: %v", err)
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, probeBody("unavailable"))
		return
	}
	response.OK(c, probeBody("ready"))
}

// liveCheck is the liveness probe.
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, probeBody("alive"))
}
