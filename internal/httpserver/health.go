package httpserver

import (
	"net/http"

	"partner-dashboard-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Partner Dashboard API V1"
	HealthVersion = "1.0.0"
	ServiceName   = "partner-dashboard-srv"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check requests. Only configured dependencies are checked.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is down"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	deps := gin.H{}

	if srv.redisClient != nil {
		if err := srv.redisClient.Ping(ctx); err != nil {
			notReady(c, "Redis connection failed", err)
			return
		}
		deps["redis"] = "connected"
	}
	if srv.postgresDB != nil {
		if err := srv.postgresDB.PingContext(ctx); err != nil {
			notReady(c, "Database connection failed", err)
			return
		}
		deps["database"] = "connected"
	}
	if srv.minio != nil {
		if err := srv.minio.HealthCheck(ctx); err != nil {
			notReady(c, "MinIO connection failed", err)
			return
		}
		deps["minio"] = "connected"
	}
	if srv.kafkaProducer != nil {
		if err := srv.kafkaProducer.HealthCheck(); err != nil {
			notReady(c, "Kafka connection failed", err)
			return
		}
		deps["kafka"] = "connected"
	}

	response.OK(c, gin.H{
		"status":       "ready",
		"message":      HealthMessage,
		"version":      HealthVersion,
		"service":      ServiceName,
		"dependencies": deps,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

func notReady(c *gin.Context, msg string, err error) {
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"status":  "not ready",
		"message": msg,
		"error":   err.Error(),
	})
}
