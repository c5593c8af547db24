package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"sentimentfactor/internal/app"
	"sentimentfactor/internal/config"
	"sentimentfactor/internal/domain"
	"sentimentfactor/internal/logger"
	"sentimentfactor/internal/repository"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db                    *sql.DB
	BacktestApp           app.BacktestApp
	BacktestRunRepository repository.BacktestRunRepository
	Config                *config.Config
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "sentiment factor backtester"})
	})
	router.POST("/backtest", m.backtest)
	router.POST("/compare", m.compare)
	router.GET("/runs/:id", m.getRun)
	router.GET("/stats", m.getStats)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, errorStatus(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Errorw("request failed", "status", code, "error", err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// errorStatus maps bad strategy settings to 400, unusable data to 422 and
// upstream provider failures to 502
func errorStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrorKind_Setup):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNoReturns), domain.IsKind(err, domain.ErrorKind_EmptyPanel):
		return http.StatusUnprocessableEntity
	case domain.IsKind(err, domain.ErrorKind_Provider):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// logRequestMiddleware tags the request context with a request scoped logger
func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	requestID := uuid.New()
	c.Set("requestID", requestID.String())

	lg := zap.S().With(
		"requestID", requestID.String(),
		"method", c.Request.Method,
		"route", c.Request.URL.Path,
	)
	c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), lg))

	start := time.Now().UTC()
	c.Next()

	lg.Infow("request complete",
		"status", c.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}
