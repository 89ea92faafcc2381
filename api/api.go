package api

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"marketgps/internal"
	"marketgps/internal/logger"
	"marketgps/internal/repository"
	l3_service "marketgps/internal/service/l3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db                         *sql.DB
	Logger                     *zap.SugaredLogger
	BuilderService             l3_service.BuilderService
	StrategyTemplateRepository repository.StrategyTemplateRepository
	JwtDecodeToken             string
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to marketgps"})
	})

	router.POST("/allocation/addSlot", m.addSlot)
	router.POST("/allocation/removeSlot", m.removeSlot)
	router.POST("/allocation/setSlotWeight", m.setSlotWeight)
	router.POST("/allocation/equalize", m.equalizeAllocation)
	router.POST("/allocation/normalize", m.normalizeAllocation)
	router.POST("/allocation/redistributeByGroup", m.redistributeByGroup)
	router.POST("/allocation/metrics", m.allocationMetrics)
	router.POST("/allocation/previewExpression", m.previewWeightExpression)

	router.POST("/strategy/barbell", m.barbell)
	router.POST("/strategy/compose", m.composeStrategy)
	router.GET("/strategy/templates", m.getStrategyTemplates)
	router.GET("/strategy/templates/:id/seed", m.seedFromTemplate)
	router.POST("/strategy/templates", m.requireAuth, m.saveStrategyTemplate)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	zap.S().Error(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// the allocation core's validation failures are the caller's fault, not ours
func allocationErrorCode(err error) int {
	var (
		duplicateSlot       internal.DuplicateSlotError
		slotNotFound        internal.SlotNotFoundError
		zeroSum             internal.ZeroSumError
		unknownGroup        internal.UnknownGroupError
		invalidGroupTargets internal.InvalidGroupTargetsError
	)
	if errors.As(err, &duplicateSlot) ||
		errors.As(err, &slotNotFound) ||
		errors.As(err, &zeroSum) ||
		errors.As(err, &unknownGroup) ||
		errors.As(err, &invalidGroupTargets) {
		return 400
	}
	return 500
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	start := time.Now().UTC()

	if m.Logger != nil {
		reqCtx := context.WithValue(ctx.Request.Context(), logger.ContextKey, m.Logger)
		ctx.Request = ctx.Request.WithContext(reqCtx)
	}

	ctx.Next()

	log := m.Logger
	if log == nil {
		log = zap.S()
	}
	log.Infow("handled request",
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}
