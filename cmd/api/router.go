package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"catalog-backend/internal/domains/publisher/model"
	"catalog-backend/internal/infrastructure/telemetry"
	"catalog-backend/internal/shared/middleware"
	"catalog-backend/internal/shared/response"
	"catalog-backend/pkg/container"
	"catalog-backend/web"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	router.SetHTMLTemplate(tmpl)

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(),
		middleware.ErrorHandler(model.MapErrorToHTTP),
	)

	router.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, model.ListURL)
	})
	router.GET("/health", healthCheckHandler(c))

	if h := telemetry.Handler(); h != nil {
		router.GET("/metrics", gin.WrapH(h))
	}

	c.PublisherHandler.RegisterRoutes(router.Group("/catalog"))

	return router, nil
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"store":     appCtx.Config.Store.Driver,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		storeStatus := "ok"
		if err := appCtx.PublisherService.Ping(ctx); err != nil {
			storeStatus = fmt.Sprintf("error: %v", err)
			health["status"] = "degraded"
		}

		if appCtx.DB != nil {
			if stats, err := appCtx.DB.Stats(); err == nil {
				telemetry.DBPoolAcquiredConns.Set(float64(stats.AcquiredConns))
				health["db_pool"] = gin.H{
					"acquired": stats.AcquiredConns,
					"idle":     stats.IdleConns,
					"total":    stats.TotalConns,
					"max":      stats.MaxConns,
				}
			}
		}

		cacheStatus := "disabled"
		if appCtx.Cache != nil {
			cacheStatus = "ok"
			if err := appCtx.Cache.Ping(ctx); err != nil {
				cacheStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"store": storeStatus,
			"cache": cacheStatus,
		}

		if health["status"] != "ok" {
			response.ErrorWithDetails(c, http.StatusServiceUnavailable, "SERVICE_DEGRADED", "Service degraded", health)
			return
		}
		response.Success(c, http.StatusOK, health)
	}
}
