package controller

import (
	"context"
	"net/http"
	"time"

	"cs_chatbot_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gorm.io/gorm"
)

type HealthController struct {
	DB    *gorm.DB
	Mongo *mongo.Client
	Redis *redis.Client
}

func NewHealthController(db *gorm.DB, mongoClient *mongo.Client, rdb *redis.Client) *HealthController {
	return &HealthController{DB: db, Mongo: mongoClient, Redis: rdb}
}

// HealthCheck godoc
// @Summary Liveness and dependency status
// @Tags health
// @Produce  json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /api/health [get]
func (ctrl *HealthController) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	status := gin.H{
		"mysql": "up",
		"mongo": "up",
		"redis": "up",
	}
	healthy := true

	if sqlDB, err := ctrl.DB.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		status["mysql"] = "down"
		healthy = false
	}
	if err := ctrl.Mongo.Ping(ctx, readpref.Primary()); err != nil {
		status["mongo"] = "down"
		healthy = false
	}
	if err := ctrl.Redis.Ping(ctx).Err(); err != nil {
		status["redis"] = "down"
		healthy = false
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, util.Response{
			Code:    http.StatusServiceUnavailable,
			Message: "degraded",
			Data:    status,
		})
		return
	}

	util.Success(c, status)
}
