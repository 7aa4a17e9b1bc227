package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/project/library/pkg/logger"
	"go.uber.org/zap"
)

const pingTimeout = 2 * time.Second

type healthResponse struct {
	Status string `json:"status"`
}

// Health answers UP while the storage responds to a ping.
func (i *implementation) Health(c echo.Context) error {
	if i.pinger == nil {
		return c.JSON(http.StatusOK, healthResponse{Status: "UP"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	if err := i.pinger.Ping(ctx); logger.CheckError(err, i.logger, "storage ping failed", zap.Error(err)) {
		return c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "DOWN"})
	}

	return c.JSON(http.StatusOK, healthResponse{Status: "UP"})
}
