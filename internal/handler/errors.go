package handler

import (
	"errors"

	"github.com/ctoRVC/RV-Connect/internal/service"
	"github.com/ctoRVC/RV-Connect/pkg/logger"
	"github.com/ctoRVC/RV-Connect/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError 将服务层错误分类映射为HTTP响应
// 未分类的错误按500处理并记录日志，不向客户端暴露细节
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("请求处理失败",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		response.InternalError(c, "internal error")
	}
}
