package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ctoRVC/RV-Connect/internal/service"
	"github.com/ctoRVC/RV-Connect/pkg/redis"

	"github.com/gin-gonic/gin"
)

// FeedHandler 公开信息流接口处理器
// 返回裸JSON数组（不套统一响应结构），作者用户名为密文
type FeedHandler struct {
	service *service.FeedService
}

// NewFeedHandler 创建FeedHandler实例
func NewFeedHandler(s *service.FeedService) *FeedHandler {
	return &FeedHandler{service: s}
}

// GetFeed 获取公开信息流
// 优先命中Redis缓存；缓存层任何错误都忽略，直接回源渲染
func (h *FeedHandler) GetFeed(c *gin.Context) {
	if cached, err := redis.GetCachedFeed(); err == nil && cached != nil {
		c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
		return
	}

	items, err := h.service.Render()
	if err != nil {
		respondError(c, err)
		return
	}

	payload, err := json.Marshal(items)
	if err != nil {
		respondError(c, err)
		return
	}

	// 写缓存失败不影响响应
	_ = redis.CacheFeed(payload)

	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}
