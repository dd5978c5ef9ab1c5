package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/user/movieapi/internal/config"
	"github.com/user/movieapi/internal/model"
	"github.com/user/movieapi/internal/repository"
	"github.com/user/movieapi/internal/utils"
)

// Handler HTTP 处理器
type Handler struct {
	Repos  *repository.Repositories
	Config *config.Config
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config) *Handler {
	return &Handler{
		Repos:  repos,
		Config: cfg,
	}
}

// respondError 把错误映射为 HTTP 响应：校验错误 400，不存在 404，其余 500
func (h *Handler) respondError(c *gin.Context, err error) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.ErrorWithData(c, 400, verr.Error(), verr)
	case errors.Is(err, repository.ErrNotFound):
		utils.NotFound(c, "电影不存在")
	default:
		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("请求处理失败")
		utils.InternalServerError(c, "")
	}
}

// parseID 解析路径中的 id，只接受正整数
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// queryUint 读取可选的正整数查询参数
func queryUint(c *gin.Context, key string) (*uint, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return nil, model.NewValidationError(key, "必须是正整数")
	}
	v := uint(n)
	return &v, nil
}

// queryPage 读取可选的页码，从 0 开始
func queryPage(c *gin.Context) (*int, error) {
	raw, ok := c.GetQuery("page")
	if !ok || raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil, model.NewValidationError("page", "必须是非负整数")
	}
	return &n, nil
}
