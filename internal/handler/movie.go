package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/movieapi/internal/model"
	"github.com/user/movieapi/internal/utils"
)

// ListMovies 电影列表，支持 director_id、genre_id、page 参数
func (h *Handler) ListMovies(c *gin.Context) {
	directorID, err := queryUint(c, "director_id")
	if err != nil {
		h.respondError(c, err)
		return
	}
	genreID, err := queryUint(c, "genre_id")
	if err != nil {
		h.respondError(c, err)
		return
	}
	page, err := queryPage(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	movies, err := h.Repos.Movie.List(model.MovieFilter{
		DirectorID: directorID,
		GenreID:    genreID,
		Page:       page,
		PageSize:   h.Config.PageSize,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, movies)
}

// GetMovie 电影详情
func (h *Handler) GetMovie(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.NotFound(c, "电影不存在")
		return
	}

	movie, err := h.Repos.Movie.FindByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, movie)
}

// CreateMovie 创建电影，成功返回 201 和空响应体
func (h *Handler) CreateMovie(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		utils.BadRequest(c, "读取请求体失败")
		return
	}

	fields, err := model.DecodeMovieFields(body)
	if err != nil {
		h.respondError(c, err)
		return
	}

	movie, err := h.Repos.Movie.Create(fields)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/movies/%d", movie.ID))
	c.Status(http.StatusCreated)
}

// UpdateMovie 部分更新，只覆盖请求中出现的字段
func (h *Handler) UpdateMovie(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.NotFound(c, "电影不存在")
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		utils.BadRequest(c, "读取请求体失败")
		return
	}

	fields, err := model.DecodeMovieFields(body)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.Repos.Movie.Update(id, fields); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// DeleteMovie 删除电影
func (h *Handler) DeleteMovie(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.NotFound(c, "电影不存在")
		return
	}

	if err := h.Repos.Movie.Delete(id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
