package repository

import (
	"github.com/user/movieapi/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GenreRepository 类型仓库，类型只通过种子数据维护
type GenreRepository struct {
	db *gorm.DB
}

// NewGenreRepository 创建类型仓库
func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

// Create 创建类型
func (r *GenreRepository) Create(genre *model.Genre) error {
	return translateError("创建类型", r.db.Create(genre).Error)
}

// Upsert 按 id 写入类型
func (r *GenreRepository) Upsert(genres []model.Genre) error {
	if len(genres) == 0 {
		return nil
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(&genres).Error
	return translateError("写入类型", err)
}

// ListAll 获取所有类型
func (r *GenreRepository) ListAll() ([]model.Genre, error) {
	genres := []model.Genre{}
	err := r.db.Order("id ASC").Find(&genres).Error
	return genres, translateError("查询类型", err)
}
