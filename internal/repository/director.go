package repository

import (
	"github.com/user/movieapi/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DirectorRepository 导演仓库
type DirectorRepository struct {
	db *gorm.DB
}

// NewDirectorRepository 创建导演仓库
func NewDirectorRepository(db *gorm.DB) *DirectorRepository {
	return &DirectorRepository{db: db}
}

// Create 创建导演
func (r *DirectorRepository) Create(director *model.Director) error {
	return translateError("创建导演", r.db.Create(director).Error)
}

// Upsert 按 id 写入导演
func (r *DirectorRepository) Upsert(directors []model.Director) error {
	if len(directors) == 0 {
		return nil
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(&directors).Error
	return translateError("写入导演", err)
}

// ListAll 获取所有导演
func (r *DirectorRepository) ListAll() ([]model.Director, error) {
	directors := []model.Director{}
	err := r.db.Order("id ASC").Find(&directors).Error
	return directors, translateError("查询导演", err)
}
