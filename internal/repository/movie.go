package repository

import (
	"math"

	"github.com/user/movieapi/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// withRelations 预加载导演和类型
func (r *MovieRepository) withRelations() *gorm.DB {
	return r.db.Model(&model.Movie{}).Preload("Genre").Preload("Director")
}

// List 按条件查询电影，按 id 升序
// 导演和类型条件相互独立，同时给出时取交集；给出 Page 时按 PageSize 分页
func (r *MovieRepository) List(filter model.MovieFilter) ([]model.Movie, error) {
	q := r.withRelations().Order("movie.id ASC")

	if filter.DirectorID != nil {
		q = q.Where("movie.director_id = ?", *filter.DirectorID)
	}
	if filter.GenreID != nil {
		q = q.Where("movie.genre_id = ?", *filter.GenreID)
	}
	if filter.Page != nil && filter.PageSize > 0 {
		// 偏移量溢出时页码必然超出结果范围
		if *filter.Page > math.MaxInt/filter.PageSize {
			return []model.Movie{}, nil
		}
		q = q.Offset(*filter.Page * filter.PageSize).Limit(filter.PageSize)
	}

	movies := []model.Movie{}
	if err := q.Find(&movies).Error; err != nil {
		return nil, translateError("查询电影列表", err)
	}
	return movies, nil
}

// FindByID 根据 ID 查找电影
func (r *MovieRepository) FindByID(id uint) (*model.Movie, error) {
	var movie model.Movie
	if err := r.withRelations().First(&movie, id).Error; err != nil {
		return nil, translateError("查询电影", err)
	}
	return &movie, nil
}

// Create 在事务中创建电影，返回带新 id 的记录
func (r *MovieRepository) Create(fields *model.MovieFields) (*model.Movie, error) {
	movie := &model.Movie{}
	fields.Apply(movie)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(movie).Error
	})
	if err != nil {
		return nil, translateError("创建电影", err)
	}
	return movie, nil
}

// Update 在事务中只更新请求里出现的字段
func (r *MovieRepository) Update(id uint, fields *model.MovieFields) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Movie
		if err := tx.Select("id").First(&existing, id).Error; err != nil {
			return err
		}

		cols := fields.Columns()
		if len(cols) == 0 {
			return nil
		}
		return tx.Model(&model.Movie{}).Where("id = ?", id).Updates(cols).Error
	})
	return translateError("更新电影", err)
}

// Delete 在事务中删除电影
func (r *MovieRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.Movie{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	return translateError("删除电影", err)
}

// Upsert 按 id 写入电影，已存在则覆盖
func (r *MovieRepository) Upsert(movies []model.Movie) error {
	if len(movies) == 0 {
		return nil
	}
	err := r.db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&movies).Error
	return translateError("写入电影", err)
}
