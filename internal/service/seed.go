package service

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/user/movieapi/internal/model"
	"github.com/user/movieapi/internal/repository"
	"gorm.io/gorm"
)

// SeedData 种子文件结构，类型和导演只能通过这里维护
type SeedData struct {
	Genres    []model.Genre    `json:"genres"`
	Directors []model.Director `json:"directors"`
	Movies    []model.Movie    `json:"movies"`
}

// SeedService 种子数据导入服务
type SeedService struct {
	repos *repository.Repositories
}

// NewSeedService 创建种子数据服务
func NewSeedService(repos *repository.Repositories) *SeedService {
	return &SeedService{repos: repos}
}

// LoadFile 从 JSON 文件导入
func (s *SeedService) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("读取种子文件失败: %w", err)
	}

	var data SeedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("解析种子文件失败: %w", err)
	}

	return s.Load(&data)
}

// Load 在一个事务中按 id 写入类型、导演、电影，已存在的记录被覆盖
func (s *SeedService) Load(data *SeedData) error {
	err := s.repos.DB.Transaction(func(tx *gorm.DB) error {
		repos := repository.NewRepositories(tx)

		if err := repos.Genre.Upsert(data.Genres); err != nil {
			return err
		}
		if err := repos.Director.Upsert(data.Directors); err != nil {
			return err
		}
		if err := repos.Movie.Upsert(data.Movies); err != nil {
			return err
		}
		return repository.ResetSequences(tx)
	})
	if err != nil {
		return fmt.Errorf("导入种子数据失败: %w", err)
	}

	log.Info().
		Int("genres", len(data.Genres)).
		Int("directors", len(data.Directors)).
		Int("movies", len(data.Movies)).
		Msg("种子数据导入完成")
	return nil
}
