package repository

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS genre (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS director (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS movie (
		id SERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL DEFAULT '',
		description VARCHAR(255) NOT NULL DEFAULT '',
		trailer VARCHAR(255) NOT NULL DEFAULT '',
		year INTEGER NOT NULL DEFAULT 0,
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		genre_id INTEGER REFERENCES genre (id),
		director_id INTEGER REFERENCES director (id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_movie_genre_id ON movie (genre_id)`,
	`CREATE INDEX IF NOT EXISTS idx_movie_director_id ON movie (director_id)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS genre (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name VARCHAR(255) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS director (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name VARCHAR(255) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS movie (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title VARCHAR(255) NOT NULL DEFAULT '',
		description VARCHAR(255) NOT NULL DEFAULT '',
		trailer VARCHAR(255) NOT NULL DEFAULT '',
		year INTEGER NOT NULL DEFAULT 0,
		rating REAL NOT NULL DEFAULT 0,
		genre_id INTEGER REFERENCES genre (id),
		director_id INTEGER REFERENCES director (id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_movie_genre_id ON movie (genre_id)`,
	`CREATE INDEX IF NOT EXISTS idx_movie_director_id ON movie (director_id)`,
}

// InitSchema 建表（已存在则跳过），启动时执行一次
func InitSchema(db *gorm.DB) error {
	statements := sqliteSchema
	if db.Dialector.Name() == "postgres" {
		statements = postgresSchema
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("建表失败: %w", err)
		}
	}

	log.Info().Str("dialect", db.Dialector.Name()).Msg("数据库表结构已就绪")
	return nil
}

// ResetSequences 把 postgres 自增序列推进到当前最大 id 之后
// 按指定 id 写入种子数据后需要调用，sqlite 的 AUTOINCREMENT 会自动跟进
func ResetSequences(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	for _, table := range []string{"genre", "director", "movie"} {
		stmt := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE(MAX(id), 0) + 1, false) FROM %[1]s",
			table)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("重置 %s 序列失败: %w", table, err)
		}
	}
	return nil
}
