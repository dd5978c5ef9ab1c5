package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/movieapi/internal/config"
	"github.com/user/movieapi/internal/model"
	"github.com/user/movieapi/internal/repository"
)

const seedJSON = `{
	"genres": [{"id": 1, "name": "Drama"}, {"id": 2, "name": "Thriller"}],
	"directors": [{"id": 3, "name": "Fincher"}],
	"movies": [
		{"id": 10, "title": "Zodiac", "description": "Cartoonist", "trailer": "https://youtu.be/yNncHPl1UXg", "year": 2007, "rating": 7.7, "genre_id": 2, "director_id": 3},
		{"id": 11, "title": "Se7en", "year": 1995, "rating": 8.6, "genre_id": 2, "director_id": 3}
	]
}`

func setupTestSeed(t *testing.T) (*SeedService, *repository.Repositories) {
	t.Helper()

	db, err := repository.InitDB(config.DriverSQLite, filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	require.NoError(t, repository.InitSchema(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	repos := repository.NewRepositories(db)
	return NewSeedService(repos), repos
}

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSeedService_LoadFile(t *testing.T) {
	svc, repos := setupTestSeed(t)

	require.NoError(t, svc.LoadFile(writeSeed(t, seedJSON)))

	genres, err := repos.Genre.ListAll()
	require.NoError(t, err)
	assert.Equal(t, []model.Genre{{ID: 1, Name: "Drama"}, {ID: 2, Name: "Thriller"}}, genres)

	directors, err := repos.Director.ListAll()
	require.NoError(t, err)
	assert.Equal(t, []model.Director{{ID: 3, Name: "Fincher"}}, directors)

	movie, err := repos.Movie.FindByID(10)
	require.NoError(t, err)
	assert.Equal(t, "Zodiac", movie.Title)
	require.NotNil(t, movie.Director)
	assert.Equal(t, "Fincher", movie.Director.Name)
	require.NotNil(t, movie.Genre)
	assert.Equal(t, "Thriller", movie.Genre.Name)
}

func TestSeedService_LoadIsIdempotent(t *testing.T) {
	svc, repos := setupTestSeed(t)
	path := writeSeed(t, seedJSON)

	require.NoError(t, svc.LoadFile(path))
	require.NoError(t, svc.LoadFile(path))

	movies, err := repos.Movie.List(model.MovieFilter{})
	require.NoError(t, err)
	assert.Len(t, movies, 2)

	fields, err := model.DecodeMovieFields([]byte(`{"title":"Fight Club","director_id":3}`))
	require.NoError(t, err)
	created, err := repos.Movie.Create(fields)
	require.NoError(t, err)
	assert.Greater(t, created.ID, uint(11))
}

func TestSeedService_DanglingReferenceRollsBack(t *testing.T) {
	svc, repos := setupTestSeed(t)

	err := svc.Load(&SeedData{
		Genres: []model.Genre{{ID: 1, Name: "Drama"}},
		Movies: []model.Movie{{ID: 1, Title: "Broken", DirectorID: func() *uint { v := uint(9); return &v }()}},
	})
	require.Error(t, err)
	var verr *model.ValidationError
	assert.True(t, errors.As(err, &verr))

	genres, err := repos.Genre.ListAll()
	require.NoError(t, err)
	assert.Empty(t, genres, "genres written before the failure must be rolled back")
}

func TestSeedService_LoadFileErrors(t *testing.T) {
	svc, _ := setupTestSeed(t)

	assert.Error(t, svc.LoadFile(filepath.Join(t.TempDir(), "missing.json")))
	assert.Error(t, svc.LoadFile(writeSeed(t, `{"genres": "nope"}`)))
}
