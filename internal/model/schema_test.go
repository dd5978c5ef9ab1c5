package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireValidationError(t *testing.T, err error, field string) *ValidationError {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	assert.Equal(t, field, verr.Field)
	return verr
}

func TestDecodeMovieFields_Full(t *testing.T) {
	body := `{"title":"Heat","description":"LA crime","trailer":"https://youtu.be/x","year":1995,"rating":8.3,"genre_id":2,"director_id":5}`

	fields, err := DecodeMovieFields([]byte(body))
	require.NoError(t, err)

	assert.Equal(t, []string{"description", "director_id", "genre_id", "rating", "title", "trailer", "year"}, fields.Present())

	var m Movie
	fields.Apply(&m)
	assert.Equal(t, "Heat", m.Title)
	assert.Equal(t, "LA crime", m.Description)
	assert.Equal(t, "https://youtu.be/x", m.Trailer)
	assert.Equal(t, 1995, m.Year)
	assert.InDelta(t, 8.3, m.Rating, 1e-9)
	require.NotNil(t, m.GenreID)
	assert.Equal(t, uint(2), *m.GenreID)
	require.NotNil(t, m.DirectorID)
	assert.Equal(t, uint(5), *m.DirectorID)
}

func TestDecodeMovieFields_PartialColumns(t *testing.T) {
	fields, err := DecodeMovieFields([]byte(`{"title":"New"}`))
	require.NoError(t, err)

	assert.True(t, fields.Has("title"))
	assert.False(t, fields.Has("year"))
	assert.Equal(t, map[string]interface{}{"title": "New"}, fields.Columns())
}

func TestDecodeMovieFields_NullReferenceClears(t *testing.T) {
	fields, err := DecodeMovieFields([]byte(`{"genre_id":null}`))
	require.NoError(t, err)

	cols := fields.Columns()
	v, ok := cols["genre_id"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestDecodeMovieFields_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"year as string", `{"year":"abc"}`, "year"},
		{"numeric string year", `{"year":"2000"}`, "year"},
		{"fractional year", `{"year":2000.5}`, "year"},
		{"rating as string", `{"rating":"high"}`, "rating"},
		{"title as number", `{"title":42}`, "title"},
		{"negative genre", `{"genre_id":-1}`, "genre_id"},
		{"zero director", `{"director_id":0}`, "director_id"},
		{"unknown field", `{"budget":100}`, "budget"},
		{"id is output only", `{"id":7,"title":"x"}`, "id"},
		{"nested genre", `{"genre":{"id":1}}`, "genre"},
		{"null title", `{"title":null}`, "title"},
		{"title too long", `{"title":"` + strings.Repeat("a", 256) + `"}`, "title"},
		{"year beyond int32", `{"year":99999999999}`, "year"},
		{"year below int32", `{"year":-2147483649}`, "year"},
		{"genre beyond int32", `{"genre_id":2147483648}`, "genre_id"},
		{"director beyond int32", `{"director_id":4294967296}`, "director_id"},
		{"empty body", ``, ""},
		{"array body", `[{"title":"x"}]`, ""},
		{"null body", `null`, ""},
		{"broken json", `{"title":`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := DecodeMovieFields([]byte(tt.body))
			assert.Nil(t, fields)
			requireValidationError(t, err, tt.field)
		})
	}
}

func TestDecodeMovieFields_Int32Bounds(t *testing.T) {
	fields, err := DecodeMovieFields([]byte(`{"year":2147483647,"genre_id":2147483647,"director_id":1}`))
	require.NoError(t, err)
	assert.Equal(t, 2147483647, *fields.Year)
	assert.Equal(t, uint(2147483647), *fields.GenreID)

	_, err = DecodeMovieFields([]byte(`{"year":2147483648}`))
	verr := requireValidationError(t, err, "year")
	assert.Equal(t, "不能大于 2147483647", verr.Message)
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "year: 类型错误", NewValidationError("year", "类型错误").Error())
	assert.Equal(t, "请求体不能为空", NewValidationError("", "请求体不能为空").Error())
}
