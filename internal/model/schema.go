package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// movieColumns 入站 JSON 字段到 movie 表列名的映射，id 只出不进
var movieColumns = map[string]string{
	"title":       "title",
	"description": "description",
	"trailer":     "trailer",
	"year":        "year",
	"rating":      "rating",
	"genre_id":    "genre_id",
	"director_id": "director_id",
}

// nullableColumns 允许显式传 null 的字段
var nullableColumns = map[string]bool{
	"genre_id":    true,
	"director_id": true,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// 错误信息里使用 JSON 字段名
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// MovieFields 创建/更新电影时提交的字段集合
// 指针为 nil 且字段出现在请求中表示显式置空
type MovieFields struct {
	Title       *string  `json:"title" validate:"omitempty,max=255"`
	Description *string  `json:"description" validate:"omitempty,max=255"`
	Trailer     *string  `json:"trailer" validate:"omitempty,max=255"`
	Year        *int     `json:"year" validate:"omitempty,min=-2147483648,max=2147483647"`
	Rating      *float64 `json:"rating"`
	GenreID     *uint    `json:"genre_id" validate:"omitempty,min=1,max=2147483647"`
	DirectorID  *uint    `json:"director_id" validate:"omitempty,min=1,max=2147483647"`

	present []string
}

// DecodeMovieFields 解析并校验请求体
// 未知字段、类型不匹配、非空字段传 null 都返回 *ValidationError，不做隐式转换
func DecodeMovieFields(body []byte) (*MovieFields, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, NewValidationError("", "请求体不能为空")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, NewValidationError("", "请求体必须是 JSON 对象")
		}
		return nil, NewValidationError("", "JSON 格式错误: "+err.Error())
	}
	if raw == nil {
		return nil, NewValidationError("", "请求体必须是 JSON 对象")
	}

	fields := &MovieFields{}
	for key, value := range raw {
		if _, ok := movieColumns[key]; !ok {
			return nil, NewValidationError(key, "未知字段")
		}
		if string(bytes.TrimSpace(value)) == "null" && !nullableColumns[key] {
			return nil, NewValidationError(key, "不能为 null")
		}
		fields.present = append(fields.present, key)
	}
	sort.Strings(fields.present)

	if err := json.Unmarshal(body, fields); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, NewValidationError(typeErr.Field, fmt.Sprintf("类型错误，期望 %s", jsonKind(typeErr.Type)))
		}
		return nil, NewValidationError("", "JSON 格式错误: "+err.Error())
	}

	if err := validate.Struct(fields); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, NewValidationError(verrs[0].Field(), describeTag(verrs[0]))
		}
		return nil, err
	}

	return fields, nil
}

// Present 请求中出现的字段名（已排序）
func (f *MovieFields) Present() []string {
	return f.present
}

// Has 字段是否出现在请求中
func (f *MovieFields) Has(field string) bool {
	for _, p := range f.present {
		if p == field {
			return true
		}
	}
	return false
}

// Columns 返回需要写入的列，只包含请求中出现的字段
func (f *MovieFields) Columns() map[string]interface{} {
	cols := make(map[string]interface{}, len(f.present))
	for _, field := range f.present {
		cols[movieColumns[field]] = f.value(field)
	}
	return cols
}

// Apply 把字段写到 movie 上，用于创建
func (f *MovieFields) Apply(m *Movie) {
	if f.Title != nil {
		m.Title = *f.Title
	}
	if f.Description != nil {
		m.Description = *f.Description
	}
	if f.Trailer != nil {
		m.Trailer = *f.Trailer
	}
	if f.Year != nil {
		m.Year = *f.Year
	}
	if f.Rating != nil {
		m.Rating = *f.Rating
	}
	m.GenreID = f.GenreID
	m.DirectorID = f.DirectorID
}

func (f *MovieFields) value(field string) interface{} {
	switch field {
	case "title":
		return *f.Title
	case "description":
		return *f.Description
	case "trailer":
		return *f.Trailer
	case "year":
		return *f.Year
	case "rating":
		return *f.Rating
	case "genre_id":
		if f.GenreID == nil {
			return nil
		}
		return *f.GenreID
	case "director_id":
		if f.DirectorID == nil {
			return nil
		}
		return *f.DirectorID
	}
	return nil
}

func jsonKind(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "整数"
	case reflect.Float32, reflect.Float64:
		return "数字"
	case reflect.String:
		return "字符串"
	}
	return t.String()
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "max":
		if fe.Kind() == reflect.String {
			return "长度不能超过 " + fe.Param()
		}
		return "不能大于 " + fe.Param()
	case "min":
		return "不能小于 " + fe.Param()
	}
	return "校验失败: " + fe.Tag()
}
