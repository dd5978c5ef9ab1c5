package model

// Genre 电影类型
type Genre struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:255"`
}

func (Genre) TableName() string { return "genre" }

// Director 导演
type Director struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:255"`
}

func (Director) TableName() string { return "director" }

// Movie 电影，Genre/Director 为预加载的关联数据
type Movie struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255"`
	Description string    `json:"description" gorm:"size:255"`
	Trailer     string    `json:"trailer" gorm:"size:255"`
	Year        int       `json:"year"`
	Rating      float64   `json:"rating"`
	GenreID     *uint     `json:"genre_id"`
	Genre       *Genre    `json:"genre"`
	DirectorID  *uint     `json:"director_id"`
	Director    *Director `json:"director"`
}

func (Movie) TableName() string { return "movie" }

// MovieFilter 列表查询条件，nil 表示不过滤
type MovieFilter struct {
	DirectorID *uint
	GenreID    *uint
	Page       *int
	PageSize   int
}
