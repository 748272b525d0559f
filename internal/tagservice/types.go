package tagservice

import "database/sql"

type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type TagModel struct {
	db *sql.DB
}

type TagService struct {
	m *TagModel
}
