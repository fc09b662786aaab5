package models

import (
	"time"
)

type Autor struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Nome      string    `gorm:"size:45;not null" json:"nome"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Livros []Livro `gorm:"foreignKey:AutorID" json:"livros,omitempty"`
}
