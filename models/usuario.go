package models

import (
	"time"
)

type Usuario struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Nome      string    `gorm:"size:45;not null" json:"nome"`
	Email     string    `gorm:"size:45;uniqueIndex;not null" json:"email"`
	Senha     string    `gorm:"size:60;not null" json:"-"` // bcrypt hash, never serialized
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Reviews     []Review     `gorm:"foreignKey:UsuarioID" json:"reviews,omitempty"`
	Comentarios []Comentario `gorm:"foreignKey:UsuarioID" json:"comentarios,omitempty"`
}
