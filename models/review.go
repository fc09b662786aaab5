package models

import (
	"time"
)

type Review struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Titulo    string    `gorm:"size:100;not null" json:"titulo"`
	Conteudo  string    `gorm:"size:1000" json:"conteudo"`
	Nota      int       `gorm:"not null" json:"nota"`
	UsuarioID uint      `gorm:"not null" json:"usuarioId"`
	Usuario   Usuario   `gorm:"foreignKey:UsuarioID" json:"usuario,omitempty"`
	LivroID   uint      `gorm:"not null" json:"livroId"`
	Livro     Livro     `gorm:"foreignKey:LivroID" json:"livro,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Comentarios []Comentario `gorm:"foreignKey:ReviewID" json:"comentarios,omitempty"`
}
