package models

import (
	"time"
)

type Comentario struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Conteudo  string    `gorm:"size:500;not null" json:"conteudo"`
	UsuarioID uint      `gorm:"not null" json:"usuarioId"`
	Usuario   Usuario   `gorm:"foreignKey:UsuarioID" json:"usuario,omitempty"`
	ReviewID  uint      `gorm:"not null" json:"reviewId"`
	Review    Review    `gorm:"foreignKey:ReviewID" json:"review,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
