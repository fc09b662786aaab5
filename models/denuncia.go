package models

import (
	"time"
)

// Denuncia flags a comment for moderation. AdminID stays null until an
// administrator picks the report up through the back-office tooling; no
// API endpoint mutates it.
type Denuncia struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	ComentarioID uint       `gorm:"not null" json:"comentarioId"`
	Comentario   Comentario `gorm:"foreignKey:ComentarioID" json:"comentario,omitempty"`
	UsuarioID    uint       `gorm:"not null" json:"usuarioId"`
	Usuario      Usuario    `gorm:"foreignKey:UsuarioID" json:"usuario,omitempty"`
	AdminID      *uint      `json:"adminId"`
	Admin        *Admin     `gorm:"foreignKey:AdminID" json:"admin"`
	Motivo       string     `gorm:"size:500;not null" json:"motivo"`
	CreatedAt    time.Time  `json:"createdAt"`
}
