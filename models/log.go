package models

import (
	"time"
)

// Log is an append-only security audit record. Rows are written once and
// never updated or deleted by the application.
type Log struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Descricao   string    `gorm:"size:60;not null" json:"descricao"`
	Complemento string    `gorm:"size:200" json:"complemento"`
	AdminID     uint      `gorm:"not null" json:"adminId"`
	Admin       Admin     `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
