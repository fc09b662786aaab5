package models

type Admin struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Nome  string `gorm:"size:45;not null" json:"nome"`
	Email string `gorm:"size:45;uniqueIndex;not null" json:"email"`
	Senha string `gorm:"size:60;not null" json:"-"` // bcrypt hash, never serialized
	Nivel int    `gorm:"not null;default:1" json:"nivel"`
}
