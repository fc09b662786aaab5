package models

import (
	"time"
)

type Genero string

const (
	GeneroAcao    Genero = "ACAO"
	GeneroDrama   Genero = "DRAMA"
	GeneroFiccao  Genero = "FICCAO"
	GeneroTerror  Genero = "TERROR"
	GeneroRomance Genero = "ROMANCE"
	GeneroComedia Genero = "COMEDIA"
)

func (g Genero) Valid() bool {
	switch g {
	case GeneroAcao, GeneroDrama, GeneroFiccao, GeneroTerror, GeneroRomance, GeneroComedia:
		return true
	}
	return false
}

type Livro struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Nome           string    `gorm:"size:60;not null" json:"nome"`
	DataLancamento time.Time `json:"dataLancamento"`
	Foto           string    `json:"foto"`
	Descricao      string    `gorm:"size:200" json:"descricao"`
	Genero         Genero    `gorm:"size:20;not null;default:'ACAO'" json:"genero"`
	AutorID        uint      `gorm:"not null" json:"autorId"`
	Autor          Autor     `gorm:"foreignKey:AutorID" json:"autor,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	Reviews []Review `gorm:"foreignKey:LivroID" json:"reviews,omitempty"`
}
