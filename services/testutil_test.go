package services

import (
	"fmt"
	"testing"

	"github.com/brunorehling/api-emergente/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an isolated in-memory database with the full schema. The
// shared-cache DSN keeps the database alive across pooled connections within
// a single test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.Usuario{},
		&models.Log{},
		&models.Autor{},
		&models.Livro{},
		&models.Review{},
		&models.Comentario{},
		&models.Denuncia{},
	))

	return db
}

// hashSenha seeds fixtures with a fast hash; verification does not depend on
// the work factor.
func hashSenha(t *testing.T, senha string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func seedAdmin(t *testing.T, db *gorm.DB, email, senha string) *models.Admin {
	t.Helper()
	admin := models.Admin{
		Nome:  "Admin Teste",
		Email: email,
		Senha: hashSenha(t, senha),
		Nivel: 2,
	}
	require.NoError(t, db.Create(&admin).Error)
	return &admin
}

func seedUsuario(t *testing.T, db *gorm.DB, nome, email, senha string) *models.Usuario {
	t.Helper()
	usuario := models.Usuario{
		Nome:  nome,
		Email: email,
		Senha: hashSenha(t, senha),
	}
	require.NoError(t, db.Create(&usuario).Error)
	return &usuario
}

// seedComentario builds the full chain a comment depends on: author, book,
// review and the comment itself, all owned by the given user.
func seedComentario(t *testing.T, db *gorm.DB, usuario *models.Usuario) *models.Comentario {
	t.Helper()

	autor := models.Autor{Nome: "Autor Teste"}
	require.NoError(t, db.Create(&autor).Error)

	livro := models.Livro{Nome: "Livro Teste", AutorID: autor.ID, Genero: models.GeneroFiccao}
	require.NoError(t, db.Create(&livro).Error)

	review := models.Review{
		Titulo:    "Review Teste",
		Nota:      4,
		UsuarioID: usuario.ID,
		LivroID:   livro.ID,
	}
	require.NoError(t, db.Create(&review).Error)

	comentario := models.Comentario{
		Conteudo:  "Comentário de teste",
		UsuarioID: usuario.ID,
		ReviewID:  review.ID,
	}
	require.NoError(t, db.Create(&comentario).Error)

	return &comentario
}
