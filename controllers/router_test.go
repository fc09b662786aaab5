package controllers_test

import (
	"bytes"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/brunorehling/api-emergente/models"
	"github.com/brunorehling/api-emergente/routes"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testJWTKey = []byte("chave-de-teste")

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	r := gin.New()
	routes.SetupRoutes(r, db, testJWTKey)
	return r, db
}

func performRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func performRequestWithToken(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedAdmin(t *testing.T, db *gorm.DB, email, senha string) *models.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	require.NoError(t, err)
	admin := models.Admin{Nome: "Admin Teste", Email: email, Senha: string(hash), Nivel: 2}
	require.NoError(t, db.Create(&admin).Error)
	return &admin
}

func seedUsuario(t *testing.T, db *gorm.DB, nome, email, senha string) *models.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	require.NoError(t, err)
	usuario := models.Usuario{Nome: nome, Email: email, Senha: string(hash)}
	require.NoError(t, db.Create(&usuario).Error)
	return &usuario
}

// seedComentario builds author, book, review and comment in one go.
func seedComentario(t *testing.T, db *gorm.DB, usuario *models.Usuario) *models.Comentario {
	t.Helper()

	autor := models.Autor{Nome: "Autor Teste"}
	require.NoError(t, db.Create(&autor).Error)

	livro := models.Livro{Nome: "Livro Teste", AutorID: autor.ID, Genero: models.GeneroFiccao}
	require.NoError(t, db.Create(&livro).Error)

	review := models.Review{Titulo: "Review Teste", Nota: 4, UsuarioID: usuario.ID, LivroID: livro.ID}
	require.NoError(t, db.Create(&review).Error)

	comentario := models.Comentario{Conteudo: "Comentário de teste", UsuarioID: usuario.ID, ReviewID: review.ID}
	require.NoError(t, db.Create(&comentario).Error)

	return &comentario
}
