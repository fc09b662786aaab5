package services

import (
	"context"
	"testing"
	"time"

	"github.com/brunorehling/api-emergente/models"
	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testJWTKey = []byte("chave-de-teste")

func newAuthService(db *gorm.DB) *AuthService {
	creds := NewCredentialStore(db)
	audit := NewAuditLog(db)
	return NewAuthService(creds, audit, testJWTKey)
}

func countLogs(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Log{}).Count(&count).Error)
	return count
}

func TestLoginAdminRejections(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	seedAdmin(t, db, "chefe@ex.com", "Segredo1!")

	tests := []struct {
		name     string
		email    string
		senha    string
		wantLogs int64
	}{
		{"missing email", "", "Segredo1!", 0},
		{"missing senha", "chefe@ex.com", "", 0},
		{"unknown email", "desconhecido@ex.com", "Segredo1!", 0},
		{"wrong senha", "chefe@ex.com", "Errada1!", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := countLogs(t, db)

			session, err := svc.LoginAdmin(ctx, tt.email, tt.senha)
			require.Error(t, err)
			assert.Nil(t, session)

			// Every rejection carries the same message so accounts cannot
			// be enumerated.
			assert.Equal(t, KindValidation, KindOf(err))
			assert.Equal(t, MensagemLoginIncorreto, MessageOf(err))

			assert.Equal(t, before+tt.wantLogs, countLogs(t, db))
		})
	}
}

func TestLoginAdminAuditEntry(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	admin := seedAdmin(t, db, "chefe@ex.com", "Segredo1!")

	_, err := svc.LoginAdmin(ctx, "chefe@ex.com", "Errada1!")
	require.Error(t, err)

	var entry models.Log
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, admin.ID, entry.AdminID)
	assert.Equal(t, "Tentativa de acesso ao sistema", entry.Descricao)
	assert.Contains(t, entry.Complemento, admin.Nome)
	// The attempted secret never reaches the audit trail.
	assert.NotContains(t, entry.Complemento, "Errada1!")
}

func TestLoginAdminSuccess(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	admin := seedAdmin(t, db, "chefe@ex.com", "Segredo1!")

	session, err := svc.LoginAdmin(context.Background(), " CHEFE@EX.COM ", "Segredo1!")
	require.NoError(t, err)

	assert.Equal(t, admin.ID, session.ID)
	assert.Equal(t, admin.Nome, session.Nome)
	assert.Equal(t, admin.Email, session.Email)
	assert.Equal(t, admin.Nivel, session.Nivel)
	assert.Zero(t, countLogs(t, db))

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(session.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return testJWTKey, nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	assert.EqualValues(t, admin.ID, claims["adminLogadoId"])
	assert.Equal(t, admin.Nome, claims["adminLogadoNome"])
	assert.EqualValues(t, admin.Nivel, claims["adminLogadoNivel"])

	exp := int64(claims["exp"].(float64))
	ttl := time.Until(time.Unix(exp, 0))
	assert.InDelta(t, TokenTTL.Seconds(), ttl.Seconds(), 60)
}

func TestLoginUsuario(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	usuario := seedUsuario(t, db, "Ana", "ana@ex.com", "Abc12345!")

	t.Run("success with normalized email", func(t *testing.T) {
		session, err := svc.LoginUsuario(ctx, "ANA@EX.COM", "Abc12345!")
		require.NoError(t, err)
		assert.Equal(t, usuario.ID, session.ID)
		assert.Equal(t, "Ana", session.Nome)
		assert.NotEmpty(t, session.Token)
	})

	t.Run("wrong senha rejected without audit entry", func(t *testing.T) {
		_, err := svc.LoginUsuario(ctx, "ana@ex.com", "Errada1!")
		require.Error(t, err)
		assert.Equal(t, MensagemLoginIncorreto, MessageOf(err))
		assert.Zero(t, countLogs(t, db))
	})
}

// Token lifetime boundary: a claim set expiring just under the TTL parses,
// one just past it is rejected. Both tokens go through the same signer.
func TestTokenExpiryBoundary(t *testing.T) {
	sign := func(exp time.Time) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"adminLogadoId": 1,
			"exp":           exp.Unix(),
		})
		signed, err := token.SignedString(testJWTKey)
		require.NoError(t, err)
		return signed
	}

	parse := func(signed string) error {
		_, err := jwt.ParseWithClaims(signed, jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
			return testJWTKey, nil
		})
		return err
	}

	// Issued at T, checked at T+59min: one minute of validity left.
	assert.NoError(t, parse(sign(time.Now().Add(time.Minute))))
	// Issued at T, checked at T+61min: one minute past expiry.
	assert.Error(t, parse(sign(time.Now().Add(-time.Minute))))
}
