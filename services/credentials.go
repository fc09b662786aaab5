package services

import (
	"context"
	"errors"
	"strings"

	"github.com/brunorehling/api-emergente/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcrypt work factor for stored secrets.
const BcryptCost = 12

// CredentialStore owns the hashed secrets of both principal kinds. It never
// returns or logs a plaintext password.
type CredentialStore struct {
	DB *gorm.DB
}

func NewCredentialStore(db *gorm.DB) *CredentialStore {
	return &CredentialStore{DB: db}
}

// NormalizeEmail trims surrounding whitespace and lowercases. Applied before
// every storage write and every lookup so the uniqueness constraint sees one
// canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *CredentialStore) CreateUsuario(ctx context.Context, nome, email, senha string) (*models.Usuario, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), BcryptCost)
	if err != nil {
		return nil, Fault("Erro ao criar usuário", err)
	}

	usuario := models.Usuario{
		Nome:  nome,
		Email: NormalizeEmail(email),
		Senha: string(hash),
	}

	if err := s.DB.WithContext(ctx).Create(&usuario).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, Conflict("Email já cadastrado")
		}
		return nil, Fault("Erro ao criar usuário", err)
	}

	return &usuario, nil
}

// FindAdminByEmail returns (nil, nil) when no admin matches the normalized
// email; only storage failures produce an error.
func (s *CredentialStore) FindAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := s.DB.WithContext(ctx).Where("email = ?", NormalizeEmail(email)).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, Fault("Erro ao buscar admin", err)
	}
	return &admin, nil
}

func (s *CredentialStore) FindUsuarioByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	var usuario models.Usuario
	err := s.DB.WithContext(ctx).Where("email = ?", NormalizeEmail(email)).First(&usuario).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, Fault("Erro ao buscar usuário", err)
	}
	return &usuario, nil
}

// VerifySenha compares a candidate secret against a stored bcrypt hash.
func (s *CredentialStore) VerifySenha(candidate, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}
