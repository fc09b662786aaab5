package services

import (
	"context"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// MensagemLoginIncorreto is the single rejection message for every failed
// login, whatever the cause. Missing fields, unknown email and wrong
// password are indistinguishable to the caller so accounts cannot be
// enumerated.
const MensagemLoginIncorreto = "Login ou senha incorretos"

// TokenTTL bounds the validity of issued session tokens.
const TokenTTL = time.Hour

// AuthService runs the login flow for both principal kinds: validate input,
// look the principal up by normalized email, verify the secret and issue a
// signed session token. Failed admin verifications are recorded in the audit
// log before the rejection is returned.
type AuthService struct {
	Creds  *CredentialStore
	Audit  *AuditLog
	jwtKey []byte
}

func NewAuthService(creds *CredentialStore, audit *AuditLog, jwtKey []byte) *AuthService {
	return &AuthService{Creds: creds, Audit: audit, jwtKey: jwtKey}
}

type AdminSession struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Nivel int    `json:"nivel"`
	Token string `json:"token"`
}

type UsuarioSession struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Token string `json:"token"`
}

func (s *AuthService) LoginAdmin(ctx context.Context, email, senha string) (*AdminSession, error) {
	if email == "" || senha == "" {
		return nil, Validation(MensagemLoginIncorreto)
	}

	admin, err := s.Creds.FindAdminByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, Validation(MensagemLoginIncorreto)
	}

	if !s.Creds.VerifySenha(senha, admin.Senha) {
		s.Audit.RecordFailedAdminLogin(ctx, admin)
		return nil, Validation(MensagemLoginIncorreto)
	}

	token, err := s.signToken(jwt.MapClaims{
		"adminLogadoId":    admin.ID,
		"adminLogadoNome":  admin.Nome,
		"adminLogadoNivel": admin.Nivel,
	})
	if err != nil {
		return nil, Fault("Erro interno no servidor", err)
	}

	return &AdminSession{
		ID:    admin.ID,
		Nome:  admin.Nome,
		Email: admin.Email,
		Nivel: admin.Nivel,
		Token: token,
	}, nil
}

func (s *AuthService) LoginUsuario(ctx context.Context, email, senha string) (*UsuarioSession, error) {
	if email == "" || senha == "" {
		return nil, Validation(MensagemLoginIncorreto)
	}

	usuario, err := s.Creds.FindUsuarioByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, Validation(MensagemLoginIncorreto)
	}

	// User login failures are not audited, only admin ones.
	if !s.Creds.VerifySenha(senha, usuario.Senha) {
		return nil, Validation(MensagemLoginIncorreto)
	}

	token, err := s.signToken(jwt.MapClaims{
		"usuarioLogadoId":   usuario.ID,
		"usuarioLogadoNome": usuario.Nome,
	})
	if err != nil {
		return nil, Fault("Erro interno no servidor", err)
	}

	return &UsuarioSession{
		ID:    usuario.ID,
		Nome:  usuario.Nome,
		Email: usuario.Email,
		Token: token,
	}, nil
}

func (s *AuthService) signToken(claims jwt.MapClaims) (string, error) {
	claims["exp"] = time.Now().Add(TokenTTL).Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}
