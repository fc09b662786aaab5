package services

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/brunorehling/api-emergente/models"
	"gorm.io/gorm"
)

const motivoMinLen = 5

// ReportWorkflow creates and lists abuse reports against comments. Reports
// are append-only: no update or delete path exists and the optional admin
// reference is assigned outside this API.
type ReportWorkflow struct {
	DB *gorm.DB
}

func NewReportWorkflow(db *gorm.DB) *ReportWorkflow {
	return &ReportWorkflow{DB: db}
}

// Create validates the reason and verifies that the flagged comment and the
// reporting user still exist before writing. A reference that disappears
// between the check and the insert is caught by the foreign-key constraint,
// so no dangling report row can be produced either way.
func (w *ReportWorkflow) Create(ctx context.Context, comentarioID, usuarioID uint, motivo string) (*models.Denuncia, error) {
	if utf8.RuneCountInString(motivo) < motivoMinLen {
		return nil, Validation("Motivo deve ter pelo menos 5 caracteres")
	}

	var comentario models.Comentario
	if err := w.DB.WithContext(ctx).First(&comentario, comentarioID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Comentário não encontrado")
		}
		return nil, Fault("Erro ao registrar denúncia", err)
	}

	var usuario models.Usuario
	if err := w.DB.WithContext(ctx).First(&usuario, usuarioID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Usuário não encontrado")
		}
		return nil, Fault("Erro ao registrar denúncia", err)
	}

	denuncia := models.Denuncia{
		ComentarioID: comentarioID,
		UsuarioID:    usuarioID,
		Motivo:       motivo,
	}

	if err := w.DB.WithContext(ctx).Create(&denuncia).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, NotFound("Comentário ou usuário não encontrado")
		}
		return nil, Fault("Erro ao registrar denúncia", err)
	}

	return &denuncia, nil
}

// List returns every report newest-first, each expanded with its comment
// (including that comment's author and review), the reporting user and the
// handling admin when one has been assigned.
func (w *ReportWorkflow) List(ctx context.Context) ([]models.Denuncia, error) {
	var denuncias []models.Denuncia
	err := w.DB.WithContext(ctx).
		Preload("Comentario.Usuario").
		Preload("Comentario.Review").
		Preload("Comentario").
		Preload("Usuario").
		Preload("Admin").
		Order("created_at DESC").
		Find(&denuncias).Error
	if err != nil {
		return nil, Fault("Erro ao buscar denúncias", err)
	}
	return denuncias, nil
}
