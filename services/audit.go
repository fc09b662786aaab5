package services

import (
	"context"
	"fmt"
	"log"

	"github.com/brunorehling/api-emergente/models"
	"gorm.io/gorm"
)

// AuditLog appends security events to the log table. Currently the only
// recorded event is a failed administrator login.
type AuditLog struct {
	DB *gorm.DB
}

func NewAuditLog(db *gorm.DB) *AuditLog {
	return &AuditLog{DB: db}
}

// RecordFailedAdminLogin writes one audit row for a rejected admin password.
// A storage failure here must not change the authentication outcome: the
// error is logged server-side and swallowed, so the caller still returns the
// standard rejection. The attempted secret is never part of the row.
func (a *AuditLog) RecordFailedAdminLogin(ctx context.Context, admin *models.Admin) {
	entry := models.Log{
		Descricao:   "Tentativa de acesso ao sistema",
		Complemento: fmt.Sprintf("Admin: %d - %s", admin.ID, admin.Nome),
		AdminID:     admin.ID,
	}

	if err := a.DB.WithContext(ctx).Create(&entry).Error; err != nil {
		log.Printf("audit: falha ao registrar tentativa de acesso (admin %d): %v", admin.ID, err)
	}
}
