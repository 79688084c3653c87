package audit

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	auditEntity "github.com/Draketheb4dass/reaction-admin/model/entity/audit"
)

// Entry is one mutation outcome to record.
type Entry struct {
	Operation string
	ProductID string
	VariantID string
	ShopID    string
	Payload   any
	Status    string // success | error
	Error     string
}

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) (*AuditRepository, error) {
	if err := db.AutoMigrate(&auditEntity.MutationLog{}); err != nil {
		return nil, err
	}
	return &AuditRepository{db: db}, nil
}

// Record persists one entry. Payload is stored as JSON; nil payload is stored
// as an empty object.
func (r *AuditRepository) Record(ctx context.Context, e Entry) error {
	payload := []byte("{}")
	if e.Payload != nil {
		if b, err := json.Marshal(e.Payload); err == nil {
			payload = b
		}
	}
	row := auditEntity.MutationLog{
		ID:        uuid.NewString(),
		Operation: e.Operation,
		ProductID: e.ProductID,
		VariantID: e.VariantID,
		ShopID:    e.ShopID,
		Payload:   payload,
		Status:    e.Status,
		Error:     e.Error,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

// Recent returns the newest entries, most recent first.
func (r *AuditRepository) Recent(ctx context.Context, limit int) ([]auditEntity.MutationLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	var rows []auditEntity.MutationLog
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&rows).Error
	return rows, err
}
