package audit

import (
	"time"

	"gorm.io/datatypes"
)

// MutationLog records one settled remote mutation. Best-effort trail: writing
// it never affects the operation outcome.
type MutationLog struct {
	ID        string         `json:"id" gorm:"type:varchar(36);primaryKey"`
	Operation string         `json:"operation" gorm:"type:varchar(64);index"`
	ProductID string         `json:"product_id" gorm:"type:varchar(64);index"`
	VariantID string         `json:"variant_id" gorm:"type:varchar(64)"`
	ShopID    string         `json:"shop_id" gorm:"type:varchar(64)"`
	Payload   datatypes.JSON `json:"payload"`
	Status    string         `json:"status" gorm:"type:varchar(16)"`
	Error     string         `json:"error" gorm:"type:text"`
	CreatedAt time.Time      `json:"created_at" gorm:"index"`
}

func (MutationLog) TableName() string {
	return "mutation_log"
}
