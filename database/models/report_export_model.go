package models

import (
	"github.com/google/uuid"
	databasetypes "github.com/l3montree-dev/pentestpro/database/types"
)

// ReportExport records a generated report artifact. Rows are created after a
// successful PDF generation and never mutated.
type ReportExport struct {
	Model
	ProjectID uuid.UUID `json:"projectId" gorm:"not null;type:uuid;index"`
	Project   Project   `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE;"`

	TemplateID *uuid.UUID `json:"templateId" gorm:"type:uuid;"`

	FileName string `json:"fileName" gorm:"type:text;not null;"`
	Checksum string `json:"checksum" gorm:"type:text;not null;"`
	Size     int64  `json:"size" gorm:"not null;"`

	// Parameters keeps the request metadata the report was generated with,
	// for auditing which scope and template produced the artifact.
	Parameters databasetypes.JSONB `json:"parameters" gorm:"type:jsonb;default:'{}';"`
}

func (m ReportExport) TableName() string {
	return "report_exports"
}
