package models

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/pentestpro/dtos"
	"gorm.io/datatypes"
)

type ReportTemplate struct {
	Model
	OrganizationID uuid.UUID `json:"organizationId" gorm:"not null;type:uuid;index"`
	Organization   Org       `json:"-" gorm:"foreignKey:OrganizationID;references:ID;constraint:OnDelete:CASCADE;"`

	Name    string              `json:"name" gorm:"type:text;not null;"`
	Format  dtos.TemplateFormat `json:"format" gorm:"type:text;not null;default:'html';"`
	Content string              `json:"content" gorm:"type:text;not null;"`
	// Variables is the declared list of placeholder names the template uses.
	// Documented contract only - not enforced at the data layer.
	Variables datatypes.JSON `json:"variables" gorm:"type:jsonb;default:'[]';"`

	// At most one template per organization is conceptually the default.
	IsDefault bool `json:"isDefault" gorm:"default:false;not null;"`
}

func (m ReportTemplate) TableName() string {
	return "report_templates"
}
