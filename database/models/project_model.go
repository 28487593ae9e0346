package models

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/pentestpro/dtos"
	"gorm.io/datatypes"
)

type Project struct {
	Model
	Name           string    `json:"name" gorm:"type:text;not null;"`
	Slug           string    `json:"slug" gorm:"type:text;uniqueIndex:idx_project_org_slug;not null"`
	OrganizationID uuid.UUID `json:"organizationId" gorm:"uniqueIndex:idx_project_org_slug;not null;type:uuid"`
	Organization   Org       `json:"-" gorm:"foreignKey:OrganizationID;references:ID;constraint:OnDelete:CASCADE;"`

	CustomerName string `json:"customerName" gorm:"type:text"`
	Scope        string `json:"scope" gorm:"type:text"`
	Methodology  string `json:"methodology" gorm:"type:text"`

	Status    dtos.ProjectStatus `json:"status" gorm:"type:text;not null;default:'planned';"`
	StartDate *datatypes.Date    `json:"startDate"`
	EndDate   *datatypes.Date    `json:"endDate"`

	Findings []Finding       `json:"findings" gorm:"foreignKey:ProjectID;"`
	Members  []ProjectMember `json:"members" gorm:"foreignKey:ProjectID;"`
}

func (m Project) TableName() string {
	return "projects"
}

func (m *Project) GetSlug() string {
	return m.Slug
}

func (m *Project) SetSlug(slug string) {
	m.Slug = slug
}

type ProjectMember struct {
	ProjectID uuid.UUID `json:"projectId" gorm:"primarykey;type:uuid;"`
	UserID    uuid.UUID `json:"userId" gorm:"primarykey;type:uuid;"`
	User      User      `json:"user" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	CanEdit   bool      `json:"canEdit" gorm:"default:false;not null;"`
}

func (m ProjectMember) TableName() string {
	return "project_members"
}
