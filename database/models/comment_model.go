package models

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/pentestpro/dtos"
)

type Comment struct {
	Model
	FindingID uuid.UUID `json:"findingId" gorm:"not null;type:uuid;index"`
	Finding   Finding   `json:"-" gorm:"foreignKey:FindingID;references:ID;constraint:OnDelete:CASCADE;"`

	AuthorID   uuid.UUID          `json:"authorId" gorm:"not null;type:uuid;"`
	AuthorRole dtos.CommenterRole `json:"authorRole" gorm:"type:text;not null;"`
	Content    string             `json:"content" gorm:"type:text;not null;"`

	// ReadByCounterpart tracks whether the opposite role (tester vs client)
	// has seen this comment yet.
	ReadByCounterpart bool `json:"readByCounterpart" gorm:"default:false;not null;"`
}

func (m Comment) TableName() string {
	return "comments"
}
