package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/l3montree-dev/pentestpro/dtos"
	"gorm.io/datatypes"
)

type Finding struct {
	Model
	ProjectID uuid.UUID `json:"projectId" gorm:"not null;type:uuid;index"`
	Project   Project   `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE;"`

	Title       string `json:"title" gorm:"type:text;not null;"`
	Description string `json:"description" gorm:"type:text"`
	Impact      string `json:"impact" gorm:"type:text"`
	// SuggestedFix and Description may contain rich-text HTML produced by the
	// editor. They are sanitized before being embedded into a report.
	SuggestedFix string `json:"suggestedFix" gorm:"type:text"`
	HTTPRequest  string `json:"httpRequest" gorm:"type:text"`
	FindingType  string `json:"findingType" gorm:"type:text"`

	// Severity and CVSSScore are independently settable. The CVSS calculator
	// only suggests a severity; the stored label wins.
	Severity   dtos.Severity `json:"severity" gorm:"type:text;not null;default:'none';"`
	CVSSScore  *float64      `json:"cvssScore" gorm:"type:decimal(4,2);"`
	CVSSVector string        `json:"cvssVector" gorm:"type:text"`

	State dtos.FindingState `json:"state" gorm:"type:text;not null;default:'open';index"`

	// StepsToReproduce is a JSON array of {type, data} objects, type text|image.
	StepsToReproduce datatypes.JSON `json:"stepsToReproduce" gorm:"type:jsonb;default:'[]';"`
	// Screenshots is a JSON array of URLs.
	Screenshots datatypes.JSON `json:"screenshots" gorm:"type:jsonb;default:'[]';"`

	ReporterID    *uuid.UUID `json:"reporterId" gorm:"type:uuid;"`
	ReporterAlias string     `json:"reporterAlias" gorm:"type:text"`
}

func (m Finding) TableName() string {
	return "findings"
}

// Steps decodes the stored steps-to-reproduce list. Absent or malformed
// content yields an empty list, never an error.
func (m Finding) Steps() []dtos.Step {
	var steps []dtos.Step
	if len(m.StepsToReproduce) == 0 {
		return []dtos.Step{}
	}
	if err := json.Unmarshal(m.StepsToReproduce, &steps); err != nil {
		return []dtos.Step{}
	}
	return steps
}

// ScreenshotURLs decodes the stored screenshot list, empty on absence or
// malformed content.
func (m Finding) ScreenshotURLs() []string {
	var urls []string
	if len(m.Screenshots) == 0 {
		return []string{}
	}
	if err := json.Unmarshal(m.Screenshots, &urls); err != nil {
		return []string{}
	}
	return urls
}

func (m Finding) IsReportable() bool {
	for _, s := range dtos.ReportableStates {
		if m.State == s {
			return true
		}
	}
	return false
}
