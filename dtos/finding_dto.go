// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package dtos

import "time"

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "informational"
	SeverityNone     Severity = "none"
)

type FindingState string

const (
	FindingStateOpen          FindingState = "open"
	FindingStateTriaged       FindingState = "triaged"
	FindingStateFixed         FindingState = "fixed"
	FindingStateAccepted      FindingState = "accepted"
	FindingStateFalsePositive FindingState = "falsePositive"
	FindingStateClosed        FindingState = "closed"
)

// ReportableStates are the finding states that end up in a generated report.
var ReportableStates = []FindingState{FindingStateOpen, FindingStateTriaged}

type StepType string

const (
	StepTypeText  StepType = "text"
	StepTypeImage StepType = "image"
)

// Step is one entry of a steps-to-reproduce list. Data is either plain text
// or an image URL, depending on Type.
type Step struct {
	Type StepType `json:"type" validate:"required,oneof=text image"`
	Data string   `json:"data" validate:"required"`
}

type FindingCreateRequest struct {
	Title            string   `json:"title" validate:"required"`
	Description      string   `json:"description" validate:"required"`
	StepsToReproduce []Step   `json:"stepsToReproduce" validate:"dive"`
	Severity         Severity `json:"severity" validate:"required,oneof=critical high medium low informational none"`
	CVSSScore        *float64 `json:"cvssScore" validate:"omitempty,gte=0,lte=10"`
	CVSSVector       string   `json:"cvssVector"`
	SuggestedFix     string   `json:"suggestedFix"`
	HTTPRequest      string   `json:"httpRequest"`
	Impact           string   `json:"impact"`
	FindingType      string   `json:"findingType"`
	Screenshots      []string `json:"screenshots" validate:"dive,url"`
	ReporterAlias    string   `json:"reporterAlias"`
	AgreeToTerms     bool     `json:"agreeToTerms" validate:"required"`
}

type FindingUpdateRequest struct {
	Title            *string  `json:"title"`
	Description      *string  `json:"description"`
	StepsToReproduce []Step   `json:"stepsToReproduce" validate:"dive"`
	Severity         *string  `json:"severity" validate:"omitempty,oneof=critical high medium low informational none"`
	CVSSScore        *float64 `json:"cvssScore" validate:"omitempty,gte=0,lte=10"`
	CVSSVector       *string  `json:"cvssVector"`
	SuggestedFix     *string  `json:"suggestedFix"`
	Impact           *string  `json:"impact"`
	Screenshots      []string `json:"screenshots" validate:"dive,url"`
}

type FindingStatusRequest struct {
	Status FindingState `json:"status" validate:"required,oneof=open triaged fixed accepted falsePositive closed"`
}

type FindingDTO struct {
	ID               string       `json:"id"`
	ProjectID        string       `json:"projectId"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	StepsToReproduce []Step       `json:"stepsToReproduce"`
	Severity         Severity     `json:"severity"`
	CVSSScore        *float64     `json:"cvssScore"`
	CVSSVector       string       `json:"cvssVector"`
	SuggestedFix     string       `json:"suggestedFix"`
	HTTPRequest      string       `json:"httpRequest"`
	Impact           string       `json:"impact"`
	FindingType      string       `json:"findingType"`
	Screenshots      []string     `json:"screenshots"`
	State            FindingState `json:"state"`
	ReporterID       *string      `json:"reporterId"`
	ReporterAlias    string       `json:"reporterAlias"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

type detailedFindingDTO struct {
	FindingDTO
	Comments []CommentDTO `json:"comments"`
}

func NewDetailedFindingDTO(finding FindingDTO, comments []CommentDTO) any {
	return detailedFindingDTO{
		FindingDTO: finding,
		Comments:   comments,
	}
}
