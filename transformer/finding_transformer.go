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

package transformer

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/l3montree-dev/pentestpro/database/models"
	"github.com/l3montree-dev/pentestpro/dtos"
	"github.com/l3montree-dev/pentestpro/utils"
)

func FindingCreateRequestToModel(c dtos.FindingCreateRequest, projectID uuid.UUID, reporterID *uuid.UUID) models.Finding {
	return models.Finding{
		ProjectID:        projectID,
		Title:            c.Title,
		Description:      c.Description,
		Impact:           c.Impact,
		SuggestedFix:     c.SuggestedFix,
		HTTPRequest:      c.HTTPRequest,
		FindingType:      c.FindingType,
		Severity:         c.Severity,
		CVSSScore:        c.CVSSScore,
		CVSSVector:       c.CVSSVector,
		State:            dtos.FindingStateOpen,
		StepsToReproduce: marshalJSONList(c.StepsToReproduce),
		Screenshots:      marshalJSONList(c.Screenshots),
		ReporterID:       reporterID,
		ReporterAlias:    c.ReporterAlias,
	}
}

func ApplyFindingUpdateRequestToModel(p dtos.FindingUpdateRequest, finding *models.Finding) bool {
	updated := false

	if p.Title != nil {
		updated = true
		finding.Title = *p.Title
	}
	if p.Description != nil {
		updated = true
		finding.Description = *p.Description
	}
	if p.StepsToReproduce != nil {
		updated = true
		finding.StepsToReproduce = marshalJSONList(p.StepsToReproduce)
	}
	if p.Severity != nil {
		updated = true
		finding.Severity = dtos.Severity(*p.Severity)
	}
	if p.CVSSScore != nil {
		updated = true
		finding.CVSSScore = p.CVSSScore
	}
	if p.CVSSVector != nil {
		updated = true
		finding.CVSSVector = *p.CVSSVector
	}
	if p.SuggestedFix != nil {
		updated = true
		finding.SuggestedFix = *p.SuggestedFix
	}
	if p.Impact != nil {
		updated = true
		finding.Impact = *p.Impact
	}
	if p.Screenshots != nil {
		updated = true
		finding.Screenshots = marshalJSONList(p.Screenshots)
	}

	return updated
}

func FindingToDTO(finding models.Finding) dtos.FindingDTO {
	var reporterID *string
	if finding.ReporterID != nil {
		reporterID = utils.Ptr(finding.ReporterID.String())
	}

	return dtos.FindingDTO{
		ID:               finding.ID.String(),
		ProjectID:        finding.ProjectID.String(),
		Title:            finding.Title,
		Description:      finding.Description,
		StepsToReproduce: finding.Steps(),
		Severity:         finding.Severity,
		CVSSScore:        finding.CVSSScore,
		CVSSVector:       finding.CVSSVector,
		SuggestedFix:     finding.SuggestedFix,
		HTTPRequest:      finding.HTTPRequest,
		Impact:           finding.Impact,
		FindingType:      finding.FindingType,
		Screenshots:      finding.ScreenshotURLs(),
		State:            finding.State,
		ReporterID:       reporterID,
		ReporterAlias:    finding.ReporterAlias,
		CreatedAt:        finding.CreatedAt,
		UpdatedAt:        finding.UpdatedAt,
	}
}

// marshalJSONList never fails for the slice types used here; a nil slice is
// stored as an empty JSON array.
func marshalJSONList[T any](list []T) []byte {
	if list == nil {
		return []byte("[]")
	}
	b, err := json.Marshal(list)
	if err != nil {
		return []byte("[]")
	}
	return b
}
