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

package services

import (
	"log/slog"

	"github.com/l3montree-dev/pentestpro/database/models"
	"github.com/l3montree-dev/pentestpro/dtos"
	"github.com/l3montree-dev/pentestpro/report"
	"github.com/l3montree-dev/pentestpro/shared"
	"github.com/labstack/echo/v4"
)

type FindingService struct {
	findingRepository shared.FindingRepository
}

func NewFindingService(findingRepository shared.FindingRepository) *FindingService {
	return &FindingService{
		findingRepository: findingRepository,
	}
}

// CreateFinding persists a new finding. A missing cvss score is derived from
// the vector; the severity label stays whatever the reporter picked.
func (s *FindingService) CreateFinding(ctx shared.Context, finding *models.Finding) error {
	if finding.CVSSScore == nil && finding.CVSSVector != "" {
		score, err := report.BaseScore(finding.CVSSVector)
		if err != nil {
			return echo.NewHTTPError(400, "invalid cvss vector").WithInternal(err)
		}
		finding.CVSSScore = &score
		if finding.Severity == "" {
			finding.Severity = report.FromScore(score)
		}
	}
	if finding.Severity == "" {
		finding.Severity = dtos.SeverityNone
	}

	if err := s.findingRepository.Create(nil, finding); err != nil {
		return echo.NewHTTPError(500, "could not create finding").WithInternal(err)
	}

	slog.Info("finding created", "findingID", finding.ID, "projectID", finding.ProjectID, "severity", finding.Severity)
	return nil
}

func (s *FindingService) UpdateState(ctx shared.Context, finding *models.Finding, state dtos.FindingState) error {
	finding.State = state
	if err := s.findingRepository.Save(nil, finding); err != nil {
		return echo.NewHTTPError(500, "could not update finding state").WithInternal(err)
	}
	return nil
}
