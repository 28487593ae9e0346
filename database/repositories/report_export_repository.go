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

package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/pentestpro/database/models"
	"gorm.io/gorm"
)

type reportExportRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.ReportExport]
}

func NewReportExportRepository(db *gorm.DB) *reportExportRepository {
	return &reportExportRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.ReportExport](db),
	}
}

func (g *reportExportRepository) ListByProject(projectID uuid.UUID) ([]models.ReportExport, error) {
	var exports []models.ReportExport
	err := g.db.Where("project_id = ?", projectID).Order("created_at DESC").Find(&exports).Error
	return exports, err
}
