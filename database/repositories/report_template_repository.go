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

type reportTemplateRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.ReportTemplate]
}

func NewReportTemplateRepository(db *gorm.DB) *reportTemplateRepository {
	return &reportTemplateRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.ReportTemplate](db),
	}
}

func (g *reportTemplateRepository) ListByOrganization(organizationID uuid.UUID) ([]models.ReportTemplate, error) {
	var templates []models.ReportTemplate
	err := g.db.Where("organization_id = ?", organizationID).Order("created_at ASC").Find(&templates).Error
	return templates, err
}

func (g *reportTemplateRepository) GetDefault(organizationID uuid.UUID) (models.ReportTemplate, error) {
	var t models.ReportTemplate
	err := g.db.Where("organization_id = ? AND is_default = ?", organizationID, true).First(&t).Error
	return t, err
}

// SetDefault moves the default flag inside a single transaction: clears the
// current default, then flags the given template.
func (g *reportTemplateRepository) SetDefault(tx *gorm.DB, organizationID uuid.UUID, templateID uuid.UUID) error {
	run := func(tx *gorm.DB) error {
		if err := tx.Model(&models.ReportTemplate{}).
			Where("organization_id = ?", organizationID).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.ReportTemplate{}).
			Where("organization_id = ? AND id = ?", organizationID, templateID).
			Update("is_default", true).Error
	}

	if tx != nil {
		return run(tx)
	}
	return g.Transaction(run)
}
