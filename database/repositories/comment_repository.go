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
	"github.com/l3montree-dev/pentestpro/dtos"
	"gorm.io/gorm"
)

type commentRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Comment]
}

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Comment](db),
	}
}

func (g *commentRepository) ListByFinding(findingID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := g.db.Where("finding_id = ?", findingID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}

// MarkReadForCounterpart flags every comment written by the opposite role as
// read. Reading your own thread marks the other side's messages, not yours.
func (g *commentRepository) MarkReadForCounterpart(tx *gorm.DB, findingID uuid.UUID, counterpartOf dtos.CommenterRole) error {
	other := dtos.CommenterRoleTester
	if counterpartOf == dtos.CommenterRoleTester {
		other = dtos.CommenterRoleClient
	}
	return g.GetDB(tx).Model(&models.Comment{}).
		Where("finding_id = ? AND author_role = ?", findingID, other).
		Update("read_by_counterpart", true).Error
}
