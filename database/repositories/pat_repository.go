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
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/pentestpro/database/models"
	"gorm.io/gorm"
)

type patRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.PAT]
}

func NewPATRepository(db *gorm.DB) *patRepository {
	return &patRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.PAT](db),
	}
}

func (g *patRepository) ReadByToken(token string) (models.PAT, error) {
	var t models.PAT
	// only the fingerprint is persisted, hash before querying
	err := g.db.First(&t, "fingerprint = ?", t.HashToken(token)).Error
	return t, err
}

func (g *patRepository) ListByUser(userID uuid.UUID) ([]models.PAT, error) {
	var pats []models.PAT
	err := g.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&pats).Error
	return pats, err
}

func (g *patRepository) MarkAsLastUsedNow(id uuid.UUID) error {
	return g.db.Model(&models.PAT{}).Where("id = ?", id).Update("last_used_at", time.Now()).Error
}
