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
	"github.com/l3montree-dev/pentestpro/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type projectRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Project]
}

func NewProjectRepository(db *gorm.DB) *projectRepository {
	return &projectRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Project](db),
	}
}

func (g *projectRepository) ReadBySlug(organizationID uuid.UUID, slug string) (models.Project, error) {
	var t models.Project
	err := g.db.Where("organization_id = ? AND slug = ?", organizationID, slug).First(&t).Error
	return t, err
}

func (g *projectRepository) ListByOrganization(organizationID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := g.db.Where("organization_id = ?", organizationID).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (g *projectRepository) ListPaged(organizationID uuid.UUID, pageInfo shared.PageInfo) (shared.Paged[models.Project], error) {
	var count int64
	if err := g.db.Model(&models.Project{}).Where("organization_id = ?", organizationID).Count(&count).Error; err != nil {
		return shared.Paged[models.Project]{}, err
	}

	var projects []models.Project
	err := pageInfo.ApplyOnDB(g.db.Where("organization_id = ?", organizationID).Order("created_at DESC")).Find(&projects).Error
	if err != nil {
		return shared.Paged[models.Project]{}, err
	}
	return shared.NewPaged(pageInfo, count, projects), nil
}

func (g *projectRepository) GetMembers(projectID uuid.UUID) ([]models.ProjectMember, error) {
	var members []models.ProjectMember
	err := g.db.Where("project_id = ?", projectID).Find(&members).Error
	return members, err
}

func (g *projectRepository) UpsertMember(tx *gorm.DB, member *models.ProjectMember) error {
	return g.GetDB(tx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"can_edit"}),
	}).Create(member).Error
}

func (g *projectRepository) RemoveMember(tx *gorm.DB, projectID uuid.UUID, userID uuid.UUID) error {
	return g.GetDB(tx).Where("project_id = ? AND user_id = ?", projectID, userID).Delete(&models.ProjectMember{}).Error
}
