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

package shared

import (
	"context"

	"github.com/google/uuid"
	"github.com/l3montree-dev/pentestpro/database/models"
	"github.com/l3montree-dev/pentestpro/dtos"
	"gorm.io/gorm"
)

type OrganizationRepository interface {
	Create(tx *gorm.DB, org *models.Org) error
	Save(tx *gorm.DB, org *models.Org) error
	Read(id uuid.UUID) (models.Org, error)
	ReadBySlug(slug string) (models.Org, error)
	Delete(tx *gorm.DB, id uuid.UUID) error
	List(ids []uuid.UUID) ([]models.Org, error)
	Transaction(f func(tx *gorm.DB) error) error
}

type ProjectRepository interface {
	Create(tx *gorm.DB, project *models.Project) error
	Save(tx *gorm.DB, project *models.Project) error
	Read(id uuid.UUID) (models.Project, error)
	ReadBySlug(organizationID uuid.UUID, slug string) (models.Project, error)
	Delete(tx *gorm.DB, id uuid.UUID) error
	List(ids []uuid.UUID) ([]models.Project, error)
	ListByOrganization(organizationID uuid.UUID) ([]models.Project, error)
	ListPaged(organizationID uuid.UUID, pageInfo PageInfo) (Paged[models.Project], error)
	GetMembers(projectID uuid.UUID) ([]models.ProjectMember, error)
	UpsertMember(tx *gorm.DB, member *models.ProjectMember) error
	RemoveMember(tx *gorm.DB, projectID uuid.UUID, userID uuid.UUID) error
	Transaction(f func(tx *gorm.DB) error) error
}

type FindingRepository interface {
	Create(tx *gorm.DB, finding *models.Finding) error
	Save(tx *gorm.DB, finding *models.Finding) error
	Read(id uuid.UUID) (models.Finding, error)
	ReadByProject(projectID uuid.UUID, id uuid.UUID) (models.Finding, error)
	Delete(tx *gorm.DB, id uuid.UUID) error
	ListByProject(projectID uuid.UUID) ([]models.Finding, error)
	ListByProjectPaged(projectID uuid.UUID, pageInfo PageInfo) (Paged[models.Finding], error)
	ListReportable(projectID uuid.UUID) ([]models.Finding, error)
	Transaction(f func(tx *gorm.DB) error) error
}

type CommentRepository interface {
	Create(tx *gorm.DB, comment *models.Comment) error
	ListByFinding(findingID uuid.UUID) ([]models.Comment, error)
	MarkReadForCounterpart(tx *gorm.DB, findingID uuid.UUID, counterpartOf dtos.CommenterRole) error
}

type ReportTemplateRepository interface {
	Create(tx *gorm.DB, template *models.ReportTemplate) error
	Save(tx *gorm.DB, template *models.ReportTemplate) error
	Read(id uuid.UUID) (models.ReportTemplate, error)
	Delete(tx *gorm.DB, id uuid.UUID) error
	ListByOrganization(organizationID uuid.UUID) ([]models.ReportTemplate, error)
	GetDefault(organizationID uuid.UUID) (models.ReportTemplate, error)
	SetDefault(tx *gorm.DB, organizationID uuid.UUID, templateID uuid.UUID) error
}

type ReportExportRepository interface {
	Create(tx *gorm.DB, export *models.ReportExport) error
	ListByProject(projectID uuid.UUID) ([]models.ReportExport, error)
}

type UserRepository interface {
	Create(tx *gorm.DB, user *models.User) error
	Save(tx *gorm.DB, user *models.User) error
	Read(id uuid.UUID) (models.User, error)
	ReadByEmail(email string) (models.User, error)
	List(ids []uuid.UUID) ([]models.User, error)
}

type PersonalAccessTokenRepository interface {
	Create(tx *gorm.DB, pat *models.PAT) error
	ReadByToken(token string) (models.PAT, error)
	Delete(tx *gorm.DB, id uuid.UUID) error
	ListByUser(userID uuid.UUID) ([]models.PAT, error)
	MarkAsLastUsedNow(id uuid.UUID) error
}

type ProjectService interface {
	CreateProject(ctx Context, project *models.Project) error
	ListAllowedProjects(ctx Context) ([]models.Project, error)
	ListAllowedProjectsPaged(ctx Context) (Paged[models.Project], error)
}

type FindingService interface {
	CreateFinding(ctx Context, finding *models.Finding) error
	UpdateState(ctx Context, finding *models.Finding, state dtos.FindingState) error
}

type OrgService interface {
	CreateOrganization(ctx Context, org *models.Org) error
}

// PDFOptions are the fixed page layout settings handed to the converter.
// Margins are millimeters.
type PDFOptions struct {
	MarginTopMM    float64
	MarginBottomMM float64
	MarginLeftMM   float64
	MarginRightMM  float64
	Landscape      bool
	FooterHTML     string
}

// PDFConverter turns a rendered HTML document into a paginated PDF.
type PDFConverter interface {
	Convert(ctx context.Context, html string, opts PDFOptions) ([]byte, error)
}

// RateLimiter is a best-effort, in-process limiter keyed by an arbitrary
// string (e.g. the remote address of a login attempt). Not correct across
// multiple server instances.
type RateLimiter interface {
	Check(key string) bool
	Reset(key string)
}
