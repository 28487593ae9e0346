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
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/pentestpro/database/models"
	"github.com/l3montree-dev/pentestpro/dtos"
)

func ReportTemplateCreateRequestToModel(c dtos.ReportTemplateCreateRequest, organizationID uuid.UUID) models.ReportTemplate {
	return models.ReportTemplate{
		OrganizationID: organizationID,
		Name:           c.Name,
		Format:         c.Format,
		Content:        c.Content,
		Variables:      marshalJSONList(c.Variables),
		IsDefault:      c.IsDefault,
	}
}

func ReportTemplateToDTO(template models.ReportTemplate) dtos.ReportTemplateDTO {
	var variables []string
	if err := json.Unmarshal(template.Variables, &variables); err != nil {
		variables = []string{}
	}

	return dtos.ReportTemplateDTO{
		ID:        template.ID.String(),
		Name:      template.Name,
		Format:    template.Format,
		Variables: variables,
		IsDefault: template.IsDefault,
	}
}

func ReportExportToDTO(export models.ReportExport) dtos.ReportExportDTO {
	return dtos.ReportExportDTO{
		ID:        export.ID.String(),
		ProjectID: export.ProjectID.String(),
		FileName:  export.FileName,
		Checksum:  export.Checksum,
		Size:      export.Size,
		CreatedAt: export.CreatedAt.Format(time.RFC3339),
	}
}
