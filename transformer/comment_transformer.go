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
	"github.com/google/uuid"
	"github.com/l3montree-dev/pentestpro/database/models"
	"github.com/l3montree-dev/pentestpro/dtos"
)

func CommentCreateRequestToModel(c dtos.CommentCreateRequest, findingID uuid.UUID, authorID uuid.UUID, role dtos.CommenterRole) models.Comment {
	return models.Comment{
		FindingID:  findingID,
		AuthorID:   authorID,
		AuthorRole: role,
		Content:    c.Content,
	}
}

func CommentToDTO(comment models.Comment) dtos.CommentDTO {
	return dtos.CommentDTO{
		ID:         comment.ID.String(),
		FindingID:  comment.FindingID.String(),
		AuthorID:   comment.AuthorID.String(),
		AuthorRole: comment.AuthorRole,
		Content:    comment.Content,
		Read:       comment.ReadByCounterpart,
		CreatedAt:  comment.CreatedAt,
	}
}
