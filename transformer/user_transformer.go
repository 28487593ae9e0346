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
	"github.com/l3montree-dev/pentestpro/database/models"
	"github.com/l3montree-dev/pentestpro/dtos"
)

func UserToDTO(user models.User) dtos.UserDTO {
	return dtos.UserDTO{
		ID:   user.ID.String(),
		Name: user.Name,
		Role: string(user.Role),
	}
}

func PATToDTO(pat models.PAT) dtos.PATDTO {
	return dtos.PATDTO{
		ID:          pat.ID.String(),
		Description: pat.Description,
		Scopes:      pat.Scopes,
	}
}
