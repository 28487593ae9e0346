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
package accesscontrol

import "github.com/l3montree-dev/pentestpro/shared"

type userSession struct {
	userID string
	scopes []string
}

func (s userSession) GetUserID() string {
	return s.userID
}

func (s userSession) GetScopes() []string {
	return s.scopes
}

// NoSession marks an unauthenticated request. It stays in the context so
// public resources can still be served.
var NoSession shared.AuthSession = userSession{}

func NewSession(userID string, scopes []string) shared.AuthSession {
	return userSession{
		userID: userID,
		scopes: scopes,
	}
}
