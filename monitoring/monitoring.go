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

package monitoring

import (
	"fmt"
	"log/slog"

	"github.com/getsentry/sentry-go"
)

// Alert forwards an error to the error tracking if it is configured,
// otherwise it only logs.
func Alert(msg string, err error) {
	if err == nil {
		err = fmt.Errorf("%s", msg)
	}

	if hub := sentry.CurrentHub(); hub.Client() != nil {
		hub.CaptureException(fmt.Errorf("%s: %w", msg, err))
		return
	}

	slog.Error(msg, "err", err)
}
