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

package report

import (
	"strings"

	gocvss31 "github.com/pandatix/go-cvss/31"
)

// BaseScore computes the CVSS v3.1 base score of a vector string. The
// "CVSS:3.1/" prefix is optional; the calculator UI submits bare vectors
// like "AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H". An empty vector yields 0.
func BaseScore(vector string) (float64, error) {
	if vector == "" {
		return 0, nil
	}

	if !strings.HasPrefix(vector, "CVSS:") {
		vector = "CVSS:3.1/" + vector
	}

	cvss, err := gocvss31.ParseVector(vector)
	if err != nil {
		return 0, err
	}

	return cvss.BaseScore(), nil
}
