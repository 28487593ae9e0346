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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package commands

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"os"

	"github.com/gosimple/slug"
	"github.com/l3montree-dev/pentestpro/accesscontrol"
	"github.com/l3montree-dev/pentestpro/database/models"
	"github.com/l3montree-dev/pentestpro/database/repositories"
	"github.com/l3montree-dev/pentestpro/dtos"
	"github.com/l3montree-dev/pentestpro/shared"
	"github.com/spf13/cobra"
)

// checkBootstrapToken compares the operator supplied token against the
// BOOTSTRAP_TOKEN environment variable. There is no fallback value: an
// unset variable always fails.
func checkBootstrapToken(token string) error {
	expected := os.Getenv("BOOTSTRAP_TOKEN")
	if expected == "" {
		return fmt.Errorf("BOOTSTRAP_TOKEN is not set in the environment")
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
		return fmt.Errorf("invalid bootstrap token")
	}
	return nil
}

func NewBootstrapCommand() *cobra.Command {
	bootstrap := cobra.Command{
		Use:   "bootstrap",
		Short: "Privileged bootstrap operations, gated on the bootstrap token",
	}

	bootstrap.PersistentFlags().String("token", "", "bootstrap token, must match the BOOTSTRAP_TOKEN environment variable")

	bootstrap.AddCommand(newCreateOrgCommand())
	bootstrap.AddCommand(newFixAdminCommand())
	return &bootstrap
}

func newCreateOrgCommand() *cobra.Command {
	createOrg := cobra.Command{
		Use:   "create-org",
		Short: "Create an organization and grant the owner role to an existing user",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			token, _ := cmd.Flags().GetString("token")
			if err := checkBootstrapToken(token); err != nil {
				slog.Error("bootstrap token check failed", "err", err)
				os.Exit(1)
			}

			name, _ := cmd.Flags().GetString("name")
			ownerEmail, _ := cmd.Flags().GetString("owner")
			if name == "" || ownerEmail == "" {
				slog.Error("both --name and --owner are required")
				os.Exit(1)
			}

			shared.LoadConfig() // nolint
			database, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return
			}

			userRepository := repositories.NewUserRepository(database)
			owner, err := userRepository.ReadByEmail(ownerEmail)
			if err != nil {
				slog.Error("could not find owner user", "email", ownerEmail, "err", err)
				return
			}

			organization := models.Org{
				Name: name,
				Slug: slug.Make(name),
			}
			orgRepository := repositories.NewOrgRepository(database)
			if err := orgRepository.Create(nil, &organization); err != nil {
				slog.Error("could not create organization", "err", err)
				return
			}

			rbacProvider, err := accesscontrol.NewCasbinRBACProvider(database)
			if err != nil {
				slog.Error("could not create rbac provider", "err", err)
				return
			}

			rbac := rbacProvider.GetDomainRBAC(organization.ID.String())
			if err := shared.BootstrapOrg(rbac, owner.ID.String(), shared.RoleOwner); err != nil {
				slog.Error("could not bootstrap organization roles", "err", err)
				return
			}

			slog.Info("created organization", "slug", organization.Slug, "id", organization.ID, "owner", owner.Email)
		},
	}

	createOrg.Flags().String("name", "", "organization name")
	createOrg.Flags().String("owner", "", "email of the user that becomes the organization owner")

	return &createOrg
}

func newFixAdminCommand() *cobra.Command {
	fixAdmin := cobra.Command{
		Use:   "fix-admin",
		Short: "Promote an existing user to super admin and lift suspension",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			token, _ := cmd.Flags().GetString("token")
			if err := checkBootstrapToken(token); err != nil {
				slog.Error("bootstrap token check failed", "err", err)
				os.Exit(1)
			}

			email, _ := cmd.Flags().GetString("email")
			if email == "" {
				slog.Error("--email is required")
				os.Exit(1)
			}

			shared.LoadConfig() // nolint
			database, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return
			}

			userRepository := repositories.NewUserRepository(database)
			user, err := userRepository.ReadByEmail(email)
			if err != nil {
				slog.Error("could not find user", "email", email, "err", err)
				return
			}

			user.Role = dtos.UserRoleSuperAdmin
			user.Suspended = false
			user.PendingVerification = false
			if err := userRepository.Save(nil, &user); err != nil {
				slog.Error("could not update user", "err", err)
				return
			}

			slog.Info("promoted user to super admin", "email", user.Email, "id", user.ID)
		},
	}

	fixAdmin.Flags().String("email", "", "email of the user to promote")

	return &fixAdmin
}
