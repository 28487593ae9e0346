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

type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

type Object string

const (
	ObjectOrganization   Object = "organization"
	ObjectProject        Object = "project"
	ObjectFinding        Object = "finding"
	ObjectReportTemplate Object = "reportTemplate"
	ObjectReport         Object = "report"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// AccessControl is scoped to a single organization (the casbin domain).
type AccessControl interface {
	HasAccess(user string) (bool, error)

	GrantRole(user string, role Role) error
	RevokeRole(user string, role Role) error

	GrantRoleInProject(user string, role Role, project string) error
	RevokeRoleInProject(user string, role Role, project string) error
	RevokeAllRolesInProjectForUser(user string, project string) error

	InheritRole(roleWhichGetsPermissions, roleWhichProvidesPermissions Role) error
	InheritProjectRole(roleWhichGetsPermissions, roleWhichProvidesPermissions Role, project string) error
	LinkDomainAndProjectRole(domainRoleWhichGetsPermission, projectRoleWhichProvidesPermissions Role, project string) error

	AllowRole(role Role, object Object, actions []Action) error
	AllowRoleInProject(project string, role Role, object Object, actions []Action) error

	IsAllowed(user string, object Object, action Action) (bool, error)
	IsAllowedInProject(project string, user string, object Object, action Action) (bool, error)

	GetAllRoles(user string) []string
	GetDomainRole(user string) (Role, error)
	GetProjectRole(user string, project string) (Role, error)
	GetAllMembersOfOrganization() ([]string, error)
	GetAllMembersOfProject(projectID string) ([]string, error)
	GetAllProjectsForUser(user string) []string
}

type RBACProvider interface {
	GetDomainRBAC(domain string) AccessControl
	DomainsOfUser(user string) ([]string, error)
}

type RBACMiddleware = func(obj Object, act Action) MiddlewareFunc

// BootstrapOrg sets up the default role hierarchy and permissions of a fresh
// organization and makes userID its owner.
func BootstrapOrg(rbac AccessControl, userID string, userRole Role) error {
	if err := rbac.GrantRole(userID, userRole); err != nil {
		return err
	}

	if err := rbac.InheritRole(RoleOwner, RoleAdmin); err != nil { // an owner is an admin
		return err
	}
	if err := rbac.InheritRole(RoleAdmin, RoleMember); err != nil { // an admin is a member
		return err
	}

	if err := rbac.AllowRole(RoleOwner, ObjectOrganization, []Action{
		ActionDelete,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleAdmin, ObjectOrganization, []Action{
		ActionUpdate,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleAdmin, ObjectProject, []Action{
		ActionCreate,
		ActionRead, // listing all projects
		ActionUpdate,
		ActionDelete,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleAdmin, ObjectReportTemplate, []Action{
		ActionCreate,
		ActionRead,
		ActionUpdate,
		ActionDelete,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleMember, ObjectOrganization, []Action{
		ActionRead,
	}); err != nil {
		return err
	}

	return rbac.AllowRole(RoleMember, ObjectReportTemplate, []Action{
		ActionRead,
	})
}

// BootstrapProject wires the per-project role hierarchy: project admins may
// manage the project, findings and reports; project members may read and
// report findings.
func BootstrapProject(rbac AccessControl, projectID string) error {
	if err := rbac.InheritProjectRole(RoleAdmin, RoleMember, projectID); err != nil {
		return err
	}

	// the org admin inherits project admin on every project
	if err := rbac.LinkDomainAndProjectRole(RoleAdmin, RoleAdmin, projectID); err != nil {
		return err
	}

	if err := rbac.AllowRoleInProject(projectID, RoleAdmin, ObjectProject, []Action{
		ActionUpdate,
		ActionDelete,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRoleInProject(projectID, RoleAdmin, ObjectFinding, []Action{
		ActionUpdate,
		ActionDelete,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRoleInProject(projectID, RoleAdmin, ObjectReport, []Action{
		ActionCreate,
		ActionRead,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRoleInProject(projectID, RoleMember, ObjectProject, []Action{
		ActionRead,
	}); err != nil {
		return err
	}

	return rbac.AllowRoleInProject(projectID, RoleMember, ObjectFinding, []Action{
		ActionCreate,
		ActionRead,
	})
}
