// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleConsumer is a shopper who activates products and claims rewards.
	RoleConsumer Role = "consumer"
	// RoleBrandAdmin manages the products and rewards of one brand.
	RoleBrandAdmin Role = "brand_admin"
	// RolePlatformAdmin operates the platform.
	RolePlatformAdmin Role = "platform_admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleConsumer, RoleBrandAdmin, RolePlatformAdmin:
		return true
	default:
		return false
	}
}

// CanAdministerBrands reports whether the role may own a brand and manage its catalog.
func (r Role) CanAdministerBrands() bool {
	return r == RoleBrandAdmin || r == RolePlatformAdmin
}

// SelfRegistrable reports whether a new account may pick this role on sign-up.
func (r Role) SelfRegistrable() bool {
	return r == RoleConsumer || r == RoleBrandAdmin
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// BrandAdminRoles are the roles allowed through brand administration routes.
var BrandAdminRoles = Roles{RoleBrandAdmin, RolePlatformAdmin}
