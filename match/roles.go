// match/roles.go

package match

import (
	"fmt"
	"strings"
)

////////////////////////////////////////////////////////////////////////
// Role Catalog
////////////////////////////////////////////////////////////////////////

// Role is a named job role with its ordered requirement list.
type Role struct {
	Name         string            `json:"name"`
	Requirements []RoleRequirement `json:"requirements"`
}

// RoleCatalog is an immutable set of named roles used as the comparison
// baseline. Build it once at process start with NewRoleCatalog and share it
// freely; it is never mutated after construction.
type RoleCatalog struct {
	roles []Role
	index map[string]int // lower-cased name -> position in roles
}

// NewRoleCatalog validates and indexes a list of roles. It rejects empty
// role names, duplicate roles, empty requirement lists, blank skill names,
// and required levels outside 1..5, so downstream gap math never sees a
// malformed requirement.
func NewRoleCatalog(roles []Role) (*RoleCatalog, error) {
	catalog := &RoleCatalog{
		roles: make([]Role, 0, len(roles)),
		index: make(map[string]int, len(roles)),
	}

	for _, role := range roles {
		name := strings.TrimSpace(role.Name)
		if name == "" {
			return nil, fmt.Errorf("role name must not be empty")
		}

		key := strings.ToLower(name)
		if _, dup := catalog.index[key]; dup {
			return nil, fmt.Errorf("duplicate role %q", name)
		}

		if len(role.Requirements) == 0 {
			return nil, fmt.Errorf("role %q has no requirements", name)
		}

		for _, req := range role.Requirements {
			if strings.TrimSpace(req.Skill) == "" {
				return nil, fmt.Errorf("role %q has a requirement with an empty skill name", name)
			}
			if req.Required < 1 || req.Required > 5 {
				return nil, fmt.Errorf("role %q requirement %q: required level %d out of range 1..5",
					name, req.Skill, req.Required)
			}
		}

		catalog.index[key] = len(catalog.roles)
		catalog.roles = append(catalog.roles, Role{
			Name:         name,
			Requirements: append([]RoleRequirement(nil), role.Requirements...),
		})
	}

	return catalog, nil
}

// Roles returns the catalog's roles in registration order.
func (c *RoleCatalog) Roles() []Role {
	return append([]Role(nil), c.roles...)
}

// Names returns the role names in registration order.
func (c *RoleCatalog) Names() []string {
	names := make([]string, len(c.roles))
	for i, role := range c.roles {
		names[i] = role.Name
	}
	return names
}

// Lookup finds a role by case-insensitive name.
func (c *RoleCatalog) Lookup(name string) (Role, bool) {
	i, ok := c.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Role{}, false
	}
	return c.roles[i], true
}

// DefaultRoleCatalog builds the built-in catalog of sample roles.
func DefaultRoleCatalog() *RoleCatalog {
	catalog, err := NewRoleCatalog([]Role{
		{
			Name: "Full Stack Developer",
			Requirements: []RoleRequirement{
				{Skill: "React", Required: 4},
				{Skill: "Node.js", Required: 4},
				{Skill: "JavaScript", Required: 5},
				{Skill: "TypeScript", Required: 3},
				{Skill: "MongoDB", Required: 3},
				{Skill: "Git", Required: 4},
				{Skill: "Docker", Required: 2},
				{Skill: "AWS", Required: 2},
			},
		},
		{
			Name: "Frontend Developer",
			Requirements: []RoleRequirement{
				{Skill: "React", Required: 5},
				{Skill: "JavaScript", Required: 5},
				{Skill: "TypeScript", Required: 4},
				{Skill: "CSS", Required: 4},
				{Skill: "HTML", Required: 4},
				{Skill: "Git", Required: 3},
				{Skill: "Redux", Required: 3},
				{Skill: "Webpack", Required: 2},
			},
		},
		{
			Name: "Backend Developer",
			Requirements: []RoleRequirement{
				{Skill: "Node.js", Required: 5},
				{Skill: "Python", Required: 4},
				{Skill: "MongoDB", Required: 4},
				{Skill: "PostgreSQL", Required: 3},
				{Skill: "Docker", Required: 3},
				{Skill: "AWS", Required: 3},
				{Skill: "Git", Required: 4},
				{Skill: "REST APIs", Required: 4},
			},
		},
		{
			Name: "Data Scientist",
			Requirements: []RoleRequirement{
				{Skill: "Python", Required: 5},
				{Skill: "Machine Learning", Required: 4},
				{Skill: "SQL", Required: 4},
				{Skill: "Statistics", Required: 4},
				{Skill: "Pandas", Required: 4},
				{Skill: "NumPy", Required: 3},
				{Skill: "Git", Required: 3},
				{Skill: "Jupyter", Required: 3},
			},
		},
	})
	if err != nil {
		// The built-in catalog is static data; a validation failure here is a
		// programming error.
		panic(err)
	}
	return catalog
}
