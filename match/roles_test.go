package match

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRoleCatalogValidation(t *testing.T) {
	valid := []RoleRequirement{{Skill: "Go", Required: 3}}

	testCases := []struct {
		name    string
		roles   []Role
		wantErr string
	}{
		{
			name:    "Empty role name",
			roles:   []Role{{Name: "  ", Requirements: valid}},
			wantErr: "role name",
		},
		{
			name: "Duplicate role",
			roles: []Role{
				{Name: "Backend Developer", Requirements: valid},
				{Name: "backend developer", Requirements: valid},
			},
			wantErr: "duplicate role",
		},
		{
			name:    "No requirements",
			roles:   []Role{{Name: "Empty", Requirements: nil}},
			wantErr: "no requirements",
		},
		{
			name: "Blank skill name",
			roles: []Role{{
				Name:         "Broken",
				Requirements: []RoleRequirement{{Skill: " ", Required: 3}},
			}},
			wantErr: "empty skill name",
		},
		{
			name: "Required level out of range",
			roles: []Role{{
				Name:         "Broken",
				Requirements: []RoleRequirement{{Skill: "Go", Required: 6}},
			}},
			wantErr: "out of range",
		},
		{
			name: "Required level zero",
			roles: []Role{{
				Name:         "Broken",
				Requirements: []RoleRequirement{{Skill: "Go", Required: 0}},
			}},
			wantErr: "out of range",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRoleCatalog(tc.roles)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestDefaultRoleCatalog(t *testing.T) {
	catalog := DefaultRoleCatalog()

	require.Equal(t, []string{
		"Full Stack Developer",
		"Frontend Developer",
		"Backend Developer",
		"Data Scientist",
	}, catalog.Names())

	role, ok := catalog.Lookup("full stack developer")
	require.True(t, ok)
	require.Equal(t, "Full Stack Developer", role.Name)
	require.Len(t, role.Requirements, 8)
	require.Equal(t, RoleRequirement{Skill: "React", Required: 4}, role.Requirements[0])

	_, ok = catalog.Lookup("Astronaut")
	require.False(t, ok)
}
