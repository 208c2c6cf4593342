package agent

import "fmt"

type Role string

const (
	RoleCoordinator Role = "coordinator"
	RolePlanner     Role = "planner"
	RoleResearcher  Role = "researcher"
	RoleDeveloper   Role = "developer"
	RoleTester      Role = "tester"
	RoleReviewer    Role = "reviewer"
)

var validRoles = map[Role]bool{
	RoleCoordinator: true,
	RolePlanner:     true,
	RoleResearcher:  true,
	RoleDeveloper:   true,
	RoleTester:      true,
	RoleReviewer:    true,
}

// AllRoles returns the six fixed roles in seeding order.
func AllRoles() []Role {
	return []Role{
		RoleCoordinator,
		RolePlanner,
		RoleResearcher,
		RoleDeveloper,
		RoleTester,
		RoleReviewer,
	}
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid agent role: %s", s)
	}
	return r, nil
}
