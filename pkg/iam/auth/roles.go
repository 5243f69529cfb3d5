package auth

// Role is the coarse access level carried in a token. Reviewers operate with
// the admin role; everyone else submits and reads their own applications.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleApplicant Role = "applicant"
)

func (r Role) IsAdmin() bool { return r == RoleAdmin }

// Valid reports whether the role is one the service understands. Unknown roles
// in otherwise valid tokens are downgraded to applicant by the middleware.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleApplicant
}
