package domain

// Role is the server-assigned role of an authenticated user. Any value
// outside the known set is treated as unauthenticated by route dispatch.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) Known() bool {
	return r == RoleAdmin || r == RoleUser
}

// Identity is the authenticated user's profile as derived by the backend
// from the bearer token.
type Identity struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Resolution is the outcome of resolving the current session against the
// backend. An expired or missing token is a normal unauthenticated state,
// not an error.
type Resolution struct {
	Identity      *Identity
	Authenticated bool
}

type LoginInput struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type RegisterInput struct {
	Name            string `validate:"required"`
	Username        string `validate:"required"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}
