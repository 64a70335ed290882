package entities

// AccountRole distinguishes the restaurant owner from its staff.
type AccountRole string

const (
	RoleAdmin    AccountRole = "admin"
	RoleEmployee AccountRole = "employee"
)

// Account is the slice of the accounts subsystem this service needs: enough
// to resolve the owner an order is scoped to. Staff accounts carry the id of
// the admin they work for; admin accounts own themselves.
type Account struct {
	UserID  int64       `json:"user_id"`
	OwnerID int64       `json:"owner_id"`
	Role    AccountRole `json:"role"`
	Name    string      `json:"name,omitempty"`
}
