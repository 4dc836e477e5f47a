package auth

// User is an account in the in-memory user list. PasswordHash is a
// bcrypt hash and never leaves the process.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	Name         string `json:"name"`
	EmployeeID   *int   `json:"employeeId,omitempty"`
}
