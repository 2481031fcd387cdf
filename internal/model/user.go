package model

// User is the authenticated identity for the portal. There is at most one
// active user at a time; the record is mirrored into the key-value store
// so a restart restores the same session.
type User struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	AccessCode string `json:"accessCode"`
	Role       string `json:"role"`
}

// UsedAccessCode records the first (and every subsequent) successful use of
// an access code. The list is append-only: repeated logins by the same email
// append duplicate entries rather than deduplicating.
type UsedAccessCode struct {
	Code  string `json:"code"`
	Email string `json:"email"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
