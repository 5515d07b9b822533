package domain

// Session represents the locally cached record of the logged-in actor
type Session struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	Token    string   `json:"token"`
}

// HasRole returns true if the session roles contain the given role
func (s *Session) HasRole(role string) bool {
	if s == nil {
		return false
	}
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin returns true if the session carries the admin role marker
func (s *Session) IsAdmin() bool {
	return s.HasRole(RoleAdmin)
}
