package domain

// SessionState is the login state of the single local user.
type SessionState int

const (
	SessionAnonymous SessionState = iota
	SessionAuthenticated
)

func (s SessionState) String() string {
	if s == SessionAuthenticated {
		return "authenticated"
	}
	return "anonymous"
}
