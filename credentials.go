package ghrest

// Credentials identify the caller to the GitHub API. The token is sent as the
// Basic Authentication password.
//
// Credentials is a value type. Clients never mutate a Credentials in place;
// changing the user or token replaces the whole value, so a request in flight
// always sees a consistent pair.
type Credentials struct {
	Username string
	Token    string
}

// WithUsername returns a copy of c with the username replaced.
func (c Credentials) WithUsername(username string) Credentials {
	c.Username = username
	return c
}

// WithToken returns a copy of c with the token replaced.
func (c Credentials) WithToken(token string) Credentials {
	c.Token = token
	return c
}

// IsZero reports whether neither a username nor a token is set.
func (c Credentials) IsZero() bool {
	return c.Username == "" && c.Token == ""
}

// String masks the token so credentials can be logged safely.
func (c Credentials) String() string {
	if c.Token == "" {
		return c.Username + ":"
	}
	return c.Username + ":****"
}
