package sfdc

// Session is the authenticated context returned by a successful login.
// It is a plain value threaded into subsequent calls, recreated on every
// connect, with no reuse or expiry policy.
type Session struct {
	ID        string
	ServerURL string
	BaseURL   string
}
