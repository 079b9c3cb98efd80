package sales

// AccessPolicy describes what the requesting user may see and cancel. It
// is built from the authenticated identity by the API layer and passed
// into the operations that need it, so the core never inspects role
// strings directly.
type AccessPolicy struct {
	UserID uint
	Admin  bool
}

// CanViewAll reports whether the requester may list every sale in the
// system rather than only their own.
func (p AccessPolicy) CanViewAll() bool {
	return p.Admin
}

// CanCancel reports whether the requester may cancel the given sale.
func (p AccessPolicy) CanCancel(s *Sale) bool {
	return p.Admin || s.UserID == p.UserID
}
