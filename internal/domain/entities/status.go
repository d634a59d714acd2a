package entities

// ReviewStatus is the derived classification of an account or profile.
// It is computed on read and never stored.
type ReviewStatus string

const (
	StatusApproved ReviewStatus = "APPROVED"
	StatusRejected ReviewStatus = "REJECTED"
	StatusPending  ReviewStatus = "PENDING"
)

// ResolveAccountStatus derives the account-track status used by the
// login gate and the admin user list. Rejected wins over a stale
// approved flag.
func ResolveAccountStatus(a *Account) ReviewStatus {
	switch {
	case a.IsRejected:
		return StatusRejected
	case a.IsApproved:
		return StatusApproved
	default:
		return StatusPending
	}
}

// ResolveProfileStatus derives the profile-track status used by the
// admin student review and the public directory. Same precedence as
// the account track: rejection is checked first.
func ResolveProfileStatus(p *Profile) ReviewStatus {
	switch {
	case p == nil:
		return StatusPending
	case p.IsProfileRejected:
		return StatusRejected
	case p.IsProfileApproved:
		return StatusApproved
	default:
		return StatusPending
	}
}
