package orgcreate

import "orgsetup/internal/domain"

// StateWriter receives the created organization as the new current organization.
type StateWriter interface {
	SetOrgInfo(info domain.OrgInfo)
}

// Navigator moves the application to an in-app path.
type Navigator interface {
	Navigate(path string) error
}

// Bridge hands a created organization over to shared state and computes
// where to go next.
type Bridge struct {
	state StateWriter
}

// NewBridge returns a bridge writing to state.
func NewBridge(state StateWriter) Bridge {
	return Bridge{state: state}
}

// Apply writes {name, cover} to shared state and returns the workspace path.
// A missing cover is stored as "". The slug is not validated.
func (b Bridge) Apply(org domain.Organization) string {
	if b.state != nil {
		b.state.SetOrgInfo(org.Info())
	}
	return domain.WorkspacePath(org.Slug)
}
