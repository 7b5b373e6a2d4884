package domain

import (
	"strings"
	"time"
)

// Organization is the tenant entity returned by the backend after creation.
// Only Name, Slug and Cover drive behaviour; the rest is carried for display.
type Organization struct {
	ID        string     `json:"id,omitempty"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	Desc      string     `json:"desc,omitempty"`
	Cover     *string    `json:"cover,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// CoverOrEmpty returns the cover URL, or "" when the backend sent none.
func (o Organization) CoverOrEmpty() string {
	if o.Cover == nil {
		return ""
	}
	return *o.Cover
}

// Info projects the organization onto the shared current-organization state.
func (o Organization) Info() OrgInfo {
	return OrgInfo{Name: o.Name, Cover: o.CoverOrEmpty()}
}

// OrgInfo is the process-wide "current organization" shown by the rest of the app.
type OrgInfo struct {
	Name  string `json:"name"`
	Cover string `json:"cover"`
}

// IsZero reports whether no organization has been selected yet.
func (i OrgInfo) IsZero() bool {
	return i.Name == "" && i.Cover == ""
}

// WorkspacePath builds the in-app path of an organization's workspace.
// The slug is used as-is.
func WorkspacePath(slug string) string {
	return "/" + slug + "/my-works"
}

// WorkspaceSlug extracts the slug from a path built by WorkspacePath.
func WorkspaceSlug(path string) (string, bool) {
	trimmed := strings.TrimPrefix(path, "/")
	slug, rest, found := strings.Cut(trimmed, "/")
	if !found || rest != "my-works" || slug == "" || !strings.HasPrefix(path, "/") {
		return "", false
	}
	return slug, true
}
