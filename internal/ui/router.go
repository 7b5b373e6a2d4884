package ui

import (
	"strings"

	"orgsetup/internal/domain"
	appErrors "orgsetup/internal/errors"
)

// In-app paths.
const (
	PathHome   = "/organization"
	PathCreate = "/organization/create"
)

type routeKind int

const (
	routeNotFound routeKind = iota
	routeHome
	routeCreate
	routeWorkspace
)

type route struct {
	kind routeKind
	path string
	slug string
}

// parseRoute maps an in-app path onto a screen. Unknown paths become
// routeNotFound; only paths that do not start with "/" are rejected.
func parseRoute(path string) (route, error) {
	if !strings.HasPrefix(path, "/") {
		return route{}, appErrors.New(appErrors.CodeNavigationFailed, "path must start with /: "+path, nil)
	}
	clean := path
	if len(clean) > 1 {
		clean = strings.TrimSuffix(clean, "/")
	}

	switch clean {
	case PathHome:
		return route{kind: routeHome, path: clean}, nil
	case PathCreate:
		return route{kind: routeCreate, path: clean}, nil
	}
	if slug, ok := domain.WorkspaceSlug(clean); ok {
		return route{kind: routeWorkspace, path: clean, slug: slug}, nil
	}
	return route{kind: routeNotFound, path: clean}, nil
}
