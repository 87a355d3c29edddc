package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// LocationKind discriminates the variants of GradleLocation.
type LocationKind uint8

const (
	// LocationDefault uses the project's wrapper or whatever gradle is on the PATH.
	LocationDefault LocationKind = iota
	// LocationVersion asks for a specific released gradle version.
	LocationVersion
	// LocationDirectory points at a local gradle installation.
	LocationDirectory
	// LocationDistribution points at a distribution archive URI.
	LocationDistribution
)

const (
	versionPrefix = "version:"
	dirPrefix     = "dir:"
	uriPrefix     = "uri:"
)

// GradleLocation says which gradle the connector should use.
// Only the field matching Kind is meaningful.
type GradleLocation struct {
	Kind    LocationKind
	Version string
	Dir     string
	URI     string
}

// DefaultLocation returns the default gradle location.
func DefaultLocation() GradleLocation {
	return GradleLocation{Kind: LocationDefault}
}

// VersionLocation returns a location for a released gradle version.
func VersionLocation(version string) GradleLocation {
	return GradleLocation{Kind: LocationVersion, Version: version}
}

// DirectoryLocation returns a location for a local gradle installation.
func DirectoryLocation(dir string) GradleLocation {
	return GradleLocation{Kind: LocationDirectory, Dir: dir}
}

// DistributionLocation returns a location for a distribution URI.
func DistributionLocation(uri string) GradleLocation {
	return GradleLocation{Kind: LocationDistribution, URI: uri}
}

// ParseGradleLocation parses the textual form used in settings files:
// "", "version:8.5", "dir:/opt/gradle" or "uri:https://...".
func ParseGradleLocation(s string) (GradleLocation, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return DefaultLocation(), nil
	case strings.HasPrefix(s, versionPrefix):
		if v := strings.TrimPrefix(s, versionPrefix); v != "" {
			return VersionLocation(v), nil
		}
	case strings.HasPrefix(s, dirPrefix):
		if d := strings.TrimPrefix(s, dirPrefix); d != "" {
			return DirectoryLocation(d), nil
		}
	case strings.HasPrefix(s, uriPrefix):
		if u := strings.TrimPrefix(s, uriPrefix); u != "" {
			return DistributionLocation(u), nil
		}
	}
	return GradleLocation{}, zerr.With(zerr.Wrap(ErrInvalidGradleLocation, "cannot parse location"), "location", s)
}

// String renders the location in the form accepted by ParseGradleLocation.
func (l GradleLocation) String() string {
	switch l.Kind {
	case LocationVersion:
		return versionPrefix + l.Version
	case LocationDirectory:
		return dirPrefix + l.Dir
	case LocationDistribution:
		return uriPrefix + l.URI
	default:
		return ""
	}
}

// IsDefault reports whether the location is the default one.
func (l GradleLocation) IsDefault() bool {
	return l.Kind == LocationDefault
}
