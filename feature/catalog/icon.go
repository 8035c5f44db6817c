package catalog

import (
	"context"
	"fmt"
	"strings"
)

// Regions of a sprite sheet with a known pixel offset.
const (
	RegionChest = "chest"
	RegionPants = "pants"
)

var regionOffsets = map[string]int{
	RegionChest: 16,
	RegionPants: 32,
}

// IconLocator is the decoded form of a stored icon value: a file path and an
// optional sprite sheet region.
type IconLocator struct {
	Path   string
	Region string
}

// ParseIconLocator decodes a stored icon value. A leading drive volume such
// as "C:\" is part of the path. The remainder is split on ":"; the first
// token is the path and, when there is more than one token, the last token
// is the region.
func ParseIconLocator(s string) IconLocator {
	volume := ""
	if hasDriveVolume(s) {
		volume, s = s[:2], s[2:]
	}

	parts := strings.Split(s, ":")
	loc := IconLocator{Path: volume + parts[0]}
	if len(parts) >= 2 {
		loc.Region = parts[len(parts)-1]
	}
	return loc
}

func hasDriveVolume(s string) bool {
	if len(s) < 3 || s[1] != ':' || (s[2] != '\\' && s[2] != '/') {
		return false
	}
	c := s[0] | 0x20
	return c >= 'a' && c <= 'z'
}

// Offset returns the pixel offset of the region, 0 when it has none.
func (l IconLocator) Offset() int {
	return regionOffsets[l.Region]
}

// String encodes the locator back to its stored form.
func (l IconLocator) String() string {
	if l.Region == "" {
		return l.Path
	}
	return l.Path + ":" + l.Region
}

// IconRef is an icon file known to exist together with its region offset.
type IconRef struct {
	Path   string `json:"path"`
	Offset int    `json:"offset"`
}

// ResolveIcon returns the icon of the first item called name. It returns nil
// when the name is unknown or the icon file does not exist.
func (s *Service) ResolveIcon(ctx context.Context, name string) (*IconRef, error) {
	item, err := s.firstItem(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve icon: %w", err)
	}
	if item == nil {
		return nil, nil
	}
	return resolveLocator(item.Icon), nil
}

func resolveLocator(stored string) *IconRef {
	loc := ParseIconLocator(stored)
	if !fileExists(loc.Path) {
		return nil
	}
	return &IconRef{Path: loc.Path, Offset: loc.Offset()}
}
