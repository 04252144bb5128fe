package c3tconv

import (
	"strconv"
	"strings"
)

// parseDocument is ParseDocument with the accepted version made explicit.
// Order: decode, top-level shape, version, animations.
func parseDocument(data []byte, want Version, opt ParseOpt) (*Model, error) {
	tree, err := decodeTree(data, opt)
	if err != nil {
		return nil, err
	}
	root, ok := tree.(map[string]any)
	if !ok {
		return nil, malformed(CodeNotObject, "/", nil)
	}

	raw, _ := root[fieldVersion].(string)
	got, ok := parseVersion(raw)
	if !ok || got != want {
		return nil, unsupportedVersion(want, raw)
	}

	rp := RootPath()
	entries, _, err := optionalArray(root, fieldAnimations, rp)
	if err != nil {
		return nil, err
	}
	anims, err := buildAnimations(entries, rp.Field(fieldAnimations))
	if err != nil {
		return nil, err
	}

	return &Model{Version: got, Export: ExportAnimation, Animations: anims}, nil
}

// parseVersion splits "major.minor" into two unsigned decimal components.
// Surrounding spaces of each component are tolerated; anything else fails.
func parseVersion(s string) (Version, bool) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return Version{}, false
	}
	major, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 16)
	if err != nil {
		return Version{}, false
	}
	minor, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 16)
	if err != nil {
		return Version{}, false
	}
	return Version{Major: uint16(major), Minor: uint16(minor)}, true
}
