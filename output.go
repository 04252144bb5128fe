package c3tconv

import "strings"

// Ext is the packaged artifact extension.
const Ext = ".c3b"

// Writer is the binary model writer. Register associates a Model with the
// pending write; WriteToPath encodes it to path. The byte layout is owned by the
// implementation.
type Writer interface {
	Register(m *Model)
	WriteToPath(path string) error
}

// CombinedPath appends Ext unless path already ends with it (case-insensitive).
func CombinedPath(path string) string {
	if hasExt(path) {
		return path
	}
	return path + Ext
}

// SplitBasePath strips a trailing Ext (case-insensitive) from path.
func SplitBasePath(path string) string {
	if hasExt(path) {
		return path[:len(path)-len(Ext)]
	}
	return path
}

// SplitPath names the artifact of one animation in split mode.
func SplitPath(base, animID string) string {
	return base + "_" + animID + Ext
}

func hasExt(path string) bool {
	return len(path) >= len(Ext) && strings.EqualFold(path[len(path)-len(Ext):], Ext)
}

// WriteCombined writes the whole Model to CombinedPath(path) in one call.
func WriteCombined(m *Model, path string, w Writer) error {
	dst := CombinedPath(path)
	w.Register(m)
	if err := w.WriteToPath(dst); err != nil {
		return writeFailure(dst, err)
	}
	return nil
}

// WriteSplit writes one artifact per animation, in order, each containing only
// that animation. The first failed write stops the loop. The Model's animation
// list is the original one again when WriteSplit returns, whatever the outcome.
func WriteSplit(m *Model, path string, w Writer) error {
	base := SplitBasePath(path)
	all, restore := m.borrowAnimations()
	defer restore()

	for i := range all {
		dst := SplitPath(base, all[i].ID)
		m.Animations = all[i : i+1 : i+1]
		w.Register(m)
		if err := w.WriteToPath(dst); err != nil {
			return writeFailure(dst, err)
		}
	}
	return nil
}
