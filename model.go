package c3tconv

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
)

// Version is a c3t/c3b format version.
type Version struct {
	Major uint16
	Minor uint16
}

// ExpectedVersion is the only c3t version this build accepts.
var ExpectedVersion = Version{Major: 0, Minor: 7}

func (v Version) String() string {
	return strconv.Itoa(int(v.Major)) + "." + strconv.Itoa(int(v.Minor))
}

// ExportPart selects which subset of a Model the packaged artifact contains.
type ExportPart int

const (
	ExportAll ExportPart = iota
	ExportModel
	ExportAnimation
)

// TrackKind tags the variant of a NodeTrack. Bone tracks are the only variant.
type TrackKind int

const (
	TrackBone TrackKind = iota
)

func (k TrackKind) String() string {
	switch k {
	case TrackBone:
		return "bone"
	default:
		return "unknown"
	}
}

// Keyframe is one time-stamped pose sample. A channel's Has* flag is true iff
// the channel was supplied as a non-empty array.
type Keyframe struct {
	Time        float32
	Rotation    mgl32.Quat // unit quaternion; source order x,y,z,w
	Scale       mgl32.Vec3
	Translation mgl32.Vec3

	HasRotation    bool
	HasScale       bool
	HasTranslation bool
}

// NodeTrack is an animation track bound to one skeletal node.
type NodeTrack struct {
	Kind      TrackKind
	NodeID    string
	Keyframes []Keyframe
}

// Animation is one named clip. Track order is document order.
type Animation struct {
	ID     string
	Length float32
	Tracks []NodeTrack
}

// Model is the root aggregate produced by ParseDocument.
type Model struct {
	Version    Version
	Export     ExportPart
	Animations []Animation
}

// Stats summarizes a Model for reporting.
type Stats struct {
	Animations int
	Tracks     int
	Keyframes  int
}

// Stats counts animations, tracks and keyframes.
func (m *Model) Stats() Stats {
	s := Stats{Animations: len(m.Animations)}
	for _, a := range m.Animations {
		s.Tracks += len(a.Tracks)
		for _, t := range a.Tracks {
			s.Keyframes += len(t.Keyframes)
		}
	}
	return s
}

// borrowAnimations takes the full animation list for a scoped substitution and
// returns it together with the func that puts it back. Callers defer restore so
// that it runs on every exit path.
func (m *Model) borrowAnimations() (all []Animation, restore func()) {
	all = m.Animations
	return all, func() { m.Animations = all }
}
