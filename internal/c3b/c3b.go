// Package c3b encodes a c3tconv.Model into the binary c3b bundle read by the
// runtime. Only the animations section is produced.
//
// # Layout
//
// All integers and floats are little-endian; strings are a uint32 byte length
// followed by UTF-8 bytes.
//
//	magic       "C3B\x00"
//	version     uint8 major, uint8 minor
//	refCount    uint32
//	ref         string id, uint32 type, uint32 offset   (refCount times)
//	animations  uint32 count, then per animation:
//	              string id, float32 length, uint32 trackCount
//	              per track: string boneId, uint32 keyframeCount
//	              per keyframe: float32 time, uint8 flags,
//	                rotation x,y,z,w (flags&1), scale x,y,z (flags&2),
//	                translation x,y,z (flags&4)
package c3b

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/reoring/c3tconv"
	"github.com/reoring/c3tconv/internal/fsx"
)

// Magic opens every c3b file.
var Magic = [4]byte{'C', '3', 'B', 0}

// Reference types of the bundle table.
const (
	TypeScene      uint32 = 1
	TypeNode       uint32 = 2
	TypeAnimations uint32 = 3
)

// AnimationsRefID names the animations entry of the reference table.
const AnimationsRefID = "animations"

// Keyframe channel flags.
const (
	FlagRotation    uint8 = 1 << 0
	FlagScale       uint8 = 1 << 1
	FlagTranslation uint8 = 1 << 2
)

var (
	ErrNoModel           = errors.New("c3b: no model registered")
	ErrUnsupportedExport = errors.New("c3b: only animation export is supported")
)

// File is a c3tconv.Writer producing c3b artifacts on disk.
type File struct {
	model *c3tconv.Model
}

// NewFile returns an empty File.
func NewFile() *File { return &File{} }

// Register associates m with the next write. It replaces any earlier model.
func (f *File) Register(m *c3tconv.Model) { f.model = m }

// WriteToPath encodes the registered model and writes it atomically to path.
func (f *File) WriteToPath(path string) error {
	b, err := f.Bytes()
	if err != nil {
		return err
	}
	return fsx.WriteFileAtomic(path, b, 0o644)
}

// Bytes encodes the registered model.
func (f *File) Bytes() ([]byte, error) {
	if f.model == nil {
		return nil, ErrNoModel
	}
	return Encode(f.model)
}

// Encode serializes m. The model's animation list is read as it is at call time.
func Encode(m *c3tconv.Model) ([]byte, error) {
	if m.Export != c3tconv.ExportAnimation {
		return nil, ErrUnsupportedExport
	}
	if m.Version.Major > math.MaxUint8 || m.Version.Minor > math.MaxUint8 {
		return nil, fmt.Errorf("c3b: version %s does not fit the header", m.Version)
	}

	e := &encoder{}
	e.buf.Write(Magic[:])
	e.u8(uint8(m.Version.Major))
	e.u8(uint8(m.Version.Minor))

	e.u32(1)
	e.str(AnimationsRefID)
	e.u32(TypeAnimations)
	offsetAt := e.buf.Len()
	e.u32(0) // patched below

	binary.LittleEndian.PutUint32(e.buf.Bytes()[offsetAt:], uint32(e.buf.Len()))
	e.animations(m.Animations)
	if e.err != nil {
		return nil, e.err
	}
	return e.buf.Bytes(), nil
}

type encoder struct {
	buf bytes.Buffer
	err error
}

func (e *encoder) animations(anims []c3tconv.Animation) {
	e.count(len(anims))
	for _, a := range anims {
		e.str(a.ID)
		e.f32(a.Length)
		e.count(len(a.Tracks))
		for _, t := range a.Tracks {
			e.str(t.NodeID)
			e.count(len(t.Keyframes))
			for _, k := range t.Keyframes {
				e.keyframe(k)
			}
		}
	}
}

func (e *encoder) keyframe(k c3tconv.Keyframe) {
	e.f32(k.Time)
	var flags uint8
	if k.HasRotation {
		flags |= FlagRotation
	}
	if k.HasScale {
		flags |= FlagScale
	}
	if k.HasTranslation {
		flags |= FlagTranslation
	}
	e.u8(flags)
	if k.HasRotation {
		e.f32(k.Rotation.V[0])
		e.f32(k.Rotation.V[1])
		e.f32(k.Rotation.V[2])
		e.f32(k.Rotation.W)
	}
	if k.HasScale {
		e.vec3(k.Scale)
	}
	if k.HasTranslation {
		e.vec3(k.Translation)
	}
}

func (e *encoder) vec3(v [3]float32) {
	e.f32(v[0])
	e.f32(v[1])
	e.f32(v[2])
}

func (e *encoder) count(n int) {
	if uint64(n) > math.MaxUint32 {
		e.err = fmt.Errorf("c3b: count %d overflows uint32", n)
		return
	}
	e.u32(uint32(n))
}

func (e *encoder) str(s string) {
	e.count(len(s))
	e.buf.WriteString(s)
}

func (e *encoder) u8(v uint8)    { e.buf.WriteByte(v) }
func (e *encoder) u32(v uint32)  { _ = binary.Write(&e.buf, binary.LittleEndian, v) }
func (e *encoder) f32(v float32) { e.u32(math.Float32bits(v)) }
