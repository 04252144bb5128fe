package c3b

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"

	"github.com/reoring/c3tconv"
)

// reader is the test-side inverse of encoder.
type reader struct {
	t *testing.T
	r *bytes.Reader
}

func (r *reader) u8() uint8 {
	b, err := r.r.ReadByte()
	if err != nil {
		r.t.Fatalf("read u8: %v", err)
	}
	return b
}

func (r *reader) u32() uint32 {
	var v uint32
	if err := binary.Read(r.r, binary.LittleEndian, &v); err != nil {
		r.t.Fatalf("read u32: %v", err)
	}
	return v
}

func (r *reader) f32() float32 { return math.Float32frombits(r.u32()) }

func (r *reader) str() string {
	n := r.u32()
	b := make([]byte, n)
	if _, err := r.r.Read(b); err != nil && n > 0 {
		r.t.Fatalf("read str: %v", err)
	}
	return string(b)
}

func decode(t *testing.T, b []byte) *c3tconv.Model {
	t.Helper()
	r := &reader{t: t, r: bytes.NewReader(b)}
	var magic [4]byte
	for i := range magic {
		magic[i] = r.u8()
	}
	if magic != Magic {
		t.Fatalf("bad magic %q", magic[:])
	}
	m := &c3tconv.Model{Export: c3tconv.ExportAnimation}
	m.Version.Major = uint16(r.u8())
	m.Version.Minor = uint16(r.u8())
	if n := r.u32(); n != 1 {
		t.Fatalf("expected 1 ref, got %d", n)
	}
	if id := r.str(); id != AnimationsRefID {
		t.Fatalf("unexpected ref id %q", id)
	}
	if typ := r.u32(); typ != TypeAnimations {
		t.Fatalf("unexpected ref type %d", typ)
	}
	off := r.u32()
	if pos := int64(len(b)) - int64(r.r.Len()); pos != int64(off) {
		t.Fatalf("offset %d does not point at section start %d", off, pos)
	}
	m.Animations = make([]c3tconv.Animation, r.u32())
	for i := range m.Animations {
		a := &m.Animations[i]
		a.ID = r.str()
		a.Length = r.f32()
		a.Tracks = make([]c3tconv.NodeTrack, r.u32())
		for j := range a.Tracks {
			tr := &a.Tracks[j]
			tr.NodeID = r.str()
			tr.Keyframes = make([]c3tconv.Keyframe, r.u32())
			for k := range tr.Keyframes {
				kf := &tr.Keyframes[k]
				kf.Time = r.f32()
				flags := r.u8()
				if flags&FlagRotation != 0 {
					kf.HasRotation = true
					x, y, z, w := r.f32(), r.f32(), r.f32(), r.f32()
					kf.Rotation = mgl32.Quat{W: w, V: mgl32.Vec3{x, y, z}}
				}
				if flags&FlagScale != 0 {
					kf.HasScale = true
					kf.Scale = mgl32.Vec3{r.f32(), r.f32(), r.f32()}
				}
				if flags&FlagTranslation != 0 {
					kf.HasTranslation = true
					kf.Translation = mgl32.Vec3{r.f32(), r.f32(), r.f32()}
				}
			}
		}
	}
	if r.r.Len() != 0 {
		t.Fatalf("%d trailing bytes", r.r.Len())
	}
	return m
}

func sampleModel() *c3tconv.Model {
	return &c3tconv.Model{
		Version: c3tconv.Version{Major: 0, Minor: 7},
		Export:  c3tconv.ExportAnimation,
		Animations: []c3tconv.Animation{{
			ID:     "walk",
			Length: 1.5,
			Tracks: []c3tconv.NodeTrack{
				{NodeID: "hip", Keyframes: []c3tconv.Keyframe{
					{Time: 0, HasTranslation: true, Translation: mgl32.Vec3{1, 2, 3}},
					{Time: 0.5, HasRotation: true, Rotation: mgl32.Quat{W: 1, V: mgl32.Vec3{0.1, 0.2, 0.3}},
						HasScale: true, Scale: mgl32.Vec3{1, 1, 2}},
				}},
				{NodeID: "knee", Keyframes: []c3tconv.Keyframe{}},
			},
		}},
	}
}

func TestEncode_LayoutMatchesModel(t *testing.T) {
	m := sampleModel()
	b, err := Encode(m)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got := decode(t, b)
	if diff := cmp.Diff(m, got); diff != "" {
		t.Fatalf("decoded model mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode_HeaderBytes(t *testing.T) {
	b, err := Encode(&c3tconv.Model{Version: c3tconv.Version{Major: 0, Minor: 7}, Export: c3tconv.ExportAnimation})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{'C', '3', 'B', 0, 0, 7}
	if !bytes.HasPrefix(b, want) {
		t.Fatalf("header = % x, want prefix % x", b[:6], want)
	}
	// header(6) + refCount(4) + id(4+10) + type(4) + offset(4) + animCount(4)
	if len(b) != 36 {
		t.Fatalf("empty model length = %d, want 36", len(b))
	}
}

func TestEncode_Rejections(t *testing.T) {
	if _, err := Encode(&c3tconv.Model{Export: c3tconv.ExportAll}); !errors.Is(err, ErrUnsupportedExport) {
		t.Fatalf("expected ErrUnsupportedExport, got %v", err)
	}
	if _, err := Encode(&c3tconv.Model{Export: c3tconv.ExportAnimation, Version: c3tconv.Version{Major: 300}}); err == nil {
		t.Fatalf("expected version overflow error")
	}
	if _, err := NewFile().Bytes(); !errors.Is(err, ErrNoModel) {
		t.Fatalf("expected ErrNoModel, got %v", err)
	}
}

func TestFile_WriteToPath(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.c3b")
	f := NewFile()
	f.Register(sampleModel())
	if err := f.WriteToPath(dst); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got := decode(t, b); len(got.Animations) != 1 || got.Animations[0].ID != "walk" {
		t.Fatalf("unexpected artifact content: %+v", got)
	}
}

func TestFile_RegisterReplacesModel(t *testing.T) {
	f := NewFile()
	f.Register(sampleModel())
	other := sampleModel()
	other.Animations[0].ID = "run"
	f.Register(other)
	b, err := f.Bytes()
	if err != nil {
		t.Fatalf("bytes: %v", err)
	}
	if got := decode(t, b); got.Animations[0].ID != "run" {
		t.Fatalf("expected last registered model, got %q", got.Animations[0].ID)
	}
}

func TestFile_WriteToPath_DirectoryConflictFails(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.c3b")
	if err := os.Mkdir(dst, 0o755); err != nil {
		t.Fatal(err)
	}
	f := NewFile()
	f.Register(sampleModel())
	if err := f.WriteToPath(dst); err == nil {
		t.Fatalf("expected error when destination is a directory")
	}
}
