package c3tconv

import "github.com/go-gl/mathgl/mgl32"

// buildKeyframe validates one keyframe entry. Checks run in a fixed order:
// object shape, channel types, keytime, channel lengths.
func buildKeyframe(v any, p PathRef) (Keyframe, error) {
	obj, err := asObject(v, p)
	if err != nil {
		return Keyframe{}, err
	}

	rot, hasRot, err := optionalArray(obj, fieldRotation, p)
	if err != nil {
		return Keyframe{}, err
	}
	scale, hasScale, err := optionalArray(obj, fieldScale, p)
	if err != nil {
		return Keyframe{}, err
	}
	trans, hasTrans, err := optionalArray(obj, fieldTranslation, p)
	if err != nil {
		return Keyframe{}, err
	}

	keytime, err := requireNumber(obj, fieldKeytime, p)
	if err != nil {
		return Keyframe{}, err
	}

	if err := checkLength(rot, hasRot, 4, p.Field(fieldRotation)); err != nil {
		return Keyframe{}, err
	}
	if err := checkLength(scale, hasScale, 3, p.Field(fieldScale)); err != nil {
		return Keyframe{}, err
	}
	if err := checkLength(trans, hasTrans, 3, p.Field(fieldTranslation)); err != nil {
		return Keyframe{}, err
	}

	kf := Keyframe{
		Time:           float32(keytime),
		HasRotation:    len(rot) > 0,
		HasScale:       len(scale) > 0,
		HasTranslation: len(trans) > 0,
	}
	if kf.HasRotation {
		var xyzw [4]float32
		components(rot, xyzw[:])
		kf.Rotation = mgl32.Quat{W: xyzw[3], V: mgl32.Vec3{xyzw[0], xyzw[1], xyzw[2]}}
	}
	if kf.HasScale {
		components(scale, kf.Scale[:])
	}
	if kf.HasTranslation {
		components(trans, kf.Translation[:])
	}
	return kf, nil
}
