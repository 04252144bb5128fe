package c3tconv

func buildAnimation(v any, p PathRef) (Animation, error) {
	obj, err := asObject(v, p)
	if err != nil {
		return Animation{}, err
	}
	bones, err := requireArray(obj, fieldBones, p)
	if err != nil {
		return Animation{}, err
	}
	id, err := requireString(obj, fieldID, p)
	if err != nil {
		return Animation{}, err
	}
	length, err := requireNumber(obj, fieldLength, p)
	if err != nil {
		return Animation{}, err
	}

	bp := p.Field(fieldBones)
	tracks := make([]NodeTrack, 0, len(bones))
	for i, b := range bones {
		t, err := buildNodeTrack(b, bp.Index(i))
		if err != nil {
			return Animation{}, err
		}
		tracks = append(tracks, t)
	}
	return Animation{ID: id, Length: float32(length), Tracks: tracks}, nil
}

// buildAnimations builds every entry in document order and stops at the first
// failure.
func buildAnimations(entries []any, p PathRef) ([]Animation, error) {
	out := make([]Animation, 0, len(entries))
	for i, e := range entries {
		a, err := buildAnimation(e, p.Index(i))
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
