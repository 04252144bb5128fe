package c3tconv

// buildNodeTrack validates one bone entry and its keyframes in order. The
// first failing keyframe aborts the track; no partial keyframe list escapes.
func buildNodeTrack(v any, p PathRef) (NodeTrack, error) {
	obj, err := asObject(v, p)
	if err != nil {
		return NodeTrack{}, err
	}
	entries, err := requireArray(obj, fieldKeyframes, p)
	if err != nil {
		return NodeTrack{}, err
	}
	boneID, err := requireString(obj, fieldBoneID, p)
	if err != nil {
		return NodeTrack{}, err
	}

	kp := p.Field(fieldKeyframes)
	keyframes := make([]Keyframe, 0, len(entries))
	for i, e := range entries {
		kf, err := buildKeyframe(e, kp.Index(i))
		if err != nil {
			return NodeTrack{}, err
		}
		keyframes = append(keyframes, kf)
	}
	return NodeTrack{Kind: TrackBone, NodeID: boneID, Keyframes: keyframes}, nil
}
