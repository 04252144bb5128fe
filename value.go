package c3tconv

import "strconv"

// Field names of the c3t document.
const (
	fieldVersion     = "version"
	fieldAnimations  = "animations"
	fieldID          = "id"
	fieldLength      = "length"
	fieldBones       = "bones"
	fieldBoneID      = "boneId"
	fieldKeyframes   = "keyframes"
	fieldKeytime     = "keytime"
	fieldRotation    = "rotation"
	fieldScale       = "scale"
	fieldTranslation = "translation"
)

// Helpers over the decoded generic tree. Each one reports the first violation
// at the given path and never inspects anything else.

func asObject(v any, p PathRef) (map[string]any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, violation(p, CodeInvalidType, map[string]string{"want": "object"})
	}
	return obj, nil
}

func requireArray(obj map[string]any, key string, p PathRef) ([]any, error) {
	v, ok := obj[key]
	if !ok {
		return nil, violation(p.Field(key), CodeRequired, nil)
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, violation(p.Field(key), CodeInvalidType, map[string]string{"want": "array"})
	}
	return arr, nil
}

func requireString(obj map[string]any, key string, p PathRef) (string, error) {
	v, ok := obj[key]
	if !ok {
		return "", violation(p.Field(key), CodeRequired, nil)
	}
	s, ok := v.(string)
	if !ok {
		return "", violation(p.Field(key), CodeInvalidType, map[string]string{"want": "string"})
	}
	return s, nil
}

func requireNumber(obj map[string]any, key string, p PathRef) (float64, error) {
	v, ok := obj[key]
	if !ok {
		return 0, violation(p.Field(key), CodeRequired, nil)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, violation(p.Field(key), CodeInvalidType, map[string]string{"want": "number"})
	}
	return f, nil
}

// optionalArray returns (nil, false) when key is absent. A present key must
// hold an array.
func optionalArray(obj map[string]any, key string, p PathRef) ([]any, bool, error) {
	v, ok := obj[key]
	if !ok {
		return nil, false, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, true, violation(p.Field(key), CodeInvalidType, map[string]string{"want": "array"})
	}
	return arr, true, nil
}

func checkLength(arr []any, present bool, want int, p PathRef) error {
	if present && len(arr) != want {
		return violation(p, CodeInvalidLength, map[string]string{"want": strconv.Itoa(want), "got": strconv.Itoa(len(arr))})
	}
	return nil
}

// components narrows each element to float32. Non-numeric elements read as
// zero; only the array length is part of the contract.
func components(arr []any, dst []float32) {
	for i := range dst {
		if f, ok := arr[i].(float64); ok {
			dst[i] = float32(f)
		}
	}
}
