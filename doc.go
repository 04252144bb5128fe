// Package c3tconv converts c3t animation documents into the in-memory Model
// that the c3b writer packages for the runtime.
//
// It provides:
//
// - A strict, fail-fast builder for the c3t document (version, animations,
// bone tracks, keyframes) returning a fully built Model or a classified *Error
// - A stable error model via *Error (Kind, code, JSON Pointer, message)
// - Output orchestration that writes all animations to one artifact or one
// artifact per animation through a Writer
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - The root package never logs and never touches the filesystem itself.
// - Builders attach children to a parent only after every child succeeded.
//
// Typical usage:
//
//	m, err := c3tconv.ParseDocument(data)
//	if err != nil {
//		switch c3tconv.KindOf(err) { ... }
//	}
//	err = c3tconv.WriteSplit(m, "out.c3b", c3b.NewFile())
package c3tconv
