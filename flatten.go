package docshift

import (
	"fmt"
	"reflect"
	"strconv"
)

// Flatten converts a nested document into a flat ordered D whose keys are
// dot-joined paths and whose values are exclusively the document's leaf
// scalars, in depth-first traversal order:
//
//	{"a": {"b": 1, "c": [2, 3]}}  ->  {"a.b": 1, "a.c.0": 2, "a.c.1": 3}
//
// Mapping children extend the path with their key, sequence children with
// the decimal form of their index. Leaf values are recorded verbatim, with
// no type coercion. The root must be a mapping or a sequence.
//
// Documents are tree-shaped by construction. A value reached twice along one
// traversal path means the input contains a cycle; Flatten fails fast with
// ErrMalformedDocument instead of recursing forever.
func Flatten(doc any) (D, error) {
	if !isContainer(doc) {
		return nil, fmt.Errorf("flatten: root must be a mapping or sequence, got %T: %w", doc, ErrMalformedDocument)
	}
	fl := &flattener{seen: make(map[containerID]struct{})}
	if err := fl.walk("", doc); err != nil {
		return nil, err
	}
	return fl.out, nil
}

// containerID identifies a container by its backing array so revisits along
// the current traversal path can be detected. Data pointer alone is not
// enough: a prefix slice shares its base with the full slice.
type containerID struct {
	ptr uintptr
	len int
}

type flattener struct {
	out  D
	seen map[containerID]struct{}
}

func (fl *flattener) walk(prefix string, v any) error {
	if s, ok := asSequence(v); ok {
		v = s
	}
	if id, ok := identify(v); ok {
		if _, revisit := fl.seen[id]; revisit {
			return fmt.Errorf("flatten: cycle at path %q: %w", prefix, ErrMalformedDocument)
		}
		fl.seen[id] = struct{}{}
		defer delete(fl.seen, id)
	}

	switch t := v.(type) {
	case D:
		for _, e := range t {
			if err := fl.enter(prefix, e.Key, e.Value); err != nil {
				return err
			}
		}
	case A:
		for i, elem := range t {
			if err := fl.enter(prefix, strconv.Itoa(i), elem); err != nil {
				return err
			}
		}
	}
	return nil
}

func (fl *flattener) enter(prefix, key string, v any) error {
	path := key
	if prefix != "" {
		path = prefix + "." + key
	}
	if isContainer(v) {
		return fl.walk(path, v)
	}
	if !isScalar(v) {
		return fmt.Errorf("flatten: unsupported value kind %T at path %q: %w", v, path, ErrMalformedDocument)
	}
	fl.out = append(fl.out, E{Key: path, Value: v})
	return nil
}

func identify(v any) (containerID, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.Len() == 0 {
		return containerID{}, false
	}
	return containerID{ptr: rv.Pointer(), len: rv.Len()}, true
}
