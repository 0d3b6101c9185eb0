package fftypes

import "reflect"

// Complex is the type constraint for complex element types supported by
// the transforms.
type Complex interface {
	~complex64 | ~complex128
}

// Float is the type constraint for real element types used by
// real-to-complex and complex-to-real transforms.
type Float interface {
	~float32 | ~float64
}

// Element is the union of all element types a view may hold.
type Element interface {
	Complex | Float
}

// ElementKind tags a view's element type as real- or complex-valued.
// The kind determines which size relationship the innermost transformed
// axis must satisfy (half-spectrum for mixed kinds, none for
// complex-to-complex).
type ElementKind uint8

const (
	KindReal ElementKind = iota
	KindComplex
)

// String returns a human-readable name for the element kind.
func (k ElementKind) String() string {
	switch k {
	case KindReal:
		return "real"
	case KindComplex:
		return "complex"
	default:
		return "unknown"
	}
}

// KindOf returns the element kind for the type parameter T. The
// constraints admit defined types (~float32 and friends), so the
// classification goes through the underlying reflect kind rather than
// a type switch on the builtins.
func KindOf[T Element]() ElementKind {
	var zero T

	switch reflect.TypeOf(zero).Kind() {
	case reflect.Float32, reflect.Float64:
		return KindReal
	default:
		return KindComplex
	}
}
