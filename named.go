package binarch

// Named pairs a value with a label. The binary format has no textual
// structure, so the name never reaches the stream; the pair exists so code
// shared with self-describing encoders can keep its annotations without
// changing the bytes this package produces.
type Named[T any] struct {
	Name  string
	Value T
}

// MakeNamed wraps v under name.
func MakeNamed[T any](name string, v T) Named[T] {
	return Named[T]{Name: name, Value: v}
}

// WriteNamed serializes nv.Value through Write; the name is dropped.
func WriteNamed[T Scalar](w *Writer, nv Named[T]) error {
	return Write(w, nv.Value)
}

// ReadNamed reads a value into nv.Value, leaving nv.Name untouched.
func ReadNamed[T Scalar](r *Reader, nv *Named[T]) error {
	v, err := Read[T](r)
	if err != nil {
		return err
	}
	nv.Value = v
	return nil
}
