// Package observe instruments component builders by composition: a wrapped
// builder delegates to the original and records every instance it produces,
// without changing the original's observable behavior.
package observe

// Wrap returns a builder with the same signature that appends every
// successfully produced value to rec, in call order. A failed construction
// appends nothing and its error propagates unchanged. The produced value is
// returned exactly as the unwrapped builder returned it, so wrapping is
// strictly observational.
func Wrap[A, T any](rec *Recorder, build func(A) (T, error)) func(A) (T, error) {
	return func(arg A) (T, error) {
		out, err := build(arg)
		if err != nil {
			return out, err
		}
		rec.Append(out)
		return out, nil
	}
}

// WrapNamed applies Wrap across a named builder set. Builders whose name is
// on the exclusion list are carried over verbatim; the map keys keep each
// builder's name attached to its wrapper for diagnostics.
func WrapNamed[M ~map[string]F, F ~func(A) (T, error), A, T any](rec *Recorder, builders M, exclude ...string) M {
	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excluded[name] = true
	}

	wrapped := make(M, len(builders))
	for name, build := range builders {
		if excluded[name] {
			wrapped[name] = build
			continue
		}
		wrapped[name] = F(Wrap[A, T](rec, build))
	}
	return wrapped
}
