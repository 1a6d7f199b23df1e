package jsonvalue

// Validator is a jsonstream.Handler that discards all content and
// tracks only nesting balance. It's the right Handler for an "is this
// valid JSON" check: it allocates nothing on the value side, unlike
// Builder, which is the point of keeping the two separate (generalized
// from the teacher's own habit of calling Parse purely for its error
// return and throwing away the resulting Value).
type Validator struct {
	depth int
}

// NewValidator returns a Handler suitable for checking well-formedness
// without building a value tree.
func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) OnObjectBegin() error { v.depth++; return nil }
func (v *Validator) OnObjectEnd() error   { v.depth--; return nil }
func (v *Validator) OnArrayBegin() error  { v.depth++; return nil }
func (v *Validator) OnArrayEnd() error    { v.depth--; return nil }

func (v *Validator) OnStringBegin() error          { return nil }
func (v *Validator) OnStringPiece(_ []byte) error  { return nil }
func (v *Validator) OnStringEnd() error            { return nil }
func (v *Validator) OnNumber(_ bool, _, _, _ int64) error { return nil }
func (v *Validator) OnTrue() error                 { return nil }
func (v *Validator) OnFalse() error                { return nil }
func (v *Validator) OnNull() error                 { return nil }

// Depth reports the current nesting depth (0 once the document, if
// any, has fully closed).
func (v *Validator) Depth() int {
	return v.depth
}
