package ui

// Prop is a value the caller may or may not supply. The zero Prop is unset.
type Prop[V any] struct {
	value V
	set   bool
}

// Some returns a set Prop holding v.
func Some[V any](v V) Prop[V] {
	return Prop[V]{value: v, set: true}
}

// Get returns the value and whether it was supplied.
func (p Prop[V]) Get() (V, bool) {
	return p.value, p.set
}

func (p Prop[V]) IsSet() bool { return p.set }

// ValueResolver decides what a field displays. A field is controlled when
// the caller supplies a value; it then always shows that value and the
// internal state is never written. Otherwise the field shows its internal
// state, seeded once from the default value and updated only by Commit.
type ValueResolver[V any] struct {
	component string
	internal  V
	warned    bool
}

// NewValueResolver seeds the internal state from defaultValue, or zero.
func NewValueResolver[V any](component string, defaultValue Prop[V], zero V) *ValueResolver[V] {
	r := &ValueResolver[V]{component: component, internal: zero}
	if v, ok := defaultValue.Get(); ok {
		r.internal = v
	}
	return r
}

// Controlled reports whether value puts the field in controlled mode.
func (r *ValueResolver[V]) Controlled(value Prop[V]) bool {
	return value.IsSet()
}

// Current returns the display value.
func (r *ValueResolver[V]) Current(value Prop[V]) V {
	if v, ok := value.Get(); ok {
		return v
	}
	return r.internal
}

// Resolve is Current plus the misuse check run on every render. Supplying
// both value and defaultValue logs a warning once per field; value wins.
func (r *ValueResolver[V]) Resolve(value, defaultValue Prop[V], attrs ...any) V {
	if value.IsSet() && defaultValue.IsSet() && !r.warned {
		r.warned = true
		warn(r.component+" should not receive both value and defaultValue", attrs...)
	}
	return r.Current(value)
}

// Commit stores next as the internal value unless the field is controlled.
// It reports whether the internal value changed hands.
func (r *ValueResolver[V]) Commit(value Prop[V], next V) bool {
	if r.Controlled(value) {
		return false
	}
	r.internal = next
	return true
}
