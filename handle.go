package optly

type (
	//Handle represents a single traversal step: a candidate value combined
	//with the key that produced it. A handle is an immutable snapshot; every
	//lookup derives a fresh handle and absence propagates forward until a
	//terminal call supplies a default.
	Handle struct {
		value   interface{}
		label   interface{}
		options *options
	}
)

// Wrap creates a root traversal handle over the supplied value.
// The value may be of any kind, nil included; Wrap never fails.
func Wrap(value interface{}, opts ...Option) *Handle {
	return &Handle{value: value, options: newOptions(opts)}
}

func (h *Handle) wrap(value, label interface{}) *Handle {
	return &Handle{value: value, label: label, options: h.options}
}

// Get returns a handle over the value at key. Mapping, sequence and struct
// kinds are read by key; any other kind, an absent container or a missing
// key yields an absent handle. Get never fails, at any chain depth.
func (h *Handle) Get(key string) *Handle {
	return h.wrap(h.lookup(key), key)
}

// At returns a handle over the sequence item at index; it also serves
// integer keyed maps. An out of range index yields an absent handle.
func (h *Handle) At(index int) *Handle {
	return h.wrap(h.item(index), index)
}

// Len returns a handle over the sequence size, following the same rule as
// Get: an absent or non sequence value yields an absent length.
func (h *Handle) Len() *Handle {
	return h.Get(lengthKey)
}

// Value resolves the handle: the wrapped value unchanged when present,
// otherwise the supplied default, otherwise nil. Value never fails.
func (h *Handle) Value(defaultValue ...interface{}) interface{} {
	if !isAbsent(h.value) {
		return h.value
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return nil
}

// Has reports whether the wrapped value is present.
func (h *Handle) Has() bool {
	return !isAbsent(h.value)
}

// Expect returns the wrapped value or a *NotSetError when absent, carrying
// the supplied message or one generated from the key that produced this
// handle. This is the only operation in the package that can fail.
func (h *Handle) Expect(message ...string) (interface{}, error) {
	if !isAbsent(h.value) {
		return h.value, nil
	}
	err := &NotSetError{Label: h.label}
	if len(message) > 0 {
		err.message = message[0]
	}
	return nil, err
}
