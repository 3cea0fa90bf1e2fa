package optly

import "github.com/francoispqt/gojay"

// FromJSON decodes a JSON document into a dynamic value tree and wraps it.
// A decode failure is the only possible error; traversal of the result
// follows the usual absence rules.
func FromJSON(data []byte, opts ...Option) (*Handle, error) {
	var value interface{}
	if err := gojay.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return Wrap(value, opts...), nil
}
