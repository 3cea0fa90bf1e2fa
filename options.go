package optly

import (
	"reflect"
	"strings"

	"github.com/viant/tagly/format"
	"github.com/viant/tagly/format/text"
)

const formatTag = "format"

type (
	options struct {
		caseFormat text.CaseFormat
		tagNames   []string
		getNames   func(name string, tag reflect.StructTag) []string
	}

	//Option represents traversal option
	Option func(o *options)
)

func newOptions(opts []Option) *options {
	result := &options{}
	for _, opt := range opts {
		opt(result)
	}
	if result.getNames == nil {
		result.getNames = func(name string, tag reflect.StructTag) []string {
			return []string{name}
		}
	}
	return result
}

// fieldNames returns candidate lookup names for a struct field.
func (o *options) fieldNames(name string, tag reflect.StructTag) []string {
	names := o.getNames(name, tag)
	if o.caseFormat != "" {
		src := text.DetectCaseFormat(name)
		if !src.IsDefined() {
			src = text.CaseFormatUpperCamel
		}
		names = append(names, src.Format(name, o.caseFormat))
	}
	for _, tagName := range o.tagNames {
		if tagName == formatTag {
			if fTag, _ := format.Parse(tag); fTag != nil && fTag.Name != "" {
				names = append(names, fTag.Name)
			}
			continue
		}
		value, ok := tag.Lookup(tagName)
		if !ok {
			continue
		}
		if index := strings.Index(value, ","); index != -1 {
			value = value[:index]
		}
		if value != "" && value != "-" {
			names = append(names, value)
		}
	}
	return names
}

// WithCaseFormat returns an option matching struct fields against keys
// expressed in the supplied case format, i.e. lookup of "user_name" with
// text.CaseFormatLowerUnderscore reaches the UserName field.
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(o *options) {
		o.caseFormat = caseFormat
	}
}

// WithTagNames returns an option matching struct fields also by the names
// their tags declare, i.e. WithTagNames("json") honours `json:"city"`.
// The "format" tag is parsed with the format tag grammar.
func WithTagNames(names ...string) Option {
	return func(o *options) {
		o.tagNames = names
	}
}

// WithCustomizedNames returns an option with customized names used by the
// struct field matcher.
func WithCustomizedNames(fn func(name string, tag reflect.StructTag) []string) Option {
	return func(o *options) {
		o.getNames = fn
	}
}
