package optly

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/tagly/format/text"
)

func TestHandle_StructAccess(t *testing.T) {

	type Address struct {
		City string `json:"city"`
		Zip  string `json:"zip,omitempty"`
	}
	type Item struct {
		Name  string
		Price float64
	}
	type Employee struct {
		FirstName string
		Address   *Address
		Items     []Item
		Ratings   map[int]string
	}

	employee := &Employee{
		FirstName: "John",
		Address:   &Address{City: "Warsaw", Zip: "00-001"},
		Items: []Item{
			{Name: "laptop", Price: 1200.50},
			{Name: "dock", Price: 180},
		},
		Ratings: map[int]string{2: "good"},
	}

	var testCases = []struct {
		description string
		options     []Option
		navigate    func(h *Handle) *Handle
		expect      interface{}
	}{
		{
			description: "field value",
			navigate:    func(h *Handle) *Handle { return h.Get("FirstName") },
			expect:      "John",
		},
		{
			description: "nested ptr field",
			navigate:    func(h *Handle) *Handle { return h.Get("Address").Get("City") },
			expect:      "Warsaw",
		},
		{
			description: "missing field",
			navigate:    func(h *Handle) *Handle { return h.Get("LastName") },
			expect:      nil,
		},
		{
			description: "slice of struct item field",
			navigate:    func(h *Handle) *Handle { return h.Get("Items").At(1).Get("Name") },
			expect:      "dock",
		},
		{
			description: "slice of struct length",
			navigate:    func(h *Handle) *Handle { return h.Get("Items").Len() },
			expect:      2,
		},
		{
			description: "slice of struct out of range",
			navigate:    func(h *Handle) *Handle { return h.Get("Items").At(5).Get("Name") },
			expect:      nil,
		},
		{
			description: "int keyed map item",
			navigate:    func(h *Handle) *Handle { return h.Get("Ratings").At(2) },
			expect:      "good",
		},
		{
			description: "int keyed map item by string key",
			navigate:    func(h *Handle) *Handle { return h.Get("Ratings").Get("2") },
			expect:      "good",
		},
		{
			description: "case format key",
			options:     []Option{WithCaseFormat(text.CaseFormatLowerUnderscore)},
			navigate:    func(h *Handle) *Handle { return h.Get("first_name") },
			expect:      "John",
		},
		{
			description: "case format nested key",
			options:     []Option{WithCaseFormat(text.CaseFormatLowerCamel)},
			navigate:    func(h *Handle) *Handle { return h.Get("address").Get("city") },
			expect:      "Warsaw",
		},
		{
			description: "tag declared key",
			options:     []Option{WithTagNames("json")},
			navigate:    func(h *Handle) *Handle { return h.Get("Address").Get("city") },
			expect:      "Warsaw",
		},
		{
			description: "tag declared key with options suffix",
			options:     []Option{WithTagNames("json")},
			navigate:    func(h *Handle) *Handle { return h.Get("Address").Get("zip") },
			expect:      "00-001",
		},
		{
			description: "customized names",
			options: []Option{WithCustomizedNames(func(name string, _ reflect.StructTag) []string {
				return []string{strings.ToLower(name)}
			})},
			navigate: func(h *Handle) *Handle { return h.Get("firstname") },
			expect:   "John",
		},
	}

	for _, testCase := range testCases {
		handle := testCase.navigate(Wrap(employee, testCase.options...))
		actual := handle.Value()
		if testCase.expect == nil {
			assert.Nil(t, actual, testCase.description)
			continue
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestHandle_StructAbsence(t *testing.T) {
	type Address struct {
		City string
	}
	type Employee struct {
		Address *Address
		Items   []string
	}
	handle := Wrap(&Employee{})
	assert.Nil(t, handle.Get("Address").Get("City").Value())
	assert.EqualValues(t, "n/a", handle.Get("Address").Get("City").Value("n/a"))
	assert.Nil(t, handle.Get("Items").Len().Value())
	assert.Nil(t, handle.Get("Items").At(0).Value())
}

func TestHandle_SequenceKinds(t *testing.T) {
	assert.EqualValues(t, "b", Wrap([3]string{"a", "b", "c"}).At(1).Value())
	assert.EqualValues(t, 3, Wrap([3]string{"a", "b", "c"}).Len().Value())
	assert.EqualValues(t, 200, Wrap([]int{-100, 200, -300}).At(1).Value())
	assert.EqualValues(t, 3, Wrap([]int{-100, 200, -300}).Len().Value())
	assert.Nil(t, Wrap([]int{1}).At(-1).Value())
	assert.Nil(t, Wrap("scalar").Len().Value())
}

func TestHandle_TypedMaps(t *testing.T) {
	assert.EqualValues(t, "v", Wrap(map[string]string{"k": "v"}).Get("k").Value())
	assert.Nil(t, Wrap(map[string]string{"k": ""}).Get("x").Value())
	assert.EqualValues(t, "", Wrap(map[string]string{"k": ""}).Get("k").Value("default"))
	assert.EqualValues(t, 10, Wrap(map[string]int{"k": 10}).Get("k").Value())
	assert.EqualValues(t, false, Wrap(map[string]bool{"k": false}).Get("k").Value())
}
