package optly

import (
	"bytes"
	"strconv"

	"github.com/viant/parsly"
)

type (
	pathStep struct {
		key     string
		index   int
		indexed bool
	}

	pathSteps []pathStep
)

// Lookup traverses a dotted path expression with optional index blocks,
// i.e. "items[0].name" or "values['a.b'].id". Like Get, Lookup is total:
// any step over an absent or non matching value yields an absent handle.
func (h *Handle) Lookup(expr string) *Handle {
	result := h
	for _, step := range parsePath(expr) {
		if step.indexed {
			result = result.At(step.index)
			continue
		}
		result = result.Get(step.key)
	}
	return result
}

func parsePath(expr string) pathSteps {
	var result pathSteps
	cursor := parsly.NewCursor("", []byte(expr), 0)
	for cursor.Pos < len(cursor.Input) {
		result = append(result, matchStep(cursor)...)
	}
	return result
}

func matchStep(cursor *parsly.Cursor) pathSteps {
	if cursor.Input[cursor.Pos] == '[' {
		match := cursor.MatchAny(indexBlockMatcher)
		if match.Code != indexBlockToken { //unterminated block, nothing more to match
			cursor.Pos = len(cursor.Input)
			return nil
		}
		fragment := match.Text(cursor)
		skipDot(cursor)
		return pathSteps{indexStep(fragment[1 : len(fragment)-1])}
	}
	dotIndex := bytes.IndexByte(cursor.Input[cursor.Pos:], '.')
	blockIndex := bytes.IndexByte(cursor.Input[cursor.Pos:], '[')
	if dotIndex != -1 && (blockIndex == -1 || dotIndex < blockIndex) {
		match := cursor.MatchAny(dotTerminatorMatcher)
		if match.Code == dotTerminatorToken {
			key := match.Text(cursor)
			key = key[:len(key)-1] //exclude .
			return pathSteps{{key: key}}
		}
	}
	if blockIndex != -1 {
		key := string(cursor.Input[cursor.Pos : cursor.Pos+blockIndex])
		cursor.Pos += blockIndex
		return pathSteps{{key: key}}
	}
	key := string(cursor.Input[cursor.Pos:])
	cursor.Pos = len(cursor.Input)
	return pathSteps{{key: key}}
}

func skipDot(cursor *parsly.Cursor) {
	if cursor.Pos < len(cursor.Input) && cursor.Input[cursor.Pos] == '.' {
		cursor.Pos++
	}
}

func indexStep(fragment string) pathStep {
	if len(fragment) > 1 {
		switch fragment[0] {
		case '\'', '"':
			if fragment[len(fragment)-1] == fragment[0] {
				return pathStep{key: fragment[1 : len(fragment)-1]}
			}
		}
	}
	if index, err := strconv.Atoi(fragment); err == nil {
		return pathStep{index: index, indexed: true}
	}
	return pathStep{key: fragment}
}
