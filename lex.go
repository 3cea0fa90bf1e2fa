package optly

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	dotTerminatorToken = iota
	indexBlockToken
)

var (
	dotTerminatorMatcher = parsly.NewToken(dotTerminatorToken, "dot", matcher.NewTerminator('.', true))
	indexBlockMatcher    = parsly.NewToken(indexBlockToken, "[ .... ]", matcher.NewBlock('[', ']', '\\'))
)
