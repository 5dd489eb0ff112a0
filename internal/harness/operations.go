package harness

import (
	"strmath/internal/config"
	"strmath/pkg/mathx"
	"strmath/pkg/textutil"
)

// Operation is one public entry point a scenario can exercise.
// Exactly one of Text or Int is set.
type Operation struct {
	Name string
	Text func(string) string
	Int  func(a, b int32) int32
}

var operations = map[string]Operation{
	config.OpLTrim: {Name: config.OpLTrim, Text: textutil.LTrim},
	config.OpRTrim: {Name: config.OpRTrim, Text: textutil.RTrim},
	config.OpTrim:  {Name: config.OpTrim, Text: textutil.Trim},
	config.OpAdd:   {Name: config.OpAdd, Int: mathx.Add},
}

// Lookup returns the operation registered under name.
func Lookup(name string) (Operation, bool) {
	op, ok := operations[name]

	return op, ok
}
