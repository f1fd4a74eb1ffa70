package compat

import (
	_ "embed"
	"fmt"
)

//go:embed builtin.yaml
var builtinYAML []byte

var builtin Matrix

func init() {
	m, err := ParseMatrix(builtinYAML)
	if err != nil {
		panic(fmt.Sprintf("compat: builtin matrix is invalid: %v", err))
	}
	builtin = m
}

// Builtin returns the curated matrix shipped with the package. Callers
// must treat it as read-only; use Merge to extend it.
func Builtin() Matrix { return builtin }
