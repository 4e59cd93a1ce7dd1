// Package checkers provides quicktest checkers shared by the test suites.
package checkers

import (
	"encoding/json"
	"fmt"
	"reflect"

	qt "github.com/frankban/quicktest"
	"github.com/yalp/jsonpath"
)

// JSONPathEquals returns a checker asserting that evaluating path against the
// got value (a JSON string, raw bytes, or an already-decoded document)
// yields the want argument.
func JSONPathEquals(path string) qt.Checker {
	return &jsonPathChecker{path: path}
}

type jsonPathChecker struct {
	path string
}

// ArgNames implements qt.Checker.
func (c *jsonPathChecker) ArgNames() []string {
	return []string{"got", "want"}
}

// Check implements qt.Checker.
func (c *jsonPathChecker) Check(got any, args []any, note func(key string, value any)) error {
	var doc any
	switch v := got.(type) {
	case string:
		if err := json.Unmarshal([]byte(v), &doc); err != nil {
			return fmt.Errorf("got value is not valid JSON: %w", err)
		}
	case []byte:
		if err := json.Unmarshal(v, &doc); err != nil {
			return fmt.Errorf("got value is not valid JSON: %w", err)
		}
	default:
		doc = v
	}

	val, err := jsonpath.Read(doc, c.path)
	if err != nil {
		return fmt.Errorf("evaluate %q: %w", c.path, err)
	}

	note("jsonpath", c.path)
	note("value at path", val)
	if !reflect.DeepEqual(val, args[0]) {
		return fmt.Errorf("value at %q does not equal want", c.path)
	}
	return nil
}
