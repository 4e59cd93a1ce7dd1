package checkers_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/cataloger/internal/checkers"
)

func TestJSONPathEquals_HappyPath(t *testing.T) {
	c := qt.New(t)

	doc := `{"name": "house", "containers": [{"name": "garage"}]}`
	c.Assert(doc, checkers.JSONPathEquals("$.name"), "house")
	c.Assert([]byte(doc), checkers.JSONPathEquals("$.containers[0].name"), "garage")
	c.Assert(map[string]any{"count": 3.0}, checkers.JSONPathEquals("$.count"), 3.0)
}

func TestJSONPathEquals_Mismatch(t *testing.T) {
	c := qt.New(t)

	err := checkers.JSONPathEquals("$.name").Check(`{"name": "house"}`, []any{"garage"}, func(string, any) {})
	c.Assert(err, qt.IsNotNil)
}

func TestJSONPathEquals_InvalidJSON(t *testing.T) {
	c := qt.New(t)

	err := checkers.JSONPathEquals("$.name").Check("{not json", []any{"x"}, func(string, any) {})
	c.Assert(err, qt.IsNotNil)
}
