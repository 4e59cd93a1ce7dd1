package render_test

import (
	"bytes"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/cataloger/internal/catalog"
	"github.com/go-ports/cataloger/internal/render"
)

func sampleRows() []render.Row {
	return []render.Row{
		{Name: "hammer", Category: "tools", Location: "house > garage > shelf"},
		{Name: "spoon", Category: "cutlery", Location: "house > kitchen > drawer"},
	}
}

func TestRows_Table(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	c.Assert(render.Rows(&buf, sampleRows(), "table"), qt.IsNil)

	out := buf.String()
	c.Assert(out, qt.Contains, "hammer")
	c.Assert(out, qt.Contains, "house > garage > shelf")
	c.Assert(out, qt.Contains, "(2 objects)")
}

func TestRows_TableEmpty(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	c.Assert(render.Rows(&buf, nil, "table"), qt.IsNil)
	c.Assert(buf.String(), qt.Equals, "(0 objects)\n")
}

func TestRows_JSON(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	c.Assert(render.Rows(&buf, sampleRows(), "json"), qt.IsNil)

	out := buf.String()
	c.Assert(out, qt.Contains, `"name": "hammer"`)
	c.Assert(out, qt.Contains, `"category": "cutlery"`)
	c.Assert(out, qt.Contains, `"location": "house > kitchen > drawer"`)
}

func TestRows_Markdown(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	c.Assert(render.Rows(&buf, sampleRows(), "md"), qt.IsNil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	c.Assert(len(lines), qt.Equals, 4)
	c.Assert(lines[0], qt.Equals, "| Name | Category | Location |")
	c.Assert(lines[1], qt.Equals, "| --- | --- | --- |")
	c.Assert(lines[2], qt.Equals, "| hammer | tools | house > garage > shelf |")
}

func TestTree_HappyPath(t *testing.T) {
	c := qt.New(t)

	house := catalog.NewRoot("house")
	garage := house.AddContainer("garage")
	garage.AddContainer("shelf")
	house.AddContainer("kitchen")

	var buf bytes.Buffer
	render.Tree(&buf, house)

	c.Assert(buf.String(), qt.Equals, "house\n  garage\n    shelf\n  kitchen\n")
}
