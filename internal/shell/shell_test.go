package shell_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/cataloger/internal/catalog"
	"github.com/go-ports/cataloger/internal/service"
	"github.com/go-ports/cataloger/internal/shell"
	"github.com/go-ports/cataloger/internal/store"
)

// runSession feeds the given lines into a fresh shell over a seeded catalog
// and returns the transcript plus the service for state assertions.
func runSession(t *testing.T, lines ...string) (string, *service.Service) {
	t.Helper()
	c := qt.New(t)

	home := t.TempDir()
	house := catalog.NewRoot("house")
	garage := house.AddContainer("garage")
	shelf := garage.AddContainer("shelf")
	shelf.AddObject(&catalog.Object{Name: "hammer", Category: "tools"})
	house.AddContainer("kitchen")
	c.Assert(store.Save(house, filepath.Join(home, "catalog.json")), qt.IsNil)

	svc, err := service.New(home)
	c.Assert(err, qt.IsNil)

	var out bytes.Buffer
	in := shell.NewReaderInput(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	c.Assert(shell.New(svc, in, &out).Run(), qt.IsNil)

	return out.String(), svc
}

func TestRun_QuitImmediately(t *testing.T) {
	c := qt.New(t)

	out, _ := runSession(t, "6")
	c.Assert(out, qt.Contains, "Welcome to the Cataloger of Household Objects!")
	c.Assert(out, qt.Contains, "Press [1] to view all objects in the catalog.")
}

func TestRun_EOFEndsSession(t *testing.T) {
	c := qt.New(t)

	// No lines at all: the menu prints and the session ends cleanly.
	out, _ := runSession(t)
	c.Assert(out, qt.Contains, "Choose an option:")
}

func TestRun_InvalidChoiceReprompts(t *testing.T) {
	c := qt.New(t)

	out, _ := runSession(t, "9", "view", "6")
	c.Assert(strings.Count(out, "Invalid input. Please try again!"), qt.Equals, 2)
}

func TestRun_ViewAll(t *testing.T) {
	c := qt.New(t)

	out, _ := runSession(t, "1", "6")
	c.Assert(out, qt.Contains, "hammer")
	c.Assert(out, qt.Contains, "house > garage > shelf")
}

func TestRun_SearchFound(t *testing.T) {
	c := qt.New(t)

	// Mixed case input is normalized before it reaches the core.
	out, _ := runSession(t, "2", "  HAMMER ", "6")
	c.Assert(out, qt.Contains, "Name: hammer")
	c.Assert(out, qt.Contains, "Category: tools")
	c.Assert(out, qt.Contains, "Location: house > garage > shelf")
}

func TestRun_SearchNotFound(t *testing.T) {
	c := qt.New(t)

	out, _ := runSession(t, "2", "anvil", "6")
	c.Assert(out, qt.Contains, "Object not found in the catalog!")
}

func TestRun_AddToExistingContainer(t *testing.T) {
	c := qt.New(t)

	out, svc := runSession(t,
		"3",       // add
		"1",       // existing container
		"Spoon",   // object name
		"Cutlery", // category
		"kitchen", // container
		"6",
	)
	c.Assert(out, qt.Contains, "Object successfully added to the catalog!")

	found, ok := svc.Search("spoon")
	c.Assert(ok, qt.IsTrue)
	c.Assert(found.Category, qt.Equals, "cutlery")
	c.Assert(found.Location, qt.Equals, "house > kitchen")
}

func TestRun_AddRepromptsOnUnknownContainer(t *testing.T) {
	c := qt.New(t)

	out, _ := runSession(t,
		"3", "1", "spoon", "cutlery",
		"attic",   // unknown, reprompts
		"kitchen", // accepted
		"6",
	)
	c.Assert(out, qt.Contains, "Container not found. Please try again!")
	c.Assert(out, qt.Contains, "Object successfully added to the catalog!")
}

func TestRun_AddToNewContainer(t *testing.T) {
	c := qt.New(t)

	out, svc := runSession(t,
		"3",       // add
		"x",       // invalid submenu choice, reprompts
		"2",       // new container
		"wrench",  // object name
		"tools",   // category
		"toolbox", // new container name
		"garage",  // parent
		"6",
	)
	c.Assert(out, qt.Contains, "Invalid input. Please enter 1 or 2!")
	c.Assert(out, qt.Contains, "New container and object successfully added to the catalog!")

	found, ok := svc.Search("wrench")
	c.Assert(ok, qt.IsTrue)
	c.Assert(found.Location, qt.Equals, "house > garage > toolbox")
}

func TestRun_EditPartialUpdate(t *testing.T) {
	c := qt.New(t)

	out, svc := runSession(t,
		"4",        // edit
		"hammer",   // target
		"",         // keep name
		"hardware", // new category
		"6",
	)
	c.Assert(out, qt.Contains, "Object successfully modified in the catalog!")

	found, ok := svc.Search("hammer")
	c.Assert(ok, qt.IsTrue)
	c.Assert(found.Category, qt.Equals, "hardware")
}

func TestRun_EditNotFound(t *testing.T) {
	c := qt.New(t)

	out, _ := runSession(t, "4", "anvil", "", "", "6")
	c.Assert(out, qt.Contains, "Object not found in the catalog!")
}

func TestRun_Delete(t *testing.T) {
	c := qt.New(t)

	out, svc := runSession(t, "5", "hammer", "6")
	c.Assert(out, qt.Contains, "Object successfully deleted from the catalog!")

	_, ok := svc.Search("hammer")
	c.Assert(ok, qt.IsFalse)
}

func TestRun_DeleteNotFound(t *testing.T) {
	c := qt.New(t)

	out, _ := runSession(t, "5", "anvil", "6")
	c.Assert(out, qt.Contains, "Object not found in the catalog!")
}
