// Package shell implements the interactive numbered-menu session over a
// catalog service. Input arrives through the LineReader channel so the menu
// logic stays independent of the terminal; the readline implementation lives
// in input.go.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-ports/cataloger/internal/catalog"
	"github.com/go-ports/cataloger/internal/render"
	"github.com/go-ports/cataloger/internal/service"
)

// LineReader is the line-based input channel the menu reads from.
type LineReader interface {
	// ReadLine shows prompt and returns one line without the trailing
	// newline. It returns io.EOF when the channel is exhausted.
	ReadLine(prompt string) (string, error)
}

// Shell drives the menu loop.
type Shell struct {
	svc *service.Service
	in  LineReader
	out io.Writer
}

// New creates a Shell over svc reading from in and writing to out.
func New(svc *service.Service, in LineReader, out io.Writer) *Shell {
	return &Shell{svc: svc, in: in, out: out}
}

var menuOptions = []struct {
	key, label string
}{
	{"1", "view all objects in the catalog."},
	{"2", "search for an object by name."},
	{"3", "add a new object to the catalog."},
	{"4", "edit an existing object."},
	{"5", "delete an object from the catalog."},
	{"6", "quit."},
}

// Run loops over the menu until the user quits or the input channel closes.
// Each iteration dispatches exactly one catalog operation.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, "Welcome to the Cataloger of Household Objects!")
	fmt.Fprintln(s.out)
	for _, opt := range menuOptions {
		fmt.Fprintf(s.out, "Press [%s] to %s\n", opt.key, opt.label)
	}

	for {
		choice, err := s.readValidChoice()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			s.viewAll()
		case "2":
			err = s.search()
		case "3":
			err = s.add()
		case "4":
			err = s.edit()
		case "5":
			err = s.delete()
		case "6":
			return nil
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// readValidChoice reprompts until the answer is one of the menu keys.
func (s *Shell) readValidChoice() (string, error) {
	for {
		line, err := s.in.ReadLine("\nChoose an option: ")
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		for _, opt := range menuOptions {
			if line == opt.key {
				return line, nil
			}
		}
		fmt.Fprintln(s.out, "Invalid input. Please try again!")
	}
}

// readName prompts for a free-text value and normalizes it before it reaches
// the core; the tree operations themselves are case-sensitive.
func (s *Shell) readName(prompt string) (string, error) {
	line, err := s.in.ReadLine(prompt)
	if err != nil {
		return "", err
	}
	return catalog.Normalize(line), nil
}

// ---------------------------------------------------------------------------
// Menu operations
// ---------------------------------------------------------------------------

func (s *Shell) viewAll() {
	_ = render.Rows(s.out, s.svc.ListAll(), s.svc.Config.Display.Format)
}

func (s *Shell) search() error {
	name, err := s.readName("Enter the name of the object to search: ")
	if err != nil {
		return err
	}

	found, ok := s.svc.Search(name)
	if !ok {
		fmt.Fprintln(s.out, "Object not found in the catalog!")
		return nil
	}
	fmt.Fprintf(s.out, "Name: %s\n", found.Name)
	fmt.Fprintf(s.out, "Category: %s\n", found.Category)
	fmt.Fprintf(s.out, "Location: %s\n", found.Location)
	return nil
}

func (s *Shell) add() error {
	fmt.Fprintln(s.out, "Press [1] to add an object to an existing container.")
	fmt.Fprintln(s.out, "Press [2] to create a new container and add an object to it.")

	var mode string
	for {
		line, err := s.in.ReadLine("\nChoose an option: ")
		if err != nil {
			return err
		}
		mode = strings.TrimSpace(line)
		if mode == "1" || mode == "2" {
			break
		}
		fmt.Fprintln(s.out, "Invalid input. Please enter 1 or 2!")
	}

	obj, err := s.readNewObject()
	if err != nil {
		return err
	}

	switch mode {
	case "1":
		container, err := s.readExistingContainer(
			"Enter the name of the container where you want to add the object (e.g. 'house', 'kitchen'): ",
			"Container not found. Please try again!",
		)
		if err != nil {
			return err
		}
		_, saveErr := s.svc.Add(container, obj)
		s.reportSave(saveErr)
		fmt.Fprintln(s.out, "Object successfully added to the catalog!")

	case "2":
		newContainer, err := s.readName("Enter the name of the new container: ")
		if err != nil {
			return err
		}
		parent, err := s.readExistingContainer(
			"Enter the name of the container where the new container should be added (e.g. 'house', 'kitchen'): ",
			"Container where you want to insert the new container not found. Please try again!",
		)
		if err != nil {
			return err
		}
		_, saveErr := s.svc.AddToNewContainer(parent, newContainer, obj)
		s.reportSave(saveErr)
		fmt.Fprintln(s.out, "New container and object successfully added to the catalog!")
	}
	return nil
}

// readNewObject collects the name and category for a fresh object.
func (s *Shell) readNewObject() (*catalog.Object, error) {
	name, err := s.readName("Enter the name of the object to add to the catalog: ")
	if err != nil {
		return nil, err
	}
	category, err := s.readName("Enter the category of the object to add: ")
	if err != nil {
		return nil, err
	}
	return &catalog.Object{Name: name, Category: category}, nil
}

// readExistingContainer reprompts until the given container exists. The retry
// loop lives here, outside the core; not-found never becomes an error.
func (s *Shell) readExistingContainer(prompt, notFoundMsg string) (string, error) {
	for {
		name, err := s.readName(prompt)
		if err != nil {
			return "", err
		}
		if _, ok := catalog.FindContainer(s.svc.Root(), name); ok {
			return name, nil
		}
		fmt.Fprintln(s.out, notFoundMsg)
	}
}

func (s *Shell) edit() error {
	name, err := s.readName("Enter the name of the object to modify: ")
	if err != nil {
		return err
	}
	newName, err := s.readName("Enter the new name of the object (blank line to keep it unchanged): ")
	if err != nil {
		return err
	}
	newCategory, err := s.readName("Enter the new category of the object (blank line to keep it unchanged): ")
	if err != nil {
		return err
	}

	ok, saveErr := s.svc.Modify(name, newName, newCategory)
	if !ok {
		fmt.Fprintln(s.out, "Object not found in the catalog!")
		return nil
	}
	s.reportSave(saveErr)
	fmt.Fprintln(s.out, "Object successfully modified in the catalog!")
	return nil
}

func (s *Shell) delete() error {
	name, err := s.readName("Enter the name of the object to delete: ")
	if err != nil {
		return err
	}

	ok, saveErr := s.svc.Delete(name)
	if !ok {
		fmt.Fprintln(s.out, "Object not found in the catalog!")
		return nil
	}
	s.reportSave(saveErr)
	fmt.Fprintln(s.out, "Object successfully deleted from the catalog!")
	return nil
}

// reportSave surfaces a failed document write. The in-memory change stays
// applied, so the session and the file diverge until a later save succeeds.
func (s *Shell) reportSave(err error) {
	if err != nil {
		fmt.Fprintf(s.out, "Warning: the catalog could not be saved: %v\n", err)
	}
}
