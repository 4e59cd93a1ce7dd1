// Package mcp provides the stdio MCP server exposing catalog tools for agents.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/go-ports/cataloger/internal/buildinfo"
	"github.com/go-ports/cataloger/internal/catalog"
	"github.com/go-ports/cataloger/internal/service"
)

const overviewDescription = `Get an overview of the household catalog: every object with its category and its container location, in catalog order. Call this first to learn what the catalog holds and how containers are named.`

const searchDescription = `Search the catalog for an object by name. Matching is exact after lowercasing and trimming; when several objects share a name, the first one in catalog order is returned. A miss is a normal answer (found: false), not an error.`

const addDescription = `Add an object to the catalog. Provide the target container by name, or set new_container plus parent to create a fresh container for the object. Container names must already exist (except new_container); the add is rejected, not guessed, when they do not.`

const modifyDescription = `Rename and/or recategorize the first object matching name. Omit new_name or new_category to leave that attribute unchanged.`

const deleteDescription = `Delete the first object matching name from the catalog. Exactly one object is removed even when duplicates exist.`

// NewServer creates and registers all catalog tools on a new MCP server.
// It is intentionally separate from Serve so that tests and other callers can
// obtain a fully configured server without committing to the stdio transport.
func NewServer(svc *service.Service) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer("cataloger", buildinfo.Version)
	registerTools(s, svc)
	return s
}

// Serve starts the stdio MCP server, blocking until stdin closes.
func Serve(_ context.Context, catalogHome string) error {
	svc, err := service.New(catalogHome)
	if err != nil {
		return fmt.Errorf("mcp: init service: %w", err)
	}

	return mcpserver.ServeStdio(NewServer(svc))
}

// registerTools wires all five catalog tools into the server.
func registerTools(s *mcpserver.MCPServer, svc *service.Service) {
	s.AddTool(mcp.NewTool("catalog_overview",
		mcp.WithDescription(overviewDescription),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleOverview(ctx, svc, req)
	})

	s.AddTool(mcp.NewTool("catalog_search",
		mcp.WithDescription(searchDescription),
		mcp.WithString("name",
			mcp.Description("Object name to look up."),
			mcp.Required(),
		),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleSearch(ctx, svc, req)
	})

	s.AddTool(mcp.NewTool("catalog_add",
		mcp.WithDescription(addDescription),
		mcp.WithString("name",
			mcp.Description("Name of the object to add."),
			mcp.Required(),
		),
		mcp.WithString("category",
			mcp.Description("Free-form category label."),
			mcp.Required(),
		),
		mcp.WithString("container",
			mcp.Description("Existing container to add the object to."),
		),
		mcp.WithString("new_container",
			mcp.Description("Name of a container to create for the object. Requires parent."),
		),
		mcp.WithString("parent",
			mcp.Description("Existing container the new container is created under."),
		),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleAdd(ctx, svc, req)
	})

	s.AddTool(mcp.NewTool("catalog_modify",
		mcp.WithDescription(modifyDescription),
		mcp.WithString("name",
			mcp.Description("Current name of the object."),
			mcp.Required(),
		),
		mcp.WithString("new_name",
			mcp.Description("New name; omit to keep the current one."),
		),
		mcp.WithString("new_category",
			mcp.Description("New category; omit to keep the current one."),
		),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleModify(ctx, svc, req)
	})

	s.AddTool(mcp.NewTool("catalog_delete",
		mcp.WithDescription(deleteDescription),
		mcp.WithString("name",
			mcp.Description("Name of the object to delete."),
			mcp.Required(),
		),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleDelete(ctx, svc, req)
	})
}

// ---------------------------------------------------------------------------
// Tool handlers
// ---------------------------------------------------------------------------

func handleOverview(_ context.Context, svc *service.Service, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rows := svc.ListAll()
	objects := make([]map[string]any, 0, len(rows))
	for _, r := range rows {
		objects = append(objects, map[string]any{
			"name":     r.Name,
			"category": r.Category,
			"location": r.Location,
		})
	}
	return jsonResult(map[string]any{
		"total":   svc.Count(),
		"objects": objects,
	})
}

func handleSearch(_ context.Context, svc *service.Service, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := catalog.Normalize(req.GetString("name", ""))
	if name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}

	found, ok := svc.Search(name)
	if !ok {
		return jsonResult(map[string]any{"found": false})
	}
	return jsonResult(map[string]any{
		"found":    true,
		"name":     found.Name,
		"category": found.Category,
		"location": found.Location,
	})
}

func handleAdd(_ context.Context, svc *service.Service, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := catalog.Normalize(req.GetString("name", ""))
	category := catalog.Normalize(req.GetString("category", ""))
	if name == "" || category == "" {
		return mcp.NewToolResultError("name and category are required"), nil
	}

	container := catalog.Normalize(req.GetString("container", ""))
	newContainer := catalog.Normalize(req.GetString("new_container", ""))
	parent := catalog.Normalize(req.GetString("parent", ""))

	obj := &catalog.Object{Name: name, Category: category}

	var (
		ok       bool
		saveErr  error
		location string
	)
	switch {
	case newContainer != "":
		if parent == "" {
			return mcp.NewToolResultError("new_container requires parent"), nil
		}
		ok, saveErr = svc.AddToNewContainer(parent, newContainer, obj)
		if !ok {
			return jsonResult(map[string]any{"added": false, "reason": "parent container not found"})
		}
		location = parent + " > " + newContainer
	case container != "":
		ok, saveErr = svc.Add(container, obj)
		if !ok {
			return jsonResult(map[string]any{"added": false, "reason": "container not found"})
		}
		location = container
	default:
		return mcp.NewToolResultError("either container or new_container is required"), nil
	}

	result := map[string]any{"added": true, "name": name, "location": location}
	if saveErr != nil {
		result["warning"] = "catalog could not be saved: " + saveErr.Error()
	}
	return jsonResult(result)
}

func handleModify(_ context.Context, svc *service.Service, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := catalog.Normalize(req.GetString("name", ""))
	if name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}
	newName := catalog.Normalize(req.GetString("new_name", ""))
	newCategory := catalog.Normalize(req.GetString("new_category", ""))

	ok, saveErr := svc.Modify(name, newName, newCategory)
	if !ok {
		return jsonResult(map[string]any{"found": false})
	}

	result := map[string]any{"found": true, "modified": true}
	if saveErr != nil {
		result["warning"] = "catalog could not be saved: " + saveErr.Error()
	}
	return jsonResult(result)
}

func handleDelete(_ context.Context, svc *service.Service, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := catalog.Normalize(req.GetString("name", ""))
	if name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}

	ok, saveErr := svc.Delete(name)
	if !ok {
		return jsonResult(map[string]any{"deleted": false})
	}

	result := map[string]any{"deleted": true}
	if saveErr != nil {
		result["warning"] = "catalog could not be saved: " + saveErr.Error()
	}
	return jsonResult(result)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
