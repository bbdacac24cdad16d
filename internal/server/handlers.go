package server

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/object-viewer/internal/model"
	"github.com/mj1618/object-viewer/internal/objtree"
	"github.com/mj1618/object-viewer/internal/output"
	"github.com/mj1618/object-viewer/internal/platform"
	"gopkg.in/yaml.v3"
)

// toText serializes a result to YAML for the MCP response.
func toText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

func (s *Server) treeResult(source string, flat bool) *mcp.CallToolResult {
	res := output.NewTreeResult(s.ctrl.Tree(), output.ModesOf(s.ctrl.PopulationMode(), s.ctrl.TraversalMode()))
	res.Source = source
	res.Status = s.ctrl.Status()
	if flat {
		return mcp.NewToolResultText(toText(res.Flat()))
	}
	return mcp.NewToolResultText(toText(res))
}

func (s *Server) findNode(id string) (*objtree.Node, error) {
	if id == "" {
		return nil, fmt.Errorf("id is required")
	}
	n := s.ctrl.Tree().Find(id)
	if n == nil {
		return nil, fmt.Errorf("node %q is not in the tree (expand or select its ancestors first)", id)
	}
	return n, nil
}

func (s *Server) handleTree(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	from := stringParam(params, "from", "")
	flat := boolParam(params, "flat", false)
	refresh := boolParam(params, "refresh", false)

	src, err := platform.ParseSource(from)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if refresh {
		s.ctrl.Refresh()
	}
	if src != platform.SourceNone {
		if err := s.ctrl.ShowFrom(src); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}
	return s.treeResult(src.String(), flat), nil
}

func (s *Server) handleExpand(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := stringParam(request.GetArguments(), "id", "")

	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.findNode(id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.ctrl.Expand(n)
	return s.treeResult("", false), nil
}

func (s *Server) handleCollapse(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := stringParam(request.GetArguments(), "id", "")

	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.findNode(id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.ctrl.Collapse(n)
	return s.treeResult("", false), nil
}

func (s *Server) handleSelect(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	id := stringParam(params, "id", "")
	from := stringParam(params, "from", "")
	if (id == "") == (from == "") {
		return mcp.NewToolResultError("exactly one of id or from is required"), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if from != "" {
		src, err := platform.ParseSource(from)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := s.ctrl.ShowFrom(src); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return s.treeResult(src.String(), false), nil
	}

	obj := s.ctrl.Host().Lookup(id)
	if obj == nil {
		return mcp.NewToolResultError(fmt.Sprintf("no object with id %q", id)), nil
	}
	if err := s.ctrl.Show(obj, false); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.treeResult("", false), nil
}

func (s *Server) handleInspect(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := stringParam(request.GetArguments(), "id", "")

	s.mu.Lock()
	defer s.mu.Unlock()

	var obj model.Object
	if id != "" {
		if obj = s.ctrl.Host().Lookup(id); obj == nil {
			return mcp.NewToolResultError(fmt.Sprintf("no object with id %q", id)), nil
		}
	} else if sel := s.ctrl.Tree().Selected(); sel != nil {
		obj = sel.Object
	}
	if obj == nil {
		return mcp.NewToolResultError("nothing selected (pass id or call select first)"), nil
	}
	return mcp.NewToolResultText(toText(output.NewInspectResult(obj))), nil
}

func (s *Server) handleEval(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code := stringParam(request.GetArguments(), "code", "")
	if strings.TrimSpace(code) == "" {
		return mcp.NewToolResultError("code is required"), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	s.ctrl.SetConsoleOutput(&buf)
	defer s.ctrl.SetConsoleOutput(nil)

	if err := s.ctrl.Eval(code); err != nil {
		return mcp.NewToolResultError(buf.String() + err.Error()), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

func (s *Server) handleSetMode(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	s.mu.Lock()
	defer s.mu.Unlock()

	if hasParam(params, "nvda_review") {
		s.ctrl.SetHostReviewMode(boolParam(params, "nvda_review", true))
	}
	if hasParam(params, "simple_review") {
		if err := s.ctrl.SetSimpleReviewMode(boolParam(params, "simple_review", false)); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}
	if v := stringParam(params, "population", ""); v != "" {
		m, err := model.ParsePopulationMode(v)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		s.ctrl.SetPopulationMode(m)
	}

	modes := s.ctrl.Store().All()
	modes["traversal"] = s.ctrl.TraversalMode().String()
	return mcp.NewToolResultText(toText(modes)), nil
}
