package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/mindweave/mindweave/pkg/cache"
	mwerrors "github.com/mindweave/mindweave/pkg/errors"
	"github.com/mindweave/mindweave/pkg/layout"
	"github.com/mindweave/mindweave/pkg/merge"
	"github.com/mindweave/mindweave/pkg/mindmap"
	"github.com/mindweave/mindweave/pkg/render"
	"github.com/mindweave/mindweave/pkg/style"
)

// maxBodyBytes bounds request bodies so a runaway client cannot exhaust memory.
const maxBodyBytes = 16 << 20

// ============================================================================
// Request and response shapes
// ============================================================================

type layoutRequest struct {
	Graph  mindmap.Graph `json:"graph"`
	RootID string        `json:"root_id,omitempty"`
}

type layoutResponse struct {
	Nodes  []mindmap.Node `json:"nodes"`
	Report layout.Report  `json:"report"`
}

type mergeRequest struct {
	Previous  mindmap.Graph `json:"previous"`
	Generated mindmap.Graph `json:"generated"`
	TargetID  string        `json:"target_id"`
	Policy    merge.Policy  `json:"policy"`
}

type mergeResponse struct {
	Graph mindmap.Graph `json:"graph"`
}

type dragRequest struct {
	Graph  mindmap.Graph `json:"graph"`
	NodeID string        `json:"node_id"`
	DX     float64       `json:"dx"`
	DY     float64       `json:"dy"`
}

type dragResponse struct {
	Nodes []mindmap.Node `json:"nodes"`
}

type renderRequest struct {
	Graph  mindmap.Graph `json:"graph"`
	RootID string        `json:"root_id,omitempty"`
}

// ============================================================================
// Handlers
// ============================================================================

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if !s.decode(w, r, &req) {
		return
	}

	key := cache.LayoutKey(req.Graph, req.RootID, s.cfg)
	if data, ok, err := s.cache.Get(r.Context(), key); err == nil && ok {
		s.logger.Debug("layout cache hit", "key", key)
		s.writeRaw(w, data)
		return
	}

	nodes, report := layout.Layout(req.Graph, req.RootID, s.cfg)
	if report.Degraded() {
		s.logger.Warn("layout degraded", "residual", report.ResidualOverlaps)
	}

	resp := layoutResponse{Nodes: nodes, Report: report}
	data, err := json.Marshal(resp)
	if err != nil {
		s.writeError(w, mwerrors.Wrap(mwerrors.ErrCodeInternal, err, "encoding layout response"))
		return
	}
	if err := s.cache.Set(r.Context(), key, data, s.cacheTTL); err != nil {
		s.logger.Debug("layout cache store failed", "error", err)
	}
	s.writeRaw(w, data)
}

func (s *Server) handleMerge(w http.ResponseWriter, r *http.Request) {
	var req mergeRequest
	if !s.decode(w, r, &req) {
		return
	}
	if _, ok := merge.ValidPolicies[req.Policy]; !ok {
		s.writeError(w, mwerrors.New(mwerrors.ErrCodeInvalidPolicy, "unknown merge policy %q", req.Policy))
		return
	}

	merged := merge.Apply(req.Previous, req.Generated, req.TargetID, req.Policy)
	s.writeJSON(w, mergeResponse{Graph: merged})
}

func (s *Server) handleDrag(w http.ResponseWriter, r *http.Request) {
	var req dragRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := mwerrors.ValidateNodeID(req.NodeID); err != nil {
		s.writeError(w, err)
		return
	}
	if !req.Graph.HasNode(req.NodeID) {
		s.writeError(w, mwerrors.New(mwerrors.ErrCodeNodeNotFound, "node %q not in graph", req.NodeID))
		return
	}

	nodes := mindmap.Drag(req.Graph.Nodes, req.Graph.Edges, req.NodeID, req.DX, req.DY)
	s.writeJSON(w, dragResponse{Nodes: nodes})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if !s.decode(w, r, &req) {
		return
	}

	dot := render.ToDOT(req.Graph, render.Options{
		RootID: req.RootID,
		Styles: style.NewMemo(),
	})
	svg, err := render.RenderSVG(r.Context(), dot)
	if err != nil {
		s.writeError(w, mwerrors.Wrap(mwerrors.ErrCodeInternal, err, "rendering svg"))
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}

// ============================================================================
// Helpers
// ============================================================================

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, mwerrors.Wrap(mwerrors.ErrCodeInvalidInput, err, "reading request body"))
		return false
	}
	if err := json.Unmarshal(body, dst); err != nil {
		s.writeError(w, mwerrors.Wrap(mwerrors.ErrCodeInvalidInput, err, "decoding request body"))
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.writeError(w, mwerrors.Wrap(mwerrors.ErrCodeInternal, err, "encoding response"))
		return
	}
	s.writeRaw(w, data)
}

func (s *Server) writeRaw(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := mwerrors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case mwerrors.ErrCodeInvalidInput, mwerrors.ErrCodeInvalidGraph,
		mwerrors.ErrCodeInvalidRelation, mwerrors.ErrCodeInvalidPolicy,
		mwerrors.ErrCodeInvalidConfig:
		status = http.StatusBadRequest
	case mwerrors.ErrCodeNotFound, mwerrors.ErrCodeNodeNotFound, mwerrors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case mwerrors.ErrCodeExpansionInFlight:
		status = http.StatusConflict
	}

	s.logger.Error("request failed", "code", code, "error", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Code:    string(code),
		Message: mwerrors.UserMessage(err),
	})
}
