package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/mindweave/mindweave/pkg/cache"
	"github.com/mindweave/mindweave/pkg/layout"
	"github.com/mindweave/mindweave/pkg/merge"
	"github.com/mindweave/mindweave/pkg/mindmap"
)

func testServer(t *testing.T, c cache.Cache) http.Handler {
	t.Helper()
	return New(Options{
		Logger: log.New(os.Stderr),
		Cache:  c,
		Layout: layout.DefaultConfig(),
	}).Handler()
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func smallGraph() mindmap.Graph {
	return mindmap.Graph{
		Nodes: []mindmap.Node{{ID: "r", Label: "Root"}, {ID: "a", Label: "A"}},
		Edges: []mindmap.Edge{{ID: "e1", Source: "r", Target: "a"}},
	}
}

func TestHealthz(t *testing.T) {
	h := testServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestLayoutEndpoint(t *testing.T) {
	h := testServer(t, nil)

	rec := postJSON(t, h, "/v1/layout", layoutRequest{Graph: smallGraph(), RootID: "r"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var resp layoutResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Nodes) != 2 {
		t.Errorf("got %d nodes", len(resp.Nodes))
	}
	if resp.Report.Degraded() {
		t.Errorf("tiny graph degraded: %+v", resp.Report)
	}
}

func TestLayoutEndpointUsesCache(t *testing.T) {
	c := cache.NewMemoryCache()
	h := testServer(t, c)
	req := layoutRequest{Graph: smallGraph(), RootID: "r"}

	first := postJSON(t, h, "/v1/layout", req)
	second := postJSON(t, h, "/v1/layout", req)

	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("statuses = %d, %d", first.Code, second.Code)
	}
	if !bytes.Equal(first.Body.Bytes(), second.Body.Bytes()) {
		t.Error("cached response differs from computed response")
	}
}

func TestLayoutEndpointRejectsMalformedBody(t *testing.T) {
	h := testServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/layout", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("error body not JSON: %v", err)
	}
	if resp.Code != "INVALID_INPUT" {
		t.Errorf("error code = %q", resp.Code)
	}
}

func TestMergeEndpoint(t *testing.T) {
	h := testServer(t, nil)

	rec := postJSON(t, h, "/v1/merge", mergeRequest{
		Previous: smallGraph(),
		Generated: mindmap.Graph{
			Nodes: []mindmap.Node{{ID: "a1", Label: "A1"}},
			Edges: []mindmap.Edge{{ID: "e2", Source: "a", Target: "a1"}},
		},
		TargetID: "a",
		Policy:   merge.PolicyAppendNew,
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var resp mergeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Graph.Nodes) != 3 {
		t.Errorf("merged graph has %d nodes, want 3", len(resp.Graph.Nodes))
	}
}

func TestMergeEndpointRejectsUnknownPolicy(t *testing.T) {
	h := testServer(t, nil)

	rec := postJSON(t, h, "/v1/merge", mergeRequest{
		Previous: smallGraph(),
		TargetID: "a",
		Policy:   "overwrite-everything",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDragEndpoint(t *testing.T) {
	h := testServer(t, nil)

	rec := postJSON(t, h, "/v1/drag", dragRequest{
		Graph:  smallGraph(),
		NodeID: "r",
		DX:     10,
		DY:     20,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var resp dragResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	for _, n := range resp.Nodes {
		if !n.Pinned {
			t.Errorf("node %s unpinned after cascading drag", n.ID)
		}
	}
}

func TestDragEndpointUnknownNode(t *testing.T) {
	h := testServer(t, nil)

	rec := postJSON(t, h, "/v1/drag", dragRequest{Graph: smallGraph(), NodeID: "ghost"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
