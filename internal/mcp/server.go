// Package mcp exposes the scoring engine over the Model Context Protocol.
// An agent submits a complete response set, gets back an attempt id, and can
// re-read the derived report later; resubmitting under the same attempt id
// recomputes everything from scratch.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"compass/internal/assess"
	"compass/internal/catalog"
	"compass/internal/logging"

	"github.com/google/uuid"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP SDK server around one engine and its catalogue.
type Server struct {
	MCPServer *sdkmcp.Server

	engine *assess.Engine

	mu       sync.Mutex
	attempts map[string]*attempt
}

type attempt struct {
	input  assess.Input
	result *assess.Result
}

// NewServer creates an MCP server scoring against the given catalogue.
func NewServer(cat *catalog.Catalog) (*Server, error) {
	engine, err := assess.New(cat)
	if err != nil {
		return nil, err
	}
	s := &Server{
		engine:   engine,
		attempts: make(map[string]*attempt),
	}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "compass", Version: "dev"},
		nil,
	)
	s.registerTools()
	return s, nil
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "score_assessment",
		Description: "Score a complete assessment attempt. Accepts self responses (and optional rater responses) as JSON arrays and returns an attempt ID with a result summary. Resubmitting with an existing attempt_id recomputes and replaces the prior result.",
	}, s.handleScoreAssessment)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "get_report",
		Description: "Get the full derived report for a scored attempt: dimension, territory and index scores, archetype matches, quality flags, development priorities and mirror-gap analysis.",
	}, s.handleGetReport)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_archetypes",
		Description: "List the archetype signature catalogue: names, high/low dimension conditions and the tendency dimension for each.",
	}, s.handleListArchetypes)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "describe_catalog",
		Description: "Describe the active catalogue: version, territories, dimensions and item counts per kind.",
	}, s.handleDescribeCatalog)
}

// --- Tool input/output types ---

type scoreAssessmentInput struct {
	ResponsesJSON string `json:"responses_json" jsonschema:"JSON array of self responses: [{item, value, latency_ms?, stage?}]"`
	RaterJSON     string `json:"rater_json,omitempty" jsonschema:"optional JSON array of rater responses to mirror items"`
	AttemptID     string `json:"attempt_id,omitempty" jsonschema:"existing attempt ID to recompute; omit to create a new attempt"`
}

type scoreAssessmentOutput struct {
	AttemptID  string   `json:"attempt_id"`
	Index      *float64 `json:"index,omitempty"`
	IndexLabel string   `json:"index_label,omitempty"`
	TopMatch   string   `json:"top_match,omitempty"`
	Priorities []string `json:"priorities"`
	Flags      int      `json:"flags"`
}

type getReportInput struct {
	AttemptID string `json:"attempt_id" jsonschema:"attempt ID from score_assessment"`
}

type getReportOutput struct {
	AttemptID string         `json:"attempt_id"`
	Result    *assess.Result `json:"result"`
}

type listArchetypesInput struct{}

type archetypeEntry struct {
	Name     string   `json:"name"`
	High     []string `json:"high,omitempty"`
	Low      []string `json:"low,omitempty"`
	IMFlag   bool     `json:"im_flag,omitempty"`
	Tendency string   `json:"tendency,omitempty"`
}

type listArchetypesOutput struct {
	Archetypes []archetypeEntry `json:"archetypes"`
}

type describeCatalogInput struct{}

type describeCatalogOutput struct {
	Version     string         `json:"version"`
	Territories []string       `json:"territories"`
	Dimensions  []string       `json:"dimensions"`
	ItemCounts  map[string]int `json:"item_counts"`
}

// --- Tool handlers ---

func (s *Server) handleScoreAssessment(ctx context.Context, _ *sdkmcp.CallToolRequest, input scoreAssessmentInput) (*sdkmcp.CallToolResult, scoreAssessmentOutput, error) {
	logger := logging.New("mcp")

	var responses []assess.Response
	if err := decodeResponses(input.ResponsesJSON, &responses); err != nil {
		return nil, scoreAssessmentOutput{}, fmt.Errorf("responses_json: %w", err)
	}
	var rater []assess.Response
	if input.RaterJSON != "" {
		if err := decodeResponses(input.RaterJSON, &rater); err != nil {
			return nil, scoreAssessmentOutput{}, fmt.Errorf("rater_json: %w", err)
		}
	}

	in := assess.Input{Responses: responses, RaterResponses: rater}
	result, err := s.engine.Score(in)
	if err != nil {
		return nil, scoreAssessmentOutput{}, fmt.Errorf("score_assessment: %w", err)
	}

	id := input.AttemptID
	s.mu.Lock()
	if id == "" {
		id = uuid.NewString()
	} else if _, ok := s.attempts[id]; !ok {
		s.mu.Unlock()
		return nil, scoreAssessmentOutput{}, fmt.Errorf("unknown attempt_id %q", id)
	}
	s.attempts[id] = &attempt{input: in, result: result}
	s.mu.Unlock()

	logger.Info("attempt scored",
		"attempt_id", id,
		"responses", len(responses),
		"flags", len(result.Flags),
		"matches", len(result.Archetypes))

	out := scoreAssessmentOutput{
		AttemptID:  id,
		Priorities: result.Priorities,
		Flags:      len(result.Flags),
	}
	if result.Index != nil {
		v := result.Index.Value
		out.Index = &v
		out.IndexLabel = result.Index.Label
	}
	if len(result.Archetypes) > 0 {
		out.TopMatch = result.Archetypes[0].Name
	}
	return nil, out, nil
}

func (s *Server) handleGetReport(ctx context.Context, _ *sdkmcp.CallToolRequest, input getReportInput) (*sdkmcp.CallToolResult, getReportOutput, error) {
	s.mu.Lock()
	att, ok := s.attempts[input.AttemptID]
	s.mu.Unlock()
	if !ok {
		return nil, getReportOutput{}, fmt.Errorf("unknown attempt_id %q (call score_assessment first)", input.AttemptID)
	}
	return nil, getReportOutput{AttemptID: input.AttemptID, Result: att.result}, nil
}

func (s *Server) handleListArchetypes(ctx context.Context, _ *sdkmcp.CallToolRequest, _ listArchetypesInput) (*sdkmcp.CallToolResult, listArchetypesOutput, error) {
	cat := s.engine.Catalog()
	out := listArchetypesOutput{Archetypes: make([]archetypeEntry, 0, len(cat.Signatures))}
	for _, sig := range cat.Signatures {
		out.Archetypes = append(out.Archetypes, archetypeEntry{
			Name:     sig.Name,
			High:     sig.High,
			Low:      sig.Low,
			IMFlag:   sig.IMFlag,
			Tendency: sig.Tendency,
		})
	}
	return nil, out, nil
}

func (s *Server) handleDescribeCatalog(ctx context.Context, _ *sdkmcp.CallToolRequest, _ describeCatalogInput) (*sdkmcp.CallToolResult, describeCatalogOutput, error) {
	cat := s.engine.Catalog()
	out := describeCatalogOutput{
		Version:    cat.Version,
		ItemCounts: make(map[string]int),
	}
	for _, t := range cat.Territories {
		out.Territories = append(out.Territories, t.ID)
	}
	for _, d := range cat.Dimensions {
		out.Dimensions = append(out.Dimensions, d.ID)
	}
	for _, it := range cat.Items {
		out.ItemCounts[string(it.Kind)]++
	}
	return nil, out, nil
}

// AttemptCount reports how many attempts the server currently holds.
func (s *Server) AttemptCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.attempts)
}

// Shutdown drops all held attempts.
func (s *Server) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts = make(map[string]*attempt)
}

func decodeResponses(raw string, into *[]assess.Response) error {
	data := []byte(raw)
	if !json.Valid(data) {
		return fmt.Errorf("not valid JSON")
	}
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("decode responses: %w", err)
	}
	if len(*into) == 0 {
		return fmt.Errorf("empty response array")
	}
	return nil
}
