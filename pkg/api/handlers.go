package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/recipemd/recipemd/pkg/defaults"
	"github.com/recipemd/recipemd/pkg/errors"
	"github.com/recipemd/recipemd/pkg/recipe"
	"github.com/recipemd/recipemd/pkg/serializer"
	"github.com/recipemd/recipemd/pkg/server"
)

// ParseRequest is the body accepted by the parse endpoint.
type ParseRequest struct {
	Recipe string `json:"recipe"`
}

// ParseResponse carries the structured form of a parsed recipe along
// with its canonical Markdown rendering.
type ParseResponse struct {
	Recipe   *recipe.Recipe `json:"recipe"`
	Markdown string         `json:"markdown"`
}

// ScaleRequest is the body accepted by the scale endpoint. Factor must
// be greater than zero.
type ScaleRequest struct {
	Recipe string  `json:"recipe"`
	Factor float64 `json:"factor"`
}

// ScaleResponse carries a scaled recipe in both structured and Markdown
// form.
type ScaleResponse struct {
	Recipe   *recipe.Recipe `json:"recipe"`
	Markdown string         `json:"markdown"`
	Factor   float64        `json:"factor"`
}

// Handler serves the recipe endpoints.
type Handler struct {
	// MaxBodyBytes caps request body size. Zero means the default cap.
	MaxBodyBytes int64
}

// NewHandler returns a Handler with the default body size cap.
func NewHandler() *Handler {
	return &Handler{MaxBodyBytes: defaults.MaxRecipeBytes}
}

func (h *Handler) readBody(w http.ResponseWriter, r *http.Request, v any) bool {
	maxBytes := h.MaxBodyBytes
	if maxBytes <= 0 {
		maxBytes = defaults.MaxRecipeBytes
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
	if err != nil {
		slog.Error("failed to read request body", "error", err)
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to read request body (limit %d bytes)", maxBytes), false, nil)
		return false
	}

	if err := json.Unmarshal(body, v); err != nil {
		slog.Error("failed to decode request body", "error", err)
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"request body is not valid JSON", false, map[string]any{"error": err.Error()})
		return false
	}

	return true
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			fmt.Sprintf("method %s not allowed", r.Method), false, nil)
		return false
	}
	return true
}

// HandleParse parses recipe Markdown and returns its structured form.
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req ParseRequest
	if !h.readBody(w, r, &req) {
		return
	}

	parsed := recipe.Parse(req.Recipe)
	recipesParsed.Inc()

	serializer.RespondJSON(w, http.StatusOK, ParseResponse{
		Recipe:   parsed,
		Markdown: parsed.String(),
	})
}

// HandleScale parses recipe Markdown, scales every ingredient quantity
// by the requested factor, and returns the result.
func (h *Handler) HandleScale(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req ScaleRequest
	if !h.readBody(w, r, &req) {
		return
	}

	if req.Factor <= 0 {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"factor must be greater than zero", false, map[string]any{"factor": req.Factor})
		return
	}

	scaled := recipe.Parse(req.Recipe).Scale(req.Factor)
	recipesScaled.Inc()

	serializer.RespondJSON(w, http.StatusOK, ScaleResponse{
		Recipe:   scaled,
		Markdown: scaled.String(),
		Factor:   req.Factor,
	})
}
