package conversation

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/Swelo-ui/guvi-project-1/pkg/logging"
)

// maxTurnBodyBytes caps inbound payload size. Scam chats are short;
// anything past this is abuse.
const maxTurnBodyBytes = 1 << 20

// Handler exposes the engine over HTTP.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates the HTTP handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

type errorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// ProcessTurn handles POST /api/honeypot. Bad input is the only way
// to get a non-200; engine failures still produce a usable reply.
func (h *Handler) ProcessTurn(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxTurnBodyBytes)

	var req TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("malformed turn payload", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Status: "error", Error: "invalid JSON payload"})
		return
	}
	if strings.TrimSpace(req.SessionID) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Status: "error", Error: "sessionId is required"})
		return
	}
	if strings.TrimSpace(req.Message.Text) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Status: "error", Error: "message.text is required"})
		return
	}

	resp := h.service.ProcessTurn(r.Context(), req)
	writeJSON(w, http.StatusOK, resp)
}

// ListResults handles GET /admin/results.
func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Status: "error", Error: "limit must be a positive integer"})
			return
		}
		limit = n
	}

	results, err := h.service.Results(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to list session results", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Status: "error", Error: "failed to load results"})
		return
	}
	if results == nil {
		results = []SessionResult{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "success", "results": results})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
