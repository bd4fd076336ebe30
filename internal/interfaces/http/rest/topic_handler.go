package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ersonp/topic-core/internal/application/handlers"
	"github.com/ersonp/topic-core/internal/infrastructure/observability"
)

// TopicHandler serves the /api/topics endpoints.
type TopicHandler struct {
	topics    *handlers.TopicHandler
	validate  *validator.Validate
	collector *observability.Collector
	logger    *zap.Logger
}

// NewTopicHandler creates a new TopicHandler. collector may be nil.
func NewTopicHandler(topics *handlers.TopicHandler, collector *observability.Collector, logger *zap.Logger) *TopicHandler {
	return &TopicHandler{
		topics:    topics,
		validate:  newValidator(),
		collector: collector,
		logger:    logger,
	}
}

// decode reads and validates a JSON body, writing a 400 on failure.
func (h *TopicHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

// Create handles POST /api/topics.
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTopicRequest
	if !h.decode(w, r, &req) {
		return
	}

	topic, err := h.topics.HandleCreate(r.Context(), req.Name, req.Content, req.ParentTopicID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	h.collector.RecordMutation(observability.OpCreate, 1)
	respondJSON(w, h.logger, http.StatusCreated, topic)
}

// List handles GET /api/topics. With ?roots=true only topics without a
// parent are returned.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	list := h.topics.HandleList
	if r.URL.Query().Get("roots") == "true" {
		list = h.topics.HandleRoots
	}

	topics, err := list(r.Context())
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, topics)
}

// Get handles GET /api/topics/{id}.
func (h *TopicHandler) Get(w http.ResponseWriter, r *http.Request) {
	topic, err := h.topics.HandleGet(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, topic)
}

// Update handles PUT /api/topics/{id}.
func (h *TopicHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateTopicRequest
	if !h.decode(w, r, &req) {
		return
	}

	topic, err := h.topics.HandleUpdate(r.Context(), chi.URLParam(r, "id"), req.Content)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	h.collector.RecordMutation(observability.OpUpdate, 1)
	respondJSON(w, h.logger, http.StatusOK, topic)
}

// Delete handles DELETE /api/topics/{id}.
func (h *TopicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	removed, err := h.topics.HandleDelete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	h.collector.RecordMutation(observability.OpDelete, removed)
	respondJSON(w, h.logger, http.StatusOK, map[string]any{
		"message": "Topic deleted successfully",
		"removed": removed,
	})
}

// Versions handles GET /api/topics/{id}/versions.
func (h *TopicHandler) Versions(w http.ResponseWriter, r *http.Request) {
	versions, err := h.topics.HandleVersions(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, versions)
}

// Version handles GET /api/topics/{id}/version/{version}.
func (h *TopicHandler) Version(w http.ResponseWriter, r *http.Request) {
	topic, err := h.topics.HandleVersion(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "version"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, topic)
}

// Hierarchy handles GET /api/topics/{id}/hierarchy. With ?format=tree the
// descendants are nested instead of flattened in pre-order.
func (h *TopicHandler) Hierarchy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if r.URL.Query().Get("format") == "tree" {
		tree, err := h.topics.HandleTree(r.Context(), id)
		if err != nil {
			respondDomainError(w, h.logger, err)
			return
		}
		respondJSON(w, h.logger, http.StatusOK, tree)
		return
	}

	flat, err := h.topics.HandleHierarchy(r.Context(), id)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, flat)
}

// Path handles GET /api/topics/{id}/path/{endId}.
func (h *TopicHandler) Path(w http.ResponseWriter, r *http.Request) {
	path, err := h.topics.HandlePath(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "endId"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, path)
}

// Audit handles GET /api/topics/{id}/audit.
func (h *TopicHandler) Audit(w http.ResponseWriter, r *http.Request) {
	entries, err := h.topics.HandleAudit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, entries)
}

// AuditByAction handles GET /api/audit?action=<action>&limit=<n>.
func (h *TopicHandler) AuditByAction(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	entries, err := h.topics.HandleAuditByAction(r.Context(), query.Get("action"), query.Get("limit"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, entries)
}
