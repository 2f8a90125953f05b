// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/ports"
)

// ArticleHandler handles HTTP requests for localized articles.
type ArticleHandler struct {
	svc ports.ArticleService
}

// NewArticleHandler creates a new ArticleHandler with the given service port.
func NewArticleHandler(svc ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// ListLocales handles GET /api/v1/locales.
func (h *ArticleHandler) ListLocales(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToLocaleListResponse(h.svc.Locales(r.Context())))
}

// GetArticle handles GET /api/v1/{culture}/articles/{id}.
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	culture, ok := pathParam(w, r, "culture")
	if !ok {
		return
	}
	id, ok := pathParam(w, r, "id")
	if !ok {
		return
	}

	view, err := h.svc.Get(r.Context(), culture, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToArticleResponse(view))
}

// CreateArticle handles POST /api/v1/{culture}/articles. The id is assigned
// by the service.
func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, "", http.StatusCreated)
}

// SaveArticle handles PUT /api/v1/{culture}/articles/{id}.
func (h *ArticleHandler) SaveArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, "id")
	if !ok {
		return
	}
	h.save(w, r, id, http.StatusOK)
}

func (h *ArticleHandler) save(w http.ResponseWriter, r *http.Request, id string, status int) {
	culture, ok := pathParam(w, r, "culture")
	if !ok {
		return
	}

	var req dto.SaveArticleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result := h.svc.Save(r.Context(), req.ToView(culture, id))
	if !result.Success {
		dto.WriteResultError(w, r, result)
		return
	}

	writeJSON(w, status, dto.ToArticleResponse(result.Payload))
}

// DeleteArticle handles DELETE /api/v1/{culture}/articles/{id}. Tags are
// removed with the article.
func (h *ArticleHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	culture, ok := pathParam(w, r, "culture")
	if !ok {
		return
	}
	id, ok := pathParam(w, r, "id")
	if !ok {
		return
	}

	result := h.svc.Remove(r.Context(), culture, id)
	if !result.Success {
		dto.WriteResultError(w, r, result)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CloneArticle handles POST /api/v1/{culture}/articles/{id}/clone.
func (h *ArticleHandler) CloneArticle(w http.ResponseWriter, r *http.Request) {
	culture, ok := pathParam(w, r, "culture")
	if !ok {
		return
	}
	id, ok := pathParam(w, r, "id")
	if !ok {
		return
	}

	var req dto.CloneArticleRequest
	if r.ContentLength != 0 && !decodeAndValidate(w, r, &req) {
		return
	}

	result := h.svc.Clone(r.Context(), culture, id, req.Targets)
	if !result.Success {
		dto.WriteResultError(w, r, result)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCloneResponse(result.Payload))
}
