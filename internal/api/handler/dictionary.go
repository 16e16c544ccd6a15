package handler

import (
	"net/http"

	"github.com/mcoot/kumkom/internal/api/response"
	"github.com/mcoot/kumkom/internal/services/dictionary"
)

// DictionaryHandler handles word lookups and the health check
type DictionaryHandler struct {
	dictionaryService *dictionary.Service
}

// NewDictionaryHandler creates a new dictionary handler
func NewDictionaryHandler(dictionaryService *dictionary.Service) *DictionaryHandler {
	return &DictionaryHandler{dictionaryService: dictionaryService}
}

// Check handles GET /api/v1/dictionary/check?word=
func (h *DictionaryHandler) Check(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	if word == "" {
		WriteError(w, NewInvalidRequestError("word is required"))
		return
	}

	valid, err := h.dictionaryService.IsValidWord(r.Context(), word)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.WordCheck{Word: word, Valid: valid})
}

// Search handles GET /api/v1/dictionary/search?prefix=
func (h *DictionaryHandler) Search(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	if prefix == "" {
		WriteError(w, NewInvalidRequestError("prefix is required"))
		return
	}
	if !h.dictionaryService.CanSearch() {
		WriteError(w, NewServiceUnavailableError("prefix search is not available for this lexicon"))
		return
	}

	words, err := h.dictionaryService.Search(r.Context(), prefix)
	if err != nil {
		WriteError(w, err)
		return
	}
	if words == nil {
		words = []string{}
	}

	response.JSON(w, http.StatusOK, response.WordSearch{Prefix: prefix, Words: words})
}

// Health handles GET /api/v1/health. A lexicon that cannot count its words
// reports -1 rather than failing the check.
func (h *DictionaryHandler) Health(w http.ResponseWriter, r *http.Request) {
	count, err := h.dictionaryService.WordCount(r.Context())
	if err != nil {
		count = -1
	}
	response.JSON(w, http.StatusOK, response.Health{Status: "ok", Words: count})
}
