package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/newsroom-service/internal/service"
	apierrors "github.com/pribylovaa/newsroom-service/internal/transport/http/errors"
)

type createPublisherRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
}

type grantEditorRequest struct {
	EditorID string `json:"editor_id"`
}

type addJournalistRequest struct {
	JournalistID string `json:"journalist_id"`
}

type createCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handlers) CreatePublisher(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	var in createPublisherRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	p, err := h.Svc.CreatePublisher(r.Context(), actor, in.Name, in.Description, in.Website)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPublisherView(p))
}

func (h *Handlers) ListPublishers(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.ListPublishers(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]publisherView, 0, len(items))
	for i := range items {
		out = append(out, toPublisherView(&items[i]))
	}

	writeJSON(w, http.StatusOK, out)
}

// GrantAuthority — POST /publishers/{id}/editors: закрепление редактора за изданием.
func (h *Handlers) GrantAuthority(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	publisherID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in grantEditorRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	editorID, err := parseID(in.EditorID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.Svc.GrantAuthority(r.Context(), actor, publisherID, editorID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddStaffJournalist — POST /publishers/{id}/journalists: зачисление в штат.
func (h *Handlers) AddStaffJournalist(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	publisherID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in addJournalistRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	journalistID, err := parseID(in.JournalistID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.Svc.AddStaffJournalist(r.Context(), actor, publisherID, journalistID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetPublisherStaff — GET /publishers/{id}/staff: состав издания.
func (h *Handlers) GetPublisherStaff(w http.ResponseWriter, r *http.Request) {
	publisherID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	staff, err := h.Svc.PublisherStaff(r.Context(), publisherID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStaffView(staff))
}

// ListManagedPublishers — GET /publishers/managed: издания редактора-актора.
func (h *Handlers) ListManagedPublishers(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	ids, err := h.Svc.ManagedPublishers(r.Context(), actor)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toManagedView(ids))
}

func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	var in createCategoryRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	c, err := h.Svc.CreateCategory(r.Context(), actor, in.Name, in.Description)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCategoryView(c))
}

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.ListCategories(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]categoryView, 0, len(items))
	for i := range items {
		out = append(out, toCategoryView(&items[i]))
	}

	writeJSON(w, http.StatusOK, out)
}
