package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pribylovaa/newsroom-service/internal/models"
	"github.com/pribylovaa/newsroom-service/internal/service"
	apierrors "github.com/pribylovaa/newsroom-service/internal/transport/http/errors"
)

type createNewsletterRequest struct {
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Body        string `json:"body"`
	PublisherID string `json:"publisher_id"`
}

func (h *Handlers) CreateNewsletter(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	var in createNewsletterRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	publisherID, err := parseID(in.PublisherID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	n, err := h.Svc.CreateNewsletter(r.Context(), actor, service.CreateNewsletterInput{
		Title:       in.Title,
		Summary:     in.Summary,
		Body:        in.Body,
		PublisherID: publisherID,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toNewsletterView(n))
}

func (h *Handlers) GetNewsletterByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	n, err := h.Svc.NewsletterByID(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toNewsletterView(n))
}

func (h *Handlers) SubmitNewsletter(w http.ResponseWriter, r *http.Request) {
	h.newsletterTransition(w, r, h.Svc.SubmitNewsletter)
}

func (h *Handlers) ApproveNewsletter(w http.ResponseWriter, r *http.Request) {
	h.newsletterTransition(w, r, h.Svc.ApproveNewsletter)
}

func (h *Handlers) RejectNewsletter(w http.ResponseWriter, r *http.Request) {
	h.newsletterTransition(w, r, h.Svc.RejectNewsletter)
}

func (h *Handlers) ResubmitNewsletter(w http.ResponseWriter, r *http.Request) {
	h.newsletterTransition(w, r, h.Svc.ResubmitNewsletter)
}

func (h *Handlers) newsletterTransition(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, actor models.Principal, id uuid.UUID) error,
) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := op(r.Context(), actor, id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
