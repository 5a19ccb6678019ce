package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/newsroom-service/internal/models"
	"github.com/pribylovaa/newsroom-service/internal/service"
	apierrors "github.com/pribylovaa/newsroom-service/internal/transport/http/errors"
)

type subscribeRequest struct {
	TargetKind string `json:"target_kind"`
	TargetID   string `json:"target_id"`
}

func (h *Handlers) Subscribe(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	var in subscribeRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	targetID, err := parseID(in.TargetID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	target := models.Target{Kind: models.TargetKind(in.TargetKind), ID: targetID}
	if err := h.Svc.Subscribe(r.Context(), actor, target); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	targetID, err := parseID(chi.URLParam(r, "target_id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	target := models.Target{
		Kind: models.TargetKind(chi.URLParam(r, "kind")),
		ID:   targetID,
	}

	if err := h.Svc.Unsubscribe(r.Context(), actor, target); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	items, err := h.Svc.ListSubscriptions(r.Context(), actor)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]subscriptionView, 0, len(items))
	for i := range items {
		out = append(out, toSubscriptionView(&items[i]))
	}

	writeJSON(w, http.StatusOK, out)
}
