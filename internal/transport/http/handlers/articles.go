package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pribylovaa/newsroom-service/internal/models"
	"github.com/pribylovaa/newsroom-service/internal/service"
	apierrors "github.com/pribylovaa/newsroom-service/internal/transport/http/errors"
)

type createArticleRequest struct {
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Body        string `json:"body"`
	PublisherID string `json:"publisher_id"`
	CategoryID  string `json:"category_id"`
}

type updateArticleRequest struct {
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	Body       string `json:"body"`
	CategoryID string `json:"category_id"`
}

func (h *Handlers) CreateArticle(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	var in createArticleRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	publisherID, err := parseID(in.PublisherID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	// category_id опциональна.
	categoryID := uuid.Nil
	if in.CategoryID != "" {
		categoryID, err = parseID(in.CategoryID)
		if err != nil {
			apierrors.WriteError(w, r, err)
			return
		}
	}

	article, err := h.Svc.CreateArticle(r.Context(), actor, service.CreateArticleInput{
		Title:       in.Title,
		Summary:     in.Summary,
		Body:        in.Body,
		PublisherID: publisherID,
		CategoryID:  categoryID,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toArticleView(article))
}

func (h *Handlers) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	articleID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in updateArticleRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	categoryID := uuid.Nil
	if in.CategoryID != "" {
		categoryID, err = parseID(in.CategoryID)
		if err != nil {
			apierrors.WriteError(w, r, err)
			return
		}
	}

	article, err := h.Svc.UpdateArticle(r.Context(), actor, service.UpdateArticleInput{
		ArticleID:  articleID,
		Title:      in.Title,
		Summary:    in.Summary,
		Body:       in.Body,
		CategoryID: categoryID,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toArticleView(article))
}

func (h *Handlers) GetArticleByID(w http.ResponseWriter, r *http.Request) {
	articleID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	article, err := h.Svc.ArticleByID(r.Context(), articleID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toArticleView(article))
}

func (h *Handlers) ListArticles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter models.ArticleFilter
	filter.State = models.State(q.Get("state"))

	if raw := q.Get("publisher_id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			apierrors.WriteError(w, r, err)
			return
		}
		filter.PublisherID = id
	}

	if raw := q.Get("author_id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			apierrors.WriteError(w, r, err)
			return
		}
		filter.AuthorID = id
	}

	var opts models.ListOptions
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || limit < 0 {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
		opts.Limit = int32(limit)
	}
	opts.PageToken = q.Get("page_token")

	page, err := h.Svc.ListArticles(r.Context(), filter, opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toArticlePageView(page))
}

// Переходы жизненного цикла. Успех — 204 No Content.

func (h *Handlers) SubmitArticle(w http.ResponseWriter, r *http.Request) {
	h.articleTransition(w, r, h.Svc.SubmitArticle)
}

func (h *Handlers) ApproveArticle(w http.ResponseWriter, r *http.Request) {
	h.articleTransition(w, r, h.Svc.ApproveArticle)
}

func (h *Handlers) RejectArticle(w http.ResponseWriter, r *http.Request) {
	h.articleTransition(w, r, h.Svc.RejectArticle)
}

func (h *Handlers) ResubmitArticle(w http.ResponseWriter, r *http.Request) {
	h.articleTransition(w, r, h.Svc.ResubmitArticle)
}

func (h *Handlers) articleTransition(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, actor models.Principal, id uuid.UUID) error,
) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	articleID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := op(r.Context(), actor, articleID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
