package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/newsroom-service/internal/models"
)

// Ответные DTO. Отдаём стабильный JSON-контракт, не привязанный
// к доменным структурам (и без чувствительных полей вроде password_hash).

type userView struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserView(u *models.User) userView {
	return userView{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

type articleView struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary,omitempty"`
	Body        string     `json:"body"`
	AuthorID    string     `json:"author_id"`
	PublisherID string     `json:"publisher_id"`
	CategoryID  string     `json:"category_id,omitempty"`
	State       string     `json:"state"`
	ApprovedBy  string     `json:"approved_by,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toArticleView(a *models.Article) articleView {
	v := articleView{
		ID:          a.ID.String(),
		Title:       a.Title,
		Summary:     a.Summary,
		Body:        a.Body,
		AuthorID:    a.AuthorID.String(),
		PublisherID: a.PublisherID.String(),
		State:       string(a.State),
		ApprovedAt:  a.ApprovedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}

	if a.CategoryID != uuid.Nil {
		v.CategoryID = a.CategoryID.String()
	}
	if a.ApprovedBy != uuid.Nil {
		v.ApprovedBy = a.ApprovedBy.String()
	}

	return v
}

type articlePageView struct {
	Items         []articleView `json:"items"`
	NextPageToken string        `json:"next_page_token,omitempty"`
}

func toArticlePageView(p *models.ArticlePage) articlePageView {
	out := articlePageView{
		Items:         make([]articleView, 0, len(p.Items)),
		NextPageToken: p.NextPageToken,
	}

	for i := range p.Items {
		out.Items = append(out.Items, toArticleView(&p.Items[i]))
	}

	return out
}

type newsletterView struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary,omitempty"`
	Body        string     `json:"body"`
	AuthorID    string     `json:"author_id"`
	PublisherID string     `json:"publisher_id"`
	State       string     `json:"state"`
	ApprovedBy  string     `json:"approved_by,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toNewsletterView(n *models.Newsletter) newsletterView {
	v := newsletterView{
		ID:          n.ID.String(),
		Title:       n.Title,
		Summary:     n.Summary,
		Body:        n.Body,
		AuthorID:    n.AuthorID.String(),
		PublisherID: n.PublisherID.String(),
		State:       string(n.State),
		ApprovedAt:  n.ApprovedAt,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}

	if n.ApprovedBy != uuid.Nil {
		v.ApprovedBy = n.ApprovedBy.String()
	}

	return v
}

type publisherView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Website     string    `json:"website,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toPublisherView(p *models.Publisher) publisherView {
	return publisherView{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Website:     p.Website,
		CreatedAt:   p.CreatedAt,
	}
}

type staffView struct {
	Editors     []string `json:"editors"`
	Journalists []string `json:"journalists"`
}

func toStaffView(st *models.PublisherStaff) staffView {
	return staffView{
		Editors:     idStrings(st.Editors),
		Journalists: idStrings(st.Journalists),
	}
}

type managedPublishersView struct {
	PublisherIDs []string `json:"publisher_ids"`
}

func toManagedView(ids []uuid.UUID) managedPublishersView {
	return managedPublishersView{PublisherIDs: idStrings(ids)}
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

type categoryView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func toCategoryView(c *models.Category) categoryView {
	return categoryView{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
	}
}

type subscriptionView struct {
	ID         string    `json:"id"`
	TargetKind string    `json:"target_kind"`
	TargetID   string    `json:"target_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func toSubscriptionView(s *models.Subscription) subscriptionView {
	return subscriptionView{
		ID:         s.ID.String(),
		TargetKind: string(s.Target.Kind),
		TargetID:   s.Target.ID.String(),
		CreatedAt:  s.CreatedAt,
	}
}
