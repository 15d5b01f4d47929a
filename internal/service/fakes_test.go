package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/griffin1995/gift-sync/internal/entities"
	"github.com/griffin1995/gift-sync/internal/errs"
	"github.com/griffin1995/gift-sync/internal/models"
)

type fakeUserRepo struct {
	mu        sync.Mutex
	users     map[string]*entities.User // by id
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.User) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, fmt.Errorf("user with this email already exists: %w", errs.ErrAlreadyExists)
		}
	}

	stored := *user
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.users[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, fmt.Errorf("user not found: %w", errs.ErrNotFound)
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user not found: %w", errs.ErrNotFound)
	}
	out := *u
	return &out, nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return fmt.Errorf("user not found: %w", errs.ErrNotFound)
	}
	u.LastLoginAt = &at
	return nil
}

type fakeSwipeRepo struct {
	sessions     map[string]*entities.SwipeSession
	interactions []*entities.SwipeInteraction
}

func newFakeSwipeRepo() *fakeSwipeRepo {
	return &fakeSwipeRepo{sessions: make(map[string]*entities.SwipeSession)}
}

func (r *fakeSwipeRepo) CreateSession(_ context.Context, session *entities.SwipeSession) (*entities.SwipeSession, error) {
	stored := *session
	now := time.Now().UTC()
	stored.StartedAt = now
	stored.CreatedAt = now
	r.sessions[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (r *fakeSwipeRepo) FindSessionByID(_ context.Context, id string) (*entities.SwipeSession, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session not found: %w", errs.ErrNotFound)
	}
	out := *s
	return &out, nil
}

func (r *fakeSwipeRepo) CreateInteraction(_ context.Context, interaction *entities.SwipeInteraction) (*entities.SwipeInteraction, error) {
	stored := *interaction
	stored.CreatedAt = time.Now().UTC()
	r.interactions = append(r.interactions, &stored)
	out := stored
	return &out, nil
}

func (r *fakeSwipeRepo) ListInteractionsBySession(_ context.Context, sessionID string, limit int) ([]*entities.SwipeInteraction, error) {
	var out []*entities.SwipeInteraction
	for _, i := range r.interactions {
		if i.SessionID == sessionID && len(out) < limit {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *fakeSwipeRepo) ListSessionIDs(_ context.Context, limit int) ([]string, error) {
	var ids []string
	for id := range r.sessions {
		if len(ids) >= limit {
			break
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *fakeSwipeRepo) ListInteractionIDs(_ context.Context, limit int) ([]string, error) {
	var ids []string
	for _, i := range r.interactions {
		if len(ids) >= limit {
			break
		}
		ids = append(ids, i.ID)
	}
	return ids, nil
}

type fakeGiftLinkRepo struct {
	links map[string]*entities.GiftLink // by token
}

func newFakeGiftLinkRepo() *fakeGiftLinkRepo {
	return &fakeGiftLinkRepo{links: make(map[string]*entities.GiftLink)}
}

func (r *fakeGiftLinkRepo) Create(_ context.Context, link *entities.GiftLink) (*entities.GiftLink, error) {
	stored := *link
	stored.CreatedAt = time.Now().UTC()
	r.links[stored.LinkToken] = &stored
	out := stored
	return &out, nil
}

func (r *fakeGiftLinkRepo) FindByToken(_ context.Context, token string) (*entities.GiftLink, error) {
	l, ok := r.links[token]
	if !ok {
		return nil, fmt.Errorf("gift link %s not found in database: %w", token, errs.ErrNotFound)
	}
	out := *l
	return &out, nil
}

type fakeCategoryRepo struct {
	categories []*entities.Category
}

func (r *fakeCategoryRepo) List(_ context.Context, activeOnly bool, limit int) ([]*entities.Category, error) {
	var out []*entities.Category
	for _, c := range r.categories {
		if activeOnly && !c.IsActive {
			continue
		}
		if len(out) >= limit {
			break
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id string) (*entities.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("category not found: %w", errs.ErrNotFound)
}

type fakeProductRepo struct {
	products []*entities.Product
}

func (r *fakeProductRepo) List(_ context.Context, filters models.ProductFilters) ([]*entities.Product, error) {
	var out []*entities.Product
	for _, p := range r.products {
		if filters.ActiveOnly && !p.IsActive {
			continue
		}
		if len(out) >= filters.Limit {
			break
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) FindActiveByID(_ context.Context, id string) (*entities.Product, error) {
	for _, p := range r.products {
		if p.ID == id && p.IsActive {
			return p, nil
		}
	}
	return nil, fmt.Errorf("product not found: %w", errs.ErrNotFound)
}

func (r *fakeProductRepo) Create(_ context.Context, product *entities.Product) (*entities.Product, error) {
	stored := *product
	stored.CreatedAt = time.Now().UTC()
	r.products = append(r.products, &stored)
	out := stored
	return &out, nil
}

type fakeNewsletterRepo struct {
	signups   []*entities.NewsletterSignup
	createErr error
}

func (r *fakeNewsletterRepo) Create(_ context.Context, signup *entities.NewsletterSignup) (*entities.NewsletterSignup, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	stored := *signup
	stored.CreatedAt = time.Now().UTC()
	r.signups = append(r.signups, &stored)
	out := stored
	return &out, nil
}

type fakeMailer struct {
	welcomeCalls []string
	adminCalls   []string
	welcomeOK    bool
	adminOK      bool
}

func (m *fakeMailer) SendWelcomeEmail(_ context.Context, email, source string) bool {
	m.welcomeCalls = append(m.welcomeCalls, email)
	return m.welcomeOK
}

func (m *fakeMailer) SendAdminNotification(_ context.Context, subscriberEmail, source, signupID string) bool {
	m.adminCalls = append(m.adminCalls, subscriberEmail)
	return m.adminOK
}
