package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"foundit-fast/internal/domain"
)

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Post, error)
	// ListOpenByKind returns active posts of the given kind, the pre-filtered
	// input the matching engine expects.
	ListOpenByKind(ctx context.Context, kind domain.PostKind) ([]domain.Post, error)
	Search(ctx context.Context, filter domain.SearchFilter) ([]domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type postRepository struct {
	mu    sync.RWMutex
	posts []domain.Post
}

func NewPostRepository() PostRepository {
	return &postRepository{}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts = append(r.posts, *post)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.posts {
		if r.posts[i].ID == id {
			p := r.posts[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *postRepository) List(ctx context.Context) ([]domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Post, len(r.posts))
	copy(out, r.posts)
	return out, nil
}

func (r *postRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Post
	for i := range r.posts {
		if r.posts[i].UserID == userID {
			out = append(out, r.posts[i])
		}
	}
	return out, nil
}

func (r *postRepository) ListOpenByKind(ctx context.Context, kind domain.PostKind) ([]domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Post
	for i := range r.posts {
		if r.posts[i].Kind == kind && r.posts[i].Status == domain.PostActive {
			out = append(out, r.posts[i])
		}
	}
	return out, nil
}

func (r *postRepository) Search(ctx context.Context, filter domain.SearchFilter) ([]domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := strings.ToLower(filter.Query)
	var out []domain.Post
	for i := range r.posts {
		p := r.posts[i]
		if p.Status != domain.PostActive {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Title), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) &&
			!strings.Contains(strings.ToLower(p.Location), query) {
			continue
		}
		if filter.Kind != "" && filter.Kind != "all" && string(p.Kind) != filter.Kind {
			continue
		}
		if filter.Category != "" && filter.Category != "all" && p.Category != filter.Category {
			continue
		}
		out = append(out, p)
	}

	if filter.Sort == domain.SortOldest {
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	} else {
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out, nil
}

func (r *postRepository) Update(ctx context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].ID == post.ID {
			r.posts[i] = *post
			return nil
		}
	}
	return ErrNotFound
}

func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
