package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"eventdesk/internal/domain"
)

// CategorySnapshot is the canonical list of categories known to exist
// remotely, owned by the view that fetched it.
type CategorySnapshot struct {
	mu         sync.RWMutex
	categories []domain.Category
}

func NewCategorySnapshot(categories []domain.Category) *CategorySnapshot {
	s := &CategorySnapshot{}
	s.Merge(categories...)
	return s
}

// All returns a copy of the known categories.
func (s *CategorySnapshot) All() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Lookup finds a category by case-insensitive name.
func (s *CategorySnapshot) Lookup(name string) (domain.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.FindCategoryByName(s.categories, name)
}

func (s *CategorySnapshot) ByID(id int64) (domain.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.FindCategory(s.categories, id)
}

// Merge appends categories whose ids are not known yet.
func (s *CategorySnapshot) Merge(categories ...domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range categories {
		if _, ok := domain.FindCategory(s.categories, c.ID); ok {
			continue
		}
		s.categories = append(s.categories, c)
	}
}

const defaultCreateConcurrency = 4

// CategoryResolver turns category stubs into resolved ids, creating the
// categories that do not exist remotely.
type CategoryResolver struct {
	gateway     domain.CategoryGateway
	logger      *slog.Logger
	concurrency int
}

func NewCategoryResolver(gateway domain.CategoryGateway, logger *slog.Logger) *CategoryResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryResolver{gateway: gateway, logger: logger, concurrency: defaultCreateConcurrency}
}

// pendingName is one name to create, fanned back out to every stub index
// that carries it.
type pendingName struct {
	name    string
	indexes []int
}

// Resolve returns one Resolved per stub, in input order, keeping each stub's
// name. Names missing remotely are created once per case-insensitive name;
// the first occurrence's casing is sent. Any failed create fails the whole
// resolution with a *domain.CategoryCreationFailedError. Categories created
// along the way are merged into snapshot even when another create fails.
func (r *CategoryResolver) Resolve(ctx context.Context, snapshot *CategorySnapshot, stubs []domain.Stub) ([]domain.Resolved, error) {
	out := make([]domain.Resolved, len(stubs))

	known := make(map[string]int64)
	for _, st := range stubs {
		if res, ok := st.(domain.Resolved); ok {
			key := domain.FoldName(res.Name)
			if _, dup := known[key]; !dup {
				known[key] = res.ID
			}
		}
	}

	pending := make(map[string]*pendingName)
	var order []string
	for i, st := range stubs {
		switch v := st.(type) {
		case domain.Resolved:
			out[i] = v
		case domain.Unresolved:
			if c, ok := snapshot.Lookup(v.Name); ok {
				out[i] = domain.Resolved{ID: c.ID, Name: v.Name}
				continue
			}
			key := domain.FoldName(v.Name)
			if id, ok := known[key]; ok {
				out[i] = domain.Resolved{ID: id, Name: v.Name}
				continue
			}
			out[i] = domain.Resolved{Name: v.Name}
			p, ok := pending[key]
			if !ok {
				p = &pendingName{name: v.Name}
				pending[key] = p
				order = append(order, key)
			}
			p.indexes = append(p.indexes, i)
		default:
			return nil, fmt.Errorf("unknown stub type %T", st)
		}
	}
	if len(order) == 0 {
		return out, nil
	}

	// Another session may have created some of these since the snapshot was taken.
	if latest, err := r.gateway.ListCategories(ctx); err != nil {
		r.logger.WarnContext(ctx, "refresh categories before create failed", "err", err)
	} else {
		snapshot.Merge(latest...)
		remaining := order[:0]
		for _, key := range order {
			p := pending[key]
			if c, ok := snapshot.Lookup(p.name); ok {
				r.fill(out, p, c.ID)
				continue
			}
			remaining = append(remaining, key)
		}
		order = remaining
	}

	created := make([]domain.Category, len(order))
	ok := make([]bool, len(order))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, key := range order {
		name := pending[key].name
		g.Go(func() error {
			c, err := r.create(gctx, name)
			if err != nil {
				return &domain.CategoryCreationFailedError{Name: name, Err: err}
			}
			created[i] = c
			ok[i] = true
			return nil
		})
	}
	err := g.Wait()

	for i, key := range order {
		if !ok[i] {
			continue
		}
		snapshot.Merge(created[i])
		r.fill(out, pending[key], created[i].ID)
	}
	if err != nil {
		r.logger.ErrorContext(ctx, "category resolution failed", "err", err)
		return nil, err
	}
	return out, nil
}

func (r *CategoryResolver) fill(out []domain.Resolved, p *pendingName, id int64) {
	for _, idx := range p.indexes {
		out[idx].ID = id
	}
}

// create issues one create call; a conflict is retried as a lookup.
func (r *CategoryResolver) create(ctx context.Context, name string) (domain.Category, error) {
	c, err := r.gateway.CreateCategory(ctx, name)
	if err == nil {
		r.logger.DebugContext(ctx, "category created", "id", c.ID, "name", c.Name)
		return c, nil
	}
	if !errors.Is(err, domain.ErrConflict) {
		return domain.Category{}, err
	}
	latest, listErr := r.gateway.ListCategories(ctx)
	if listErr != nil {
		return domain.Category{}, fmt.Errorf("lookup after conflict: %w", listErr)
	}
	if existing, found := domain.FindCategoryByName(latest, name); found {
		return existing, nil
	}
	return domain.Category{}, err
}
