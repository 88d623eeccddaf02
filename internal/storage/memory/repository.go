// Package memory is an in-process Repository used by tests and dry runs.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"ministry-jobs-parser/internal/storage"
)

type Repository struct {
	mu       sync.Mutex
	sources  []storage.Source
	postings []storage.Posting
	now      func() time.Time
}

func NewRepository() *Repository {
	return &Repository{now: time.Now}
}

func (r *Repository) SeedSources(_ context.Context, entries []storage.Source) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.sources) > 0 {
		return 0, nil
	}

	for _, src := range entries {
		if src.ID == "" {
			src.ID = uuid.NewString()
		}
		src.CreatedAt = r.now().UTC()
		r.sources = append(r.sources, src)
	}
	return len(entries), nil
}

func (r *Repository) ListActiveSources(_ context.Context) ([]storage.Source, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []storage.Source
	for _, src := range r.sources {
		if src.Active {
			out = append(out, src)
		}
	}
	return out, nil
}

func (r *Repository) TouchSourceLastChecked(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.sources {
		if r.sources[i].ID == id {
			t := r.now().UTC()
			r.sources[i].LastChecked = &t
			return nil
		}
	}
	return nil
}

func (r *Repository) PostingExists(_ context.Context, title, ministry string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.postings {
		if p.Title == title && p.Ministry == ministry {
			return true, nil
		}
	}
	return false, nil
}

func (r *Repository) InsertPosting(_ context.Context, p *storage.Posting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = r.now().UTC()
	}
	p.UpdatedAt = p.CreatedAt
	r.postings = append(r.postings, *p)
	return nil
}

func (r *Repository) DeletePostingsOlderThan(_ context.Context, days int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().UTC().AddDate(0, 0, -days)
	kept := r.postings[:0]
	deleted := 0
	for _, p := range r.postings {
		// Strictly older than the cutoff; a posting exactly at the
		// boundary is retained.
		if p.CreatedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, p)
	}
	r.postings = kept
	return deleted, nil
}

func (r *Repository) Close() error {
	return nil
}

// Postings returns a snapshot, for assertions in tests.
func (r *Repository) Postings() []storage.Posting {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]storage.Posting, len(r.postings))
	copy(out, r.postings)
	return out
}

// Sources returns a snapshot, for assertions in tests.
func (r *Repository) Sources() []storage.Source {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]storage.Source, len(r.sources))
	copy(out, r.sources)
	return out
}
