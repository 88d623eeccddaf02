package storage

import (
	"context"
	"time"
)

// Source is one ministry board being polled.
type Source struct {
	ID          string
	Name        string
	URL         string
	Active      bool
	LastChecked *time.Time
	CreatedAt   time.Time
}

// Posting is one normalized recruitment record. Postings are immutable
// after insert; only the retention sweep removes them. ApplicationEnd is
// synthetic (start plus a fixed horizon) — true deadlines are not
// extractable from listing rows.
type Posting struct {
	ID                      string
	Title                   string
	Ministry                string
	Department              string
	JobType                 string
	EmploymentType          string
	Location                string
	Positions               int
	Description             string
	Requirements            string
	PreferredQualifications string
	ApplicationStart        time.Time
	ApplicationEnd          time.Time
	Contact                 string
	OriginalURL             string
	PDFURL                  string
	IsUrgent                bool
	IsNew                   bool
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// Repository is the persistence surface the pipeline consumes.
//
// PostingExists followed by InsertPosting is not transactional; the
// scheduler never runs two scans concurrently, which is what makes the
// dedup check safe.
type Repository interface {
	// SeedSources inserts the catalog when the sources table is empty and
	// returns the number inserted (0 when already seeded).
	SeedSources(ctx context.Context, entries []Source) (int, error)

	ListActiveSources(ctx context.Context) ([]Source, error)

	// TouchSourceLastChecked records a poll attempt, successful or not.
	TouchSourceLastChecked(ctx context.Context, id string) error

	// PostingExists checks by (title, ministry) pair — the dedup key.
	PostingExists(ctx context.Context, title, ministry string) (bool, error)

	InsertPosting(ctx context.Context, p *Posting) error

	// DeletePostingsOlderThan removes postings whose creation timestamp is
	// strictly older than the cutoff, regardless of application window.
	DeletePostingsOlderThan(ctx context.Context, days int) (int, error)

	Close() error
}
