package mssql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/microsoft/go-mssqldb"

	"ministry-jobs-parser/internal/observability"
	"ministry-jobs-parser/internal/storage"
)

type Repository struct {
	db             *sql.DB
	commandTimeout time.Duration
	logger         *observability.Logger
}

func NewRepository(dsn string, commandTimeout time.Duration, logger *observability.Logger) (*Repository, error) {
	db, err := sql.Open("sqlserver", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{
		db:             db,
		commandTimeout: commandTimeout,
		logger:         logger,
	}, nil
}

func (r *Repository) SeedSources(ctx context.Context, entries []storage.Source) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.commandTimeout)
	defer cancel()

	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM MinistrySources`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sources: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	query := `
		INSERT INTO MinistrySources ([ID], [Name], [URL], [IsActive], [CreatedAt])
		VALUES (@ID, @Name, @URL, @IsActive, SYSUTCDATETIME())
	`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			r.logger.Error("Failed to close statement", "error", err.Error())
		}
	}()

	inserted := 0
	for _, src := range entries {
		id := src.ID
		if id == "" {
			id = uuid.NewString()
		}
		if _, err := stmt.ExecContext(ctx,
			sql.Named("ID", id),
			sql.Named("Name", src.Name),
			sql.Named("URL", src.URL),
			sql.Named("IsActive", src.Active),
		); err != nil {
			return inserted, fmt.Errorf("failed to insert source %q: %w", src.Name, err)
		}
		inserted++
	}

	return inserted, nil
}

func (r *Repository) ListActiveSources(ctx context.Context) ([]storage.Source, error) {
	ctx, cancel := context.WithTimeout(ctx, r.commandTimeout)
	defer cancel()

	query := `
		SELECT [ID], [Name], [URL], [IsActive], [LastChecked], [CreatedAt]
		FROM MinistrySources
		WHERE [IsActive] = 1
		ORDER BY [Name]
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sources: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			r.logger.Error("Failed to close rows", "error", err.Error())
		}
	}()

	var out []storage.Source
	for rows.Next() {
		var src storage.Source
		var lastChecked sql.NullTime
		if err := rows.Scan(&src.ID, &src.Name, &src.URL, &src.Active, &lastChecked, &src.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan source: %w", err)
		}
		if lastChecked.Valid {
			t := lastChecked.Time
			src.LastChecked = &t
		}
		out = append(out, src)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sources: %w", err)
	}

	return out, nil
}

func (r *Repository) TouchSourceLastChecked(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, r.commandTimeout)
	defer cancel()

	query := `UPDATE MinistrySources SET [LastChecked] = SYSUTCDATETIME() WHERE [ID] = @ID`

	if _, err := r.db.ExecContext(ctx, query, sql.Named("ID", id)); err != nil {
		return fmt.Errorf("failed to update last checked: %w", err)
	}
	return nil
}

func (r *Repository) PostingExists(ctx context.Context, title, ministry string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.commandTimeout)
	defer cancel()

	query := `SELECT COUNT(*) FROM JobPostings WHERE [Title] = @Title AND [Ministry] = @Ministry`

	var count int
	err := r.db.QueryRowContext(ctx, query,
		sql.Named("Title", title),
		sql.Named("Ministry", ministry),
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to query postings: %w", err)
	}

	return count > 0, nil
}

func (r *Repository) InsertPosting(ctx context.Context, p *storage.Posting) error {
	ctx, cancel := context.WithTimeout(ctx, r.commandTimeout)
	defer cancel()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `
		INSERT INTO JobPostings (
			[ID], [Title], [Ministry], [Department], [JobType], [EmploymentType],
			[Location], [Positions], [Description], [Requirements],
			[PreferredQualifications], [ApplicationStart], [ApplicationEnd],
			[Contact], [OriginalURL], [PDFURL], [IsUrgent], [IsNew],
			[CreatedAt], [UpdatedAt]
		) VALUES (
			@ID, @Title, @Ministry, @Department, @JobType, @EmploymentType,
			@Location, @Positions, @Description, @Requirements,
			@PreferredQualifications, @ApplicationStart, @ApplicationEnd,
			@Contact, @OriginalURL, @PDFURL, @IsUrgent, @IsNew,
			@CreatedAt, @UpdatedAt
		)
	`

	_, err := r.db.ExecContext(ctx, query,
		sql.Named("ID", p.ID),
		sql.Named("Title", p.Title),
		sql.Named("Ministry", p.Ministry),
		sql.Named("Department", p.Department),
		sql.Named("JobType", p.JobType),
		sql.Named("EmploymentType", p.EmploymentType),
		sql.Named("Location", p.Location),
		sql.Named("Positions", p.Positions),
		sql.Named("Description", p.Description),
		sql.Named("Requirements", p.Requirements),
		sql.Named("PreferredQualifications", p.PreferredQualifications),
		sql.Named("ApplicationStart", p.ApplicationStart),
		sql.Named("ApplicationEnd", p.ApplicationEnd),
		sql.Named("Contact", p.Contact),
		sql.Named("OriginalURL", p.OriginalURL),
		sql.Named("PDFURL", p.PDFURL),
		sql.Named("IsUrgent", p.IsUrgent),
		sql.Named("IsNew", p.IsNew),
		sql.Named("CreatedAt", p.CreatedAt),
		sql.Named("UpdatedAt", p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert posting: %w", err)
	}

	return nil
}

func (r *Repository) DeletePostingsOlderThan(ctx context.Context, days int) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.commandTimeout)
	defer cancel()

	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	query := `DELETE FROM JobPostings WHERE [CreatedAt] < @Cutoff`

	result, err := r.db.ExecContext(ctx, query, sql.Named("Cutoff", cutoff))
	if err != nil {
		return 0, fmt.Errorf("failed to delete old postings: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(affected), nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}
