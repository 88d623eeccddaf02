package app

import (
	"context"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"

	"ministry-jobs-parser/internal/classify"
	"ministry-jobs-parser/internal/config"
	"ministry-jobs-parser/internal/derive"
	"ministry-jobs-parser/internal/normalize"
	"ministry-jobs-parser/internal/observability"
	"ministry-jobs-parser/internal/scraper"
	"ministry-jobs-parser/internal/storage"
)

// PageFetcher is the network collaborator: one blocking GET that soft-fails.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (html string, ok bool)
}

type Orchestrator struct {
	cfg     *config.Config
	logger  *observability.Logger
	fetcher PageFetcher
	scraper *scraper.Scraper
	repo    storage.Repository
}

func NewOrchestrator(
	cfg *config.Config,
	logger *observability.Logger,
	f PageFetcher,
	s *scraper.Scraper,
	repo storage.Repository,
) *Orchestrator {
	return &Orchestrator{
		cfg:     cfg,
		logger:  logger,
		fetcher: f,
		scraper: s,
		repo:    repo,
	}
}

type ScanStats struct {
	Sources   int
	Failed    int
	Rows      int
	Qualified int
	Inserted  int
	Skipped   int
}

type sourceResult struct {
	rows      int
	qualified int
	inserted  int
	skipped   int
	err       error
}

// RunOneScan iterates every active source sequentially. A failure in one
// source never aborts the scan: it is counted, logged, and the loop moves
// on. The source's last-checked timestamp is touched after every iteration
// regardless of outcome — it records when the source was last polled, not
// when it last succeeded.
func (o *Orchestrator) RunOneScan(ctx context.Context) *ScanStats {
	stats := &ScanStats{}

	srcs, err := o.repo.ListActiveSources(ctx)
	if err != nil {
		o.logger.Error("Failed to list active sources", "error", err.Error())
		return stats
	}

	o.logger.Info("Starting scan", "sources", len(srcs))

	for _, src := range srcs {
		if ctx.Err() != nil {
			o.logger.Info("Scan aborted", "reason", ctx.Err().Error())
			break
		}

		res := o.scanSource(ctx, src)
		stats.Sources++
		stats.Rows += res.rows
		stats.Qualified += res.qualified
		stats.Inserted += res.inserted
		stats.Skipped += res.skipped

		if res.err != nil {
			stats.Failed++
			o.logger.Error("Source scan failed",
				"source", src.Name,
				"error", res.err.Error(),
			)
		} else {
			o.logger.Info("Source scanned",
				"source", src.Name,
				"rows", res.rows,
				"qualified", res.qualified,
				"inserted", res.inserted,
				"skipped", res.skipped,
			)
		}

		if err := o.repo.TouchSourceLastChecked(ctx, src.ID); err != nil {
			o.logger.Error("Failed to update last checked",
				"source", src.Name,
				"error", err.Error(),
			)
		}
	}

	o.logger.Info("Scan completed",
		"sources", stats.Sources,
		"failed", stats.Failed,
		"rows", stats.Rows,
		"qualified", stats.Qualified,
		"inserted", stats.Inserted,
		"skipped", stats.Skipped,
	)

	return stats
}

func (o *Orchestrator) scanSource(ctx context.Context, src storage.Source) sourceResult {
	var res sourceResult

	html, ok := o.fetcher.Fetch(ctx, src.URL)
	if !ok {
		// Transient failure, already logged by the fetcher. The next
		// scheduled scan is the retry.
		return res
	}

	rows, err := o.scraper.ExtractRows(html)
	if err != nil {
		res.err = fmt.Errorf("extract rows: %w", err)
		return res
	}
	res.rows = len(rows)

	profile := scraper.ProfileFor(src.Name)
	now := time.Now().UTC()

	for _, row := range rows {
		if res.qualified >= o.cfg.Scrape.MaxPostingsPerSource {
			break
		}

		title := normalize.CleanTitle(o.scraper.ResolveTitle(row, profile))
		if title == "" {
			continue
		}
		if !classify.IsRecruitmentRelated(title, src.Name) {
			continue
		}
		res.qualified++

		exists, err := o.repo.PostingExists(ctx, title, src.Name)
		if err != nil {
			res.err = fmt.Errorf("check posting exists: %w", err)
			return res
		}
		if exists {
			// First-seen wins: no update, no merge.
			res.skipped++
			continue
		}

		posting := o.buildPosting(title, src, row, now)
		if err := o.repo.InsertPosting(ctx, posting); err != nil {
			res.err = fmt.Errorf("insert posting: %w", err)
			return res
		}
		res.inserted++
	}

	return res
}

func (o *Orchestrator) buildPosting(title string, src storage.Source, row *goquery.Selection, now time.Time) *storage.Posting {
	positions, exact := derive.Positions(title)
	if !exact {
		o.logger.Debug("Position count is a fallback guess",
			"source", src.Name,
			"title", title,
			"positions", positions,
		)
	}

	start, end := derive.Window(now, o.cfg.GetApplicationWindow())

	detailURL := o.scraper.ResolveDetailURL(row, src.URL)
	if detailURL == "" {
		detailURL = src.URL
	}

	return &storage.Posting{
		Title:                   title,
		Ministry:                src.Name,
		Department:              "기획조정실",
		JobType:                 derive.JobType(title),
		EmploymentType:          derive.EmploymentType(title),
		Location:                "서울특별시",
		Positions:               positions,
		Description:             fmt.Sprintf("%s - %s에서 모집하는 채용공고입니다.", title, src.Name),
		Requirements:            "해당 분야 전공자 또는 관련 경력자",
		PreferredQualifications: "관련 자격증 소지자 우대",
		ApplicationStart:        start,
		ApplicationEnd:          end,
		Contact:                 "해당 부처 인사담당부서",
		OriginalURL:             detailURL,
		PDFURL:                  fmt.Sprintf("/api/pdfs/%s-%d.pdf", src.Name, now.UnixMilli()),
		IsUrgent:                derive.IsUrgent(title),
		IsNew:                   true,
	}
}

// RunRetentionSweep deletes postings strictly older than the given age.
func (o *Orchestrator) RunRetentionSweep(ctx context.Context, days int) (int, error) {
	deleted, err := o.repo.DeletePostingsOlderThan(ctx, days)
	if err != nil {
		return 0, fmt.Errorf("delete old postings: %w", err)
	}
	if deleted > 0 {
		o.logger.Info("Retention sweep deleted old postings",
			"deleted", deleted,
			"older_than_days", days,
		)
	}
	return deleted, nil
}
