package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

// SaveRun records one organize run and its per-folder move counts, returning
// the ledger id.
func (s *SQLiteStorage) SaveRun(ctx context.Context, report *model.RunReport) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateReport(report); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (
			project, success, item_count, moved_count, skipped_count,
			deleted_folders, error, started_at, finished_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		report.Project,
		report.Success,
		report.ItemCount,
		report.MovedCount,
		report.SkippedCount,
		report.DeletedFolders,
		report.Error,
		report.StartedAt,
		report.FinishedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}

	for _, fc := range report.MovedItems {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO run_folders (run_id, folder_id, folder_name, moved_count)
			VALUES (?, ?, ?, ?)
		`, runID, fc.FolderID, fc.FolderName, fc.Count); err != nil {
			return 0, fmt.Errorf("failed to save run folder counts: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, nil
}

// ListRuns returns the most recent runs, newest first, with their per-folder
// move counts attached. A non-positive limit defaults to 20.
func (s *SQLiteStorage) ListRuns(ctx context.Context, limit int) ([]model.RunRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, project, success, item_count, moved_count, skipped_count,
		       deleted_folders, error, started_at, finished_at
		FROM runs
		ORDER BY started_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.RunRecord
	for rows.Next() {
		var rec model.RunRecord
		var errText sql.NullString
		if err := rows.Scan(
			&rec.ID,
			&rec.Project,
			&rec.Success,
			&rec.ItemCount,
			&rec.MovedCount,
			&rec.SkippedCount,
			&rec.DeletedFolders,
			&errText,
			&rec.StartedAt,
			&rec.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		rec.Error = errText.String
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	for i := range records {
		counts, err := s.runFolders(ctx, records[i].ID)
		if err != nil {
			return nil, err
		}
		records[i].MovedItems = counts
	}
	return records, nil
}

// runFolders loads the per-folder counts for one run, in insertion order.
func (s *SQLiteStorage) runFolders(ctx context.Context, runID int64) ([]model.FolderCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT folder_id, folder_name, moved_count
		FROM run_folders
		WHERE run_id = ?
		ORDER BY id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to load run folder counts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make([]model.FolderCount, 0, 4)
	for rows.Next() {
		var fc model.FolderCount
		if err := rows.Scan(&fc.FolderID, &fc.FolderName, &fc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan folder count: %w", err)
		}
		counts = append(counts, fc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate folder counts: %w", err)
	}
	return counts, nil
}
