package store

import (
	"context"
	"fmt"
	"time"

	"github.com/promptdesk/promptdesk/internal/category"
	"github.com/promptdesk/promptdesk/internal/notion"
)

// ErrNotFound is returned when an operation targets a record that no
// longer has a live page.
var ErrNotFound = fmt.Errorf("record not found")

// Store reads and writes prompt records. Each category maps to its own
// Notion database; every query is additionally filtered on the page
// property so shared databases stay usable.
type Store struct {
	client    *notion.Client
	databases map[category.Category]string
}

// NewStore wires a store over an authenticated Notion client and the
// per-category database IDs.
func NewStore(client *notion.Client, databases map[category.Category]string) *Store {
	return &Store{client: client, databases: databases}
}

func (s *Store) database(cat category.Category) (string, error) {
	id, ok := s.databases[cat]
	if id == "" || !ok {
		return "", fmt.Errorf("no database configured for category %q", cat)
	}
	return id, nil
}

func (s *Store) query(ctx context.Context, cat category.Category, filter *notion.Filter) ([]Record, error) {
	dbID, err := s.database(cat)
	if err != nil {
		return nil, err
	}
	pages, err := s.client.QueryDatabase(ctx, dbID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s database: %w", cat, err)
	}
	records := make([]Record, 0, len(pages))
	for _, page := range pages {
		if page.Archived {
			continue
		}
		records = append(records, RecordFromPage(cat, page))
	}
	return records, nil
}

// Exists reports whether a live record already uses the activity code.
// The check is best effort: there is no unique index on the remote
// side, so callers treat a positive result as authoritative and an
// error as unknown.
func (s *Store) Exists(ctx context.Context, cat category.Category, activityCode string) (bool, error) {
	records, err := s.FindByActivityCode(ctx, cat, activityCode)
	if err != nil {
		return false, err
	}
	return len(records) > 0, nil
}

// FindByActivityCode returns the live records matching an activity
// code within a category.
func (s *Store) FindByActivityCode(ctx context.Context, cat category.Category, activityCode string) ([]Record, error) {
	filter := notion.And(
		notion.TextEquals(propPage, string(cat)),
		notion.TextEquals(propActivityCode, activityCode),
	)
	return s.query(ctx, cat, filter)
}

// FindByPassword returns the live records a teacher saved under a
// password within a category.
func (s *Store) FindByPassword(ctx context.Context, cat category.Category, password string) ([]Record, error) {
	filter := notion.And(
		notion.TextEquals(propPage, string(cat)),
		notion.TextEquals(propPassword, password),
	)
	return s.query(ctx, cat, filter)
}

// Insert creates a new page for the record. The creation timestamp is
// stamped here if the caller did not set one.
func (s *Store) Insert(ctx context.Context, rec Record) (Record, error) {
	dbID, err := s.database(rec.Category)
	if err != nil {
		return Record{}, err
	}
	if rec.CreatedAt == "" {
		rec.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	props, err := rec.ToProperties()
	if err != nil {
		return Record{}, err
	}
	page, err := s.client.CreatePage(ctx, dbID, props)
	if err != nil {
		return Record{}, fmt.Errorf("failed to insert record %q: %w", rec.ActivityCode, err)
	}
	rec.PageID = page.ID
	return rec, nil
}

// Archive removes every live record for the activity code by marking
// its pages archived. Archiving zero pages is not an error.
func (s *Store) Archive(ctx context.Context, cat category.Category, activityCode string) (int, error) {
	records, err := s.FindByActivityCode(ctx, cat, activityCode)
	if err != nil {
		return 0, err
	}
	archived := 0
	for _, rec := range records {
		if err := s.client.ArchivePage(ctx, rec.PageID); err != nil {
			return archived, fmt.Errorf("failed to archive record %q: %w", activityCode, err)
		}
		archived++
	}
	return archived, nil
}

// Replace rewrites the live record for the activity code in place. The
// first matching page is patched with the new properties while keeping
// its creation timestamp, and any duplicate pages beyond the first are
// archived. The record stays queryable throughout.
func (s *Store) Replace(ctx context.Context, rec Record) (Record, error) {
	existing, err := s.FindByActivityCode(ctx, rec.Category, rec.ActivityCode)
	if err != nil {
		return Record{}, err
	}
	if len(existing) == 0 {
		return Record{}, fmt.Errorf("%w: %s/%s", ErrNotFound, rec.Category, rec.ActivityCode)
	}

	target := existing[0]
	rec.PageID = target.PageID
	rec.CreatedAt = target.CreatedAt
	props, err := rec.ToProperties()
	if err != nil {
		return Record{}, err
	}
	delete(props, propDate)
	if err := s.client.UpdatePage(ctx, target.PageID, props); err != nil {
		return Record{}, fmt.Errorf("failed to update record %q: %w", rec.ActivityCode, err)
	}

	for _, dup := range existing[1:] {
		if err := s.client.ArchivePage(ctx, dup.PageID); err != nil {
			return rec, fmt.Errorf("failed to archive duplicate of %q: %w", rec.ActivityCode, err)
		}
	}
	return rec, nil
}
