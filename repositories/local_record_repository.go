package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sportconnect-api/models"
)

// LocalRecordRepository is the append-only fallback store used when the
// primary database is unreachable. One storage area is shared by every user
// on the device; listing filters by user. Records are never updated or
// deleted, only appended and read back newest first.
type LocalRecordRepository struct {
	db *sql.DB
}

func NewLocalRecordRepository(db *sql.DB) *LocalRecordRepository {
	return &LocalRecordRepository{db: db}
}

// Save appends a record with a fresh id and server-side timestamp and
// returns the user's full list for that kind, newest first.
func (r *LocalRecordRepository) Save(kind, userID string, payload models.JSONData) ([]models.LocalRecord, error) {
	if !models.ValidLocalKind(kind) {
		return nil, fmt.Errorf("unknown local record kind %q", kind)
	}
	if userID == "" {
		return nil, errors.New("user id is required")
	}

	record := models.LocalRecord{
		ID:        uuid.New().String(),
		Kind:      kind,
		UserID:    userID,
		Payload:   payload,
		CreatedAt: time.Now(),
	}

	body, err := json.Marshal(record.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	_, err = r.db.Exec(
		`INSERT INTO local_records (id, kind, user_id, payload, created_at) VALUES (?, ?, ?, ?, ?)`,
		record.ID, record.Kind, record.UserID, string(body), record.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save local record: %w", err)
	}

	return r.List(kind, userID)
}

// List returns the user's records of the given kind in insertion order,
// newest first.
func (r *LocalRecordRepository) List(kind, userID string) ([]models.LocalRecord, error) {
	if !models.ValidLocalKind(kind) {
		return nil, fmt.Errorf("unknown local record kind %q", kind)
	}

	rows, err := r.db.Query(
		`SELECT id, kind, user_id, payload, created_at
		 FROM local_records
		 WHERE kind = ? AND user_id = ?
		 ORDER BY seq DESC`,
		kind, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list local records: %w", err)
	}
	defer rows.Close()

	records := make([]models.LocalRecord, 0)
	for rows.Next() {
		var rec models.LocalRecord
		var body string
		if err := rows.Scan(&rec.ID, &rec.Kind, &rec.UserID, &body, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan local record: %w", err)
		}
		if err := json.Unmarshal([]byte(body), &rec.Payload); err != nil {
			return nil, fmt.Errorf("failed to decode payload: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
