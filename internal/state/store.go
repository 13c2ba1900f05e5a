package state

// #region imports
import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #endregion

// #region errors

// ErrNoSnapshot is returned when a user has no active snapshot yet.
var ErrNoSnapshot = errors.New("no active snapshot for user")

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS personalization_snapshots (
	version_id     TEXT PRIMARY KEY,
	parent_id      TEXT,
	user_id        TEXT NOT NULL,
	schema_version INTEGER NOT NULL,
	payload        TEXT NOT NULL,
	created_at     TEXT NOT NULL,
	FOREIGN KEY (parent_id) REFERENCES personalization_snapshots(version_id)
);

CREATE INDEX IF NOT EXISTS idx_snapshots_user
ON personalization_snapshots(user_id, created_at);

CREATE TABLE IF NOT EXISTS active_snapshot (
	user_id       TEXT PRIMARY KEY,
	version_id    TEXT NOT NULL,
	FOREIGN KEY (version_id) REFERENCES personalization_snapshots(version_id)
);

CREATE TABLE IF NOT EXISTS provenance_log (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	version_id    TEXT NOT NULL,
	user_id       TEXT NOT NULL,
	trigger_type  TEXT NOT NULL,
	event_json    TEXT,
	decision      TEXT NOT NULL,
	reason        TEXT,
	created_at    TEXT NOT NULL,
	FOREIGN KEY (version_id) REFERENCES personalization_snapshots(version_id)
);
`

// #endregion schema

// #region snapshot-record

// SnapshotRecord is one versioned, complete PersonalizationState for a user.
type SnapshotRecord struct {
	VersionID     string
	ParentID      string
	UserID        string
	SchemaVersion int
	State         PersonalizationState
	CreatedAt     time.Time
}

// #endregion

// #region store-struct

// SnapshotStore manages versioned per-user personalization snapshots in
// SQLite. Each transition writes a complete new snapshot (load/replace
// semantics); the active_snapshot pointer names the current one per user.
type SnapshotStore struct {
	db *sql.DB
}

// #endregion

// #region constructor

// NewSnapshotStore opens a SQLite database and runs migrations.
func NewSnapshotStore(dbPath string) (*SnapshotStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SnapshotStore{db: db}, nil
}

// #endregion

// #region close

// Close closes the underlying database connection.
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}

// #endregion

// #region db-accessor

// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *SnapshotStore) DB() *sql.DB {
	return s.db
}

// #endregion

// #region create-initial

// CreateInitial stores the baseline state as the user's first snapshot and
// points active_snapshot at it.
func (s *SnapshotStore) CreateInitial(userID string, st PersonalizationState) (SnapshotRecord, error) {
	rec := SnapshotRecord{
		VersionID:     uuid.New().String(),
		ParentID:      "",
		UserID:        userID,
		SchemaVersion: SchemaVersion,
		State:         st,
		CreatedAt:     time.Now().UTC(),
	}

	payload, err := json.Marshal(rec.State)
	if err != nil {
		return SnapshotRecord{}, fmt.Errorf("marshal state: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return SnapshotRecord{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO personalization_snapshots (version_id, parent_id, user_id, schema_version, payload, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.VersionID, nil, rec.UserID, rec.SchemaVersion, string(payload),
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return SnapshotRecord{}, fmt.Errorf("insert snapshot: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO active_snapshot (user_id, version_id) VALUES (?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET version_id = excluded.version_id`,
		rec.UserID, rec.VersionID,
	)
	if err != nil {
		return SnapshotRecord{}, fmt.Errorf("set active: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return SnapshotRecord{}, fmt.Errorf("commit: %w", err)
	}

	return rec, nil
}

// #endregion

// #region commit

// Commit inserts a new snapshot version and advances the user's active
// pointer atomically. The parent is the user's current active version.
func (s *SnapshotStore) Commit(userID string, st PersonalizationState) (SnapshotRecord, error) {
	cur, err := s.GetCurrent(userID)
	if err != nil {
		return SnapshotRecord{}, err
	}

	rec := SnapshotRecord{
		VersionID:     uuid.New().String(),
		ParentID:      cur.VersionID,
		UserID:        userID,
		SchemaVersion: SchemaVersion,
		State:         st,
		CreatedAt:     time.Now().UTC(),
	}

	payload, err := json.Marshal(rec.State)
	if err != nil {
		return SnapshotRecord{}, fmt.Errorf("marshal state: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return SnapshotRecord{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO personalization_snapshots (version_id, parent_id, user_id, schema_version, payload, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.VersionID, rec.ParentID, rec.UserID, rec.SchemaVersion, string(payload),
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return SnapshotRecord{}, fmt.Errorf("insert snapshot: %w", err)
	}

	_, err = tx.Exec(
		`UPDATE active_snapshot SET version_id = ? WHERE user_id = ?`,
		rec.VersionID, rec.UserID,
	)
	if err != nil {
		return SnapshotRecord{}, fmt.Errorf("update active: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return SnapshotRecord{}, fmt.Errorf("commit: %w", err)
	}

	return rec, nil
}

// #endregion

// #region get-current

// GetCurrent reads the user's active snapshot.
func (s *SnapshotStore) GetCurrent(userID string) (SnapshotRecord, error) {
	var versionID string
	err := s.db.QueryRow(
		`SELECT version_id FROM active_snapshot WHERE user_id = ?`, userID,
	).Scan(&versionID)
	if err == sql.ErrNoRows {
		return SnapshotRecord{}, ErrNoSnapshot
	}
	if err != nil {
		return SnapshotRecord{}, fmt.Errorf("get active: %w", err)
	}
	return s.GetVersion(versionID)
}

// #endregion

// #region get-version

// GetVersion retrieves a specific snapshot by version ID, migrating older
// payload schemas forward.
func (s *SnapshotStore) GetVersion(id string) (SnapshotRecord, error) {
	var rec SnapshotRecord
	var parentID sql.NullString
	var payload string
	var createdStr string

	err := s.db.QueryRow(
		`SELECT version_id, parent_id, user_id, schema_version, payload, created_at
		 FROM personalization_snapshots WHERE version_id = ?`, id,
	).Scan(&rec.VersionID, &parentID, &rec.UserID, &rec.SchemaVersion, &payload, &createdStr)
	if err != nil {
		return SnapshotRecord{}, fmt.Errorf("get version %s: %w", id, err)
	}

	if parentID.Valid {
		rec.ParentID = parentID.String
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)

	st, err := decodePayload(rec.SchemaVersion, []byte(payload))
	if err != nil {
		return SnapshotRecord{}, fmt.Errorf("decode payload %s: %w", id, err)
	}
	rec.State = st
	rec.SchemaVersion = SchemaVersion

	return rec, nil
}

// #endregion

// #region rollback

// Rollback points the user's active snapshot at a previous version.
func (s *SnapshotStore) Rollback(userID, targetVersionID string) error {
	var owner string
	err := s.db.QueryRow(
		`SELECT user_id FROM personalization_snapshots WHERE version_id = ?`, targetVersionID,
	).Scan(&owner)
	if err == sql.ErrNoRows {
		return fmt.Errorf("version %s not found", targetVersionID)
	}
	if err != nil {
		return fmt.Errorf("check version: %w", err)
	}
	if owner != userID {
		return fmt.Errorf("version %s does not belong to user %s", targetVersionID, userID)
	}

	_, err = s.db.Exec(
		`UPDATE active_snapshot SET version_id = ? WHERE user_id = ?`,
		targetVersionID, userID,
	)
	if err != nil {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}

// #endregion

// #region list-versions

// ListVersions returns the user's most recent snapshot versions.
func (s *SnapshotStore) ListVersions(userID string, limit int) ([]SnapshotRecord, error) {
	rows, err := s.db.Query(
		`SELECT version_id, parent_id, user_id, schema_version, payload, created_at
		 FROM personalization_snapshots WHERE user_id = ?
		 ORDER BY created_at DESC LIMIT ?`, userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	defer rows.Close()

	var records []SnapshotRecord
	for rows.Next() {
		var rec SnapshotRecord
		var parentID sql.NullString
		var payload string
		var createdStr string

		if err := rows.Scan(&rec.VersionID, &parentID, &rec.UserID, &rec.SchemaVersion, &payload, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if parentID.Valid {
			rec.ParentID = parentID.String
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)

		st, err := decodePayload(rec.SchemaVersion, []byte(payload))
		if err != nil {
			return nil, fmt.Errorf("decode payload %s: %w", rec.VersionID, err)
		}
		rec.State = st
		rec.SchemaVersion = SchemaVersion

		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion

// #region payload-codec

// decodePayload unmarshals a snapshot payload, upgrading older schema
// versions in place. Version 1 is the only schema so far, so migration is
// a straight decode; the switch is the hook future versions extend.
func decodePayload(version int, payload []byte) (PersonalizationState, error) {
	switch version {
	case 1:
		var st PersonalizationState
		if err := json.Unmarshal(payload, &st); err != nil {
			return PersonalizationState{}, err
		}
		return st, nil
	default:
		return PersonalizationState{}, fmt.Errorf("unknown schema version %d", version)
	}
}

// #endregion
