package logging

// #region imports
import (
	"database/sql"
	"fmt"
	"time"
)

// #endregion

// #region types

// ProvenanceEntry is one audit row: which snapshot version a transition
// produced, what triggered it, and what the engine decided.
type ProvenanceEntry struct {
	VersionID   string
	UserID      string
	TriggerType string // "init" | "compliance" | "session" | "daily" | "rollback"
	EventJSON   string
	Decision    string
	Reason      string
	CreatedAt   time.Time
}

// #endregion

// #region log-decision

// LogDecision writes a provenance entry to the provenance_log table. The
// table is created by the snapshot store's migrations.
func LogDecision(db *sql.DB, entry ProvenanceEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO provenance_log (version_id, user_id, trigger_type, event_json, decision, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.VersionID,
		entry.UserID,
		entry.TriggerType,
		nullIfEmpty(entry.EventJSON),
		entry.Decision,
		nullIfEmpty(entry.Reason),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log decision: %w", err)
	}
	return nil
}

// #endregion

// #region list

// ListDecisions returns the most recent provenance entries for a user.
func ListDecisions(db *sql.DB, userID string, limit int) ([]ProvenanceEntry, error) {
	rows, err := db.Query(
		`SELECT version_id, user_id, trigger_type, event_json, decision, reason, created_at
		 FROM provenance_log WHERE user_id = ? ORDER BY id DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	defer rows.Close()

	var entries []ProvenanceEntry
	for rows.Next() {
		var e ProvenanceEntry
		var eventJSON, reason sql.NullString
		var createdStr string
		if err := rows.Scan(&e.VersionID, &e.UserID, &e.TriggerType, &eventJSON, &e.Decision, &reason, &createdStr); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		e.EventJSON = eventJSON.String
		e.Reason = reason.String
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion
