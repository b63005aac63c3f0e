// Package journal persists interpretation results and their symbol
// snapshots in SQLite, so transcripts survive the process.
package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/obinexus/riftplayer/go-engine/internal/interpreter"
	"github.com/obinexus/riftplayer/go-engine/internal/symbol"
	"github.com/obinexus/riftplayer/go-engine/internal/vtt"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS interpretation_log (
	result_id      TEXT PRIMARY KEY,
	frame_index    INTEGER NOT NULL,
	raw_text       TEXT NOT NULL,
	dominant_state TEXT NOT NULL,
	tristate_json  TEXT NOT NULL,
	semantic_label TEXT,
	caption        TEXT NOT NULL,
	confidence     REAL NOT NULL,
	filtered       REAL NOT NULL,
	flashed        REAL NOT NULL,
	created_at     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS symbol_snapshots (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	result_id   TEXT NOT NULL,
	key         TEXT NOT NULL,
	category    TEXT NOT NULL,
	tristate    TEXT NOT NULL,
	state       TEXT NOT NULL,
	confidence  REAL NOT NULL,
	rwx         TEXT NOT NULL,
	tag         TEXT NOT NULL,
	FOREIGN KEY (result_id) REFERENCES interpretation_log(result_id)
);
`

// #endregion schema

// #region store-struct

// Store manages the interpretation journal in SQLite.
type Store struct {
	db *sql.DB
}

// Record is one journal row, read side.
type Record struct {
	ResultID       string
	FrameIndex     int
	RawText        string
	DominantState  symbol.DiscriminantState
	TriStateCounts map[string]int
	SemanticLabel  string
	Caption        string
	Confidence     float64
	Filtered       float64
	Flashed        float64
	CreatedAt      time.Time
}

// #endregion store-struct

// #region constructor

// NewStore opens the journal database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
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
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion constructor

// #region append

// Append writes one interpretation result and its symbol snapshots in a
// single transaction.
func (s *Store) Append(res *interpreter.Result) error {
	triJSON, err := json.Marshal(res.TriStateCounts)
	if err != nil {
		return fmt.Errorf("marshal tristate counts: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO interpretation_log
		 (result_id, frame_index, raw_text, dominant_state, tristate_json, semantic_label, caption, confidence, filtered, flashed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.ID, res.FrameIndex, res.RawText, string(res.DominantState), string(triJSON),
		nullIfEmpty(res.SemanticLabel), res.Caption, res.Confidence, res.Filtered, res.Flashed,
		res.Timestamp.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}

	for _, tok := range res.Symbols {
		snap := symbol.SnapshotOf(tok)
		_, err = tx.Exec(
			`INSERT INTO symbol_snapshots (result_id, key, category, tristate, state, confidence, rwx, tag)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			res.ID, snap.Key, string(snap.Category), snap.TriState, string(snap.State),
			snap.Confidence, snap.Perm, snap.Tag,
		)
		if err != nil {
			return fmt.Errorf("insert snapshot %q: %w", snap.Key, err)
		}
	}

	return tx.Commit()
}

// #endregion append

// #region reads

// ListRecent returns the most recent journal records, newest first.
func (s *Store) ListRecent(limit int) ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT result_id, frame_index, raw_text, dominant_state, tristate_json, semantic_label, caption, confidence, filtered, flashed, created_at
		 FROM interpretation_log ORDER BY frame_index DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list recent: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// Transcript returns every record in frame order, oldest first.
func (s *Store) Transcript() ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT result_id, frame_index, raw_text, dominant_state, tristate_json, semantic_label, caption, confidence, filtered, flashed, created_at
		 FROM interpretation_log ORDER BY frame_index ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("transcript: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// Entries maps the stored transcript to exporter entries.
func (s *Store) Entries() ([]vtt.Entry, error) {
	recs, err := s.Transcript()
	if err != nil {
		return nil, err
	}
	entries := make([]vtt.Entry, 0, len(recs))
	for _, r := range recs {
		entries = append(entries, vtt.Entry{FrameIndex: r.FrameIndex, Caption: r.Caption})
	}
	return entries, nil
}

// SnapshotsFor returns the symbol snapshots recorded with one result.
func (s *Store) SnapshotsFor(resultID string) ([]symbol.Snapshot, error) {
	rows, err := s.db.Query(
		`SELECT key, category, tristate, state, confidence, rwx, tag
		 FROM symbol_snapshots WHERE result_id = ? ORDER BY id ASC`, resultID,
	)
	if err != nil {
		return nil, fmt.Errorf("snapshots for %s: %w", resultID, err)
	}
	defer rows.Close()

	var snaps []symbol.Snapshot
	for rows.Next() {
		var snap symbol.Snapshot
		var category, state string
		if err := rows.Scan(&snap.Key, &category, &snap.TriState, &state, &snap.Confidence, &snap.Perm, &snap.Tag); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		snap.Category = symbol.Category(category)
		snap.State = symbol.DiscriminantState(state)
		snap.Color = symbol.LevelFor(snap.State).Color
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		var rec Record
		var dominant, triJSON, createdStr string
		var label sql.NullString
		if err := rows.Scan(
			&rec.ResultID, &rec.FrameIndex, &rec.RawText, &dominant, &triJSON,
			&label, &rec.Caption, &rec.Confidence, &rec.Filtered, &rec.Flashed, &createdStr,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.DominantState = symbol.DiscriminantState(dominant)
		if err := json.Unmarshal([]byte(triJSON), &rec.TriStateCounts); err != nil {
			return nil, fmt.Errorf("unmarshal tristate counts: %w", err)
		}
		if label.Valid {
			rec.SemanticLabel = label.String
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion reads

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
