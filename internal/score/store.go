package score

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"git.lost.host/meutraa/dotw/internal/game"
)

// Store persists performance summaries per chart fingerprint.
type Store struct {
	db *sql.DB
}

func (s *Store) Init(path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}

	initStatement := `
	create table if not exists results
	  (
		  id integer not null primary key,
		  sum text,
		  rate real,
		  score integer,
		  max_combo integer,
		  accuracy real,
		  cleared integer,
		  counts bytearray,
		  created_at timestamp default current_timestamp
	  );
	`
	if _, err = db.Exec(initStatement); nil != err {
		db.Close()
		return fmt.Errorf("unable to create results table: %w", err)
	}

	s.db = db
	return nil
}

func (s *Store) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

func hashChart(c *game.Chart) string {
	sum := sha256.Sum256([]byte(c.Difficulty.Section))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func (s *Store) Save(c *game.Chart, rate float64, summary game.Summary) error {
	counts, err := json.Marshal(summary.TierCounts)
	if nil != err {
		return fmt.Errorf("unable to marshal tier counts: %w", err)
	}
	_, err = s.db.Exec(
		"insert into results(sum, rate, score, max_combo, accuracy, cleared, counts) values(?, ?, ?, ?, ?, ?, ?)",
		hashChart(c), rate, summary.Score, summary.MaxCombo, summary.Accuracy, summary.Cleared, counts,
	)
	if nil != err {
		return fmt.Errorf("unable to save result: %w", err)
	}
	return nil
}

// Best returns the highest scoring summary recorded for this chart at this
// rate, and whether one exists.
func (s *Store) Best(c *game.Chart, rate float64) (game.Summary, bool) {
	row := s.db.QueryRow(
		"select score, max_combo, accuracy, cleared, counts from results where sum = ? and rate = ? order by score desc limit 1",
		hashChart(c), rate,
	)
	var summary game.Summary
	var counts []byte
	err := row.Scan(&summary.Score, &summary.MaxCombo, &summary.Accuracy, &summary.Cleared, &counts)
	if nil != err {
		return game.Summary{}, false
	}
	if err := json.Unmarshal(counts, &summary.TierCounts); nil != err {
		return game.Summary{}, false
	}
	return summary, true
}
