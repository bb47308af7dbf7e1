// Package activity persists per-user usage records in SQLite. Writes
// are best effort from the caller's point of view: the engine logs and
// drops errors so a broken disk never breaks a conversation.
package activity

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store records turns and quiz outcomes.
type Store struct {
	conn *sql.DB
}

// UserStats summarizes one user's quiz history.
type UserStats struct {
	Turns     int `json:"turns"`
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
}

// Open opens (creating if needed) the activity database at path.
func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open activity db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping activity db: %w", err)
	}
	if err := createTables(conn); err != nil {
		conn.Close()
		return nil, err
	}
	return &Store{conn: conn}, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func createTables(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS turns (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id TEXT NOT NULL,
			intent TEXT NOT NULL,
			ts INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("create turns table: %w", err)
	}

	_, err = conn.Exec(`
		CREATE TABLE IF NOT EXISTS quiz_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id TEXT NOT NULL,
			question TEXT NOT NULL,
			correct BOOLEAN NOT NULL,
			ts INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("create quiz_results table: %w", err)
	}
	return nil
}

// RecordTurn stores one processed turn.
func (s *Store) RecordTurn(userID, intent string) error {
	_, err := s.conn.Exec(
		"INSERT INTO turns (user_id, intent, ts) VALUES (?, ?, ?)",
		userID, intent, time.Now().Unix(),
	)
	return err
}

// RecordQuizResult stores one answered quiz question.
func (s *Store) RecordQuizResult(userID, question string, correct bool) error {
	_, err := s.conn.Exec(
		"INSERT INTO quiz_results (user_id, question, correct, ts) VALUES (?, ?, ?, ?)",
		userID, question, correct, time.Now().Unix(),
	)
	return err
}

// Stats returns aggregate counts for one user.
func (s *Store) Stats(userID string) (UserStats, error) {
	var st UserStats

	err := s.conn.QueryRow(
		"SELECT COUNT(*) FROM turns WHERE user_id = ?", userID,
	).Scan(&st.Turns)
	if err != nil {
		return UserStats{}, fmt.Errorf("count turns: %w", err)
	}

	err = s.conn.QueryRow(
		"SELECT COUNT(*) FROM quiz_results WHERE user_id = ? AND correct = 1", userID,
	).Scan(&st.Correct)
	if err != nil {
		return UserStats{}, fmt.Errorf("count correct: %w", err)
	}

	err = s.conn.QueryRow(
		"SELECT COUNT(*) FROM quiz_results WHERE user_id = ? AND correct = 0", userID,
	).Scan(&st.Incorrect)
	if err != nil {
		return UserStats{}, fmt.Errorf("count incorrect: %w", err)
	}

	return st, nil
}
