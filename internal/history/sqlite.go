// sqlite.go is the durable Store backed by a local SQLite database. Answers
// and display messages are stored as JSON columns and read back verbatim.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/saya-chit/saya/internal/chat"
)

// SQLiteStore persists conversations in a single local database file.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (or creates) the database at dbPath and ensures the schema
// exists.
func Open(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS conversations (
		id TEXT PRIMARY KEY,
		timestamp INTEGER NOT NULL,
		initial_query TEXT NOT NULL,
		answers TEXT NOT NULL,
		messages TEXT NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// List returns all conversations newest-first. Rows whose JSON columns no
// longer parse are skipped rather than failing the whole list.
func (s *SQLiteStore) List() ([]chat.Conversation, error) {
	rows, err := s.db.Query(
		`SELECT id, timestamp, initial_query, answers, messages
		 FROM conversations
		 ORDER BY timestamp DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query conversations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []chat.Conversation
	for rows.Next() {
		var (
			c            chat.Conversation
			answersJSON  string
			messagesJSON string
		)
		if err := rows.Scan(&c.ID, &c.Timestamp, &c.InitialQuery, &answersJSON, &messagesJSON); err != nil {
			return nil, fmt.Errorf("scan conversation: %w", err)
		}
		if json.Unmarshal([]byte(answersJSON), &c.Answers) != nil {
			continue
		}
		if json.Unmarshal([]byte(messagesJSON), &c.Messages) != nil {
			continue
		}
		out = append(out, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversations: %w", err)
	}
	return out, nil
}

// Save upserts the conversation by id.
func (s *SQLiteStore) Save(c chat.Conversation) error {
	answersJSON, err := json.Marshal(c.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	messagesJSON, err := json.Marshal(c.Messages)
	if err != nil {
		return fmt.Errorf("marshal messages: %w", err)
	}

	result, err := s.db.Exec(
		`UPDATE conversations
		 SET timestamp = ?, initial_query = ?, answers = ?, messages = ?
		 WHERE id = ?`,
		c.Timestamp, c.InitialQuery, string(answersJSON), string(messagesJSON), c.ID,
	)
	if err != nil {
		return fmt.Errorf("update conversation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if affected == 0 {
		_, err = s.db.Exec(
			`INSERT INTO conversations (id, timestamp, initial_query, answers, messages)
			 VALUES (?, ?, ?, ?, ?)`,
			c.ID, c.Timestamp, c.InitialQuery, string(answersJSON), string(messagesJSON),
		)
		if err != nil {
			return fmt.Errorf("insert conversation: %w", err)
		}
	}

	return nil
}

// Clear deletes all stored conversations.
func (s *SQLiteStore) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM conversations`); err != nil {
		return fmt.Errorf("clear conversations: %w", err)
	}
	return nil
}
