package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Feedback is one submitted rating with optional comments.
type Feedback struct {
	ID        string
	UserID    string
	Rating    int
	Comments  string
	CreatedAt time.Time
}

// SaveFeedback records a rating (1-5) with optional comments. UserID may be
// empty for anonymous feedback.
func (s *Store) SaveFeedback(userID string, rating int, comments string) (*Feedback, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5, got %d", rating)
	}

	id := uuid.NewString()
	var user any
	if userID != "" {
		user = userID
	}
	_, err := s.db.Exec(
		"INSERT INTO feedback (id, user_id, rating, comments) VALUES (?, ?, ?, ?)",
		id, user, rating, comments,
	)
	if err != nil {
		return nil, fmt.Errorf("insert feedback: %w", err)
	}

	return &Feedback{ID: id, UserID: userID, Rating: rating, Comments: comments, CreatedAt: time.Now()}, nil
}

// ListFeedback returns all feedback, newest first.
func (s *Store) ListFeedback() ([]Feedback, error) {
	rows, err := s.db.Query(
		"SELECT id, COALESCE(user_id, ''), rating, comments, created_at FROM feedback ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("query feedback: %w", err)
	}
	defer rows.Close()

	var out []Feedback
	for rows.Next() {
		var f Feedback
		var created string
		if err := rows.Scan(&f.ID, &f.UserID, &f.Rating, &f.Comments, &created); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		f.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", created)
		out = append(out, f)
	}
	return out, rows.Err()
}
