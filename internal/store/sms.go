package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SMSRecord is one mocked outbound notification. Nothing is actually sent;
// the log stands in for a gateway integration.
type SMSRecord struct {
	ID          string
	PhoneNumber string
	Message     string
	CreatedAt   time.Time
}

// LogSMS records a mocked SMS send.
func (s *Store) LogSMS(phoneNumber, message string) (*SMSRecord, error) {
	if phoneNumber == "" {
		return nil, fmt.Errorf("phone number is required")
	}

	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO sms_log (id, phone_number, message) VALUES (?, ?, ?)",
		id, phoneNumber, message,
	)
	if err != nil {
		return nil, fmt.Errorf("insert sms record: %w", err)
	}

	return &SMSRecord{ID: id, PhoneNumber: phoneNumber, Message: message, CreatedAt: time.Now()}, nil
}

// ListSMS returns the mocked send log for a phone number, newest first.
func (s *Store) ListSMS(phoneNumber string) ([]SMSRecord, error) {
	rows, err := s.db.Query(
		"SELECT id, phone_number, message, created_at FROM sms_log WHERE phone_number = ? ORDER BY created_at DESC",
		phoneNumber)
	if err != nil {
		return nil, fmt.Errorf("query sms log: %w", err)
	}
	defer rows.Close()

	var out []SMSRecord
	for rows.Next() {
		var rec SMSRecord
		var created string
		if err := rows.Scan(&rec.ID, &rec.PhoneNumber, &rec.Message, &created); err != nil {
			return nil, fmt.Errorf("scan sms record: %w", err)
		}
		rec.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", created)
		out = append(out, rec)
	}
	return out, rows.Err()
}
