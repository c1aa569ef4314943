package store

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is one registered account.
type User struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
}

// Account failure modes are distinct so the UI can say which field is wrong.
var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrUnknownEmail  = errors.New("no account with this email")
	ErrWrongPassword = errors.New("incorrect password")
)

// Register creates a new account. The email is unique, case-insensitive.
func (s *Store) Register(email, name, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO users (id, email, name, password_hash) VALUES (?, ?, ?, ?)",
		id, email, name, hashPassword(password),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return &User{ID: id, Email: email, Name: name, CreatedAt: time.Now()}, nil
}

// Login verifies credentials. Unknown email and wrong password are reported
// distinctly, matching the mocked client behavior.
func (s *Store) Login(email, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user User
	var storedHash string
	err := s.db.QueryRow(
		"SELECT id, email, name, password_hash FROM users WHERE email = ?", email,
	).Scan(&user.ID, &user.Email, &user.Name, &storedHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUnknownEmail
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}

	if !verifyPassword(password, storedHash) {
		return nil, ErrWrongPassword
	}

	if _, err := s.db.Exec(
		"UPDATE users SET last_login_at = datetime('now') WHERE id = ?", user.ID); err != nil {
		return nil, fmt.Errorf("record login: %w", err)
	}
	return &user, nil
}

// hashPassword salts and hashes with SHA-256. Adequate for a mocked local
// account system; swap for a KDF before any real deployment.
func hashPassword(password string) string {
	salt := make([]byte, 16)
	_, _ = rand.Read(salt)
	sum := sha256.Sum256(append(salt, []byte(password)...))
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(sum[:])
}

func verifyPassword(password, stored string) bool {
	saltHex, sumHex, found := strings.Cut(stored, ":")
	if !found {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	sum := sha256.Sum256(append(salt, []byte(password)...))
	return subtle.ConstantTimeCompare([]byte(hex.EncodeToString(sum[:])), []byte(sumHex)) == 1
}
