package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/shopadmin/internal/logging"
)

// Store persists the credential across runs.
//
// Contract:
//   - Load: return the stored credential, or nil when none is usable. Never
//     fails: absent, malformed, and expired records are all "no session",
//     and unusable records are removed.
//   - Save: write the full credential as a single record.
//   - Clear: remove the record unconditionally.
type Store interface {
	Load() *Credential
	Save(c *Credential) error
	Clear() error
}

// FileStore keeps the credential as one JSON file on disk.
type FileStore struct {
	path string
	log  logging.Logger
}

func NewFileStore(path string, log logging.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

// Load reads the session record. A missing file, unreadable JSON, an empty
// token, or a token whose exp claim is missing or in the past all yield nil,
// and the record is deleted so the next run starts clean.
func (s *FileStore) Load() *Credential {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var cred Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		_ = s.Clear()
		return nil
	}
	if cred.Token == "" || tokenExpired(cred.Token) {
		_ = s.Clear()
		return nil
	}
	return &cred
}

// Save writes the credential atomically: a temp file in the same directory is
// renamed over the record so readers never observe a partial write.
func (s *FileStore) Save(c *Credential) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close session file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod session file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

// Clear removes the session record. A missing file is not an error.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// tokenExpired reports whether the JWT's exp claim (seconds since epoch) has
// passed. The token is decoded without signature verification: the client
// only needs the expiry, the server remains the authority on validity.
// Any decode or parse problem counts as expired.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return !time.Now().Before(exp.Time)
}
