package device

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IdentifierProvider returns the stable per-install device identifier, or "" when none can be
// determined.
type IdentifierProvider interface {
	DeviceID() string
}

type staticIdentifierProvider struct {
	id string
}

func (s staticIdentifierProvider) DeviceID() string {
	return s.id
}

func NewStaticIdentifierProvider(id string) IdentifierProvider {
	return staticIdentifierProvider{id: id}
}

type fileIdentifierProvider struct {
	path   string
	logger *zap.Logger
	mu     sync.Mutex
	id     string
}

// DeviceID caches the identifier once it has been read or stored; failures are retried on the
// next call.
func (f *fileIdentifierProvider) DeviceID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.id != "" {
		return f.id
	}
	id, err := f.loadOrCreate()
	if err != nil {
		f.logger.Warn("device identifier unavailable", zap.String("path", f.path), zap.Error(err))
		return ""
	}
	f.id = id
	return f.id
}

func (f *fileIdentifierProvider) loadOrCreate() (string, error) {
	b, err := os.ReadFile(f.path)
	if err == nil {
		if id := strings.TrimSpace(string(b)); id != "" {
			return id, nil
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("fileIdentifierProvider.loadOrCreate: %w", err)
	}
	id := strings.ToUpper(uuid.NewString())
	if err = os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return "", fmt.Errorf("fileIdentifierProvider.loadOrCreate: %w", err)
	}
	if err = os.WriteFile(f.path, []byte(id+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("fileIdentifierProvider.loadOrCreate: %w", err)
	}
	f.logger.Info("generated device identifier", zap.String("path", f.path), zap.String("device_id", id))
	return id, nil
}

// NewFileIdentifierProvider reads the identifier from path, generating and storing a new UUID the
// first time.
func NewFileIdentifierProvider(path string, logger *zap.Logger) IdentifierProvider {
	return &fileIdentifierProvider{
		path:   path,
		logger: logger,
	}
}
