package application

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/openkraft/tokenkraft/internal/domain"
	"github.com/openkraft/tokenkraft/internal/domain/tokens"
	"go.uber.org/zap"
)

// TokenBundle is everything generated from one profile.
type TokenBundle struct {
	Profile string        `json:"profile"`
	Source  string        `json:"source"`
	Files   []tokens.File `json:"files"`
	Notes   []tokens.Note `json:"style_notes"`
}

// TokensService generates token artifacts from profiles.
type TokensService struct {
	loader domain.ProfileLoader
	logger *zap.Logger
}

func NewTokensService(loader domain.ProfileLoader, logger *zap.Logger) *TokensService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TokensService{loader: loader, logger: logger}
}

// Generate loads the profile at path and renders the requested formats.
func (s *TokensService) Generate(path string, formats []string) (*TokenBundle, error) {
	p, err := s.loader.Load(path)
	if err != nil {
		return nil, err
	}

	files, err := tokens.Generate(p, formats)
	if err != nil {
		return nil, fmt.Errorf("generating tokens for %s: %w", path, err)
	}
	s.logger.Debug("generated tokens", zap.String("profile", p.Name()), zap.Strings("formats", formats))

	return &TokenBundle{
		Profile: p.Name(),
		Source:  p.Source,
		Files:   files,
		Notes:   tokens.StyleNotes(p),
	}, nil
}

// Write stores the bundle's files in outputDir, creating it as needed, and
// returns the written paths in file order.
func (s *TokensService) Write(outputDir string, b *TokenBundle) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", outputDir, err)
	}

	paths := make([]string, 0, len(b.Files))
	for _, f := range b.Files {
		path := filepath.Join(outputDir, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		s.logger.Debug("wrote token file", zap.String("path", path))
		paths = append(paths, path)
	}
	return paths, nil
}
