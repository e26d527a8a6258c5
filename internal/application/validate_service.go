package application

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/openkraft/tokenkraft/internal/domain"
	"github.com/openkraft/tokenkraft/internal/domain/rules"
	"go.uber.org/zap"
)

// CheckLoad names the finding recorded when a profile in a batch cannot be
// loaded.
const CheckLoad = "load"

// ValidateOptions tunes a validation run.
type ValidateOptions struct {
	// Strict makes warnings and infos fail the run.
	Strict bool
	// Schema, when set, adds its findings after the rule battery.
	Schema domain.SchemaChecker
	// Record appends each run to the project history.
	Record bool
	// ProjectPath is where history is kept. Defaults to ".".
	ProjectPath string
}

// ValidateService orchestrates the validation pipeline:
// load → rule battery → optional schema check → optional history record.
type ValidateService struct {
	loader       domain.ProfileLoader
	scanner      domain.ProfileScanner
	configLoader domain.ConfigLoader
	history      domain.RunHistory
	git          domain.GitInfo
	logger       *zap.Logger
}

// NewValidateService wires the pipeline. history and git may be nil when
// runs are never recorded; a nil logger discards output.
func NewValidateService(
	loader domain.ProfileLoader,
	scanner domain.ProfileScanner,
	configLoader domain.ConfigLoader,
	history domain.RunHistory,
	git domain.GitInfo,
	logger *zap.Logger,
) *ValidateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ValidateService{
		loader:       loader,
		scanner:      scanner,
		configLoader: configLoader,
		history:      history,
		git:          git,
		logger:       logger,
	}
}

// ValidateFile loads and validates one profile. Read and parse failures are
// returned as *domain.LoadError and produce no result.
func (s *ValidateService) ValidateFile(path string, opts ValidateOptions) (*domain.ValidationResult, error) {
	log := s.logger.With(zap.String("profile", path))

	p, err := s.loader.Load(path)
	if err != nil {
		log.Debug("load failed", zap.Error(err))
		return nil, err
	}

	result := rules.Validate(p)

	if opts.Schema != nil {
		findings, err := opts.Schema.Check(p)
		if err != nil {
			return nil, fmt.Errorf("schema check: %w", err)
		}
		result.Findings = append(result.Findings, findings...)
	}

	log.Debug("validated",
		zap.Int("errors", result.Count(domain.SeverityError)),
		zap.Int("warnings", result.Count(domain.SeverityWarning)),
		zap.Int("infos", result.Count(domain.SeverityInfo)),
		zap.String("status", result.Status(opts.Strict)),
	)

	if opts.Record {
		s.record(result, opts)
	}
	return result, nil
}

// Discover lists the profiles in the project's configured profile dirs.
func (s *ValidateService) Discover(projectPath string) ([]string, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	var paths []string
	for _, dir := range cfg.ProfileDirs {
		found, err := s.scanner.Scan(filepath.Join(projectPath, dir), cfg.ExcludePaths...)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", dir, err)
		}
		s.logger.Debug("scanned profile dir", zap.String("dir", dir), zap.Int("profiles", len(found)))
		paths = append(paths, found...)
	}
	return paths, nil
}

// ValidateAll validates every discovered profile. A profile that cannot be
// loaded still yields a result, holding a single load error, so one broken
// file does not hide the others.
func (s *ValidateService) ValidateAll(projectPath string, opts ValidateOptions) ([]*domain.ValidationResult, error) {
	paths, err := s.Discover(projectPath)
	if err != nil {
		return nil, err
	}
	if opts.ProjectPath == "" {
		opts.ProjectPath = projectPath
	}

	results := make([]*domain.ValidationResult, 0, len(paths))
	for _, path := range paths {
		result, err := s.ValidateFile(path, opts)
		var loadErr *domain.LoadError
		switch {
		case errors.As(err, &loadErr):
			result = &domain.ValidationResult{
				Profile: path,
				Source:  path,
				Findings: []domain.Finding{{
					Severity: domain.SeverityError,
					Check:    CheckLoad,
					Message:  loadErr.Error(),
				}},
			}
		case err != nil:
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// record is best-effort: history problems are logged, never fatal.
func (s *ValidateService) record(result *domain.ValidationResult, opts ValidateOptions) {
	if s.history == nil {
		return
	}
	project := opts.ProjectPath
	if project == "" {
		project = "."
	}

	entry := domain.RunEntry{
		Profile:  result.Profile,
		Source:   result.Source,
		Status:   result.Status(opts.Strict),
		Errors:   len(result.Errors()),
		Warnings: len(result.Warnings()),
	}
	if s.git != nil && s.git.IsGitRepo(project) {
		if hash, err := s.git.CommitHash(project); err == nil {
			entry.CommitHash = hash
		} else {
			s.logger.Debug("no commit hash", zap.Error(err))
		}
	}

	if err := s.history.Save(project, entry); err != nil {
		s.logger.Warn("recording run failed", zap.String("project", project), zap.Error(err))
	}
}

// History returns the recorded runs for a project.
func (s *ValidateService) History(projectPath string) ([]domain.RunEntry, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.Load(projectPath)
}
