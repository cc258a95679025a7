package application

import (
	"fmt"
	"time"

	"github.com/layercheck/layercheck/internal/domain"
)

// HistoryService records check runs, stamped with the current commit when
// the project is under git.
type HistoryService struct {
	history domain.RunHistory
	git     domain.GitInfo
	now     func() time.Time
}

func NewHistoryService(history domain.RunHistory, git domain.GitInfo) *HistoryService {
	return &HistoryService{history: history, git: git, now: time.Now}
}

// Record appends result to the project's history and returns the stored entry.
// A missing commit hash is not an error.
func (s *HistoryService) Record(projectPath string, result *domain.CheckResult) (domain.RunEntry, error) {
	entry := domain.RunEntry{
		Timestamp:  s.now().UTC().Format(time.RFC3339),
		Graph:      result.GraphSource,
		Edges:      result.Edges,
		Violations: len(result.Violations),
		DurationMS: result.Duration.Milliseconds(),
	}

	if s.git != nil && s.git.IsGitRepo(projectPath) {
		if hash, err := s.git.CommitHash(projectPath); err == nil {
			entry.CommitHash = hash
			result.CommitHash = hash
		}
	}

	if err := s.history.Save(projectPath, entry); err != nil {
		return domain.RunEntry{}, fmt.Errorf("saving history: %w", err)
	}
	return entry, nil
}

// Entries returns every recorded run, oldest first.
func (s *HistoryService) Entries(projectPath string) ([]domain.RunEntry, error) {
	entries, err := s.history.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	return entries, nil
}
