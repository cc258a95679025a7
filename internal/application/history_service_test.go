package application_test

import (
	"errors"
	"testing"
	"time"

	"github.com/layercheck/layercheck/internal/application"
	"github.com/layercheck/layercheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memHistory struct {
	entries []domain.RunEntry
	saveErr error
}

func (m *memHistory) Save(_ string, e domain.RunEntry) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.entries = append(m.entries, e)
	return nil
}

func (m *memHistory) Load(string) ([]domain.RunEntry, error) { return m.entries, nil }

type fakeGit struct {
	repo bool
	hash string
}

func (f fakeGit) IsGitRepo(string) bool { return f.repo }

func (f fakeGit) CommitHash(string) (string, error) {
	if f.hash == "" {
		return "", errors.New("no HEAD")
	}
	return f.hash, nil
}

func failingCheck() *domain.CheckResult {
	return &domain.CheckResult{
		GraphSource: "graph.json",
		Edges:       7,
		Violations:  []domain.Violation{{Rule: domain.RuleNoLateralImplCoupling}},
		Duration:    42 * time.Millisecond,
	}
}

func TestHistoryService_Record(t *testing.T) {
	hist := &memHistory{}
	svc := application.NewHistoryService(hist, fakeGit{repo: true, hash: "0123456789abcdef"})
	result := failingCheck()

	entry, err := svc.Record("/repo", result)
	require.NoError(t, err)

	assert.Equal(t, "0123456789abcdef", entry.CommitHash)
	assert.Equal(t, "0123456789abcdef", result.CommitHash)
	assert.Equal(t, "graph.json", entry.Graph)
	assert.Equal(t, 7, entry.Edges)
	assert.Equal(t, 1, entry.Violations)
	assert.Equal(t, int64(42), entry.DurationMS)
	_, err = time.Parse(time.RFC3339, entry.Timestamp)
	assert.NoError(t, err)

	entries, err := svc.Entries("/repo")
	require.NoError(t, err)
	assert.Equal(t, []domain.RunEntry{entry}, entries)
}

func TestHistoryService_Record_OutsideGit(t *testing.T) {
	svc := application.NewHistoryService(&memHistory{}, fakeGit{})

	entry, err := svc.Record("/repo", failingCheck())
	require.NoError(t, err)
	assert.Empty(t, entry.CommitHash)
}

func TestHistoryService_Record_NoCommits(t *testing.T) {
	svc := application.NewHistoryService(&memHistory{}, fakeGit{repo: true})

	entry, err := svc.Record("/repo", failingCheck())
	require.NoError(t, err)
	assert.Empty(t, entry.CommitHash)
}

func TestHistoryService_Record_SaveError(t *testing.T) {
	svc := application.NewHistoryService(&memHistory{saveErr: errors.New("read-only")}, nil)

	_, err := svc.Record("/repo", failingCheck())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving history")
}
