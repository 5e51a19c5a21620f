package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contestcorner/contest-corner-api/internal/domain"
)

type fakeSubmissionRepo struct {
	submissions []domain.Submission
	winStats    map[string]domain.WinStats
	leaderboard []domain.LeaderboardEntry
}

func (f *fakeSubmissionRepo) Create(_ context.Context, submission domain.Submission) (domain.Submission, error) {
	submission.ID = uint(len(f.submissions) + 1)
	f.submissions = append(f.submissions, submission)

	return submission, nil
}

func (f *fakeSubmissionRepo) FindAll(_ context.Context) ([]domain.Submission, error) {
	return f.submissions, nil
}

func (f *fakeSubmissionRepo) FindByContestID(_ context.Context, contestID uint) ([]domain.Submission, error) {
	var matched []domain.Submission
	for _, s := range f.submissions {
		if s.ContestID == contestID {
			matched = append(matched, s)
		}
	}

	return matched, nil
}

func (f *fakeSubmissionRepo) WinStats(_ context.Context, email string) (domain.WinStats, error) {
	return f.winStats[email], nil
}

func (f *fakeSubmissionRepo) Leaderboard(_ context.Context) ([]domain.LeaderboardEntry, error) {
	return f.leaderboard, nil
}

func TestSubmissionServiceCreateDenormalizesContestTitle(t *testing.T) {
	contestRepo := newFakeContestRepo(domain.Contest{ID: 1, Title: "Logo design"})
	repo := &fakeSubmissionRepo{}
	svc := NewSubmissionService(repo, contestRepo)

	created, err := svc.Create(context.Background(), domain.Submission{
		ContestID:        1,
		ParticipantEmail: "alice@example.com",
		Task:             "https://example.com/entry",
	})
	require.NoError(t, err)

	assert.Equal(t, "Logo design", created.ContestTitle)
}

func TestSubmissionServiceCreateUnknownContest(t *testing.T) {
	svc := NewSubmissionService(&fakeSubmissionRepo{}, newFakeContestRepo())

	_, err := svc.Create(context.Background(), domain.Submission{ContestID: 99})

	assert.ErrorIs(t, err, ErrContestNotFound)
}

func TestSubmissionServiceGetWinStatsUnknownParticipant(t *testing.T) {
	repo := &fakeSubmissionRepo{winStats: map[string]domain.WinStats{}}
	svc := NewSubmissionService(repo, newFakeContestRepo())

	stats, err := svc.GetWinStats(context.Background(), "ghost@example.com")
	require.NoError(t, err)

	assert.Zero(t, stats.AttemptedCount)
	assert.Zero(t, stats.CompletedCount)
}

func TestSubmissionServiceGetLeaderboard(t *testing.T) {
	repo := &fakeSubmissionRepo{
		leaderboard: []domain.LeaderboardEntry{
			{Name: "Alice", Email: "alice@example.com", WinCount: 3},
			{Name: "Bob", Email: "bob@example.com", WinCount: 1},
		},
	}
	svc := NewSubmissionService(repo, newFakeContestRepo())

	entries, err := svc.GetLeaderboard(context.Background())
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "Alice", entries[0].Name)
	assert.GreaterOrEqual(t, entries[0].WinCount, entries[1].WinCount)
}
