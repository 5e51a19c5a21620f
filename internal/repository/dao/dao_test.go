package dao

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err == nil {
		err = pool.Client.Ping()
	}
	if err != nil {
		log.Printf("docker not available, skipping dao tests: %v", err)
		os.Exit(0)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=contest_corner_test",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%v/contest_corner_test?sslmode=disable", resource.GetHostPort("5432/tcp"))

	pool.MaxWait = 2 * time.Minute
	if err = pool.Retry(func() error {
		testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err != nil {
			return err
		}

		sqlDB, err := testDB.DB()
		if err != nil {
			return err
		}

		return sqlDB.Ping()
	}); err != nil {
		log.Fatalf("could not connect to postgres container: %v", err)
	}

	if err = InitTables(testDB); err != nil {
		log.Fatalf("could not migrate tables: %v", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Printf("could not purge postgres container: %v", err)
	}

	os.Exit(code)
}

func resetTables(t *testing.T) {
	t.Helper()

	err := testDB.Exec("TRUNCATE users, contests, submissions, payments RESTART IDENTITY CASCADE").Error
	require.NoError(t, err)
}

func insertContest(t *testing.T, dao *ContestDAO, contest Contest) Contest {
	t.Helper()

	created, err := dao.Insert(context.Background(), contest)
	require.NoError(t, err)

	return created
}

func TestUserDAOInsertDuplicateEmail(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	userDAO := NewUserDAO(testDB)

	_, err := userDAO.Insert(ctx, User{Email: "alice@example.com", Name: "Alice"})
	require.NoError(t, err)

	_, err = userDAO.Insert(ctx, User{Email: "alice@example.com", Name: "Impostor"})
	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestUserDAOInsertDefaultsRole(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	userDAO := NewUserDAO(testDB)

	created, err := userDAO.Insert(ctx, User{Email: "alice@example.com"})
	require.NoError(t, err)

	stored, err := userDAO.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "participant", stored.Role)
}

func TestUserDAOUpdateByEmail(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	userDAO := NewUserDAO(testDB)

	_, err := userDAO.Insert(ctx, User{Email: "alice@example.com", Name: "Alice"})
	require.NoError(t, err)

	updated, err := userDAO.UpdateByEmail(ctx, "alice@example.com", map[string]interface{}{"name": "Alicia", "role": "creator"})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)
	assert.Equal(t, "creator", updated.Role)

	_, err = userDAO.UpdateByEmail(ctx, "ghost@example.com", map[string]interface{}{"name": "x"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestContestDAOFindPageDisjoint(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	contestDAO := NewContestDAO(testDB)

	for i := 0; i < 5; i++ {
		insertContest(t, contestDAO, Contest{
			Title:        fmt.Sprintf("Contest %d", i),
			CreatorEmail: "creator@example.com",
		})
	}

	first, err := contestDAO.FindPage(ctx, 0, 2)
	require.NoError(t, err)
	second, err := contestDAO.FindPage(ctx, 2, 2)
	require.NoError(t, err)

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	assert.Less(t, first[1].ID, second[0].ID)

	count, err := contestDAO.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestContestDAOSearchByTagsCaseInsensitive(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	contestDAO := NewContestDAO(testDB)

	insertContest(t, contestDAO, Contest{Title: "Logo contest", Tags: "Design,Logo", CreatorEmail: "creator@example.com"})
	insertContest(t, contestDAO, Contest{Title: "Essay contest", Tags: "writing", CreatorEmail: "creator@example.com"})

	matched, err := contestDAO.SearchByTags(ctx, "logo")
	require.NoError(t, err)

	require.Len(t, matched, 1)
	assert.Equal(t, "Logo contest", matched[0].Title)
}

func TestContestDAODeclareWinnerPropagates(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	contestDAO := NewContestDAO(testDB)
	submissionDAO := NewSubmissionDAO(testDB)
	paymentDAO := NewPaymentDAO(testDB)

	contest := insertContest(t, contestDAO, Contest{Title: "Logo contest", CreatorEmail: "creator@example.com"})
	other := insertContest(t, contestDAO, Contest{Title: "Other contest", CreatorEmail: "creator@example.com"})

	_, err := submissionDAO.Insert(ctx, Submission{ContestID: contest.ID, ParticipantEmail: "alice@example.com"})
	require.NoError(t, err)
	_, err = submissionDAO.Insert(ctx, Submission{ContestID: other.ID, ParticipantEmail: "bob@example.com"})
	require.NoError(t, err)
	_, err = paymentDAO.Insert(ctx, Payment{ContestID: contest.ID, UserEmail: "alice@example.com", Amount: 25})
	require.NoError(t, err)

	err = contestDAO.DeclareWinner(ctx, contest.ID, "https://example.com/entry", "Alice", "alice@example.com", "")
	require.NoError(t, err)

	stored, err := contestDAO.FindByID(ctx, contest.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", stored.WinnerEmail)

	submissions, err := submissionDAO.FindByContestID(ctx, contest.ID)
	require.NoError(t, err)
	require.Len(t, submissions, 1)
	assert.Equal(t, "alice@example.com", submissions[0].WinnerEmail)

	payments, err := paymentDAO.FindByUserEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "alice@example.com", payments[0].WinnerEmail)

	// Rows of the untouched contest keep empty winner fields.
	otherSubmissions, err := submissionDAO.FindByContestID(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, otherSubmissions, 1)
	assert.Empty(t, otherSubmissions[0].WinnerEmail)

	// Re-declaring rewrites the same values without error.
	err = contestDAO.DeclareWinner(ctx, contest.ID, "https://example.com/entry", "Alice", "alice@example.com", "")
	assert.NoError(t, err)
}

func TestContestDAODeclareWinnerUnknownContest(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	contestDAO := NewContestDAO(testDB)

	err := contestDAO.DeclareWinner(ctx, 999, "https://example.com/entry", "Alice", "alice@example.com", "")

	assert.ErrorIs(t, err, ErrContestNotFound)
}

func TestContestDAOFindLatestWinner(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	contestDAO := NewContestDAO(testDB)

	_, err := contestDAO.FindLatestWinner(ctx)
	assert.ErrorIs(t, err, ErrContestNotFound)

	contest := insertContest(t, contestDAO, Contest{Title: "Logo contest", CreatorEmail: "creator@example.com"})
	err = contestDAO.DeclareWinner(ctx, contest.ID, "https://example.com/entry", "Alice", "alice@example.com", "")
	require.NoError(t, err)

	latest, err := contestDAO.FindLatestWinner(ctx)
	require.NoError(t, err)
	assert.Equal(t, contest.ID, latest.ID)
}

func TestPaymentDAOInsertIncrementsParticipation(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	contestDAO := NewContestDAO(testDB)
	paymentDAO := NewPaymentDAO(testDB)

	contest := insertContest(t, contestDAO, Contest{Title: "Logo contest", CreatorEmail: "creator@example.com"})

	for i := 0; i < 3; i++ {
		_, err := paymentDAO.Insert(ctx, Payment{
			ContestID:     contest.ID,
			UserEmail:     fmt.Sprintf("user%d@example.com", i),
			Amount:        25,
			TransactionID: fmt.Sprintf("pi_%d", i),
		})
		require.NoError(t, err)
	}

	stored, err := contestDAO.FindByID(ctx, contest.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.ParticipationCount)
}

func TestPaymentDAOInsertUnknownContest(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	paymentDAO := NewPaymentDAO(testDB)

	_, err := paymentDAO.Insert(ctx, Payment{ContestID: 999, UserEmail: "alice@example.com", Amount: 25})
	assert.ErrorIs(t, err, ErrContestNotFound)

	payments, err := paymentDAO.FindByUserEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Empty(t, payments, "rolled back insert leaves no row")
}

func TestSubmissionDAOWinStats(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	contestDAO := NewContestDAO(testDB)
	submissionDAO := NewSubmissionDAO(testDB)

	won := insertContest(t, contestDAO, Contest{Title: "Won contest", CreatorEmail: "creator@example.com"})
	lost := insertContest(t, contestDAO, Contest{Title: "Lost contest", CreatorEmail: "creator@example.com"})

	_, err := submissionDAO.Insert(ctx, Submission{ContestID: won.ID, ParticipantEmail: "alice@example.com"})
	require.NoError(t, err)
	_, err = submissionDAO.Insert(ctx, Submission{ContestID: lost.ID, ParticipantEmail: "alice@example.com"})
	require.NoError(t, err)

	require.NoError(t, contestDAO.DeclareWinner(ctx, won.ID, "https://example.com/entry", "Alice", "alice@example.com", ""))
	require.NoError(t, contestDAO.DeclareWinner(ctx, lost.ID, "https://example.com/other", "Bob", "bob@example.com", ""))

	stats, err := submissionDAO.WinStats(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.AttemptedCount)
	assert.Equal(t, int64(1), stats.CompletedCount)

	empty, err := submissionDAO.WinStats(ctx, "ghost@example.com")
	require.NoError(t, err)
	assert.Zero(t, empty.AttemptedCount)
	assert.Zero(t, empty.CompletedCount)
}

func TestSubmissionDAOLeaderboard(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	userDAO := NewUserDAO(testDB)
	contestDAO := NewContestDAO(testDB)
	submissionDAO := NewSubmissionDAO(testDB)

	_, err := userDAO.Insert(ctx, User{Email: "alice@example.com", Name: "Alice"})
	require.NoError(t, err)
	_, err = userDAO.Insert(ctx, User{Email: "bob@example.com", Name: "Bob"})
	require.NoError(t, err)

	// Alice wins two contests, Bob wins one.
	winners := []string{"alice@example.com", "alice@example.com", "bob@example.com"}
	for i, email := range winners {
		contest := insertContest(t, contestDAO, Contest{
			Title:        fmt.Sprintf("Contest %d", i),
			CreatorEmail: "creator@example.com",
		})
		_, err = submissionDAO.Insert(ctx, Submission{ContestID: contest.ID, ParticipantEmail: email})
		require.NoError(t, err)
		require.NoError(t, contestDAO.DeclareWinner(ctx, contest.ID, "https://example.com/entry", "", email, ""))
	}

	rows, err := submissionDAO.Leaderboard(ctx)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "Alice", rows[0].Name)
	assert.Equal(t, int64(2), rows[0].WinCount)
	assert.Equal(t, "Bob", rows[1].Name)
	assert.Equal(t, int64(1), rows[1].WinCount)
}
