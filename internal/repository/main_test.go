package repository

import (
	"context"
	"testing"

	"questionsdb/internal/models"
	"questionsdb/internal/seed"
	"questionsdb/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// forum is a Store over a fresh database file plus a Seeder for fixtures.
type forum struct {
	db    *gorm.DB
	store *Store
	seed  *seed.Seeder
	ctx   context.Context
}

func newForum(t *testing.T, driver string) *forum {
	db := testutil.NewSQLiteDB(t, driver)
	return &forum{
		db:    db,
		store: NewStore(db),
		seed:  seed.NewSeeder(db),
		ctx:   context.Background(),
	}
}

// eachDriver runs fn once per local file driver.
func eachDriver(t *testing.T, fn func(t *testing.T, f *forum)) {
	for _, driver := range testutil.SQLiteDrivers {
		t.Run(driver, func(t *testing.T) {
			fn(t, newForum(t, driver))
		})
	}
}

func (f *forum) user(t *testing.T, fname, lname string) models.User {
	t.Helper()
	u, err := f.seed.User(f.ctx, fname, lname)
	require.NoError(t, err)
	return u
}

func (f *forum) question(t *testing.T, author models.User, title string) models.Question {
	t.Helper()
	q, err := f.seed.Question(f.ctx, author, title, title+" body")
	require.NoError(t, err)
	return q
}

func (f *forum) reply(t *testing.T, q models.Question, parent *models.Reply, author models.User, body string) models.Reply {
	t.Helper()
	r, err := f.seed.Reply(f.ctx, q, parent, author, body)
	require.NoError(t, err)
	return r
}

func (f *forum) like(t *testing.T, q models.Question, users ...models.User) {
	t.Helper()
	for _, u := range users {
		require.NoError(t, f.seed.Like(f.ctx, models.QuestionLike{QuestionID: q.ID, UserID: u.ID}))
	}
}

func (f *forum) follow(t *testing.T, q models.Question, users ...models.User) {
	t.Helper()
	for _, u := range users {
		require.NoError(t, f.seed.Follow(f.ctx, models.QuestionFollow{QuestionID: q.ID, UserID: u.ID}))
	}
}

func questionIDs(questions []models.Question) []int64 {
	ids := make([]int64, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	return ids
}

func userIDs(users []models.User) []int64 {
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}

func replyIDs(replies []models.Reply) []int64 {
	ids := make([]int64, 0, len(replies))
	for _, r := range replies {
		ids = append(ids, r.ID)
	}
	return ids
}
