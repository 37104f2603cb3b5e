package seed

import (
	"context"
	"testing"

	"questionsdb/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}

func TestSeeder_Fixture(t *testing.T) {
	for _, driver := range testutil.SQLiteDrivers {
		t.Run(driver, func(t *testing.T) {
			db := testutil.NewSQLiteDB(t, driver)
			s := NewSeeder(db)

			data, err := s.Fixture(context.Background())
			require.NoError(t, err)

			assert.Len(t, data.Users, 3)
			assert.Len(t, data.Questions, 3)
			require.Len(t, data.Replies, 2)
			assert.Nil(t, data.Replies[0].ParentID)
			require.NotNil(t, data.Replies[1].ParentID)
			assert.Equal(t, data.Replies[0].ID, *data.Replies[1].ParentID)

			assert.EqualValues(t, 3, countRows(t, db, "users"))
			assert.EqualValues(t, 3, countRows(t, db, "question_follows"))
			assert.EqualValues(t, 3, countRows(t, db, "question_likes"))
		})
	}
}

func TestSeeder_Random(t *testing.T) {
	db := testutil.NewSQLiteDB(t, testutil.SQLiteDrivers[0])
	s := NewSeeder(db)

	counts, err := s.Random(context.Background(), Options{NumUsers: 5, NumQuestions: 4, MaxReplies: 3, Seed: 42})
	require.NoError(t, err)

	assert.Equal(t, 5, counts.Users)
	assert.Equal(t, 4, counts.Questions)
	assert.EqualValues(t, counts.Replies, countRows(t, db, "replies"))
	assert.EqualValues(t, counts.Follows, countRows(t, db, "question_follows"))
	assert.EqualValues(t, counts.Likes, countRows(t, db, "question_likes"))
}

func TestSeeder_RandomWithoutUsers(t *testing.T) {
	db := testutil.NewSQLiteDB(t, testutil.SQLiteDrivers[0])

	counts, err := NewSeeder(db).Random(context.Background(), Options{NumQuestions: 10})
	require.NoError(t, err)
	assert.Equal(t, Counts{}, *counts)
	assert.EqualValues(t, 0, countRows(t, db, "questions"))
}

func TestSeeder_ClearAll(t *testing.T) {
	db := testutil.NewSQLiteDB(t, testutil.SQLiteDrivers[0])
	s := NewSeeder(db)
	ctx := context.Background()

	_, err := s.Fixture(ctx)
	require.NoError(t, err)
	require.NoError(t, s.ClearAll(ctx))

	for _, table := range []string{"users", "questions", "replies", "question_follows", "question_likes"} {
		assert.EqualValues(t, 0, countRows(t, db, table), table)
	}
}
