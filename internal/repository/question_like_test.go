package repository

import (
	"testing"

	"questionsdb/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionLikeRepository_NumLikes_SQL(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewStore(db).Likes

	mock.ExpectQuery(testutil.QuoteSQL(`SELECT COUNT(*) AS count FROM question_likes WHERE question_id = $1`)).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err := repo.NumLikesForQuestionID(t.Context(), 9)
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionLikeRepository_NumLikes_UndecodableCount(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewStore(db).Likes

	mock.ExpectQuery(testutil.QuoteSQL(`SELECT COUNT(*) AS count FROM question_likes WHERE question_id = $1`)).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow("many"))

	n, err := repo.NumLikesForQuestionID(t.Context(), 9)
	require.Error(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionLikeRepository_Directions(t *testing.T) {
	eachDriver(t, func(t *testing.T, f *forum) {
		ned := f.user(t, "Ned", "Ruggeri")
		kush := f.user(t, "Kush", "Patel")
		earl := f.user(t, "Earl", "Cat")
		q1 := f.question(t, ned, "Q1")
		q2 := f.question(t, kush, "Q2")

		f.like(t, q1, earl, kush)
		f.like(t, q2, earl)

		likers, err := f.store.Likes.LikersForQuestionID(f.ctx, q1.ID)
		require.NoError(t, err)
		assert.Equal(t, []int64{kush.ID, earl.ID}, userIDs(likers))

		liked, err := f.store.Likes.LikedQuestionsForUserID(f.ctx, earl.ID)
		require.NoError(t, err)
		assert.Equal(t, []int64{q1.ID, q2.ID}, questionIDs(liked))

		n, err := f.store.Likes.NumLikesForQuestionID(f.ctx, q2.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)

		n, err = f.store.Likes.NumLikesForQuestionID(f.ctx, q2.ID+100)
		require.NoError(t, err)
		assert.Zero(t, n)

		top, err := f.store.Likes.MostLikedQuestions(f.ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []int64{q1.ID}, questionIDs(top))
	})
}
