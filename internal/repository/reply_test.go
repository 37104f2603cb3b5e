package repository

import (
	"testing"

	"questionsdb/internal/models"
	"questionsdb/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplyRepository_FindByID_SQL(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewStore(db).Replies

	mock.ExpectQuery(testutil.QuoteSQL(`SELECT * FROM replies WHERE id = $1`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "question_id", "parent_id", "user_id", "body"}).
			AddRow(2, 1, nil, 3, "top level"))

	reply, err := repo.FindByID(t.Context(), 2)
	require.NoError(t, err)
	require.NotNil(t, reply)
	assert.Nil(t, reply.ParentID)
	assert.Equal(t, "top level", reply.Body)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplyRepository_ParentReply_TopLevelSkipsQuery(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewStore(db).Replies

	parent, err := repo.ParentReply(t.Context(), &models.Reply{ID: 1, QuestionID: 1, UserID: 1})
	require.NoError(t, err)
	assert.Nil(t, parent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplyRepository_Finders(t *testing.T) {
	eachDriver(t, func(t *testing.T, f *forum) {
		ned := f.user(t, "Ned", "Ruggeri")
		kush := f.user(t, "Kush", "Patel")
		q1 := f.question(t, ned, "Q1")
		q2 := f.question(t, kush, "Q2")

		r1 := f.reply(t, q1, nil, kush, "k on q1")
		r2 := f.reply(t, q2, nil, kush, "k on q2")
		r3 := f.reply(t, q1, &r1, ned, "n on q1")

		found, err := f.store.Replies.FindByID(f.ctx, r3.ID)
		require.NoError(t, err)
		assert.Equal(t, &r3, found)

		missing, err := f.store.Replies.FindByID(f.ctx, r3.ID+10)
		require.NoError(t, err)
		assert.Nil(t, missing)

		byUser, err := f.store.Replies.FindByUserID(f.ctx, kush.ID)
		require.NoError(t, err)
		assert.Equal(t, []models.Reply{r1, r2}, byUser)

		byQuestion, err := f.store.Replies.FindByQuestionID(f.ctx, q1.ID)
		require.NoError(t, err)
		assert.Equal(t, []int64{r1.ID, r3.ID}, replyIDs(byQuestion))

		none, err := f.store.Replies.FindByQuestionID(f.ctx, q2.ID+10)
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestReplyRepository_Thread(t *testing.T) {
	eachDriver(t, func(t *testing.T, f *forum) {
		ned := f.user(t, "Ned", "Ruggeri")
		kush := f.user(t, "Kush", "Patel")
		q := f.question(t, ned, "Threaded")

		root := f.reply(t, q, nil, kush, "root")
		childA := f.reply(t, q, &root, ned, "child a")
		childB := f.reply(t, q, &root, kush, "child b")
		grandchild := f.reply(t, q, &childA, kush, "grandchild")

		children, err := f.store.Replies.ChildReplies(f.ctx, &root)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{childA.ID, childB.ID}, replyIDs(children))

		leaf, err := f.store.Replies.ChildReplies(f.ctx, &grandchild)
		require.NoError(t, err)
		assert.Empty(t, leaf)

		parent, err := f.store.Replies.ParentReply(f.ctx, &grandchild)
		require.NoError(t, err)
		assert.Equal(t, &childA, parent)

		top, err := f.store.Replies.ParentReply(f.ctx, &root)
		require.NoError(t, err)
		assert.Nil(t, top)

		author, err := f.store.Replies.Author(f.ctx, &childA)
		require.NoError(t, err)
		assert.Equal(t, &ned, author)

		question, err := f.store.Replies.Question(f.ctx, &childA)
		require.NoError(t, err)
		assert.Equal(t, &q, question)
	})
}
