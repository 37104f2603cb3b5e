package repository

import (
	"context"

	"questionsdb/internal/models"
)

const (
	replyByIDSQL           = "SELECT * FROM replies WHERE id = ?"
	repliesByUserIDSQL     = "SELECT * FROM replies WHERE user_id = ? ORDER BY id"
	repliesByQuestionIDSQL = "SELECT * FROM replies WHERE question_id = ? ORDER BY id"
	repliesByParentIDSQL   = "SELECT * FROM replies WHERE parent_id = ? ORDER BY id"
)

// ReplyRepository defines lookups and thread traversal for replies.
type ReplyRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Reply, error)
	FindByUserID(ctx context.Context, userID int64) ([]models.Reply, error)
	FindByQuestionID(ctx context.Context, questionID int64) ([]models.Reply, error)
	Author(ctx context.Context, reply *models.Reply) (*models.User, error)
	Question(ctx context.Context, reply *models.Reply) (*models.Question, error)
	ParentReply(ctx context.Context, reply *models.Reply) (*models.Reply, error)
	ChildReplies(ctx context.Context, reply *models.Reply) ([]models.Reply, error)
}

type replyRepository struct {
	exec  executor
	store *Store
}

func (r *replyRepository) FindByID(ctx context.Context, id int64) (*models.Reply, error) {
	row, err := r.exec.selectRow(ctx, "FindByID", replyByIDSQL, id)
	if err != nil || row == nil {
		return nil, err
	}
	reply, err := models.ReplyFromRow(row)
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

func (r *replyRepository) FindByUserID(ctx context.Context, userID int64) ([]models.Reply, error) {
	return r.list(ctx, "FindByUserID", repliesByUserIDSQL, userID)
}

func (r *replyRepository) FindByQuestionID(ctx context.Context, questionID int64) ([]models.Reply, error) {
	return r.list(ctx, "FindByQuestionID", repliesByQuestionIDSQL, questionID)
}

func (r *replyRepository) Author(ctx context.Context, reply *models.Reply) (*models.User, error) {
	return r.store.Users.FindByID(ctx, reply.UserID)
}

func (r *replyRepository) Question(ctx context.Context, reply *models.Reply) (*models.Question, error) {
	return r.store.Questions.FindByID(ctx, reply.QuestionID)
}

// ParentReply returns nil without querying for a top-level reply.
func (r *replyRepository) ParentReply(ctx context.Context, reply *models.Reply) (*models.Reply, error) {
	if reply.ParentID == nil {
		return nil, nil
	}
	return r.FindByID(ctx, *reply.ParentID)
}

// ChildReplies returns the direct children only. Cycles in parent_id are not
// detected.
func (r *replyRepository) ChildReplies(ctx context.Context, reply *models.Reply) ([]models.Reply, error) {
	return r.list(ctx, "ChildReplies", repliesByParentIDSQL, reply.ID)
}

func (r *replyRepository) list(ctx context.Context, method, query string, arg int64) ([]models.Reply, error) {
	rows, err := r.exec.selectRows(ctx, method, query, arg)
	if err != nil {
		return nil, err
	}
	return mapReplies(rows)
}
