package repository

import (
	"context"

	"questionsdb/internal/models"
)

const (
	questionByIDSQL        = "SELECT * FROM questions WHERE id = ?"
	questionsByAuthorIDSQL = "SELECT * FROM questions WHERE author_id = ? ORDER BY id"
)

// QuestionRepository defines lookups and relationship traversal for questions.
type QuestionRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Question, error)
	FindByAuthorID(ctx context.Context, authorID int64) ([]models.Question, error)
	Author(ctx context.Context, question *models.Question) (*models.User, error)
	Replies(ctx context.Context, question *models.Question) ([]models.Reply, error)
	Followers(ctx context.Context, question *models.Question) ([]models.User, error)
	Likers(ctx context.Context, question *models.Question) ([]models.User, error)
	NumLikes(ctx context.Context, question *models.Question) (int64, error)
	MostFollowed(ctx context.Context, n int) ([]models.Question, error)
	MostLiked(ctx context.Context, n int) ([]models.Question, error)
}

type questionRepository struct {
	exec  executor
	store *Store
}

func (r *questionRepository) FindByID(ctx context.Context, id int64) (*models.Question, error) {
	row, err := r.exec.selectRow(ctx, "FindByID", questionByIDSQL, id)
	if err != nil || row == nil {
		return nil, err
	}
	question, err := models.QuestionFromRow(row)
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByAuthorID(ctx context.Context, authorID int64) ([]models.Question, error) {
	rows, err := r.exec.selectRows(ctx, "FindByAuthorID", questionsByAuthorIDSQL, authorID)
	if err != nil {
		return nil, err
	}
	return mapQuestions(rows)
}

func (r *questionRepository) Author(ctx context.Context, question *models.Question) (*models.User, error) {
	return r.store.Users.FindByID(ctx, question.AuthorID)
}

func (r *questionRepository) Replies(ctx context.Context, question *models.Question) ([]models.Reply, error) {
	return r.store.Replies.FindByQuestionID(ctx, question.ID)
}

func (r *questionRepository) Followers(ctx context.Context, question *models.Question) ([]models.User, error) {
	return r.store.Follows.FollowersForQuestionID(ctx, question.ID)
}

func (r *questionRepository) Likers(ctx context.Context, question *models.Question) ([]models.User, error) {
	return r.store.Likes.LikersForQuestionID(ctx, question.ID)
}

func (r *questionRepository) NumLikes(ctx context.Context, question *models.Question) (int64, error) {
	return r.store.Likes.NumLikesForQuestionID(ctx, question.ID)
}

// MostFollowed does not depend on any particular question.
func (r *questionRepository) MostFollowed(ctx context.Context, n int) ([]models.Question, error) {
	return r.store.Follows.MostFollowedQuestions(ctx, n)
}

// MostLiked does not depend on any particular question.
func (r *questionRepository) MostLiked(ctx context.Context, n int) ([]models.Question, error) {
	return r.store.Likes.MostLikedQuestions(ctx, n)
}
