package repository

import (
	"context"

	"questionsdb/internal/models"
)

const (
	likersForQuestionSQL = "SELECT users.* FROM users " +
		"JOIN question_likes ON users.id = question_likes.user_id " +
		"WHERE question_likes.question_id = ? ORDER BY users.id"
	numLikesForQuestionSQL   = "SELECT COUNT(*) AS count FROM question_likes WHERE question_id = ?"
	likedQuestionsForUserSQL = "SELECT questions.* FROM questions " +
		"JOIN question_likes ON questions.id = question_likes.question_id " +
		"WHERE question_likes.user_id = ? ORDER BY questions.id"
	mostLikedQuestionsSQL = "SELECT questions.* FROM question_likes " +
		"JOIN questions ON questions.id = question_likes.question_id " +
		"GROUP BY questions.id ORDER BY COUNT(*) DESC, questions.id ASC LIMIT ?"
)

// QuestionLikeRepository answers queries over the question_likes join.
type QuestionLikeRepository interface {
	LikersForQuestionID(ctx context.Context, questionID int64) ([]models.User, error)
	NumLikesForQuestionID(ctx context.Context, questionID int64) (int64, error)
	LikedQuestionsForUserID(ctx context.Context, userID int64) ([]models.Question, error)
	MostLikedQuestions(ctx context.Context, n int) ([]models.Question, error)
}

type questionLikeRepository struct {
	exec executor
}

func (r *questionLikeRepository) LikersForQuestionID(ctx context.Context, questionID int64) ([]models.User, error) {
	rows, err := r.exec.selectRows(ctx, "LikersForQuestionID", likersForQuestionSQL, questionID)
	if err != nil {
		return nil, err
	}
	return mapUsers(rows)
}

// NumLikesForQuestionID counts like rows, duplicates included. 0 when none.
// A count the driver returns in an undecodable form is an error, not 0.
func (r *questionLikeRepository) NumLikesForQuestionID(ctx context.Context, questionID int64) (int64, error) {
	row, err := r.exec.selectRow(ctx, "NumLikesForQuestionID", numLikesForQuestionSQL, questionID)
	if err != nil || row == nil {
		return 0, err
	}
	return row.Int64("count")
}

func (r *questionLikeRepository) LikedQuestionsForUserID(ctx context.Context, userID int64) ([]models.Question, error) {
	rows, err := r.exec.selectRows(ctx, "LikedQuestionsForUserID", likedQuestionsForUserSQL, userID)
	if err != nil {
		return nil, err
	}
	return mapQuestions(rows)
}

// MostLikedQuestions returns at most n questions ranked by like count, ties
// broken by ascending id. n <= 0 returns an empty slice without querying.
func (r *questionLikeRepository) MostLikedQuestions(ctx context.Context, n int) ([]models.Question, error) {
	if n <= 0 {
		return []models.Question{}, nil
	}
	rows, err := r.exec.selectRows(ctx, "MostLikedQuestions", mostLikedQuestionsSQL, n)
	if err != nil {
		return nil, err
	}
	return mapQuestions(rows)
}
