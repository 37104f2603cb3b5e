package repository

import (
	"context"

	"questionsdb/internal/models"
)

const (
	followersForQuestionSQL = "SELECT users.* FROM users " +
		"JOIN question_follows ON users.id = question_follows.user_id " +
		"WHERE question_follows.question_id = ? ORDER BY users.id"
	followedQuestionsForUserSQL = "SELECT questions.* FROM questions " +
		"JOIN question_follows ON questions.id = question_follows.question_id " +
		"WHERE question_follows.user_id = ? ORDER BY questions.id"
	mostFollowedQuestionsSQL = "SELECT questions.* FROM question_follows " +
		"JOIN questions ON questions.id = question_follows.question_id " +
		"GROUP BY questions.id ORDER BY COUNT(*) DESC, questions.id ASC LIMIT ?"
)

// QuestionFollowRepository answers queries over the question_follows join.
type QuestionFollowRepository interface {
	FollowersForQuestionID(ctx context.Context, questionID int64) ([]models.User, error)
	FollowedQuestionsForUserID(ctx context.Context, userID int64) ([]models.Question, error)
	MostFollowedQuestions(ctx context.Context, n int) ([]models.Question, error)
}

type questionFollowRepository struct {
	exec executor
}

func (r *questionFollowRepository) FollowersForQuestionID(ctx context.Context, questionID int64) ([]models.User, error) {
	rows, err := r.exec.selectRows(ctx, "FollowersForQuestionID", followersForQuestionSQL, questionID)
	if err != nil {
		return nil, err
	}
	return mapUsers(rows)
}

func (r *questionFollowRepository) FollowedQuestionsForUserID(ctx context.Context, userID int64) ([]models.Question, error) {
	rows, err := r.exec.selectRows(ctx, "FollowedQuestionsForUserID", followedQuestionsForUserSQL, userID)
	if err != nil {
		return nil, err
	}
	return mapQuestions(rows)
}

// MostFollowedQuestions returns at most n questions ranked by follow count,
// ties broken by ascending id. Questions nobody follows are never included.
// n <= 0 returns an empty slice without querying.
func (r *questionFollowRepository) MostFollowedQuestions(ctx context.Context, n int) ([]models.Question, error) {
	if n <= 0 {
		return []models.Question{}, nil
	}
	rows, err := r.exec.selectRows(ctx, "MostFollowedQuestions", mostFollowedQuestionsSQL, n)
	if err != nil {
		return nil, err
	}
	return mapQuestions(rows)
}
