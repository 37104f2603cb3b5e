package repository

import (
	"context"
	"errors"
	"fmt"

	"questionsdb/internal/models"
)

const (
	userByIDSQL    = "SELECT * FROM users WHERE id = ?"
	usersByNameSQL = "SELECT * FROM users WHERE fname = ? AND lname = ? ORDER BY id"
	insertUserSQL  = "INSERT INTO users (fname, lname) VALUES (?, ?) RETURNING id"
	updateUserSQL  = "UPDATE users SET fname = ?, lname = ? WHERE id = ?"
)

const averageKarmaSQL = "SELECT CAST(COUNT(question_likes.question_id) AS FLOAT) / COUNT(DISTINCT questions.id) AS average " +
	"FROM questions LEFT OUTER JOIN question_likes ON questions.id = question_likes.question_id " +
	"WHERE questions.author_id = ?"

// ErrNoInsertID is returned when an insert produced no generated key.
var ErrNoInsertID = errors.New("insert returned no id")

// UserRepository defines persistence operations for users.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByName(ctx context.Context, fname, lname string) ([]models.User, error)
	AuthoredQuestions(ctx context.Context, user *models.User) ([]models.Question, error)
	AuthoredReplies(ctx context.Context, user *models.User) ([]models.Reply, error)
	FollowedQuestions(ctx context.Context, user *models.User) ([]models.Question, error)
	LikedQuestions(ctx context.Context, user *models.User) ([]models.Question, error)
	AverageKarma(ctx context.Context, user *models.User) (models.Karma, error)
	Save(ctx context.Context, user *models.User) error
}

type userRepository struct {
	exec  executor
	store *Store
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	row, err := r.exec.selectRow(ctx, "FindByID", userByIDSQL, id)
	if err != nil || row == nil {
		return nil, err
	}
	user, err := models.UserFromRow(row)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByName maps each matching row to its own User.
func (r *userRepository) FindByName(ctx context.Context, fname, lname string) ([]models.User, error) {
	rows, err := r.exec.selectRows(ctx, "FindByName", usersByNameSQL, fname, lname)
	if err != nil {
		return nil, err
	}
	return mapUsers(rows)
}

func (r *userRepository) AuthoredQuestions(ctx context.Context, user *models.User) ([]models.Question, error) {
	return r.store.Questions.FindByAuthorID(ctx, user.ID)
}

func (r *userRepository) AuthoredReplies(ctx context.Context, user *models.User) ([]models.Reply, error) {
	return r.store.Replies.FindByUserID(ctx, user.ID)
}

func (r *userRepository) FollowedQuestions(ctx context.Context, user *models.User) ([]models.Question, error) {
	return r.store.Follows.FollowedQuestionsForUserID(ctx, user.ID)
}

func (r *userRepository) LikedQuestions(ctx context.Context, user *models.User) ([]models.Question, error) {
	return r.store.Likes.LikedQuestionsForUserID(ctx, user.ID)
}

// AverageKarma returns likes received per authored question. Questions
// without likes count toward the denominator. With no authored questions
// SQLite yields NULL (a nil Average); PostgreSQL fails with a division by
// zero error, which is returned unchanged.
func (r *userRepository) AverageKarma(ctx context.Context, user *models.User) (models.Karma, error) {
	row, err := r.exec.selectRow(ctx, "AverageKarma", averageKarmaSQL, user.ID)
	if err != nil || row == nil {
		return models.Karma{}, err
	}
	return models.KarmaFromRow(row)
}

// Save inserts the user when it has no id yet and stores the generated id
// on it; otherwise it updates fname and lname of the existing row.
func (r *userRepository) Save(ctx context.Context, user *models.User) error {
	if user.IsPersisted() {
		err := r.exec.exec(ctx, "Save", "update", updateUserSQL, user.Fname, user.Lname, user.ID)
		if err == nil {
			r.exec.logger.LogUpdate(ctx, map[string]interface{}{"id": user.ID})
		}
		return err
	}

	rows, err := r.exec.queryRows(ctx, "Save", "create", insertUserSQL, user.Fname, user.Lname)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return ErrNoInsertID
	}
	id, err := rows[0].Int64("id")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoInsertID, err)
	}
	user.ID = id
	r.exec.logger.LogCreate(ctx, map[string]interface{}{"id": id})
	return nil
}
