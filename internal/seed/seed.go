// Package seed provides helpers to create test and demo data for the
// forum database. These helpers are intended for development and testing
// only; the repository layer never writes anything but users.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"questionsdb/internal/database"
	"questionsdb/internal/models"
	"questionsdb/internal/observability"

	"gorm.io/gorm"
)

// Seeder inserts forum rows through raw statements.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a Seeder bound to db.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

func (s *Seeder) insertReturningID(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var id int64
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(&id).Error; err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, fmt.Errorf("insert returned no id: %s", query)
	}
	return id, nil
}

// User inserts a user row.
func (s *Seeder) User(ctx context.Context, fname, lname string) (models.User, error) {
	id, err := s.insertReturningID(ctx,
		"INSERT INTO users (fname, lname) VALUES (?, ?) RETURNING id", fname, lname)
	if err != nil {
		return models.User{}, fmt.Errorf("seed user: %w", err)
	}
	return models.User{ID: id, Fname: fname, Lname: lname}, nil
}

// Question inserts a question authored by author.
func (s *Seeder) Question(ctx context.Context, author models.User, title, body string) (models.Question, error) {
	id, err := s.insertReturningID(ctx,
		"INSERT INTO questions (title, body, author_id) VALUES (?, ?, ?) RETURNING id", title, body, author.ID)
	if err != nil {
		return models.Question{}, fmt.Errorf("seed question: %w", err)
	}
	return models.Question{ID: id, Title: title, Body: body, AuthorID: author.ID}, nil
}

// Reply inserts a reply to question. A nil parent makes it top-level.
func (s *Seeder) Reply(ctx context.Context, question models.Question, parent *models.Reply, author models.User, body string) (models.Reply, error) {
	var parentID *int64
	if parent != nil {
		id := parent.ID
		parentID = &id
	}
	id, err := s.insertReturningID(ctx,
		"INSERT INTO replies (question_id, parent_id, user_id, body) VALUES (?, ?, ?, ?) RETURNING id",
		question.ID, parentID, author.ID, body)
	if err != nil {
		return models.Reply{}, fmt.Errorf("seed reply: %w", err)
	}
	return models.Reply{ID: id, QuestionID: question.ID, ParentID: parentID, UserID: author.ID, Body: body}, nil
}

// Follow inserts a question_follows row.
func (s *Seeder) Follow(ctx context.Context, f models.QuestionFollow) error {
	err := s.db.WithContext(ctx).
		Exec("INSERT INTO question_follows (question_id, user_id) VALUES (?, ?)", f.QuestionID, f.UserID).Error
	if err != nil {
		return fmt.Errorf("seed follow: %w", err)
	}
	return nil
}

// Like inserts a question_likes row.
func (s *Seeder) Like(ctx context.Context, l models.QuestionLike) error {
	err := s.db.WithContext(ctx).
		Exec("INSERT INTO question_likes (question_id, user_id) VALUES (?, ?)", l.QuestionID, l.UserID).Error
	if err != nil {
		return fmt.Errorf("seed like: %w", err)
	}
	return nil
}

// ClearAll deletes every row from the forum tables, children first.
func (s *Seeder) ClearAll(ctx context.Context) error {
	for i := len(database.Tables) - 1; i >= 0; i-- {
		table := database.Tables[i]
		if err := s.db.WithContext(ctx).Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	observability.GlobalLogger.Info("Cleared forum tables")
	return nil
}

// FixtureData holds the rows created by Fixture.
type FixtureData struct {
	Users     []models.User
	Questions []models.Question
	Replies   []models.Reply
}

// Fixture inserts the small deterministic forum used for demos:
// three users, three questions, a reply thread, follows and likes.
func (s *Seeder) Fixture(ctx context.Context) (*FixtureData, error) {
	data := &FixtureData{}

	for _, name := range [][2]string{{"Ned", "Ruggeri"}, {"Kush", "Patel"}, {"Earl", "Cat"}} {
		u, err := s.User(ctx, name[0], name[1])
		if err != nil {
			return nil, err
		}
		data.Users = append(data.Users, u)
	}
	ned, kush, earl := data.Users[0], data.Users[1], data.Users[2]

	questions := []struct {
		author      models.User
		title, body string
	}{
		{ned, "Ned Question", "NED NED NED"},
		{kush, "Kush Question", "KUSH KUSH KUSH"},
		{earl, "Earl Question", "MEOW MEOW MEOW"},
	}
	for _, q := range questions {
		created, err := s.Question(ctx, q.author, q.title, q.body)
		if err != nil {
			return nil, err
		}
		data.Questions = append(data.Questions, created)
	}
	nedQ, kushQ, earlQ := data.Questions[0], data.Questions[1], data.Questions[2]

	top, err := s.Reply(ctx, earlQ, nil, ned, "Did you say NOW NOW NOW?")
	if err != nil {
		return nil, err
	}
	child, err := s.Reply(ctx, earlQ, &top, kush, "I think he said MEOW MEOW MEOW.")
	if err != nil {
		return nil, err
	}
	data.Replies = append(data.Replies, top, child)

	for _, f := range []models.QuestionFollow{
		{QuestionID: nedQ.ID, UserID: kush.ID},
		{QuestionID: nedQ.ID, UserID: earl.ID},
		{QuestionID: kushQ.ID, UserID: ned.ID},
	} {
		if err := s.Follow(ctx, f); err != nil {
			return nil, err
		}
	}

	for _, l := range []models.QuestionLike{
		{QuestionID: earlQ.ID, UserID: ned.ID},
		{QuestionID: earlQ.ID, UserID: kush.ID},
		{QuestionID: nedQ.ID, UserID: kush.ID},
	} {
		if err := s.Like(ctx, l); err != nil {
			return nil, err
		}
	}

	observability.GlobalLogger.Info("Seeded fixture forum",
		slog.Int("users", len(data.Users)),
		slog.Int("questions", len(data.Questions)),
		slog.Int("replies", len(data.Replies)),
	)
	return data, nil
}
