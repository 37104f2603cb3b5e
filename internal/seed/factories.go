package seed

import (
	"context"
	"log/slog"
	"math/rand"

	"questionsdb/internal/models"
	"questionsdb/internal/observability"

	"github.com/brianvoe/gofakeit/v6"
)

// Options configures Random.
type Options struct {
	NumUsers     int
	NumQuestions int
	// MaxReplies caps the replies generated per question.
	MaxReplies int
	// Seed makes generation reproducible when non-zero.
	Seed int64
}

// Counts reports how many rows Random created.
type Counts struct {
	Users     int
	Questions int
	Replies   int
	Follows   int
	Likes     int
}

// Random populates the forum with gofakeit-generated users, questions,
// reply threads, follows and likes.
func (s *Seeder) Random(ctx context.Context, opts Options) (*Counts, error) {
	faker := gofakeit.New(opts.Seed)
	r := rand.New(rand.NewSource(opts.Seed))
	counts := &Counts{}

	users := make([]models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		u, err := s.User(ctx, faker.FirstName(), faker.LastName())
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	counts.Users = len(users)
	if len(users) == 0 {
		return counts, nil
	}

	for i := 0; i < opts.NumQuestions; i++ {
		author := users[r.Intn(len(users))]
		q, err := s.Question(ctx, author, faker.Question(), faker.Paragraph(1, 3, 12, " "))
		if err != nil {
			return nil, err
		}
		counts.Questions++

		numReplies := 0
		if opts.MaxReplies > 0 {
			numReplies = r.Intn(opts.MaxReplies + 1)
		}
		var thread []models.Reply
		for j := 0; j < numReplies; j++ {
			var parent *models.Reply
			if len(thread) > 0 && r.Intn(2) == 0 {
				parent = &thread[r.Intn(len(thread))]
			}
			reply, err := s.Reply(ctx, q, parent, users[r.Intn(len(users))], faker.Sentence(10))
			if err != nil {
				return nil, err
			}
			thread = append(thread, reply)
		}
		counts.Replies += len(thread)

		for _, u := range users {
			if r.Intn(4) == 0 {
				if err := s.Follow(ctx, models.QuestionFollow{QuestionID: q.ID, UserID: u.ID}); err != nil {
					return nil, err
				}
				counts.Follows++
			}
			if r.Intn(3) == 0 {
				if err := s.Like(ctx, models.QuestionLike{QuestionID: q.ID, UserID: u.ID}); err != nil {
					return nil, err
				}
				counts.Likes++
			}
		}
	}

	observability.GlobalLogger.Info("Seeded random forum",
		slog.Int("users", counts.Users),
		slog.Int("questions", counts.Questions),
		slog.Int("replies", counts.Replies),
		slog.Int("follows", counts.Follows),
		slog.Int("likes", counts.Likes),
	)
	return counts, nil
}
