package repository

import "gorm.io/gorm"

// Store groups the repositories that share one database handle.
// Relationship methods on one repository delegate to the finders of another
// through the Store.
type Store struct {
	Users     UserRepository
	Questions QuestionRepository
	Replies   ReplyRepository
	Follows   QuestionFollowRepository
	Likes     QuestionLikeRepository
}

// NewStore wires every repository to db.
func NewStore(db *gorm.DB) *Store {
	s := &Store{}
	s.Users = &userRepository{exec: newExecutor(db, "users"), store: s}
	s.Questions = &questionRepository{exec: newExecutor(db, "questions"), store: s}
	s.Replies = &replyRepository{exec: newExecutor(db, "replies"), store: s}
	s.Follows = &questionFollowRepository{exec: newExecutor(db, "question_follows")}
	s.Likes = &questionLikeRepository{exec: newExecutor(db, "question_likes")}
	return s
}
