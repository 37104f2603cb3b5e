package models

// QuestionFollow links a user to a question they follow.
// The pair has no id of its own and duplicates are allowed.
type QuestionFollow struct {
	QuestionID int64 `json:"question_id"`
	UserID     int64 `json:"user_id"`
}

// QuestionLike links a user to a question they like.
type QuestionLike struct {
	QuestionID int64 `json:"question_id"`
	UserID     int64 `json:"user_id"`
}
