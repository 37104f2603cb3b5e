package models

// Reply represents a row in the "replies" table. A nil ParentID marks a
// top-level reply to the question.
type Reply struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	ParentID   *int64 `json:"parent_id,omitempty"`
	UserID     int64  `json:"user_id"`
	Body       string `json:"body"`
}

// ReplyFromRow builds a Reply from a replies row.
func ReplyFromRow(row Row) (Reply, error) {
	var (
		reply Reply
		err   error
	)
	if reply.ID, err = row.Int64("id"); err != nil {
		return Reply{}, err
	}
	if reply.QuestionID, err = row.Int64("question_id"); err != nil {
		return Reply{}, err
	}
	if reply.ParentID, err = row.NullableInt64("parent_id"); err != nil {
		return Reply{}, err
	}
	if reply.UserID, err = row.Int64("user_id"); err != nil {
		return Reply{}, err
	}
	reply.Body = row.String("body")
	return reply, nil
}

// IsTopLevel reports whether the reply answers the question directly.
func (r *Reply) IsTopLevel() bool {
	return r.ParentID == nil
}
