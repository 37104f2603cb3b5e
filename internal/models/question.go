package models

// Question represents a row in the "questions" table.
type Question struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	AuthorID int64  `json:"author_id"`
}

// QuestionFromRow builds a Question from a questions row.
func QuestionFromRow(row Row) (Question, error) {
	id, err := row.Int64("id")
	if err != nil {
		return Question{}, err
	}
	authorID, err := row.Int64("author_id")
	if err != nil {
		return Question{}, err
	}
	return Question{
		ID:       id,
		Title:    row.String("title"),
		Body:     row.String("body"),
		AuthorID: authorID,
	}, nil
}
