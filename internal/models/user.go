package models

// User represents a row in the "users" table.
// A zero ID means the user has not been saved yet.
type User struct {
	ID    int64  `json:"id"`
	Fname string `json:"fname"`
	Lname string `json:"lname"`
}

// UserFromRow builds a User from a users row.
func UserFromRow(row Row) (User, error) {
	id, err := row.Int64("id")
	if err != nil {
		return User{}, err
	}
	return User{
		ID:    id,
		Fname: row.String("fname"),
		Lname: row.String("lname"),
	}, nil
}

// IsPersisted reports whether the user has a generated id.
func (u *User) IsPersisted() bool {
	return u.ID != 0
}

// Karma is the aggregate row produced for a user's average karma.
// Average is nil when the engine yields NULL, i.e. the user authored no
// questions.
type Karma struct {
	Average *float64 `json:"average"`
}

// KarmaFromRow builds a Karma from the aggregate row.
func KarmaFromRow(row Row) (Karma, error) {
	avg, err := row.NullableFloat64("average")
	if err != nil {
		return Karma{}, err
	}
	return Karma{Average: avg}, nil
}
