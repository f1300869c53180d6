package models

// Post is a short message authored by a user. UserID is not enforced
// against the users table.
type Post struct {
	ID     int64
	UserID int64
	Title  string
	Body   string
}

// PostWithUser is a post joined with its author's display fields. It is
// derived on read and never persisted.
type PostWithUser struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	UserName    string
	Avatar      string
}

// NewPostWithUser joins p with u. A nil u leaves the author fields empty.
func NewPostWithUser(p Post, u *User) PostWithUser {
	pw := PostWithUser{
		ID:          p.ID,
		UserID:      p.UserID,
		Title:       p.Title,
		Description: p.Body,
	}
	if u != nil {
		pw.UserName = u.Name
		pw.Avatar = u.Avatar
	}
	return pw
}
