package model

// DefaultUserID is used when an input carries no owner and no post is being edited.
const DefaultUserID int64 = 1

type Post struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int64  `json:"userId"`
}

type PostInput struct {
	Title  string `json:"title" validate:"required"`
	Body   string `json:"body" validate:"required"`
	UserID int64  `json:"userId" validate:"gte=0"`
}

// Clone returns a copy that shares nothing with p.
func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// WithOwner fills UserID from the post being edited, falling back to DefaultUserID.
func (in PostInput) WithOwner(editing *Post) PostInput {
	if in.UserID != 0 {
		return in
	}
	if editing != nil && editing.UserID != 0 {
		in.UserID = editing.UserID
		return in
	}
	in.UserID = DefaultUserID
	return in
}
