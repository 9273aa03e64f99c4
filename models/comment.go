package models

import "encoding/json"

// Comment belongs to a post; ParentComment is set for threaded replies.
type Comment struct {
	ID            int     `json:"id"`
	Post          int     `json:"post"`
	User          int     `json:"user"`
	Content       string  `json:"content"`
	CreatedOn     string  `json:"created_on"`
	UpdatedOn     string  `json:"updated_on"`
	ParentComment *int    `json:"parent_comment"`
	Username      string  `json:"username"`
	ProfileImage  *string `json:"profile_image"`
}

func (c *Comment) UnmarshalJSON(data []byte) error {
	if err := requireFields("Comment", data,
		"id", "post", "user", "content", "created_on", "updated_on", "username"); err != nil {
		return err
	}
	type alias Comment
	return json.Unmarshal(data, (*alias)(c))
}

func (c Comment) IsReply() bool { return c.ParentComment != nil }
