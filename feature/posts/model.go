package posts

// Post is a blog post.
type Post struct {
	ID     int64  `gorm:"primaryKey;autoIncrement:false" json:"id" yaml:"id"`
	UserID int64  `gorm:"index" json:"userId" yaml:"userId"`
	Title  string `json:"title" yaml:"title"`
	Body   string `json:"body" yaml:"body"`
}

func (p *Post) GetID() int64   { return p.ID }
func (p *Post) SetID(id int64) { p.ID = id }

// NewPost is a post that has not been created yet.
type NewPost struct {
	Title string `json:"title" yaml:"title"`
	Body  string `json:"body" yaml:"body"`
}

// ToPost returns the post to send to the server. The id and author are left
// for the server to fill in.
func (n NewPost) ToPost() *Post {
	return &Post{Title: n.Title, Body: n.Body}
}
