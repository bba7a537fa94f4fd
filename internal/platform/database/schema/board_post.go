package schema

// BoardPostTable represents the 'board.post' table
type BoardPostTable struct {
	Table     string
	ID        string
	Title     string
	Author    string
	PostedOn  string
	Status    string
	IsPrivate string
	Password  string
	Content   string
	Replies   string
	CreatedAt string
}

// BoardPost is the schema definition for board.post
var BoardPost = BoardPostTable{
	Table:     "board.post",
	ID:        "id",
	Title:     "title",
	Author:    "author",
	PostedOn:  "postedon",
	Status:    "status",
	IsPrivate: "isprivate",
	Password:  "password",
	Content:   "content",
	Replies:   "replies",
	CreatedAt: "createdat",
}

func (t BoardPostTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Author, t.PostedOn, t.Status,
		t.IsPrivate, t.Password, t.Content, t.Replies, t.CreatedAt,
	}
}
