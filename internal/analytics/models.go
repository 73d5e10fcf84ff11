package analytics

// TopPost is one of a platform's best-performing recent posts.
type TopPost struct {
	Title      string `json:"title"`
	Engagement int    `json:"engagement"`
	Date       string `json:"date"`
}

// Metrics is what a platform API reports about an account.
type Metrics struct {
	Followers int       `json:"followers"`
	Views7d   int       `json:"views_7d"`
	TopPosts  []TopPost `json:"top_posts"`
}

// Snapshot joins platform metrics with local scheduler state for the
// dashboard.
type Snapshot struct {
	Name           string    `json:"name"`
	Color          string    `json:"color"`
	Followers      int       `json:"followers"`
	Views7d        int       `json:"views_7d"`
	PostsScheduled int       `json:"posts_scheduled"`
	TopPosts       []TopPost `json:"top_posts"`
}
