package models

// Article is a piece of content, optionally filed under a category
type Article struct {
	ID         int64  `json:"id" db:"id"`
	Title      string `json:"title" db:"title"`
	Content    string `json:"content" db:"content"`
	CategoryID *int64 `json:"category_id" db:"category_id"`
}

// HasCategory reports whether the article is filed under the given category
func (a Article) HasCategory(id int64) bool {
	return a.CategoryID != nil && *a.CategoryID == id
}

// Category groups articles
type Category struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// ArticleInput carries the mutable article fields for create and update.
// Values are bound as statement parameters verbatim.
type ArticleInput struct {
	Title      string
	Content    string
	CategoryID *int64
}

// ContentStats holds counters shown on the article list
type ContentStats struct {
	TotalArticles         int64 `json:"total_articles"`
	TotalCategories       int64 `json:"total_categories"`
	UncategorizedArticles int64 `json:"uncategorized_articles"`
}
