package models

// ArticleListPage is rendered by articles.html
type ArticleListPage struct {
	Articles   []Article
	Categories []Category
	Stats      *ContentStats
	// SelectedCategoryID is set when the list is filtered by category
	SelectedCategoryID *int64
}

// ArticleFormPage is rendered by create-article.html and edit-article.html
type ArticleFormPage struct {
	Article    *Article
	Categories []Category
}

// ErrorPage is rendered by error.html
type ErrorPage struct {
	Status  int
	Message string
}

// IsSelected reports whether the list is filtered by the given category
func (p ArticleListPage) IsSelected(id int64) bool {
	return p.SelectedCategoryID != nil && *p.SelectedCategoryID == id
}

// CategoryName resolves a category id against the loaded categories
func (p ArticleListPage) CategoryName(id *int64) string {
	if id == nil {
		return ""
	}
	for _, c := range p.Categories {
		if c.ID == *id {
			return c.Name
		}
	}
	return ""
}
