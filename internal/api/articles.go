package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/amitbasuri/content-service-go/internal/models"
	"github.com/gin-gonic/gin"
)

// articleForm is the body of the create and edit forms.
// Title and content are passed to the store as sent, empty included.
type articleForm struct {
	Title      string `form:"title"`
	Content    string `form:"content"`
	CategoryID string `form:"category_id"`
}

// parseCategoryID treats an empty value as no category
func parseCategoryID(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// bindArticleInput reads the form body, rendering 400 on failure
func bindArticleInput(c *gin.Context) (models.ArticleInput, bool) {
	var form articleForm
	if err := c.ShouldBind(&form); err != nil {
		slog.WarnContext(c.Request.Context(), "Invalid article form", "error", err)
		renderError(c, http.StatusBadRequest, "Invalid article form")
		return models.ArticleInput{}, false
	}

	categoryID, err := parseCategoryID(form.CategoryID)
	if err != nil {
		slog.WarnContext(c.Request.Context(), "Invalid category ID", "category_id", form.CategoryID, "error", err)
		renderError(c, http.StatusBadRequest, "Invalid category ID")
		return models.ArticleInput{}, false
	}

	return models.ArticleInput{
		Title:      form.Title,
		Content:    form.Content,
		CategoryID: categoryID,
	}, true
}

// articleID parses the :id path parameter, rendering 400 on failure
func articleID(c *gin.Context) (int64, bool) {
	idParam := c.Param("id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		slog.WarnContext(c.Request.Context(), "Invalid article ID", "id", idParam, "error", err)
		renderError(c, http.StatusBadRequest, "Invalid article ID")
		return 0, false
	}
	return id, true
}

// ListArticles handles GET /articles
// Filters by category when ?category_id is set
func (h *Handler) ListArticles(c *gin.Context) {
	ctx := c.Request.Context()

	selected, err := parseCategoryID(c.Query("category_id"))
	if err != nil {
		slog.WarnContext(c.Request.Context(), "Invalid category filter", "category_id", c.Query("category_id"), "error", err)
		renderError(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	page := models.ArticleListPage{SelectedCategoryID: selected}

	if selected != nil {
		page.Articles, err = h.store.ListArticlesByCategory(ctx, selected)
	} else {
		page.Articles, err = h.store.ListArticles(ctx)
	}
	if err != nil {
		h.renderStoreError(c, err, "Failed to retrieve articles")
		return
	}

	page.Categories, err = h.store.ListCategories(ctx)
	if err != nil {
		h.renderStoreError(c, err, "Failed to retrieve categories")
		return
	}

	page.Stats, err = h.store.GetStats(ctx)
	if err != nil {
		// Counters are decoration; the list still renders without them
		slog.WarnContext(c.Request.Context(), "Failed to get stats", "error", err)
	}

	c.HTML(http.StatusOK, "articles.html", &page)
}

// ShowCreateForm handles GET /articles/create
func (h *Handler) ShowCreateForm(c *gin.Context) {
	categories, err := h.store.ListCategories(c.Request.Context())
	if err != nil {
		h.renderStoreError(c, err, "Failed to retrieve categories")
		return
	}

	c.HTML(http.StatusOK, "create-article.html", &models.ArticleFormPage{
		Categories: categories,
	})
}

// CreateArticle handles POST /articles
func (h *Handler) CreateArticle(c *gin.Context) {
	in, ok := bindArticleInput(c)
	if !ok {
		return
	}

	article, err := h.store.CreateArticle(c.Request.Context(), in)
	if err != nil {
		h.renderStoreError(c, err, "Failed to create article")
		return
	}

	slog.InfoContext(c.Request.Context(), "Article created", "article_id", article.ID)
	c.Redirect(http.StatusSeeOther, "/articles")
}

// ShowEditForm handles GET /articles/edit/:id
func (h *Handler) ShowEditForm(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	article, err := h.store.GetArticle(ctx, id)
	if err != nil {
		h.renderStoreError(c, err, "Failed to retrieve article")
		return
	}

	categories, err := h.store.ListCategories(ctx)
	if err != nil {
		h.renderStoreError(c, err, "Failed to retrieve categories")
		return
	}

	c.HTML(http.StatusOK, "edit-article.html", &models.ArticleFormPage{
		Article:    article,
		Categories: categories,
	})
}

// UpdateArticle handles POST /articles/edit/:id
func (h *Handler) UpdateArticle(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	in, ok := bindArticleInput(c)
	if !ok {
		return
	}

	if _, err := h.store.UpdateArticle(c.Request.Context(), id, in); err != nil {
		h.renderStoreError(c, err, "Failed to update article")
		return
	}

	slog.InfoContext(c.Request.Context(), "Article updated", "article_id", id)
	c.Redirect(http.StatusSeeOther, "/articles")
}

// DeleteArticle handles POST /articles/delete/:id
func (h *Handler) DeleteArticle(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	if _, err := h.store.DeleteArticle(c.Request.Context(), id); err != nil {
		h.renderStoreError(c, err, "Failed to delete article")
		return
	}

	slog.InfoContext(c.Request.Context(), "Article deleted", "article_id", id)
	c.Redirect(http.StatusSeeOther, "/articles")
}
