package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	db "github.com/katatrina/fixfly-BE/internal/db/sqlc"
	"github.com/katatrina/fixfly-BE/internal/util"
	"github.com/katatrina/fixfly-BE/internal/validator"
)

//	@Summary		List published blog posts
//	@Tags			blogs
//	@Produce		json
//	@Success		200	{array}	db.Blog
//	@Router			/blogs [get]
func (server *Server) listPublishedBlogs(c *gin.Context) {
	blogs, err := server.dbStore.ListBlogs(c, db.NullBlogStatus{
		BlogStatus: db.BlogStatusPublished,
		Valid:      true,
	})
	if err != nil {
		handleError(c, err, "blog")
		return
	}

	c.JSON(http.StatusOK, successResponse(blogs))
}

//	@Summary		Get a published blog post
//	@Tags			blogs
//	@Produce		json
//	@Param			slug	path		string	true	"Blog slug"
//	@Success		200		{object}	db.Blog
//	@Failure		404		{object}	Response
//	@Router			/blogs/{slug} [get]
func (server *Server) getBlogBySlug(c *gin.Context) {
	blog, err := server.dbStore.GetBlogBySlug(c, c.Param("slug"))
	if err != nil {
		handleError(c, err, "blog")
		return
	}

	// Bài nháp không hiển thị công khai
	if blog.Status != db.BlogStatusPublished {
		handleError(c, db.ErrRecordNotFound, "blog")
		return
	}

	c.JSON(http.StatusOK, successResponse(blog))
}

type listBlogsQuery struct {
	Status *string `form:"status" binding:"omitempty,oneof=draft published"`
}

//	@Summary		List all blog posts
//	@Tags			admin
//	@Produce		json
//	@Security		accessToken
//	@Param			status	query	string	false	"draft or published"
//	@Success		200		{array}	db.Blog
//	@Router			/admin/blogs [get]
func (server *Server) listBlogs(c *gin.Context) {
	var query listBlogsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var status db.NullBlogStatus
	if query.Status != nil {
		status = db.NullBlogStatus{BlogStatus: db.BlogStatus(*query.Status), Valid: true}
	}

	blogs, err := server.dbStore.ListBlogs(c, status)
	if err != nil {
		handleError(c, err, "blog")
		return
	}

	c.JSON(http.StatusOK, successResponse(blogs))
}

type createBlogRequest struct {
	Title         string   `json:"title" binding:"required"`
	Excerpt       string   `json:"excerpt"`
	Content       string   `json:"content" binding:"required"`
	CoverImageURL *string  `json:"cover_image_url"`
	Tags          []string `json:"tags"`
	Status        string   `json:"status" binding:"omitempty,oneof=draft published"`
}

//	@Summary		Create a blog post
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			request	body		createBlogRequest	true	"Post"
//	@Success		201		{object}	db.Blog
//	@Router			/admin/blogs [post]
func (server *Server) createBlog(c *gin.Context) {
	var req createBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if err := validator.ValidateString(req.Title, 3, 200); err != nil {
		c.JSON(http.StatusBadRequest, failedValidationError([]*FieldViolation{fieldViolation("title", err)}))
		return
	}

	admin := c.MustGet(adminPayloadKey).(*db.User)

	status := db.BlogStatusDraft
	if req.Status != "" {
		status = db.BlogStatus(req.Status)
	}

	excerpt := req.Excerpt
	if excerpt == "" {
		excerpt = util.TruncateContent(req.Content, 160)
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	arg := db.CreateBlogParams{
		Title:         req.Title,
		Slug:          util.GenerateRandomSlug(req.Title),
		Excerpt:       excerpt,
		Content:       req.Content,
		CoverImageURL: req.CoverImageURL,
		Tags:          tags,
		Status:        status,
		AuthorID:      admin.ID,
	}
	if status == db.BlogStatusPublished {
		arg.PublishedAt = util.TimePointer(server.now())
	}

	blog, err := server.dbStore.CreateBlog(c, arg)
	if err != nil {
		handleError(c, err, "blog")
		return
	}

	c.JSON(http.StatusCreated, successResponse(blog))
}

type updateBlogRequest struct {
	Title         *string  `json:"title"`
	Excerpt       *string  `json:"excerpt"`
	Content       *string  `json:"content"`
	CoverImageURL *string  `json:"cover_image_url"`
	Tags          []string `json:"tags"`
	Status        *string  `json:"status" binding:"omitempty,oneof=draft published"`
}

//	@Summary		Update a blog post
//	@Description	The slug is kept so shared links keep working.
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			id		path		string				true	"Blog ID"
//	@Param			request	body		updateBlogRequest	true	"Fields to update"
//	@Success		200		{object}	db.Blog
//	@Router			/admin/blogs/{id} [put]
func (server *Server) updateBlog(c *gin.Context) {
	blogID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req updateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	current, err := server.dbStore.GetBlogByID(c, blogID)
	if err != nil {
		handleError(c, err, "blog")
		return
	}

	arg := db.UpdateBlogParams{
		Title:         req.Title,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		CoverImageURL: req.CoverImageURL,
		Tags:          req.Tags,
		ID:            blogID,
	}
	if req.Status != nil {
		arg.Status = db.NullBlogStatus{BlogStatus: db.BlogStatus(*req.Status), Valid: true}

		// Lần đầu xuất bản thì ghi lại thời điểm
		if arg.Status.BlogStatus == db.BlogStatusPublished && current.PublishedAt == nil {
			arg.PublishedAt = util.TimePointer(server.now())
		}
	}

	blog, err := server.dbStore.UpdateBlog(c, arg)
	if err != nil {
		handleError(c, err, "blog")
		return
	}

	c.JSON(http.StatusOK, successResponse(blog))
}

//	@Summary		Delete a blog post
//	@Tags			admin
//	@Produce		json
//	@Security		accessToken
//	@Param			id	path		string	true	"Blog ID"
//	@Success		200	{object}	Response
//	@Router			/admin/blogs/{id} [delete]
func (server *Server) deleteBlog(c *gin.Context) {
	blogID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := server.dbStore.GetBlogByID(c, blogID); err != nil {
		handleError(c, err, "blog")
		return
	}

	if err := server.dbStore.DeleteBlog(c, blogID); err != nil {
		handleError(c, err, "blog")
		return
	}

	c.JSON(http.StatusOK, messageResponse("Blog deleted successfully", nil))
}
