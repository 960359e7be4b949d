package handler

import (
	"net/http"

	"catalog-backend/internal/domains/publisher/model"
	"catalog-backend/internal/domains/publisher/service"

	"github.com/gin-gonic/gin"
)

// View names, see web/templates
const (
	viewList   = "publisher_list"
	viewDetail = "publisher_detail"
	viewForm   = "publisher_form"
	viewDelete = "publisher_delete"
)

// PublisherHandler handles HTTP requests for publisher domain
type PublisherHandler struct {
	service service.ServiceInterface
}

// NewPublisherHandler creates a new publisher handler instance
func NewPublisherHandler(service service.ServiceInterface) *PublisherHandler {
	return &PublisherHandler{
		service: service,
	}
}

// fail hands the error to the ErrorHandler middleware
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// List handles GET /catalog/publisher
func (h *PublisherHandler) List(c *gin.Context) {
	publishers, err := h.service.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, viewList, gin.H{
		"title":          "Publisher List",
		"list_publisher": publishers,
	})
}

// Detail handles GET /catalog/publisher/:id
func (h *PublisherHandler) Detail(c *gin.Context) {
	detail, err := h.service.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, viewDetail, gin.H{
		"title":           "Publisher Detail",
		"publisher":       detail.Publisher,
		"publisher_books": detail.Books,
	})
}

// CreateForm handles GET /catalog/publisher/create
func (h *PublisherHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, viewForm, gin.H{
		"title": "Create Publisher",
	})
}

// Create handles POST /catalog/publisher/create
func (h *PublisherHandler) Create(c *gin.Context) {
	in := service.FormInput{Name: c.PostForm("name")}

	result, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}

	if !result.Valid() {
		c.HTML(http.StatusOK, viewForm, gin.H{
			"title":     "Create Publisher",
			"publisher": result.Publisher,
			"errors":    result.Errors,
		})
		return
	}

	c.Redirect(http.StatusFound, result.Publisher.URL())
}

// DeleteForm handles GET /catalog/publisher/:id/delete
func (h *PublisherHandler) DeleteForm(c *gin.Context) {
	detail, err := h.service.DeleteInfo(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	// Không tìm thấy thì quay về danh sách
	if detail == nil {
		c.Redirect(http.StatusFound, model.ListURL)
		return
	}

	c.HTML(http.StatusOK, viewDelete, gin.H{
		"title":           "Delete Publisher",
		"publisher":       detail.Publisher,
		"publisher_books": detail.Books,
	})
}

// Delete handles POST /catalog/publisher/:id/delete.
// The hidden id field of the form is ignored, the path id is authoritative.
func (h *PublisherHandler) Delete(c *gin.Context) {
	result, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	if result.Deleted || result.Detail == nil || result.Detail.Publisher == nil {
		c.Redirect(http.StatusFound, model.ListURL)
		return
	}

	c.HTML(http.StatusOK, viewDelete, gin.H{
		"title":           "Delete Publisher",
		"publisher":       result.Detail.Publisher,
		"publisher_books": result.Detail.Books,
	})
}

// UpdateForm handles GET /catalog/publisher/:id/update
func (h *PublisherHandler) UpdateForm(c *gin.Context) {
	pub, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, viewForm, gin.H{
		"title":     "Update Publisher",
		"publisher": pub,
	})
}

// Update handles POST /catalog/publisher/:id/update
func (h *PublisherHandler) Update(c *gin.Context) {
	in := service.FormInput{Name: c.PostForm("name")}

	result, err := h.service.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		fail(c, err)
		return
	}

	if !result.Valid() {
		c.HTML(http.StatusOK, viewForm, gin.H{
			"title":     "Update Publisher",
			"publisher": result.Publisher,
			"errors":    result.Errors,
		})
		return
	}

	c.Redirect(http.StatusFound, result.Publisher.URL())
}

// RegisterRoutes mounts the publisher views on the catalog group
func (h *PublisherHandler) RegisterRoutes(catalog *gin.RouterGroup) {
	publishers := catalog.Group("/publisher")
	{
		publishers.GET("", h.List)
		publishers.GET("/create", h.CreateForm)
		publishers.POST("/create", h.Create)
		publishers.GET("/:id", h.Detail)
		publishers.GET("/:id/delete", h.DeleteForm)
		publishers.POST("/:id/delete", h.Delete)
		publishers.GET("/:id/update", h.UpdateForm)
		publishers.POST("/:id/update", h.Update)
	}
}
