package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	bookModel "catalog-backend/internal/domains/book/model"
	bookRepo "catalog-backend/internal/domains/book/repository"
	"catalog-backend/internal/domains/publisher/model"
	"catalog-backend/internal/domains/publisher/repository"
	"catalog-backend/internal/domains/publisher/service"
	"catalog-backend/internal/shared/middleware"
	"catalog-backend/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	router *gin.Engine
	svc    service.ServiceInterface
	books  *bookRepo.MemoryRepository
}

func newRouter(t *testing.T, svc service.ServiceInterface) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpl, err := web.Templates()
	require.NoError(t, err)

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(middleware.ErrorHandler(model.MapErrorToHTTP))
	NewPublisherHandler(svc).RegisterRoutes(router.Group("/catalog"))
	return router
}

func newTestApp(t *testing.T) *testApp {
	books := bookRepo.NewMemoryRepository()
	svc := service.NewPublisherService(repository.NewMemoryRepository(), books)
	return &testApp{router: newRouter(t, svc), svc: svc, books: books}
}

func (a *testApp) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) post(path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) seed(t *testing.T, name string) *model.Publisher {
	t.Helper()
	res, err := a.svc.Create(context.Background(), service.FormInput{Name: name})
	require.NoError(t, err)
	require.True(t, res.Valid())
	return res.Publisher
}

func TestList(t *testing.T) {
	app := newTestApp(t)
	app.seed(t, "Smith & Sons Books")
	app.seed(t, "Faber and Faber")

	w := app.get("/catalog/publisher")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Publisher List")
	assert.Contains(t, body, "Smith &amp; Sons Books")
	assert.NotContains(t, body, "&amp;amp;")
	assert.Less(t, strings.Index(body, "Faber and Faber"), strings.Index(body, "Smith &amp; Sons Books"))
}

func TestCreate_RedirectsToNewPublisher(t *testing.T) {
	app := newTestApp(t)

	w := app.post("/catalog/publisher/create", url.Values{"name": {"  Bloomsbury Publishing "}})

	require.Equal(t, http.StatusFound, w.Code)
	location := w.Header().Get("Location")
	assert.True(t, strings.HasPrefix(location, model.ListURL+"/"), location)

	detail := app.get(location)
	assert.Equal(t, http.StatusOK, detail.Code)
	assert.Contains(t, detail.Body.String(), "Bloomsbury Publishing")
}

func TestCreate_DuplicateRedirectsToExisting(t *testing.T) {
	app := newTestApp(t)
	pub := app.seed(t, "Bloomsbury Publishing")

	w := app.post("/catalog/publisher/create", url.Values{"name": {"Bloomsbury Publishing"}})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, pub.URL(), w.Header().Get("Location"))
}

func TestCreate_InvalidRerendersForm(t *testing.T) {
	app := newTestApp(t)

	w := app.post("/catalog/publisher/create", url.Values{"name": {"tiny"}})

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Create Publisher")
	assert.Contains(t, body, model.NameConstraint.MinMessage)
	assert.Contains(t, body, `value="tiny"`)

	list, err := app.svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateForm(t *testing.T) {
	app := newTestApp(t)

	w := app.get("/catalog/publisher/create")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Create Publisher")
}

func TestDetail_NotFound(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{
		"/catalog/publisher/6f1d3c1e-8a7b-4b2a-9d55-0c7c1d4f2e11",
		"/catalog/publisher/not-a-uuid",
	} {
		w := app.get(path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Contains(t, w.Body.String(), "Publisher not found")
	}
}

func TestDetail_ListsBooks(t *testing.T) {
	app := newTestApp(t)
	pub := app.seed(t, "Orbit Books Ltd")
	app.books.Add(bookModel.Book{Title: "The Fifth Season", Summary: "Broken earth", PublisherID: pub.ID})

	w := app.get(pub.URL())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "The Fifth Season")
}

func TestUpdate(t *testing.T) {
	app := newTestApp(t)
	pub := app.seed(t, "Original Name Press")

	w := app.get(pub.URL() + "/update")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="Original Name Press"`)

	w = app.post(pub.URL()+"/update", url.Values{"name": {"Renamed Name Press"}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, pub.URL(), w.Header().Get("Location"))

	got, err := app.svc.Get(context.Background(), pub.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Renamed Name Press", got.Name)
}

func TestUpdate_InvalidRerendersForm(t *testing.T) {
	app := newTestApp(t)
	pub := app.seed(t, "Original Name Press")

	w := app.post(pub.URL()+"/update", url.Values{"name": {strings.Repeat("x", 61)}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Update Publisher")
	assert.Contains(t, w.Body.String(), model.NameConstraint.MaxMessage)
}

func TestUpdate_NotFound(t *testing.T) {
	app := newTestApp(t)

	w := app.get("/catalog/publisher/6f1d3c1e-8a7b-4b2a-9d55-0c7c1d4f2e11/update")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.post("/catalog/publisher/6f1d3c1e-8a7b-4b2a-9d55-0c7c1d4f2e11/update",
		url.Values{"name": {"Nobody Home Press"}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteForm_AbsentRedirectsToList(t *testing.T) {
	app := newTestApp(t)

	w := app.get("/catalog/publisher/6f1d3c1e-8a7b-4b2a-9d55-0c7c1d4f2e11/delete")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, model.ListURL, w.Header().Get("Location"))
}

func TestDelete_BlockedByBooks(t *testing.T) {
	app := newTestApp(t)
	pub := app.seed(t, "Gollancz Books")
	app.books.Add(bookModel.Book{Title: "Hyperion", PublisherID: pub.ID})

	w := app.get(pub.URL() + "/delete")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Delete the following books")

	w = app.post(pub.URL()+"/delete", url.Values{"id": {pub.ID.String()}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hyperion")

	_, err := app.svc.Get(context.Background(), pub.ID.String())
	assert.NoError(t, err)
}

func TestDelete_RemovesAndRedirects(t *testing.T) {
	app := newTestApp(t)
	pub := app.seed(t, "Gollancz Books")

	w := app.get(pub.URL() + "/delete")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Do you really want to delete this publisher?")

	w = app.post(pub.URL()+"/delete", url.Values{"id": {pub.ID.String()}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, model.ListURL, w.Header().Get("Location"))

	_, err := app.svc.Get(context.Background(), pub.ID.String())
	assert.True(t, model.IsPublisherNotFound(err))
}

// brokenService fails the list lookup
type brokenService struct {
	service.ServiceInterface
}

func (brokenService) List(context.Context) ([]*model.Publisher, error) {
	return nil, model.NewListPublisherError(errors.New("db down"))
}

func TestList_StoreErrorRendersErrorPage(t *testing.T) {
	router := newRouter(t, brokenService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog/publisher", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), model.CodeListPublisher)
	assert.NotContains(t, w.Body.String(), "db down")
}
