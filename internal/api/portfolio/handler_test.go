package portfolio

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"creative-edge/internal/app/submission"
	"creative-edge/internal/infra/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockRecordReader struct {
	mock.Mock
}

func (m *MockRecordReader) List(ctx context.Context, collection string, maxCount int) ([]store.Record, error) {
	args := m.Called(ctx, collection, maxCount)
	recs, _ := args.Get(0).([]store.Record)
	return recs, args.Error(1)
}

func (m *MockRecordReader) Get(ctx context.Context, collection, id string) (store.Record, bool, error) {
	args := m.Called(ctx, collection, id)
	return args.Get(0).(store.Record), args.Bool(1), args.Error(2)
}

type MockSubmitter struct {
	mock.Mock
}

func (m *MockSubmitter) SubmitPortfolio(ctx context.Context, form submission.PortfolioForm, progress submission.Progress) (string, error) {
	args := m.Called(ctx, form, progress)
	return args.String(0), args.Error(1)
}

func rec(id, data string) store.Record {
	return store.Record{
		Collection: "portfolioItems",
		ID:         id,
		Data:       json.RawMessage(data),
		CreatedAt:  time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func newRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.GET("/portfolio", h.List)
	r.GET("/portfolio/:id", h.Get)
	r.POST("/admin/portfolio", h.Create)
	return r
}

func TestListFiltersAndDefaults(t *testing.T) {
	records := new(MockRecordReader)
	records.On("List", mock.Anything, "portfolioItems", 100).Return([]store.Record{
		rec("a", `{"title":"Sunset","type":"mural","category":"outdoor","coverImageUrl":"u1","imageUrls":["u1"]}`),
		rec("b", `{"type":"carpentry","category":"indoor"}`),
		rec("c", `{}`),
	}, nil).Once()

	w := httptest.NewRecorder()
	newRouter(NewHandler(records, nil, nil)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/portfolio?type=mural", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var out ListDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Sunset", out.Items[0].Title)
	assert.Equal(t, "u1", out.Items[0].CoverImageURL)
	records.AssertExpectations(t)
}

func TestListFilterFillsLimitFromWiderFetch(t *testing.T) {
	records := new(MockRecordReader)
	records.On("List", mock.Anything, "portfolioItems", MaxLimit).Return([]store.Record{
		rec("m1", `{"type":"mural"}`),
		rec("c1", `{"title":"Bench","type":"carpentry"}`),
		rec("m2", `{"type":"mural"}`),
		rec("c2", `{"title":"Shelf","type":"carpentry"}`),
		rec("c3", `{"title":"Door","type":"carpentry"}`),
	}, nil).Once()

	w := httptest.NewRecorder()
	newRouter(NewHandler(records, nil, nil)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/portfolio?type=carpentry&limit=2", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var out ListDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Bench", out.Items[0].Title)
	assert.Equal(t, "Shelf", out.Items[1].Title)
	records.AssertExpectations(t)
}

func TestListRenderDefaults(t *testing.T) {
	records := new(MockRecordReader)
	records.On("List", mock.Anything, "portfolioItems", 5).Return([]store.Record{
		rec("c", `{"coverImageUrl":"stray","imageUrls":["u1"]}`),
	}, nil).Once()

	w := httptest.NewRecorder()
	newRouter(NewHandler(records, nil, nil)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/portfolio?limit=5", nil))

	var out ListDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.Items, 1)
	card := out.Items[0]
	assert.Equal(t, "Untitled", card.Title)
	assert.Equal(t, "project", card.TypeLabel)
	assert.Equal(t, "category", card.CategoryLabel)
	assert.Empty(t, card.CoverImageURL, "cover outside imageUrls is dropped")
}

func TestListClampsLimit(t *testing.T) {
	records := new(MockRecordReader)
	records.On("List", mock.Anything, "portfolioItems", MaxLimit).Return([]store.Record{}, nil).Once()

	w := httptest.NewRecorder()
	newRouter(NewHandler(records, nil, nil)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/portfolio?limit=500", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[]}`, w.Body.String())
	records.AssertExpectations(t)
}

func TestListRejectsUnknownFilter(t *testing.T) {
	records := new(MockRecordReader)
	w := httptest.NewRecorder()
	newRouter(NewHandler(records, nil, nil)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/portfolio?category=attic", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	records.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetNotFound(t *testing.T) {
	records := new(MockRecordReader)
	records.On("Get", mock.Anything, "portfolioItems", "missing").Return(store.Record{}, false, nil).Once()

	w := httptest.NewRecorder()
	newRouter(NewHandler(records, nil, nil)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/portfolio/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found."}`, w.Body.String())
}

func TestGetDetail(t *testing.T) {
	records := new(MockRecordReader)
	records.On("Get", mock.Anything, "portfolioItems", "a").
		Return(rec("a", `{"title":"Shelf","coverImageUrl":"u1","imageUrls":["u1","u2"],"tags":["oak"]}`), true, nil).Once()

	w := httptest.NewRecorder()
	newRouter(NewHandler(records, nil, nil)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/portfolio/a", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var out DetailDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, []string{"u1", "u2"}, out.Images)
	assert.Equal(t, []string{"oak"}, out.Tags)
}

func TestGetCoverOnlyRecordShowsCover(t *testing.T) {
	records := new(MockRecordReader)
	records.On("Get", mock.Anything, "portfolioItems", "old").
		Return(rec("old", `{"title":"Old wall","coverImageUrl":"https://cdn/a.jpg"}`), true, nil).Once()

	w := httptest.NewRecorder()
	newRouter(NewHandler(records, nil, nil)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/portfolio/old", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var out DetailDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, []string{"https://cdn/a.jpg"}, out.Images)
	assert.Equal(t, "https://cdn/a.jpg", out.CoverImageURL)
}

func TestGetStoreError(t *testing.T) {
	records := new(MockRecordReader)
	records.On("Get", mock.Anything, "portfolioItems", "a").Return(store.Record{}, false, errors.New("timeout")).Once()

	w := httptest.NewRecorder()
	newRouter(NewHandler(records, nil, nil)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/portfolio/a", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"timeout"}`, w.Body.String())
}

func multipartBody(t *testing.T, fields map[string]string, files map[string][]string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for field, names := range files {
		for _, name := range names {
			fw, err := mw.CreateFormFile(field, name)
			require.NoError(t, err)
			_, _ = fw.Write([]byte("img"))
		}
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func TestCreatePassesFormToFlow(t *testing.T) {
	flow := new(MockSubmitter)
	flow.On("SubmitPortfolio", mock.Anything, mock.MatchedBy(func(f submission.PortfolioForm) bool {
		return f.Title == "Wall" && f.Type == "carpentry" && f.Category == "indoor" &&
			f.CoverIndex == 1 && len(f.Images) == 2 && f.Images[1].Name == "b.jpg"
	}), mock.Anything).Run(func(args mock.Arguments) {
		progress := args.Get(2).(submission.Progress)
		progress("Uploaded 1/2...")
		progress("Uploaded 2/2...")
		progress(submission.MsgPortfolioDone)
	}).Return("item1", nil).Once()

	body, ct := multipartBody(t,
		map[string]string{"title": "Wall", "type": "carpentry", "category": "bogus", "coverIndex": "1"},
		map[string][]string{"images": {"a.jpg", "b.jpg"}})
	req := httptest.NewRequest(http.MethodPost, "/admin/portfolio", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	newRouter(NewHandler(nil, flow, nil)).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var out CreateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.True(t, out.OK)
	assert.Equal(t, "item1", out.ID)
	assert.Len(t, out.Steps, 3)
	flow.AssertExpectations(t)
}

func TestCreateReportsValidationAndPartialFailure(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		flow := new(MockSubmitter)
		flow.On("SubmitPortfolio", mock.Anything, mock.Anything, mock.Anything).
			Return("", &submission.ValidationError{Message: submission.MsgNoImages}).Once()

		body, ct := multipartBody(t, map[string]string{"title": "Wall"}, nil)
		req := httptest.NewRequest(http.MethodPost, "/admin/portfolio", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		newRouter(NewHandler(nil, flow, nil)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"ok":false,"status":"Please add at least one image.","steps":[]}`, w.Body.String())
	})

	t.Run("upload failed after create", func(t *testing.T) {
		flow := new(MockSubmitter)
		flow.On("SubmitPortfolio", mock.Anything, mock.Anything, mock.Anything).
			Return("item1", errors.New("network down")).Once()

		body, ct := multipartBody(t, map[string]string{"title": "Wall"}, map[string][]string{"images": {"a.jpg"}})
		req := httptest.NewRequest(http.MethodPost, "/admin/portfolio", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		newRouter(NewHandler(nil, flow, nil)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"ok":false,"id":"item1","status":"network down","steps":[]}`, w.Body.String())
	})
}
