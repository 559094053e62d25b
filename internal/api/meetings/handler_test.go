package meetings

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"creative-edge/internal/app/submission"
	"creative-edge/internal/domain/meetings"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, r meetings.Request) error {
	return m.Called(ctx, r).Error(0)
}

type MockSubmitter struct {
	mock.Mock
}

func (m *MockSubmitter) SubmitMeeting(ctx context.Context, req meetings.Request, photo *submission.File, progress submission.Progress) error {
	return m.Called(ctx, req, photo, progress).Error(0)
}

const validJSON = `{
	"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","phone":"555-0100",
	"addressLine1":"1 Main St","city":"Aurora","state":"IL","zip":"60505",
	"preferredDate":"2025-07-01","preferredTime":"10:00","comments":"Hi"
}`

func serve(h *Handler, method, body string) *httptest.ResponseRecorder {
	r := gin.New()
	r.Any("/request-meeting", h.RequestMeeting)
	req := httptest.NewRequest(method, "/request-meeting", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestMeeting(t *testing.T) {
	t.Run("method not allowed", func(t *testing.T) {
		notifier := new(MockNotifier)
		w := serve(NewHandler(notifier, nil, nil), http.MethodGet, "")

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Equal(t, "Method Not Allowed", w.Body.String())
		notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	})

	t.Run("invalid body", func(t *testing.T) {
		notifier := new(MockNotifier)
		w := serve(NewHandler(notifier, nil, nil), http.MethodPost, "{nope")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"ok":false,"error":"Invalid request body."}`, w.Body.String())
	})

	t.Run("null body", func(t *testing.T) {
		notifier := new(MockNotifier)
		w := serve(NewHandler(notifier, nil, nil), http.MethodPost, "null")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"ok":false,"error":"Missing required fields."}`, w.Body.String())
		notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	})

	t.Run("missing field", func(t *testing.T) {
		notifier := new(MockNotifier)
		w := serve(NewHandler(notifier, nil, nil), http.MethodPost, `{"firstName":"Ada"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"ok":false,"error":"Missing required fields."}`, w.Body.String())
		notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	})

	t.Run("long comments", func(t *testing.T) {
		notifier := new(MockNotifier)
		body := strings.Replace(validJSON, `"Hi"`, `"`+strings.Repeat("x", 501)+`"`, 1)
		w := serve(NewHandler(notifier, nil, nil), http.MethodPost, body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"ok":false,"error":"Comments must be 500 characters or less."}`, w.Body.String())
	})

	t.Run("sent", func(t *testing.T) {
		notifier := new(MockNotifier)
		notifier.On("Notify", mock.Anything, mock.MatchedBy(func(r meetings.Request) bool {
			return r.FirstName == "Ada" && r.Comments == "Hi"
		})).Return(nil).Once()
		w := serve(NewHandler(notifier, nil, nil), http.MethodPost, validJSON)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
		notifier.AssertExpectations(t)
	})

	t.Run("relay failure", func(t *testing.T) {
		notifier := new(MockNotifier)
		notifier.On("Notify", mock.Anything, mock.Anything).Return(errors.New("535 auth failed")).Once()
		w := serve(NewHandler(notifier, nil, nil), http.MethodPost, validJSON)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"ok":false,"error":"535 auth failed"}`, w.Body.String())
	})
}

func TestSubmitFormWithPhoto(t *testing.T) {
	flow := new(MockSubmitter)
	flow.On("SubmitMeeting", mock.Anything, mock.MatchedBy(func(r meetings.Request) bool {
		return r.FirstName == "Ada" && r.City == "Aurora"
	}), mock.MatchedBy(func(p *submission.File) bool {
		return p != nil && p.Name == "wall.jpg" && p.Size == 4
	}), mock.Anything).Return(nil).Once()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	_ = mw.WriteField("firstName", "Ada")
	_ = mw.WriteField("city", "Aurora")
	fw, err := mw.CreateFormFile("photo", "wall.jpg")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("jpeg"))
	require.NoError(t, mw.Close())

	r := gin.New()
	r.POST("/request-meeting/form", NewHandler(nil, flow, nil).SubmitForm)
	req := httptest.NewRequest(http.MethodPost, "/request-meeting/form", buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"status":"Request sent! We'll reach out soon.","steps":[]}`, w.Body.String())
	flow.AssertExpectations(t)
}
