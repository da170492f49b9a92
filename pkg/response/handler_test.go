package response

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) Record(ctx context.Context, resp Response) (int64, error) {
	args := m.Called(ctx, resp)
	return int64(args.Int(0)), args.Error(1)
}

var fixedNow = time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T, store Recorder, cfg Config) http.Handler {
	t.Helper()

	h, err := NewHandler(store, cfg, WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Mount("/nps", h.Routes())
	return r
}

func get(t *testing.T, srv http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Redirect_InvalidLink(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &mockRecorder{}, Config{})

	for _, target := range []string{
		"/nps",
		"/nps?score=9&customer=CUST-1",
		"/nps?customer=CUST-1&email=a@b.com",
		"/nps?score=9&email=a@b.com",
	} {
		rec := get(t, srv, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Contains(t, rec.Body.String(), "<title>Invalid Link</title>", target)
		assert.Contains(t, rec.Body.String(), "Please use the link from your email.", target)
	}
}

func TestHandler_Redirect_ToRecord(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &mockRecorder{}, Config{})

	rec := get(t, srv, "/nps?score=9&customer=CUST-1&email=a@b.com")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/nps/record?customer=CUST-1&email=a%40b.com&score=9", rec.Header().Get("Location"))
}

func TestHandler_Redirect_Forward(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &mockRecorder{}, Config{ForwardURL: "https://script.example.com/exec?v=2"})

	rec := get(t, srv, "/nps/?score=10&customer=CUST-1&email=a@b.com&record=deal-7")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t,
		"https://script.example.com/exec?customer=CUST-1&email=a%40b.com&record=deal-7&score=10&v=2",
		rec.Header().Get("Location"),
	)
}

func TestHandler_Record(t *testing.T) {
	t.Parallel()

	store := &mockRecorder{}
	store.On("Record", mock.Anything, Response{
		CreatedAt:  fixedNow,
		CustomerID: "CUST-1",
		Email:      "a@b.com",
		Category:   Detractor,
		Score:      4,
	}).Return(17, nil).Once()

	rec := get(t, newTestServer(t, store, Config{}), "/nps/record?score=4&customer=CUST-1&email=a@b.com")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "You rated us: 4/10")
	assert.Contains(t, rec.Body.String(), "work hard to improve")
	assert.NotContains(t, rec.Body.String(), "thrilled")
	store.AssertExpectations(t)
}

func TestHandler_Record_Promoter(t *testing.T) {
	t.Parallel()

	store := &mockRecorder{}
	store.On("Record", mock.Anything, mock.MatchedBy(func(r Response) bool {
		return r.Category == Promoter && r.Score == 10
	})).Return(1, nil)

	rec := get(t, newTestServer(t, store, Config{}), "/nps/record?score=10&customer=CUST-1&email=a@b.com")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "thrilled")
	assert.NotContains(t, rec.Body.String(), "work hard to improve")
}

func TestHandler_Record_InvalidScore(t *testing.T) {
	t.Parallel()

	store := &mockRecorder{}
	srv := newTestServer(t, store, Config{})

	for _, score := range []string{"11", "-1", "abc"} {
		rec := get(t, srv, "/nps/record?score="+score+"&customer=CUST-1&email=a@b.com")
		assert.Equal(t, http.StatusBadRequest, rec.Code, score)
		assert.Equal(t, "Invalid score", rec.Body.String(), score)
	}
	store.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestHandler_Record_MissingParams(t *testing.T) {
	t.Parallel()

	store := &mockRecorder{}
	rec := get(t, newTestServer(t, store, Config{}), "/nps/record?score=9")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid Link")
	store.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestHandler_Record_StoreError(t *testing.T) {
	t.Parallel()

	store := &mockRecorder{}
	store.On("Record", mock.Anything, mock.Anything).Return(0, errors.New("connection reset"))

	rec := get(t, newTestServer(t, store, Config{}), "/nps/record?score=8&customer=CUST-1&email=a@b.com")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error processing request", rec.Body.String())
}

func TestHandler_Record_ThankYouRedirect(t *testing.T) {
	t.Parallel()

	store := &mockRecorder{}
	store.On("Record", mock.Anything, mock.Anything).Return(1, nil)

	rec := get(t, newTestServer(t, store, Config{ThankYouURL: "https://example.com/thank-you.html"}),
		"/nps/record?score=7&customer=CUST-1&email=a@b.com")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://example.com/thank-you.html?score=7", rec.Header().Get("Location"))
}

func TestNewHandler_RelativeURL(t *testing.T) {
	t.Parallel()

	_, err := NewHandler(&mockRecorder{}, Config{ForwardURL: "/exec"})
	require.Error(t, err)

	_, err = NewHandler(&mockRecorder{}, Config{ThankYouURL: "thanks.html"})
	require.Error(t, err)
}

func TestThankYouPage_Passive(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	require.NoError(t, ThankYouPage(Response{Score: 7, Category: Passive}).Render(context.Background(), &sb))
	assert.Contains(t, sb.String(), "You rated us: 7/10")
	assert.NotContains(t, sb.String(), "work hard to improve")
	assert.NotContains(t, sb.String(), "thrilled")
}
