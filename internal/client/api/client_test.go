package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/articlekeeper/pkg/api"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL+"/api/v1", opts...)
	require.NoError(t, err)
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	client, err := NewClient("http://localhost:8080/api/v1")

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/v1", client.BaseURL())
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
}

// TestNewClient_InvalidTarget проверяет отказ при некорректном адресе
func TestNewClient_InvalidTarget(t *testing.T) {
	for _, raw := range []string{"", "localhost:8080", "ftp://host/api", "http://", "://bad"} {
		t.Run(raw, func(t *testing.T) {
			client, err := NewClient(raw)

			assert.Nil(t, client)
			assert.ErrorIs(t, err, ErrInvalidTarget)
		})
	}
}

// TestClient_ListPosts проверяет кодирование query string и декодирование страницы
func TestClient_ListPosts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/posts", r.URL.Path)
		assert.Equal(t, "go", r.URL.Query().Get("query"))
		assert.Equal(t, "AI Bio", r.URL.Query().Get("tag"))
		assert.Equal(t, "20", r.URL.Query().Get("size"))
		assert.Equal(t, "0", r.URL.Query().Get("page"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))

		writeJSON(t, w, http.StatusOK, api.ItemPage{
			Items: []api.Item{{ID: "p2", Status: api.StatusPublished}, {ID: "p1", Status: api.StatusPublished}},
			Total: 2,
		})
	})

	page, err := client.ListPosts(context.Background(), PostQuery{Query: " go ", Tags: []string{"AI", "Bio"}})

	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "p2", page.Items[0].ID)
	assert.Equal(t, 2, page.Total)
}

// TestClient_ListDrafts_NoQuery проверяет, что черновики запрашиваются без параметров
func TestClient_ListDrafts_NoQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/drafts", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		writeJSON(t, w, http.StatusOK, api.ItemPage{Items: []api.Item{}, Total: 0})
	})

	page, err := client.ListDrafts(context.Background())

	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

// TestClient_CreateDraft проверяет тело запроса и ответ
func TestClient_CreateDraft(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/drafts", r.URL.Path)

		var req api.DraftRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Hello", req.Title)
		assert.Equal(t, []string{"AI"}, req.Tags)

		writeJSON(t, w, http.StatusCreated, api.Item{ID: "d1", Title: req.Title, Status: api.StatusDraft, Tags: req.Tags})
	})

	item, err := client.CreateDraft(context.Background(), api.DraftRequest{Title: "Hello", Content: "x", Tags: []string{"AI"}})

	require.NoError(t, err)
	assert.Equal(t, "d1", item.ID)
	assert.Equal(t, api.StatusDraft, item.Status)
}

// TestClient_EditDraft проверяет PATCH /drafts/{id}
func TestClient_EditDraft(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/drafts/d1", r.URL.Path)
		writeJSON(t, w, http.StatusOK, api.Item{ID: "d1", Title: "New", Status: api.StatusDraft})
	})

	item, err := client.EditDraft(context.Background(), "d1", api.DraftRequest{Title: "New", Tags: []string{}})

	require.NoError(t, err)
	assert.Equal(t, "New", item.Title)
}

// TestClient_PublishDraft проверяет отправку пустого объекта
func TestClient_PublishDraft(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/drafts/d1/publish", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(body))

		published := "2025-01-01T00:00:00Z"
		writeJSON(t, w, http.StatusOK, api.Item{ID: "d1", Status: api.StatusPublished, PublishedAt: &published})
	})

	item, err := client.PublishDraft(context.Background(), "d1")

	require.NoError(t, err)
	assert.Equal(t, api.StatusPublished, item.Status)
	require.NotNil(t, item.PublishedAt)
}

// TestClient_UnpublishPost проверяет адрес перехода unpublish
func TestClient_UnpublishPost(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/posts/p1/unpublish", r.URL.Path)
		writeJSON(t, w, http.StatusOK, api.Item{ID: "p1", Status: api.StatusDraft})
	})

	item, err := client.UnpublishPost(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, api.StatusDraft, item.Status)
}

// TestClient_DeleteDraft проверяет, что тело ответа игнорируется
func TestClient_DeleteDraft(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/drafts/d1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.DeleteDraft(context.Background(), "d1")

	assert.NoError(t, err)
}

// TestClient_IDIsEscaped проверяет экранирование id в пути
func TestClient_IDIsEscaped(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/drafts/a%2Fb", r.URL.EscapedPath())
		writeJSON(t, w, http.StatusOK, api.Item{ID: "a/b"})
	})

	item, err := client.GetDraft(context.Background(), "a/b")

	require.NoError(t, err)
	assert.Equal(t, "a/b", item.ID)
}

// TestClient_ListTags проверяет получение каталога меток
func TestClient_ListTags(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/tags", r.URL.Path)
		writeJSON(t, w, http.StatusOK, api.TagList{Items: []string{"AI", "Bio"}})
	})

	tags, err := client.ListTags(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"AI", "Bio"}, tags)
}

// TestClient_ErrorKinds проверяет классификацию ошибок
func TestClient_ErrorKinds(t *testing.T) {
	tests := []struct {
		handler  http.HandlerFunc
		expected error
		name     string
		status   int
	}{
		{
			name: "server rejected with json body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, http.StatusNotFound, api.ErrorResponse{Error: "not_found", Message: "draft not found"})
			},
			expected: ErrServerRejected,
			status:   http.StatusNotFound,
		},
		{
			name: "server rejected even with valid item body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, http.StatusInternalServerError, api.Item{ID: "d1"})
			},
			expected: ErrServerRejected,
			status:   http.StatusInternalServerError,
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			expected: ErrEmptyResponse,
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"id":`))
			},
			expected: ErrDecodeFailure,
		},
		{
			name: "schema mismatch",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, http.StatusOK, map[string]string{"unexpected": "shape"})
			},
			expected: ErrDecodeFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)

			item, err := client.GetDraft(context.Background(), "d1")

			assert.Nil(t, item)
			require.ErrorIs(t, err, tt.expected)
			if tt.status != 0 {
				var apiErr *Error
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, tt.status, apiErr.Status)
			}
		})
	}
}

// TestClient_ServerMessage проверяет, что сообщение сервера попадает в ошибку
func TestClient_ServerMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, api.ErrorResponse{Error: "validation", Message: "title too long"})
	})

	_, err := client.CreateDraft(context.Background(), api.DraftRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "title too long")
	assert.Equal(t, KindServerRejected, KindOf(err))
	assert.False(t, IsNotFound(err))
}

// TestClient_ListWithoutItems проверяет, что страница без поля items считается ошибкой схемы
func TestClient_ListWithoutItems(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]int{"total": 3})
	})

	_, err := client.ListDrafts(context.Background())

	assert.ErrorIs(t, err, ErrDecodeFailure)
}

// TestClient_TransportFailure проверяет недоступный сервер
func TestClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client, err := NewClient(url, WithTimeout(time.Second))
	require.NoError(t, err)

	_, err = client.ListTags(context.Background())

	assert.ErrorIs(t, err, ErrTransportFailure)
}

// TestClient_EmptyIDIsInvalidTarget проверяет отказ без сетевого запроса
func TestClient_EmptyIDIsInvalidTarget(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	_, err := client.PublishDraft(context.Background(), "")

	assert.ErrorIs(t, err, ErrInvalidTarget)
	assert.Zero(t, calls.Load())
}

// TestClient_Retry проверяет повтор GET при обрыве соединения
func TestClient_Retry(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			// обрываем соединение без ответа
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			_ = conn.Close()
			return
		}
		writeJSON(t, w, http.StatusOK, api.TagList{Items: []string{"AI"}})
	}, WithRetry(3, time.Millisecond))

	tags, err := client.ListTags(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"AI"}, tags)
	assert.Equal(t, int32(3), calls.Load())
}

// TestClient_RetrySkipsServerErrors проверяет, что ответ сервера не повторяется
func TestClient_RetrySkipsServerErrors(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}, WithRetry(3, time.Millisecond))

	_, err := client.ListTags(context.Background())

	assert.ErrorIs(t, err, ErrServerRejected)
	assert.Equal(t, int32(1), calls.Load())
}

// TestClient_RetryNotForMutations проверяет, что POST не повторяется
func TestClient_RetryNotForMutations(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		hj := w.(http.Hijacker)
		conn, _, _ := hj.Hijack()
		_ = conn.Close()
	}, WithRetry(3, time.Millisecond))

	_, err := client.PublishDraft(context.Background(), "d1")

	assert.ErrorIs(t, err, ErrTransportFailure)
	assert.Equal(t, int32(1), calls.Load())
}

// TestClient_ContextCanceled проверяет отмену запроса
func TestClient_ContextCanceled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, api.TagList{Items: []string{}})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListTags(ctx)

	assert.ErrorIs(t, err, ErrTransportFailure)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestPostQuery_Values проверяет значения по умолчанию
func TestPostQuery_Values(t *testing.T) {
	v := PostQuery{Size: -1, Page: -5}.Values()

	assert.Equal(t, "20", v.Get("size"))
	assert.Equal(t, "0", v.Get("page"))
	assert.False(t, v.Has("query"))
	assert.False(t, v.Has("tag"))
}
