package client_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"team-membership-service/internal/client"
	"team-membership-service/internal/service"
)

// Быстрый набор текста должен породить ровно один запрос — по последнему вводу.
func TestUserSearcher_Debounce(t *testing.T) {
	var calls int32
	var lastQuery atomic.Value

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		lastQuery.Store(r.URL.Query().Get("username"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"users": [{"username": "ann_mapper", "role": "MEMBER"}]}`))
	}))
	defer srv.Close()

	c := client.New(srv.URL, "")
	searcher := client.NewUserSearcher(c, service.FilterMembers, 50*time.Millisecond)
	defer searcher.Close()

	// три "нажатия клавиш" подряд, быстрее задержки дебаунса
	searcher.Query("a")
	time.Sleep(5 * time.Millisecond)
	searcher.Query("an")
	time.Sleep(5 * time.Millisecond)
	searcher.Query("ann")

	select {
	case res := <-searcher.Results():
		assert.NoError(t, res.Err)
		assert.Equal(t, "ann", res.Query)
		assert.Len(t, res.Users, 1)
	case <-time.After(2 * time.Second):
		t.Fatal("no search result in time")
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, "ann", lastQuery.Load())
}

// Результат, вытесненный более свежим запросом, не должен доехать до канала.
func TestUserSearcher_StaleResultDropped(t *testing.T) {
	release := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("username") == "slow" {
			select {
			case <-release:
			case <-r.Context().Done():
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"users": []}`))
	}))
	defer srv.Close()

	c := client.New(srv.URL, "")
	searcher := client.NewUserSearcher(c, service.FilterMembers, 10*time.Millisecond)
	defer searcher.Close()

	searcher.Query("slow")
	// даём первому запросу уйти в полёт
	time.Sleep(100 * time.Millisecond)
	searcher.Query("fresh")

	select {
	case res := <-searcher.Results():
		assert.Equal(t, "fresh", res.Query)
	case <-time.After(2 * time.Second):
		t.Fatal("no search result in time")
	}
	close(release)
}
