package search

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/hotel_menu/internal/db/dbtest"
	"github.com/Skotchmaster/hotel_menu/internal/models"
	"github.com/Skotchmaster/hotel_menu/internal/repo"
)

func TestNormalizeSection(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "main course", NormalizeSection("  Main Course "))
	assert.Equal(t, "", NormalizeSection("   "))
}

func TestDBIndex_Search(t *testing.T) {
	r := repo.New(dbtest.New(t))
	ctx := context.Background()

	for _, it := range []models.MenuItem{
		{Name: "Masala Dosa", Cuisine: "South Indian", Section: "Breakfast", Price: 90, Image: "d.jpg"},
		{Name: "Plain Dosa", Cuisine: "South Indian", Section: "breakfast ", Price: 70, Image: "p.jpg"},
		{Name: "Hakka Noodles", Cuisine: "Chinese", Section: "Mains", Price: 160, Image: "n.jpg"},
	} {
		it := it
		require.NoError(t, r.CreateMenuItem(ctx, &it))
	}

	idx := DBIndex{Repo: r}
	require.NoError(t, idx.IndexItem(ctx, models.MenuItem{}))
	require.NoError(t, idx.DeleteItem(ctx, "x"))

	got, err := idx.Search(ctx, "dosa", "")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = idx.Search(ctx, "", "MAINS")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Hakka Noodles", got[0].Name)
}

func TestBuildQuery(t *testing.T) {
	t.Parallel()

	q := buildQuery("", "")
	assert.Contains(t, q["query"], "match_all")

	q = buildQuery(" Dosa ", " Breakfast")
	raw, err := json.Marshal(q)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"*dosa*"`)
	assert.Contains(t, string(raw), `"section_key.keyword":"breakfast"`)
}

type fakeES struct {
	mu   sync.Mutex
	reqs []string
	docs map[string][]byte
}

func (f *fakeES) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, r.Method+" "+r.URL.Path)

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.URL.Path == "/":
		_, _ = io.WriteString(w, `{"version":{"number":"9.0.0"},"tagline":"You Know, for Search"}`)
	case strings.HasSuffix(r.URL.Path, "/_search"):
		var hits []string
		for _, d := range f.docs {
			hits = append(hits, `{"_source":`+string(d)+`}`)
		}
		_, _ = io.WriteString(w, `{"hits":{"hits":[`+strings.Join(hits, ",")+`]}}`)
	case strings.HasSuffix(r.URL.Path, "/_bulk"):
		f.bulk(w, r)
	case strings.Contains(r.URL.Path, "/_doc/"):
		id := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		if r.Method == http.MethodDelete {
			delete(f.docs, id)
			_, _ = io.WriteString(w, `{"result":"deleted"}`)
			return
		}
		body, _ := io.ReadAll(r.Body)
		f.docs[id] = body
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"result":"created"}`)
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{}`)
	}
}

// bulk stores every index action of an NDJSON bulk body.
func (f *fakeES) bulk(w http.ResponseWriter, r *http.Request) {
	var items []string
	sc := bufio.NewScanner(r.Body)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		var meta map[string]struct {
			ID string `json:"_id"`
		}
		if err := json.Unmarshal(sc.Bytes(), &meta); err != nil || len(meta) == 0 {
			continue
		}
		if !sc.Scan() {
			break
		}
		id := meta["index"].ID
		f.docs[id] = append([]byte(nil), sc.Bytes()...)
		items = append(items, `{"index":{"_index":"menu_items","_id":"`+id+`","status":201,"result":"created"}}`)
	}
	_, _ = io.WriteString(w, `{"took":1,"errors":false,"items":[`+strings.Join(items, ",")+`]}`)
}

func TestESIndex_RoundTrip(t *testing.T) {
	fake := &fakeES{docs: map[string][]byte{}}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	ctx := context.Background()
	idx, err := NewES(ctx, ESConfig{URL: srv.URL, Index: "menu_items"})
	require.NoError(t, err)

	item := models.MenuItem{ID: "m-1", Name: "Masala Dosa", Section: " Breakfast", Price: 90}
	require.NoError(t, idx.IndexItem(ctx, item))

	var stored map[string]any
	require.NoError(t, json.Unmarshal(fake.docs["m-1"], &stored))
	assert.Equal(t, "breakfast", stored["section_key"])
	assert.Equal(t, "m-1", stored["id"])

	got, err := idx.Search(ctx, "dosa", "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Masala Dosa", got[0].Name)
	assert.Equal(t, 90.0, got[0].Price)
	assert.Equal(t, "m-1", got[0].ID)

	require.NoError(t, idx.DeleteItem(ctx, "m-1"))
	require.NoError(t, idx.DeleteItem(ctx, "m-1"))
	assert.Contains(t, fake.reqs, "PUT /menu_items/_doc/m-1")
	assert.Contains(t, fake.reqs, "DELETE /menu_items/_doc/m-1")
}

func TestESIndex_IndexAll(t *testing.T) {
	fake := &fakeES{docs: map[string][]byte{}}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	ctx := context.Background()
	idx, err := NewES(ctx, ESConfig{URL: srv.URL, Index: "menu_items"})
	require.NoError(t, err)

	n, err := idx.IndexAll(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = idx.IndexAll(ctx, []models.MenuItem{
		{ID: "m-1", Name: "Masala Dosa", Section: "Breakfast", Price: 90},
		{ID: "m-2", Name: "Paneer Tikka", Section: "Starters", Price: 220},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Contains(t, fake.reqs, "POST /menu_items/_bulk")

	var stored map[string]any
	require.NoError(t, json.Unmarshal(fake.docs["m-2"], &stored))
	assert.Equal(t, "starters", stored["section_key"])

	got, err := idx.Search(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
