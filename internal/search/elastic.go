package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"

	"github.com/Skotchmaster/hotel_menu/internal/models"
)

const maxHits = 200

type ESConfig struct {
	URL      string
	User     string
	Password string
	Index    string
}

type ESIndex struct {
	client *elasticsearch.Client
	index  string
}

func NewES(ctx context.Context, cfg ESConfig) (*ESIndex, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.URL},
		Username:  cfg.User,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("elasticsearch client: %w", err)
	}

	res, err := client.Info(client.Info.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("elasticsearch info: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("elasticsearch info: %s: %s", res.Status(), body)
	}

	return &ESIndex{client: client, index: cfg.Index}, nil
}

// document is the indexed form of a MenuItem. _id is reserved by
// Elasticsearch, so the id travels as "id".
type document struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Cuisine    string  `json:"cuisine"`
	Section    string  `json:"section"`
	SectionKey string  `json:"section_key"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
	Info       string  `json:"info,omitempty"`
}

func toDocument(item models.MenuItem) document {
	return document{
		ID:         item.ID,
		Name:       item.Name,
		Cuisine:    item.Cuisine,
		Section:    item.Section,
		SectionKey: NormalizeSection(item.Section),
		Price:      item.Price,
		Image:      item.Image,
		Info:       item.Info,
	}
}

func (d document) item() models.MenuItem {
	return models.MenuItem{
		ID:      d.ID,
		Name:    d.Name,
		Cuisine: d.Cuisine,
		Section: d.Section,
		Price:   d.Price,
		Image:   d.Image,
		Info:    d.Info,
	}
}

func (e *ESIndex) IndexItem(ctx context.Context, item models.MenuItem) error {
	body, err := json.Marshal(toDocument(item))
	if err != nil {
		return err
	}

	res, err := e.client.Index(
		e.index,
		bytes.NewReader(body),
		e.client.Index.WithContext(ctx),
		e.client.Index.WithDocumentID(item.ID),
	)
	if err != nil {
		return fmt.Errorf("index %s: %w", item.ID, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index %s: %s", item.ID, res.Status())
	}
	return nil
}

// IndexAll writes every item through the bulk API. Items that the cluster
// rejects are counted as failures and reported in the returned error.
func (e *ESIndex) IndexAll(ctx context.Context, items []models.MenuItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Client:     e.client,
		Index:      e.index,
		NumWorkers: 1,
	})
	if err != nil {
		return 0, fmt.Errorf("bulk indexer: %w", err)
	}

	for _, item := range items {
		body, err := json.Marshal(toDocument(item))
		if err != nil {
			_ = bi.Close(ctx)
			return 0, err
		}
		if err := bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: item.ID,
			Body:       bytes.NewReader(body),
		}); err != nil {
			_ = bi.Close(ctx)
			return 0, fmt.Errorf("bulk add %s: %w", item.ID, err)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return 0, fmt.Errorf("bulk close: %w", err)
	}

	stats := bi.Stats()
	if stats.NumFailed > 0 {
		return int(stats.NumIndexed), fmt.Errorf("bulk index: %d of %d items failed", stats.NumFailed, len(items))
	}
	return int(stats.NumIndexed), nil
}

func (e *ESIndex) DeleteItem(ctx context.Context, id string) error {
	res, err := e.client.Delete(e.index, id, e.client.Delete.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete %s: %s", id, res.Status())
	}
	return nil
}

func buildQuery(query, section string) map[string]any {
	var filters []any
	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		filters = append(filters, map[string]any{
			"wildcard": map[string]any{
				"name.keyword": map[string]any{
					"value":            "*" + q + "*",
					"case_insensitive": true,
				},
			},
		})
	}
	if s := NormalizeSection(section); s != "" {
		filters = append(filters, map[string]any{
			"term": map[string]any{"section_key.keyword": s},
		})
	}

	q := map[string]any{"match_all": map[string]any{}}
	if len(filters) > 0 {
		q = map[string]any{"bool": map[string]any{"filter": filters}}
	}
	return map[string]any{
		"query": q,
		"size":  maxHits,
		"sort":  []any{map[string]any{"name.keyword": "asc"}},
	}
}

func (e *ESIndex) Search(ctx context.Context, query, section string) ([]models.MenuItem, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(buildQuery(query, section)); err != nil {
		return nil, fmt.Errorf("search encode: %w", err)
	}

	res, err := e.client.Search(
		e.client.Search.WithContext(ctx),
		e.client.Search.WithIndex(e.index),
		e.client.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source document `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("search decode: %w", err)
	}

	items := make([]models.MenuItem, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		items[i] = hit.Source.item()
	}
	return items, nil
}
