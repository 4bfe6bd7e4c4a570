package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bloomshop-be/internal/logger"
	"bloomshop-be/internal/money"

	"go.uber.org/zap"
)

// feedRecord mirrors one row of the spreadsheet-backed product feed.
// Numeric cells may arrive as JSON numbers or formatted strings, so id and
// price are kept raw until mapping.
type feedRecord struct {
	ID          json.RawMessage `json:"id"`
	Name        string          `json:"name"`
	Price       json.RawMessage `json:"price"`
	Image       string          `json:"image"`
	Images      []string        `json:"images"`
	Options     Options         `json:"options"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// Client fetches product records from the remote feed.
type Client struct {
	feedURL    string
	httpClient *http.Client
}

func NewClient(feedURL string) *Client {
	return &Client{
		feedURL: feedURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Fetch downloads the full product list. Records missing required fields
// are skipped with a warning; the load itself only fails on transport or
// top-level decoding errors.
func (c *Client) Fetch(ctx context.Context) ([]Product, error) {
	log := logger.FromCtx(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("catalog feed request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrFeedUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error("catalog feed returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("%w: status %d", ErrFeedUnavailable, resp.StatusCode)
	}

	var records []feedRecord
	if err := json.Unmarshal(bodyBytes, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedMalformed, err)
	}

	products := make([]Product, 0, len(records))
	for i, rec := range records {
		p, err := mapRecord(rec)
		if err != nil {
			log.Warn("skipping invalid catalog entry",
				zap.Int("index", i),
				zap.String("name", rec.Name),
				zap.Error(err),
			)
			continue
		}
		products = append(products, p)
	}

	log.Info("catalog loaded",
		zap.Int("records", len(records)),
		zap.Int("products", len(products)),
	)

	return products, nil
}

func mapRecord(rec feedRecord) (Product, error) {
	id := rawString(rec.ID)
	priceRaw := rawString(rec.Price)

	if id == "" || rec.Name == "" || priceRaw == "" || rec.Image == "" {
		return Product{}, ErrEntryInvalid
	}

	price, err := money.Parse(priceRaw)
	if err != nil {
		return Product{}, fmt.Errorf("%w: price %q", ErrEntryInvalid, priceRaw)
	}

	return Product{
		ID:          id,
		Name:        rec.Name,
		Price:       price,
		Image:       rec.Image,
		Images:      rec.Images,
		Options:     rec.Options,
		Category:    rec.Category,
		Description: rec.Description,
	}, nil
}

// rawString renders a raw JSON scalar as its string content, accepting
// both quoted strings and bare numbers.
func rawString(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	if strings.HasPrefix(s, `"`) {
		var unquoted string
		if err := json.Unmarshal(raw, &unquoted); err != nil {
			return ""
		}
		return strings.TrimSpace(unquoted)
	}
	return s
}
