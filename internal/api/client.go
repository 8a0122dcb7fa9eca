// Package api talks to the remote shop: catalog fetch and order submission.
// The rest of the app only sees "a function that fetches the catalog" and "a
// function that submits an order"; transport details stay here.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/weblarek/larek/internal/domain"
)

const (
	apiPath     = "/api/weblarek"
	contentPath = "/content/weblarek"
)

// Client is an HTTP gateway to one shop origin. Image paths in API responses
// are relative; the client resolves them against the origin's content path
// before anything downstream sees them.
type Client struct {
	http    *http.Client
	baseURL string
	cdnURL  string
}

// NewClient builds a gateway for origin (scheme://host). The timeout bounds
// each attempt so the startup fallback chain and order submission cannot hang.
func NewClient(origin string, timeout time.Duration) *Client {
	origin = strings.TrimRight(origin, "/")
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: origin + apiPath,
		cdnURL:  origin + contentPath,
	}
}

// ProductList fetches the full catalog.
func (c *Client) ProductList(ctx context.Context) ([]domain.Product, error) {
	var list domain.ProductList
	if err := c.get(ctx, "/product", &list); err != nil {
		return nil, err
	}
	items := make([]domain.Product, len(list.Items))
	for i, p := range list.Items {
		p.Image = c.cdnURL + p.Image
		items[i] = p
	}
	return items, nil
}

// Product fetches one product by id.
func (c *Client) Product(ctx context.Context, id string) (domain.Product, error) {
	var p domain.Product
	if err := c.get(ctx, "/product/"+id, &p); err != nil {
		return domain.Product{}, err
	}
	p.Image = c.cdnURL + p.Image
	return p, nil
}

// CreateOrder submits the order. Any transport error or non-2xx status is a
// generic failure; the caller only needs success/failure.
func (c *Client) CreateOrder(ctx context.Context, order domain.OrderRequest) (domain.OrderConfirmation, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return domain.OrderConfirmation{}, fmt.Errorf("encode order: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/order", bytes.NewReader(body))
	if err != nil {
		return domain.OrderConfirmation{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var conf domain.OrderConfirmation
	if err := c.do(req, &conf); err != nil {
		return domain.OrderConfirmation{}, fmt.Errorf("create order: %w", err)
	}
	return conf, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if err := c.do(req, out); err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	return nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
