package chargify

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// Resource methods mirror the REST surface one to one. They exist so the
// shell's command table can expose each operation under a stable name.

func (c *Client) ListCustomers(ctx context.Context) (any, error) {
	return c.Get(ctx, "/customers")
}

func (c *Client) GetCustomer(ctx context.Context, id string) (any, error) {
	return c.Get(ctx, "/customers/"+id)
}

func (c *Client) CreateCustomer(ctx context.Context, body any) (any, error) {
	return c.Post(ctx, "/customers", body)
}

func (c *Client) UpdateCustomer(ctx context.Context, id string, body any) (any, error) {
	return c.Put(ctx, "/customers/"+id, body)
}

func (c *Client) DeleteCustomer(ctx context.Context, id string) (any, error) {
	return c.Delete(ctx, "/customers/"+id)
}

// LookupCustomer finds a customer by merchant-supplied reference. The API
// only takes numeric IDs in path position, so the reference goes in a
// query parameter.
func (c *Client) LookupCustomer(ctx context.Context, reference string) (any, error) {
	return c.Get(ctx, "/customers/lookup?reference="+url.QueryEscape(reference))
}

// CustomerSubscriptions lists the subscriptions of a customer identified
// by reference: first the reference is resolved to a numeric ID, then the
// subscriptions are fetched under that ID.
func (c *Client) CustomerSubscriptions(ctx context.Context, reference string) (any, error) {
	res, err := c.LookupCustomer(ctx, reference)
	if err != nil {
		return nil, err
	}
	id, err := customerID(res)
	if err != nil {
		return nil, err
	}
	return c.Get(ctx, fmt.Sprintf("/customers/%d/subscriptions", id))
}

func customerID(v any) (int64, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return 0, errors.New("unexpected lookup response shape")
	}
	if cust, ok := m["customer"].(map[string]any); ok {
		m = cust
	}
	id, ok := m["id"].(float64)
	if !ok {
		return 0, errors.New("customer id missing in lookup response")
	}
	return int64(id), nil
}

func (c *Client) ListSubscriptions(ctx context.Context) (any, error) {
	return c.Get(ctx, "/subscriptions")
}

func (c *Client) GetSubscription(ctx context.Context, id string) (any, error) {
	return c.Get(ctx, "/subscriptions/"+id)
}

func (c *Client) CreateSubscription(ctx context.Context, body any) (any, error) {
	return c.Post(ctx, "/subscriptions", body)
}

func (c *Client) UpdateSubscription(ctx context.Context, id string, body any) (any, error) {
	return c.Put(ctx, "/subscriptions/"+id, body)
}

func (c *Client) CancelSubscription(ctx context.Context, id string) (any, error) {
	return c.Delete(ctx, "/subscriptions/"+id)
}

func (c *Client) ListProducts(ctx context.Context) (any, error) {
	return c.Get(ctx, "/products")
}

func (c *Client) GetProduct(ctx context.Context, id string) (any, error) {
	return c.Get(ctx, "/products/"+id)
}

func (c *Client) ListProductFamilies(ctx context.Context) (any, error) {
	return c.Get(ctx, "/product_families")
}

func (c *Client) ListCoupons(ctx context.Context) (any, error) {
	family := c.cfg.DefaultFamily
	if family == "" {
		return c.Get(ctx, "/coupons")
	}
	return c.Get(ctx, "/product_families/"+family+"/coupons")
}

func (c *Client) ListEvents(ctx context.Context) (any, error) {
	return c.Get(ctx, "/events")
}

func (c *Client) ListComponents(ctx context.Context) (any, error) {
	family := c.cfg.DefaultFamily
	if family == "" {
		return c.Get(ctx, "/components")
	}
	return c.Get(ctx, "/product_families/"+family+"/components")
}

func (c *Client) ListTransactions(ctx context.Context) (any, error) {
	return c.Get(ctx, "/transactions")
}

func (c *Client) ListStatements(ctx context.Context) (any, error) {
	return c.Get(ctx, "/statements")
}

func (c *Client) ListWebhooks(ctx context.Context) (any, error) {
	return c.Get(ctx, "/webhooks")
}
