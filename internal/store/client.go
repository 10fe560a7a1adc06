// Package store wraps the external tabular record store (Airtable). The
// store offers per-call atomicity only: a single create or update is atomic,
// nothing spanning multiple calls is.
package store

import "github.com/mehanizm/airtable"

// BatchLimit is the store's per-call record limit for create operations.
const BatchLimit = 10

type Client struct {
	api    *airtable.Client
	baseID string
}

func New(apiKey, baseID string) *Client {
	return &Client{api: airtable.NewClient(apiKey), baseID: baseID}
}

func (c *Client) Table(name string) *airtable.Table {
	return c.api.GetTable(c.baseID, name)
}
