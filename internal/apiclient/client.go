// Package apiclient provides a small Go client for the user registry's
// REST API. It mirrors the server's routes one-to-one and maps problem
// responses back into errors.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-registry/models"
	"github.com/go-resty/resty/v2"
)

// Config holds the connection settings for a [Client].
type Config struct {
	// BaseURL is the root of the registry API, e.g. "http://localhost:8080".
	BaseURL string

	// AuthToken is sent verbatim in the Authorization header of every
	// request, matching the server's exact-literal check.
	AuthToken string

	// Timeout bounds each request. Defaults to 15 seconds.
	Timeout time.Duration
}

// Client talks to a running registry server. It is safe for concurrent use.
type Client struct {
	client *resty.Client
}

// NewClient constructs a Client from cfg, trimming any trailing slash from
// the base URL.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Authorization", cfg.AuthToken)

	return &Client{client: cli}
}

// ListUsers fetches one page of users. Zero page and pageSize omit the
// query parameters, letting the server apply its defaults.
func (c *Client) ListUsers(ctx context.Context, page, pageSize int) ([]models.User, error) {
	req := c.client.R().SetContext(ctx)
	if page != 0 {
		req.SetQueryParam("page", strconv.Itoa(page))
	}
	if pageSize != 0 {
		req.SetQueryParam("pageSize", strconv.Itoa(pageSize))
	}

	resp, err := req.Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var users []models.User
	if err = json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("decode users list: %w", err)
	}

	return users, nil
}

// GetUser fetches a single user by id.
func (c *Client) GetUser(ctx context.Context, id int64) (models.User, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/users/%d", id))
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode user: %w", err)
	}

	return user, nil
}

// CreateUser creates a user and returns the stored entity with the id the
// server assigned.
func (c *Client) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var created models.User
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.User{}, fmt.Errorf("decode created user: %w", err)
	}

	return created, nil
}

// UpdateUser overwrites the name and email of an existing user.
func (c *Client) UpdateUser(ctx context.Context, id int64, name, email string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Name: name, Email: email}).
		Put(fmt.Sprintf("/users/%d", id))
	if err != nil {
		return fmt.Errorf("update user request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteUser removes a user by id and returns the removed entity.
func (c *Client) DeleteUser(ctx context.Context, id int64) (models.User, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/users/%d", id))
	if err != nil {
		return models.User{}, fmt.Errorf("delete user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var removed models.User
	if err = json.Unmarshal(resp.Body(), &removed); err != nil {
		return models.User{}, fmt.Errorf("decode removed user: %w", err)
	}

	return removed, nil
}
