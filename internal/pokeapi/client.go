// Package pokeapi fetches species records from the PokéAPI REST service.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the public PokéAPI v2 root.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

const defaultTimeout = 10 * time.Second

// Client issues lookups against one PokéAPI deployment. Reused across
// queries; every request is a single attempt, no retries.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New returns a client for the given API root, or the public PokéAPI when
// baseURL is empty.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
}

func (c *Client) SetTimeout(timeout time.Duration) {
	if timeout > 0 {
		c.httpc.Timeout = timeout
	}
}

// Lookup resolves a name or decimal id to a full Record: the pokemon
// resource, its species resource (flavor text, egg groups, growth rate),
// per-ability flavor text, and the raw sprite bytes. Species and ability
// failures degrade to empty fields; only the primary resource is required.
func (c *Client) Lookup(ctx context.Context, key string) (*Record, error) {
	query := strings.ToLower(strings.TrimSpace(key))
	if query == "" {
		return nil, NotFoundError{Key: key}
	}

	var pk pokemonPayload
	status, err := c.getJSON(ctx, c.baseURL+"/pokemon/"+url.PathEscape(query), &pk)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, NotFoundError{Key: query}
	}
	if status != http.StatusOK {
		return nil, DataFormatError{Err: fmt.Errorf("pokemon endpoint returned status %d", status)}
	}
	if pk.ID <= 0 || pk.Name == "" {
		return nil, DataFormatError{Err: fmt.Errorf("pokemon payload missing id or name")}
	}

	var sp speciesPayload
	if status, err := c.getJSON(ctx, c.baseURL+"/pokemon-species/"+strconv.Itoa(pk.ID), &sp); err != nil || status != http.StatusOK {
		sp = speciesPayload{}
	}

	rec := buildRecord(pk, sp)

	for i, a := range pk.Abilities {
		if a.Ability.URL == "" {
			continue
		}
		var ab abilityPayload
		if status, err := c.getJSON(ctx, a.Ability.URL, &ab); err != nil || status != http.StatusOK {
			continue
		}
		rec.Abilities[i].Description = englishFlavor(ab.FlavorTextEntries)
	}

	if rec.SpriteURL != "" {
		if body, status, err := c.get(ctx, rec.SpriteURL); err == nil && status == http.StatusOK {
			rec.Sprite = body
		}
	}

	return rec, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) (int, error) {
	body, status, err := c.get(ctx, rawURL)
	if err != nil {
		return 0, err
	}
	if status != http.StatusOK {
		return status, nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return status, DataFormatError{Err: err}
	}
	return status, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, NetworkError{Err: err}
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, 0, NetworkError{Err: err}
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, NetworkError{Err: err}
	}
	return body, resp.StatusCode, nil
}
