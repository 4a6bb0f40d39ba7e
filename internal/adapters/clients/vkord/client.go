// Package vkord implements the outbound registry port against the VK ОРД
// HTTP API (https://api.ord.vk.com).
//
// Every operation validates its domain value before touching the network,
// translates through the payload package at the wire boundary, and maps
// non-success statuses onto the domain error taxonomy. Requests are never
// retried; the underlying platform client fails fast.
package vkord

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/rekorder/markirovka/internal/adapters/clients/vkord/payload"
	"github.com/rekorder/markirovka/internal/domain"
	"github.com/rekorder/markirovka/internal/domain/ord"
	"github.com/rekorder/markirovka/internal/platform/httpclient"
	"github.com/rekorder/markirovka/internal/ports"
)

// Compile-time interface check.
var _ ports.Registry = (*Client)(nil)

// Client talks to the VK ОРД registry API.
type Client struct {
	api *api
}

// New creates a registry client on top of an instrumented platform HTTP
// client. The token is sent as a bearer credential on every request.
func New(httpClient *httpclient.Client, token string, logger *slog.Logger) *Client {
	return &Client{
		api: newAPI(httpClient, token, logger),
	}
}

// SetToken replaces the bearer token for subsequent requests.
func (c *Client) SetToken(token string) {
	c.api.setToken(token)
}

// listQuery converts paging parameters to a query string; nil fields are
// omitted so the registry applies its own defaults.
func listQuery(params ports.ListParams) url.Values {
	q := url.Values{}
	if params.Offset != nil {
		q.Set("offset", strconv.FormatInt(*params.Offset, 10))
	}
	if params.Limit != nil {
		q.Set("limit", strconv.FormatInt(*params.Limit, 10))
	}
	return q
}

// --- Counterparties ---

func (c *Client) ListPersons(ctx context.Context, params ports.ListParams) (*ord.ExternalIDItems, error) {
	return c.list(ctx, "v1/person", params)
}

func (c *Client) GetPerson(ctx context.Context, externalID string) (*ord.Person, error) {
	res, err := c.api.get(ctx, "v1/person/"+url.PathEscape(externalID), nil)
	if err != nil {
		return nil, err
	}
	var p payload.Person
	if err := res.decode(&p); err != nil {
		return nil, err
	}
	return p.Domain()
}

func (c *Client) SetPerson(ctx context.Context, externalID string, person *ord.Person) error {
	if err := person.Validate(); err != nil {
		return err
	}
	_, err := c.api.putJSON(ctx, "v1/person/"+url.PathEscape(externalID), payload.NewPerson(person))
	return err
}

// --- Contracts ---

func (c *Client) ListContracts(ctx context.Context, params ports.ListParams) (*ord.ExternalIDItems, error) {
	return c.list(ctx, "v1/contract", params)
}

func (c *Client) GetContract(ctx context.Context, externalID string) (*ord.Contract, error) {
	res, err := c.api.get(ctx, "v1/contract/"+url.PathEscape(externalID), nil)
	if err != nil {
		return nil, err
	}
	var contract payload.Contract
	if err := res.decode(&contract); err != nil {
		return nil, err
	}
	return contract.Domain()
}

func (c *Client) SetContract(ctx context.Context, externalID string, contract *ord.Contract) error {
	if err := contract.Validate(); err != nil {
		return err
	}
	_, err := c.api.putJSON(ctx, "v1/contract/"+url.PathEscape(externalID), payload.NewContract(contract))
	return err
}

// --- Creatives ---

func (c *Client) ListCreatives(ctx context.Context, params ports.ListParams) (*ord.ExternalIDItems, error) {
	return c.list(ctx, "v2/creative", params)
}

func (c *Client) GetCreative(ctx context.Context, externalID string) (*ord.Creative, error) {
	return c.getCreative(ctx, "v2/creative/"+url.PathEscape(externalID))
}

func (c *Client) GetCreativeByErid(ctx context.Context, erid string) (*ord.Creative, error) {
	return c.getCreative(ctx, "v2/creative/by_erid/"+url.PathEscape(erid))
}

func (c *Client) getCreative(ctx context.Context, path string) (*ord.Creative, error) {
	res, err := c.api.get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	var creative payload.Creative
	if err := res.decode(&creative); err != nil {
		return nil, err
	}
	return creative.Domain()
}

func (c *Client) SetCreative(ctx context.Context, externalID string, creative *ord.Creative) (*ord.CreativeEridInfo, error) {
	if err := creative.Validate(); err != nil {
		return nil, err
	}
	res, err := c.api.putJSON(ctx, "v2/creative/"+url.PathEscape(externalID), payload.NewCreative(creative))
	if err != nil {
		return nil, err
	}
	return decodeEridInfo(res)
}

func (c *Client) AddTextToCreative(ctx context.Context, externalID string, texts []string) (*ord.CreativeEridInfo, error) {
	body := struct {
		Texts []string `json:"texts"`
	}{Texts: texts}
	res, err := c.api.postJSON(ctx, "v1/creative/"+url.PathEscape(externalID)+"/add_text", body)
	if err != nil {
		return nil, err
	}
	return decodeEridInfo(res)
}

func (c *Client) AddMediaToCreative(ctx context.Context, externalID string, mediaExternalIDs []string) (*ord.CreativeEridInfo, error) {
	body := struct {
		MediaExternalIDs []string `json:"media_external_ids"`
	}{MediaExternalIDs: mediaExternalIDs}
	res, err := c.api.postJSON(ctx, "v1/creative/"+url.PathEscape(externalID)+"/add_media", body)
	if err != nil {
		return nil, err
	}
	return decodeEridInfo(res)
}

func decodeEridInfo(res *result) (*ord.CreativeEridInfo, error) {
	var info payload.CreativeEridInfo
	if err := res.decode(&info); err != nil {
		return nil, err
	}
	return info.Domain(), nil
}

// --- Placements ---

func (c *Client) ListPads(ctx context.Context, params ports.ListParams) (*ord.ExternalIDItems, error) {
	return c.list(ctx, "v1/pad", params)
}

func (c *Client) GetPad(ctx context.Context, externalID string) (*ord.Pad, error) {
	res, err := c.api.get(ctx, "v1/pad/"+url.PathEscape(externalID), nil)
	if err != nil {
		return nil, err
	}
	var pad payload.Pad
	if err := res.decode(&pad); err != nil {
		return nil, err
	}
	return pad.Domain()
}

func (c *Client) SetPad(ctx context.Context, externalID string, pad *ord.Pad) error {
	if err := pad.Validate(); err != nil {
		return err
	}
	_, err := c.api.putJSON(ctx, "v1/pad/"+url.PathEscape(externalID), payload.NewPad(pad))
	return err
}

// --- Media ---

func (c *Client) UploadMedia(ctx context.Context, externalID, filename, description string, content io.Reader) (map[string]any, error) {
	if filename == "" {
		return nil, domain.NewInvalidInput("filename", filename)
	}

	query := url.Values{}
	if description != "" {
		query.Set("description", description)
	}

	res, err := c.api.uploadFile(ctx, "v1/media/"+url.PathEscape(externalID), query, filename, content)
	if err != nil {
		return nil, err
	}
	if res.Ack {
		return nil, nil
	}
	var ack map[string]any
	if err := res.decode(&ack); err != nil {
		return nil, err
	}
	return ack, nil
}

func (c *Client) GetMediaFile(ctx context.Context, externalID string) ([]byte, error) {
	res, err := c.api.get(ctx, "v1/media/"+url.PathEscape(externalID), nil)
	if err != nil {
		return nil, err
	}
	return res.bytes(), nil
}

func (c *Client) GetMediaChecksum(ctx context.Context, externalID string) (*ord.MediaChecksum, error) {
	res, err := c.api.get(ctx, "v1/media/"+url.PathEscape(externalID)+"/checksum", nil)
	if err != nil {
		return nil, err
	}
	var sum payload.MediaChecksum
	if err := res.decode(&sum); err != nil {
		return nil, err
	}
	return sum.Domain(), nil
}

// --- Reconciliation acts ---

func (c *Client) GetInvoice(ctx context.Context, externalID string) (*ord.WholeInvoice, error) {
	res, err := c.api.get(ctx, "v1/invoice/"+url.PathEscape(externalID), nil)
	if err != nil {
		return nil, err
	}
	var invoice payload.WholeInvoice
	if err := res.decode(&invoice); err != nil {
		return nil, err
	}
	return invoice.Domain()
}

func (c *Client) SetInvoice(ctx context.Context, externalID string, invoice *ord.WholeInvoice) error {
	if err := invoice.Validate(); err != nil {
		return err
	}
	_, err := c.api.putJSON(ctx, "v1/invoice/"+url.PathEscape(externalID), payload.NewWholeInvoice(invoice))
	return err
}

// --- Impression statistics ---

func (c *Client) ListStatistics(ctx context.Context, params ports.ListParams) (*ord.StatisticItems, error) {
	res, err := c.api.get(ctx, "v2/statistics", listQuery(params))
	if err != nil {
		return nil, err
	}
	var items payload.StatisticItems
	if err := res.decode(&items); err != nil {
		return nil, err
	}
	return items.Domain()
}

func (c *Client) SetStatistics(ctx context.Context, items []ord.Statistic) error {
	wire := make([]payload.Statistic, 0, len(items))
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return err
		}
		wire = append(wire, *payload.NewStatistic(&items[i]))
	}
	body := struct {
		Items []payload.Statistic `json:"items"`
	}{Items: wire}
	_, err := c.api.postJSON(ctx, "v2/statistics", body)
	return err
}

// list fetches one page of external ids from a listing endpoint.
func (c *Client) list(ctx context.Context, path string, params ports.ListParams) (*ord.ExternalIDItems, error) {
	res, err := c.api.get(ctx, path, listQuery(params))
	if err != nil {
		return nil, err
	}
	var items payload.ExternalIDItems
	if err := res.decode(&items); err != nil {
		return nil, err
	}
	return items.Domain(), nil
}
