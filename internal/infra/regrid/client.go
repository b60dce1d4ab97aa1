package regrid

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"havenground-server/internal/infra/cache"
)

const (
	_defaultBaseURL = "https://app.regrid.com/api/v2"
	_lookupTimeout  = 10 * time.Second
	_lookupCacheTTL = 1 * time.Hour
)

var ErrParcelNotFound = errors.New("parcel not found")

type LookupRequest struct {
	Address string
	City    string
	State   string
	County  string
}

// ParcelSummary is the first-match summary returned for an address lookup.
type ParcelSummary struct {
	ParcelNumber string  `json:"parcel_number"`
	Owner        string  `json:"owner"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	County       string  `json:"county"`
	State        string  `json:"state"`
	ZipCode      string  `json:"zip_code"`
	Acreage      float64 `json:"acreage"`
}

type Client interface {
	Lookup(ctx context.Context, req LookupRequest) (ParcelSummary, error)
}

var _ Client = (*APIClient)(nil)

type APIClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	cache      cache.Cache
}

func NewAPIClient(baseURL, token string, cacheInstance cache.Cache) *APIClient {
	if baseURL == "" {
		baseURL = _defaultBaseURL
	}

	return &APIClient{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: _lookupTimeout},
		cache:      cacheInstance,
	}
}

func (c *APIClient) Lookup(ctx context.Context, req LookupRequest) (ParcelSummary, error) {
	query := strings.TrimSpace(fmt.Sprintf("%s, %s %s", req.Address, req.City, req.State))
	cacheKey := fmt.Sprintf("regrid:%s:%s", strings.ToLower(req.County), strings.ToLower(query))

	value, err := c.cache.GetOrSet(ctx, cacheKey, _lookupCacheTTL, func() (any, error) {
		return c.lookup(ctx, req, query)
	})
	if err != nil {
		return ParcelSummary{}, err
	}

	summary, ok := value.(ParcelSummary)
	if !ok {
		return ParcelSummary{}, fmt.Errorf("unexpected cache value type %T", value)
	}

	return summary, nil
}

func (c *APIClient) lookup(ctx context.Context, req LookupRequest, query string) (any, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", "1")
	params.Set("token", c.token)
	if req.State != "" && req.County != "" {
		path := fmt.Sprintf("/us/%s/%s",
			strings.ToLower(req.State),
			strings.ToLower(strings.ReplaceAll(req.County, " ", "-")),
		)
		params.Set("path", path)
	}

	endpoint := fmt.Sprintf("%s/parcels/address?%s", c.baseURL, params.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("regrid request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrParcelNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("regrid api status %d: %s", resp.StatusCode, string(body))
	}

	var response lookupResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	if len(response.Parcels.Features) == 0 {
		return nil, ErrParcelNotFound
	}

	fields := response.Parcels.Features[0].Properties.Fields
	summary := ParcelSummary{
		ParcelNumber: fields.ParcelNumber,
		Owner:        fields.Owner,
		Address:      fields.Address,
		City:         fields.City,
		County:       fields.County,
		State:        fields.State,
		ZipCode:      fields.ZipCode,
		Acreage:      fields.GISAcres,
	}

	slog.Debug("parcel lookup completed",
		slog.String("query", query),
		slog.String("parcel_number", summary.ParcelNumber),
	)

	return summary, nil
}

type lookupResponse struct {
	Parcels struct {
		Features []struct {
			Properties struct {
				Fields parcelFields `json:"fields"`
			} `json:"properties"`
		} `json:"features"`
	} `json:"parcels"`
}

type parcelFields struct {
	ParcelNumber string  `json:"parcelnumb"`
	Owner        string  `json:"owner"`
	Address      string  `json:"address"`
	City         string  `json:"scity"`
	County       string  `json:"county"`
	State        string  `json:"state2"`
	ZipCode      string  `json:"szip5"`
	GISAcres     float64 `json:"ll_gisacre"`
}
