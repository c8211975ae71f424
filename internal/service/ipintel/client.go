package ipintel

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// ErrUnavailable marks a lookup that could not be completed. Callers degrade
// to an unknown network classification instead of failing the request.
var ErrUnavailable = errors.New("ip intelligence lookup unavailable")

// Info is the vendor metadata for one IP address.
type Info struct {
	IP       string   `json:"ip"`
	Hostname string   `json:"hostname,omitempty"`
	City     string   `json:"city,omitempty"`
	Org      string   `json:"org,omitempty"`
	Carrier  *Carrier `json:"carrier,omitempty"`
	Company  *Company `json:"company,omitempty"`
	Privacy  *Privacy `json:"privacy,omitempty"`
	ASN      *ASN     `json:"asn,omitempty"`
}

type Carrier struct {
	Name string `json:"name"`
	MCC  string `json:"mcc,omitempty"`
	MNC  string `json:"mnc,omitempty"`
}

type Company struct {
	Name   string `json:"name"`
	Domain string `json:"domain,omitempty"`
	Type   string `json:"type,omitempty"`
}

type Privacy struct {
	VPN     bool   `json:"vpn"`
	Proxy   bool   `json:"proxy"`
	Tor     bool   `json:"tor"`
	Relay   bool   `json:"relay,omitempty"`
	Hosting bool   `json:"hosting"`
	Service string `json:"service,omitempty"`
}

type ASN struct {
	ASN    string `json:"asn"`
	Name   string `json:"name"`
	Domain string `json:"domain,omitempty"`
	Route  string `json:"route,omitempty"`
	Type   string `json:"type,omitempty"`
}

// Client calls the IP intelligence vendor with a short timeout and caches
// raw responses in redis per IP.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
	cache   *redis.Client
	ttl     time.Duration
}

func NewClient(baseURL, token string, timeout time.Duration, cache *redis.Client, ttl time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: timeout},
		cache:   cache,
		ttl:     ttl,
	}
}

// Lookup fetches metadata for ip, returning both the decoded info and the
// raw payload for audit storage. Any transport, decode, or vendor failure is
// reported as ErrUnavailable.
func (c *Client) Lookup(ctx context.Context, ip string) (Info, json.RawMessage, error) {
	cacheKey := "ipintel:" + ip

	if c.cache != nil {
		if raw, err := c.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var info Info
			if err = json.Unmarshal(raw, &info); err == nil {
				return info, raw, nil
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", c.baseURL, ip), nil)
	if err != nil {
		return Info{}, nil, errors.Wrap(ErrUnavailable, err.Error())
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		q := req.URL.Query()
		q.Set("token", c.token)
		req.URL.RawQuery = q.Encode()
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Info{}, nil, errors.Wrap(ErrUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Info{}, nil, errors.Wrapf(ErrUnavailable, "vendor returned %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Info{}, nil, errors.Wrap(ErrUnavailable, err.Error())
	}

	var info Info
	if err = json.Unmarshal(raw, &info); err != nil {
		return Info{}, nil, errors.Wrap(ErrUnavailable, err.Error())
	}

	if c.cache != nil {
		if err = c.cache.Set(ctx, cacheKey, raw, c.ttl).Err(); err != nil {
			log.Println("ipintel cache set error:", err)
		}
	}

	return info, raw, nil
}
