package lookup

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"iplook/structs"
)

var log = logrus.New()

const apiBase = "https://ipinfo.io"

type Config struct {
	Token     string
	Timeout   time.Duration
	Retries   int
	BaseDelay time.Duration
	RDNS      bool
	ASN       bool
	Debug     bool
	Resolver  string
}

// Client queries ipinfo.io for one address at a time. Requests run strictly
// sequentially; the only state shared between addresses is the Config.
type Client struct {
	*Config
	http  *http.Client
	base  string
	sleep func(time.Duration)
}

func New(cfg *Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	// the attempt loop in fetch needs at least one pass
	if cfg.Retries < 1 {
		cfg.Retries = 3
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = 2 * time.Second
	}
	if cfg.Resolver == "" {
		cfg.Resolver = "8.8.8.8:53"
	}
	if cfg.Debug {
		log.Level = logrus.DebugLevel
	}
	return &Client{
		Config: cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		base:   apiBase,
		sleep:  time.Sleep,
	}
}

// Lookup fetches provider metadata for a validated address, retrying
// transient failures with exponential backoff. Enrichment is best-effort
// and never fails the address.
func (c *Client) Lookup(addr string) (*structs.Record, error) {
	rec, err := c.fetch(addr)
	if err != nil {
		return nil, err
	}
	if c.RDNS {
		c.addRDNS(addr, rec)
	}
	if c.ASN {
		c.addASN(addr, rec)
	}
	return rec, nil
}

func (c *Client) fetch(addr string) (*structs.Record, error) {
	u := c.base + "/" + addr + "/json"
	if c.Token != "" {
		u += "?token=" + url.QueryEscape(c.Token)
	}
	var lastErr error
	for attempt := 1; attempt <= c.Retries; attempt++ {
		if attempt > 1 {
			delay := c.backoff(attempt)
			log.Debugf("%s: retrying in %s (attempt %d/%d)", addr, delay, attempt, c.Retries)
			c.sleep(delay)
		}
		log.Debugf("%s: attempt %d: GET %s/%s/json", addr, attempt, c.base, addr)
		rec, retry, err := c.do(u)
		if err == nil {
			return rec, nil
		}
		if !retry {
			return nil, &PermanentError{Addr: addr, Err: err}
		}
		lastErr = err
	}
	return nil, errors.Wrapf(lastErr, "lookup %s failed after %d attempts", addr, c.Retries)
}

// backoff returns the delay before the given attempt. The base delay
// doubles after every failed attempt: base, 2*base, 4*base, ...
func (c *Client) backoff(attempt int) time.Duration {
	return c.BaseDelay << uint(attempt-2)
}

// do performs one GET. The bool reports whether a failure is worth
// retrying: transport errors and retryable statuses are, malformed and
// error-bearing bodies are not.
func (c *Client) do(u string) (*structs.Record, bool, error) {
	resp, err := c.http.Get(u)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, err
	}
	log.Debugf("got %s (%s body)", resp.Status, humanize.Bytes(uint64(len(body))))
	if resp.StatusCode != http.StatusOK {
		return nil, retryable(resp.StatusCode), fmt.Errorf("unexpected status: %s", resp.Status)
	}
	rec := structs.NewRecord()
	if err := json.Unmarshal(body, rec); err != nil {
		return nil, false, errors.Wrap(err, "malformed response")
	}
	if msg, ok := apiError(rec); ok {
		return nil, false, fmt.Errorf("api error: %s", msg)
	}
	return rec, false, nil
}

// retryable splits HTTP statuses into transient and permanent: 429 and 5xx
// retry, every other non-2xx status fails immediately.
func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

// apiError digs the message out of an {"error": {...}} payload, which the
// provider can send with a 200 status.
func apiError(rec *structs.Record) (string, bool) {
	v, ok := rec.Get("error")
	if !ok {
		return "", false
	}
	if m, ok := v.(map[string]interface{}); ok {
		if msg, ok := m["message"].(string); ok {
			return msg, true
		}
		if title, ok := m["title"].(string); ok {
			return title, true
		}
	}
	return fmt.Sprintf("%v", v), true
}
