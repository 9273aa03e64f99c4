package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"jessster/logger"
	"jessster/trace"
)

type authMode int

const (
	authNone authMode = iota
	// authOptional attaches the token when one is stored.
	authOptional
	// authRequired fails with ErrUnauthenticated before any I/O when no token is stored.
	authRequired
)

// statusSet reports whether a status code counts as success for an endpoint.
type statusSet func(code int) bool

func any2xx(code int) bool { return code >= 200 && code < 300 }

func anyStatus(int) bool { return true }

func only(codes ...int) statusSet {
	return func(code int) bool {
		for _, c := range codes {
			if c == code {
				return true
			}
		}
		return false
	}
}

type call struct {
	op     string
	method string
	path   string // escaped, with trailing slash
	query  url.Values
	body   any
	auth   authMode
	ok     statusSet
}

type reply struct {
	status int
	body   []byte
}

// send runs one request/response exchange. It never decodes; see do.
func (c *Client) send(ctx context.Context, cl call) (reply, error) {
	ctx = trace.Ensure(ctx)

	var token string
	if cl.auth != authNone {
		s, err := c.store.Load(ctx)
		if err != nil {
			return reply{}, newError(cl.op, ErrInvalidRequest, err)
		}
		if cl.auth == authRequired && !s.HasToken() {
			return reply{}, newError(cl.op, ErrUnauthenticated, nil)
		}
		token = s.Token
	}

	var body io.Reader
	if cl.body != nil {
		buf, err := json.Marshal(cl.body)
		if err != nil {
			return reply{}, newError(cl.op, ErrInvalidRequest, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := c.base.NewRequest(ctx, cl.method, cl.path, cl.query, body)
	if err != nil {
		return reply{}, newError(cl.op, ErrInvalidRequest, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return reply{}, newError(cl.op, ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return reply{status: resp.StatusCode}, &Error{Op: cl.op, Kind: ErrTransport, StatusCode: resp.StatusCode, Err: err}
	}

	ok := cl.ok
	if ok == nil {
		ok = any2xx
	}
	if !ok(resp.StatusCode) {
		logger.WarnWithFields("gateway unexpected status", logger.Fields{
			"op":     cl.op,
			"status": resp.StatusCode,
		})
		return reply{status: resp.StatusCode, body: data}, &Error{
			Op:         cl.op,
			Kind:       ErrUnexpectedStatus,
			StatusCode: resp.StatusCode,
			Body:       truncate(data),
		}
	}
	return reply{status: resp.StatusCode, body: data}, nil
}

// do sends cl and decodes the reply into out. A nil out skips decoding.
func (c *Client) do(ctx context.Context, cl call, out any) error {
	r, err := c.send(ctx, cl)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decode(cl.op, r, out)
}

func decode(op string, r reply, out any) error {
	if len(bytes.TrimSpace(r.body)) == 0 {
		return &Error{Op: op, Kind: ErrNoResponseBody, StatusCode: r.status}
	}
	if err := json.Unmarshal(r.body, out); err != nil {
		return &Error{Op: op, Kind: ErrDecode, StatusCode: r.status, Body: truncate(r.body), Err: err}
	}
	return nil
}

// checkSlug rejects slugs that cannot address a single post. Dot segments
// would be cleaned out of the joined path and hit another endpoint.
func checkSlug(op, slug string) error {
	switch {
	case strings.TrimSpace(slug) == "":
		return newError(op, ErrInvalidRequest, fmt.Errorf("empty slug"))
	case slug == "." || slug == "..":
		return newError(op, ErrInvalidRequest, fmt.Errorf("invalid slug %q", slug))
	case strings.Contains(slug, "/"):
		return newError(op, ErrInvalidRequest, fmt.Errorf("slug %q contains a slash", slug))
	}
	return nil
}

// slugPath builds "/api/posts/<slug>/<suffix>/" with the slug escaped as one segment.
func slugPath(slug, suffix string) string {
	p := "/api/posts/" + url.PathEscape(slug) + "/"
	if suffix != "" {
		p += suffix + "/"
	}
	return p
}
