package client

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/leaguefeed/internal/client/models"
	"github.com/dmitrijs2005/leaguefeed/internal/common"
	"github.com/dmitrijs2005/leaguefeed/internal/logging"
	"github.com/dmitrijs2005/leaguefeed/internal/netx"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient returns a Client talking to baseURL. A nil hc gets
// netx.NewHTTPClient defaults; a nil log discards output.
func NewHTTPClient(baseURL string, hc *http.Client, log logging.Logger) *HTTPClient {
	if hc == nil {
		hc = netx.NewHTTPClient(0)
	}
	if log == nil {
		log = logging.Nop()
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		log:     log,
	}
}

func (c *HTTPClient) Login(ctx context.Context, username string, password []byte) (string, error) {
	creds := make([]byte, 0, len(username)+1+len(password))
	creds = append(creds, username...)
	creds = append(creds, ':')
	creds = append(creds, password...)
	defer common.WipeByteArray(creds)

	h := http.Header{}
	h.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString(creds))

	var resp loginResponse
	if err := c.get(ctx, "login", h, &resp); err != nil {
		return "", err
	}
	return resp.APIKey, nil
}

func (c *HTTPClient) Users(ctx context.Context, token string) ([]models.User, error) {
	var ds []userDTO
	if err := c.get(ctx, "users", tokenHeader(token), &ds); err != nil {
		return nil, err
	}
	return usersFromDTO(ds), nil
}

func (c *HTTPClient) Posts(ctx context.Context, token string) ([]models.Post, error) {
	var ds []postDTO
	if err := c.get(ctx, "posts", tokenHeader(token), &ds); err != nil {
		return nil, err
	}
	return postsFromDTO(ds), nil
}

func tokenHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set(common.AccessTokenHeaderName, token)
	}
	return h
}

func (c *HTTPClient) get(ctx context.Context, path string, h http.Header, dest any) error {
	reqID := uuid.NewString()
	h.Set(requestIDHeader, reqID)

	err := netx.GetJSON(ctx, c.http, c.baseURL+"/"+path, h, dest)
	if err != nil {
		c.log.Warn(ctx, "request failed", "request_id", reqID, "path", path, "error", err)
		return c.mapError(err)
	}
	c.log.Debug(ctx, "request done", "request_id", reqID, "path", path)
	return nil
}

func (c *HTTPClient) mapError(err error) error {
	var se *netx.StatusError
	if errors.As(err, &se) {
		switch {
		case se.Code == http.StatusUnauthorized || se.Code == http.StatusForbidden:
			return fmt.Errorf("%w: %w", ErrUnauthorized, err)
		case se.Code >= 500:
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		default:
			return fmt.Errorf("unexpected status: %w", err)
		}
	}
	if errors.Is(err, netx.ErrDecode) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
