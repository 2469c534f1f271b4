package playstore

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/apex/log"
	"github.com/pkg/errors"
)

// Login performs the legacy master-login exchange and stores the resulting
// bearer token in the client's session. Authentication and transport failures
// are retried on the bounded schedule; a credential precondition failure is
// not retried.
func (c *Client) Login(ctx context.Context) error {
	encryptedPasswd, err := EncryptCredentials(c.conf.Username, c.conf.Password)
	if err != nil {
		return err
	}

	return retry(ctx, c.retrySchedule, func(error) bool { return true }, func() error {
		return c.login(ctx, encryptedPasswd)
	})
}

func (c *Client) login(ctx context.Context, encryptedPasswd string) error {
	params := url.Values{}
	params.Set("Email", c.conf.Username)
	params.Set("EncryptedPasswd", encryptedPasswd)
	params.Set("service", "androidmarket")
	params.Set("accountType", "HOSTED_OR_GOOGLE")
	params.Set("has_permission", "1")
	params.Set("source", "android")
	params.Set("device_country", c.conf.Lang)
	params.Set("lang", c.conf.Lang)

	req, err := http.NewRequestWithContext(ctx, "POST", c.authURL, strings.NewReader(params.Encode()))
	if err != nil {
		return errors.Wrap(err, "cannot create http request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "login request failed")
	}
	defer resp.Body.Close()

	res := parseKeyValues(resp.Body)

	token, ok := res["auth"]
	if !ok {
		return ErrAuthFailed
	}

	log.Debug("authentication token found")
	c.session = &Session{Token: token}

	return nil
}

// parseKeyValues parses the line-oriented key=value plaintext the login
// endpoint responds with. Keys are lowercased; lines without '=' are skipped.
func parseKeyValues(r io.Reader) map[string]string {
	res := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), "=")
		if !found {
			continue
		}
		res[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}
	return res
}
