// Package playstore implements a client for the Play Store "FDFE" protocol:
// account login, app metadata queries, purchase/delivery negotiation and
// artifact downloads.
package playstore

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"

	"github.com/playfetch/playfetch/internal/download"
	"github.com/playfetch/playfetch/pkg/playstore/pb"
)

const (
	defaultAuthURL  = "https://android.clients.google.com/auth"
	defaultFdfeURL  = "https://android.clients.google.com/fdfe/"
	defaultStoreURL = "https://play.google.com"

	// Client identity the backend expects on every FDFE call.
	clientID    = "am-android-google"
	finskyAgent = "Android-Finsky/4.4.3 (api=3,versionCode=8016014,sdk=23,device=hammerhead," +
		"hardware=hammerhead,product=hammerhead)"
	downloadAgent = "AndroidDownloadManager/4.1.1 (Linux; U; Android 4.1.1; Nexus S Build/JRO03E)"

	enabledExperiments     = "cl:billing.select_add_instrument_by_default"
	unsupportedExperiments = "nocache:billing.use_charging_poller,market_emails," +
		"buyer_currency,prod_baseline,checkin.set_asset_paid_app_field," +
		"shekel_test,content_ratings,buyer_currency_in_app," +
		"nocache:encrypted_apk,recent_changes"
)

var (
	// ErrNoSession is returned when an authenticated call is attempted before Login.
	ErrNoSession = errors.New("please login before attempting any other operation")
	// ErrAuthFailed is returned when the login endpoint does not yield an auth token.
	ErrAuthFailed = errors.New("login failed, please check your credentials")
	// ErrAppNotFound is returned when the details for a package cannot be resolved.
	ErrAppNotFound = errors.New("cannot resolve app details")
	// ErrPurchaseFailed is returned when neither delivery nor purchase yields a download URL.
	ErrPurchaseFailed = errors.New("unable to download the application")
	// ErrMissingCookie is returned when delivery data lacks the download auth cookie.
	ErrMissingCookie = errors.New("download auth cookie not received")
)

// Config holds the account a client authenticates as.
type Config struct {
	Username  string
	Password  string
	AndroidID string
	LangCode  string // Accept-Language value (i.e. en_US)
	Lang      string // device country (i.e. us)
}

// Session holds the bearer token obtained from a successful login. It is
// read-only after creation and safe to share across concurrent operations.
type Session struct {
	Token string
}

// Client talks to the Play Store backend on behalf of a single device account.
type Client struct {
	conf    *Config
	session *Session

	proxy    string
	insecure bool
	client   *http.Client

	authURL  string
	fdfeURL  string
	storeURL string

	retrySchedule []time.Duration
}

// NewClient creates a Play Store client for the given account. No network
// traffic happens until Login is called.
func NewClient(conf *Config, proxy string, insecure bool) *Client {
	return &Client{
		conf:     conf,
		proxy:    proxy,
		insecure: insecure,
		client: &http.Client{
			Transport: &http.Transport{
				Proxy:             download.GetProxy(proxy),
				TLSClientConfig:   &tls.Config{InsecureSkipVerify: insecure},
				ForceAttemptHTTP2: true,
			},
		},
		authURL:       defaultAuthURL,
		fdfeURL:       defaultFdfeURL,
		storeURL:      defaultStoreURL,
		retrySchedule: defaultRetrySchedule,
	}
}

// Session returns the current session (nil before Login/after Logout).
func (c *Client) Session() *Session {
	return c.session
}

// Logout discards the current session. The bearer token cannot be reused.
func (c *Client) Logout() {
	c.session = nil
}

// ExecuteRequest performs an authenticated call against the FDFE endpoint and
// decodes the binary response envelope. A GET is issued unless a form body is
// supplied, in which case the call is a form-encoded POST. Transport failures
// propagate as-is; they are never retried here.
func (c *Client) ExecuteRequest(ctx context.Context, path string, query url.Values, form url.Values) (*pb.ResponseWrapper, error) {
	if c.session == nil {
		return nil, ErrNoSession
	}

	u := c.fdfeURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var req *http.Request
	var err error
	if form != nil {
		req, err = http.NewRequestWithContext(ctx, "POST", u, strings.NewReader(form.Encode()))
		if err != nil {
			return nil, errors.Wrap(err, "cannot create http request")
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	} else {
		req, err = http.NewRequestWithContext(ctx, "GET", u, nil)
		if err != nil {
			return nil, errors.Wrap(err, "cannot create http request")
		}
	}

	c.setFdfeHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fdfe %s request failed", path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	log.Debugf("fdfe %s: (%d) %d bytes", path, resp.StatusCode, len(body))

	wrapper := &pb.ResponseWrapper{}
	if err := proto.Unmarshal(body, wrapper); err != nil {
		return nil, errors.Wrap(err, "failed to decode response envelope")
	}

	return wrapper, nil
}

// setFdfeHeaders attaches the fixed header set the backend expects, including
// the bearer token and the hardcoded Finsky client identity.
func (c *Client) setFdfeHeaders(req *http.Request) {
	req.Header.Set("Accept-Language", c.conf.LangCode)
	req.Header.Set("Authorization", "GoogleLogin auth="+c.session.Token)
	req.Header.Set("X-DFE-Enabled-Experiments", enabledExperiments)
	req.Header.Set("X-DFE-Unsupported-Experiments", unsupportedExperiments)
	req.Header.Set("X-DFE-Device-Id", c.conf.AndroidID)
	req.Header.Set("X-DFE-Client-Id", clientID)
	req.Header.Set("X-DFE-SmallestScreenWidthDp", "320")
	req.Header.Set("X-DFE-Filter-Level", "3")
	req.Header.Set("User-Agent", finskyAgent)
}

// payload inspects a response envelope for the success variant. When only the
// error variant is present the display message (if any) is logged and nil is
// returned so metadata callers can degrade to "no data".
func payload(wrapper *pb.ResponseWrapper, what string) *pb.Payload {
	if p := wrapper.GetPayload(); p != nil {
		return p
	}
	if msg := wrapper.GetCommands().GetDisplayErrorMessage(); msg != "" {
		log.Errorf("error when %s: %s", what, msg)
	} else {
		log.Errorf("there was an error when %s", what)
	}
	return nil
}
