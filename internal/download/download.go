// Package download implements the streaming, size-verified artifact download
// engine used for apks, expansion files and split packages.
package download

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/pkg/errors"
	"golang.org/x/net/http/httpproxy"
)

// chunkSize is the read granularity; progress and cancellation are both
// handled per chunk.
const chunkSize = 1024

// ErrIncomplete is returned when the bytes written to disk do not match the
// server-declared content length. The partial file has already been removed.
var ErrIncomplete = errors.New("download incomplete")

// Download describes a single artifact fetch.
type Download struct {
	URL       string
	DestName  string
	UserAgent string
	Cookie    *http.Cookie
	Progress  func(int) // receives 0-100, duplicates suppressed
}

// Downloader fetches artifacts over a shared transport.
type Downloader struct {
	client *http.Client
}

// New creates a downloader.
func New(proxy string, insecure bool) *Downloader {
	return &Downloader{
		client: &http.Client{
			Transport: &http.Transport{
				Proxy:             GetProxy(proxy),
				TLSClientConfig:   &tls.Config{InsecureSkipVerify: insecure},
				ForceAttemptHTTP2: true,
			},
		},
	}
}

// GetProxy takes either an input string or reads the environment and returns a proxy function
func GetProxy(proxy string) func(*http.Request) (*url.URL, error) {
	if len(proxy) > 0 {
		proxyURL, err := url.Parse(proxy)
		if err != nil {
			log.WithError(err).Error("bad proxy url")
		}
		log.Debugf("proxy set to: %s", proxyURL)

		return http.ProxyURL(proxyURL)
	}

	conf := httpproxy.FromEnvironment()
	if len(conf.HTTPProxy) > 0 || len(conf.HTTPSProxy) > 0 {
		log.WithFields(log.Fields{
			"http_proxy":  conf.HTTPProxy,
			"https_proxy": conf.HTTPSProxy,
			"no_proxy":    conf.NoProxy,
		}).Debugf("proxy info from environment")
	}

	return http.ProxyFromEnvironment
}

// Do streams the artifact to disk in fixed-size chunks, emitting a strictly
// increasing 0-100 progress sequence, and verifies the on-disk size against
// the declared content length once the stream ends. On a mismatch (including
// an interrupted transfer or cancellation) the partial file is removed and
// the call fails; it is efficient because it writes as it downloads and never
// loads the whole file into memory.
func (d *Downloader) Do(ctx context.Context, dl *Download) error {
	req, err := http.NewRequestWithContext(ctx, "GET", dl.URL, nil)
	if err != nil {
		return errors.Wrap(err, "cannot create http request")
	}
	req.Header.Set("User-Agent", dl.UserAgent)
	// the declared content length must match the raw bytes
	req.Header.Set("Accept-Encoding", "identity")
	if dl.Cookie != nil {
		req.AddCookie(dl.Cookie)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to request artifact")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("server returned status: %s", resp.Status)
	}

	if resp.ContentLength < 0 {
		return errors.New("content length is not set")
	}
	expectedSize := resp.ContentLength

	dest, err := os.Create(dl.DestName)
	if err != nil {
		return errors.Wrapf(err, "cannot create %s", dl.DestName)
	}

	lastProgress := -1
	emit := func(p int) {
		if dl.Progress != nil && p > lastProgress {
			lastProgress = p
			dl.Progress(p)
		}
	}

	var written int64
	var interrupted error
	buf := make([]byte, chunkSize)

	for {
		if err := ctx.Err(); err != nil {
			interrupted = err
			break
		}
		n, rerr := resp.Body.Read(buf)
		if n > 0 {
			if _, werr := dest.Write(buf[:n]); werr != nil {
				dest.Close()
				return errors.Wrapf(werr, "cannot write %s", dl.DestName)
			}
			written += int64(n)
			emit(int(100 * written / expectedSize))
		}
		if rerr != nil {
			// An interrupted transfer is a soft failure here: the size check
			// below detects and reports the shortfall.
			if !errors.Is(rerr, io.EOF) {
				log.WithError(rerr).Debugf("transfer of %s interrupted", dl.DestName)
				interrupted = rerr
			}
			break
		}
	}

	if err := dest.Close(); err != nil {
		return errors.Wrapf(err, "cannot close %s", dl.DestName)
	}

	fi, err := os.Stat(dl.DestName)
	if err != nil {
		return errors.Wrapf(err, "cannot stat %s", dl.DestName)
	}

	if fi.Size() != expectedSize {
		log.Errorf("download of '%s' not completed, please retry, the file is corrupted and will be removed", dl.DestName)
		if err := os.Remove(dl.DestName); err != nil {
			log.Warnf("the corrupted file '%s' should be removed manually: %v", dl.DestName, err)
		}
		if interrupted != nil && (errors.Is(interrupted, context.Canceled) || errors.Is(interrupted, context.DeadlineExceeded)) {
			return interrupted
		}
		return errors.Wrapf(ErrIncomplete, "'%s'", filepath.Base(dl.DestName))
	}

	emit(100)

	return nil
}
