package playstore

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/playfetch/playfetch/internal/download"
	"github.com/playfetch/playfetch/internal/utils"
)

// DownloadOptions controls what a Download call fetches and where it lands.
type DownloadOptions struct {
	OutDir         string
	Tag            string    // optional "[tag] " filename prefix
	ExpansionFiles bool      // also fetch the .obb expansion files
	SplitPackages  bool      // also fetch the split apks
	Progress       func(int) // 0-100 per artifact, monotonically increasing
}

// Download resolves, negotiates and fetches a package plus any requested
// secondary artifacts. The primary apk is fetched first, then expansion files,
// then split packages; each file is verified against the server-declared
// content length before the next one starts. Already verified artifacts stay
// on disk even when a later one fails.
func (c *Client) Download(ctx context.Context, packageName string, opts *DownloadOptions) error {
	if opts == nil {
		opts = &DownloadOptions{}
	}

	app, err := c.ResolveApp(ctx, packageName)
	if err != nil {
		return errors.Wrap(err, "can't proceed with the download")
	}

	dd, err := c.NegotiateDelivery(ctx, app)
	if err != nil {
		return err
	}

	outDir := opts.OutDir
	if outDir == "" {
		outDir = "."
	}

	eng := download.New(c.proxy, c.insecure)
	cookie := &http.Cookie{Name: dd.CookieName, Value: dd.CookieValue}

	log.WithFields(log.Fields{
		"package": app.PackageName,
		"version": app.VersionCode,
		"size":    humanize.Bytes(uint64(dd.Size)),
	}).Info("downloading apk")

	if err := eng.Do(ctx, &download.Download{
		URL:       dd.DownloadURL,
		DestName:  filepath.Join(outDir, addTag(app.PackageName+".apk", opts.Tag)),
		UserAgent: downloadAgent,
		Cookie:    cookie,
		Progress:  opts.Progress,
	}); err != nil {
		return errors.Wrapf(err, "package '%s'", app.PackageName)
	}

	if opts.ExpansionFiles {
		for _, obb := range dd.ExpansionFiles {
			kind := "patch"
			if obb.Main {
				kind = "main"
			}
			name := fmt.Sprintf("%s.%d.%s.obb", kind, obb.VersionCode, app.PackageName)
			utils.Indent(log.WithFields(log.Fields{
				"file": name,
				"size": humanize.Bytes(uint64(obb.Size)),
			}).Info, 2)("downloading expansion file")
			if err := eng.Do(ctx, &download.Download{
				URL:       obb.URL,
				DestName:  filepath.Join(outDir, addTag(name, opts.Tag)),
				UserAgent: downloadAgent,
				Cookie:    cookie,
				Progress:  opts.Progress,
			}); err != nil {
				return errors.Wrap(err, "unable to download the expansion file(s)")
			}
		}
	}

	if opts.SplitPackages {
		for _, split := range dd.Splits {
			name := fmt.Sprintf("%s.%d.%s.apk", split.Name, app.VersionCode, app.PackageName)
			utils.Indent(log.WithFields(log.Fields{
				"file": name,
				"size": humanize.Bytes(uint64(split.Size)),
			}).Info, 2)("downloading split apk")
			if err := eng.Do(ctx, &download.Download{
				URL:       split.URL,
				DestName:  filepath.Join(outDir, addTag(name, opts.Tag)),
				UserAgent: downloadAgent,
				Cookie:    cookie,
				Progress:  opts.Progress,
			}); err != nil {
				return errors.Wrap(err, "unable to download the split apk(s)")
			}
		}
	}

	return nil
}

func addTag(filename, tag string) string {
	tag = strings.Trim(tag, ` '"`)
	if tag == "" {
		return filename
	}
	return "[" + tag + "] " + filename
}
