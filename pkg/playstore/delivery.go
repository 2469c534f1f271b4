package playstore

import (
	"context"
	"net/url"
	"strconv"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/playfetch/playfetch/pkg/playstore/pb"
)

// AppMetadata is the subset of app details a download operation needs.
type AppMetadata struct {
	PackageName string
	Title       string
	Creator     string
	VersionCode int32
	OfferType   int32
}

// ExpansionFile describes an additional .obb asset tied to an app version.
type ExpansionFile struct {
	Main        bool // main vs patch
	VersionCode int32
	Size        int64
	URL         string
}

// SplitPackage describes one split apk of a multi-package app.
type SplitPackage struct {
	Name string
	Size int64
	URL  string
}

// DeliveryData is the outcome of a successful delivery negotiation. It is
// consumed immediately by the download engine and never persisted.
type DeliveryData struct {
	DownloadURL    string
	Size           int64
	CookieName     string
	CookieValue    string
	ExpansionFiles []ExpansionFile
	Splits         []SplitPackage
}

// ResolveApp fetches the app details and extracts the metadata needed to
// negotiate a delivery. A missing details payload is fatal for the download.
func (c *Client) ResolveApp(ctx context.Context, packageName string) (*AppMetadata, error) {
	details, err := c.AppDetails(ctx, packageName)
	if err != nil {
		return nil, err
	}
	if details.GetDocV2() == nil {
		return nil, errors.Wrapf(ErrAppNotFound, "package '%s'", packageName)
	}

	doc := details.GetDocV2()
	meta := &AppMetadata{
		PackageName: packageName,
		Title:       doc.GetTitle(),
		Creator:     doc.GetCreator(),
		VersionCode: doc.GetDetails().GetAppDetails().GetVersionCode(),
	}
	if offers := doc.GetOffer(); len(offers) > 0 {
		meta.OfferType = offers[0].GetOfferType()
	}

	return meta, nil
}

// NegotiateDelivery decides how to obtain a download URL for the app: apps the
// account is already entitled to are delivered directly, everything else goes
// through a (free) purchase first. The resolved delivery data always carries
// the auth cookie required to fetch the artifact bytes.
func (c *Client) NegotiateDelivery(ctx context.Context, app *AppMetadata) (*DeliveryData, error) {
	query := url.Values{}
	query.Set("ot", strconv.Itoa(int(app.OfferType)))
	query.Set("doc", app.PackageName)
	query.Set("vc", strconv.Itoa(int(app.VersionCode)))

	wrapper, err := c.ExecuteRequest(ctx, "delivery", query, nil)
	if err != nil {
		return nil, err
	}

	// The app already belongs to the account.
	if add := wrapper.GetPayload().GetDeliveryResponse().GetAppDeliveryData(); add.GetDownloadUrl() != "" {
		log.WithField("package", app.PackageName).Debug("app is already entitled")
		return deliveryDataFrom(add, app)
	}

	// The app has to be added to the account first.
	form := url.Values{}
	form.Set("ot", strconv.Itoa(int(app.OfferType)))
	form.Set("doc", app.PackageName)
	form.Set("vc", strconv.Itoa(int(app.VersionCode)))

	wrapper, err = c.ExecuteRequest(ctx, "purchase", nil, form)
	if err != nil {
		return nil, err
	}

	if wrapper.GetPayload() == nil {
		if msg := wrapper.GetCommands().GetDisplayErrorMessage(); msg != "" {
			log.Errorf("error for app '%s': %s", app.PackageName, msg)
		} else {
			log.Errorf("there was an error when requesting the download link for app '%s'", app.PackageName)
		}
		return nil, errors.Wrapf(ErrPurchaseFailed, "package '%s'", app.PackageName)
	}

	buy := wrapper.GetPayload().GetBuyResponse()
	add := buy.GetPurchaseStatusResponse().GetAppDeliveryData()

	if add.GetDownloadUrl() == "" {
		// Some backend versions answer a purchase with only a download token;
		// a single delivery retry carrying the token is best-effort.
		if token := buy.GetDownloadToken(); token != "" {
			log.WithField("package", app.PackageName).Debug("purchase returned a download token, retrying delivery")
			query.Set("dtok", token)
			retryWrapper, err := c.ExecuteRequest(ctx, "delivery", query, nil)
			if err != nil {
				return nil, err
			}
			if d := retryWrapper.GetPayload().GetDeliveryResponse().GetAppDeliveryData(); d.GetDownloadUrl() != "" {
				add = d
			}
		}
	}

	if add.GetDownloadUrl() == "" {
		return nil, errors.Wrapf(ErrPurchaseFailed, "package '%s'", app.PackageName)
	}

	return deliveryDataFrom(add, app)
}

func deliveryDataFrom(add *pb.AndroidAppDeliveryData, app *AppMetadata) (*DeliveryData, error) {
	cookies := add.GetDownloadAuthCookie()
	if len(cookies) == 0 {
		return nil, errors.Wrapf(ErrMissingCookie, "package '%s'", app.PackageName)
	}

	dd := &DeliveryData{
		DownloadURL: add.GetDownloadUrl(),
		Size:        add.GetDownloadSize(),
		CookieName:  cookies[0].GetName(),
		CookieValue: cookies[0].GetValue(),
	}

	for _, f := range add.GetAdditionalFile() {
		dd.ExpansionFiles = append(dd.ExpansionFiles, ExpansionFile{
			Main:        f.GetFileType() == 0,
			VersionCode: f.GetVersionCode(),
			Size:        f.GetSize(),
			URL:         f.GetDownloadUrl(),
		})
	}
	for _, s := range add.GetSplit() {
		dd.Splits = append(dd.Splits, SplitPackage{
			Name: s.GetName(),
			Size: s.GetDownloadSize(),
			URL:  s.GetDownloadUrl(),
		})
	}

	return dd, nil
}
