package playstore

import (
	"context"
	"net/url"
	"strconv"

	"github.com/apex/log"

	"github.com/playfetch/playfetch/pkg/playstore/pb"
)

// AppDetails returns the details for a package. A nil result with a nil error
// means the backend answered with its error variant; transport failures are
// returned as errors.
func (c *Client) AppDetails(ctx context.Context, packageName string) (*pb.DetailsResponse, error) {
	query := url.Values{}
	query.Set("doc", packageName)

	wrapper, err := c.ExecuteRequest(ctx, "details", query, nil)
	if err != nil {
		return nil, err
	}

	p := payload(wrapper, "requesting details for app '"+packageName+"'")
	if p == nil {
		return nil, nil
	}

	return p.GetDetailsResponse(), nil
}

// Search looks up apps matching the query and returns the first result
// document, or nil when the search came back empty or failed.
func (c *Client) Search(ctx context.Context, query string) (*pb.DocV2, error) {
	params := url.Values{}
	params.Set("c", "3")
	params.Set("q", query)

	wrapper, err := c.ExecuteRequest(ctx, "search", params, nil)
	if err != nil {
		return nil, err
	}

	p := payload(wrapper, "searching for '"+query+"'")
	if p == nil {
		return nil, nil
	}

	search := p.GetSearchResponse()
	docs := search.GetDoc()
	if len(docs) == 0 {
		log.Warnf("there were no results when searching for '%s', try using '%s'",
			search.GetOriginalQuery(), search.GetSuggestedQuery())
		return nil, nil
	}

	return docs[0], nil
}

// BrowseCategories returns the store's app categories, or the subcategories of
// the given category when one is supplied.
func (c *Client) BrowseCategories(ctx context.Context, category string) (*pb.BrowseResponse, error) {
	query := url.Values{}
	query.Set("c", "3")
	if category != "" {
		query.Set("cat", category)
	}

	wrapper, err := c.ExecuteRequest(ctx, "browse", query, nil)
	if err != nil {
		return nil, err
	}

	p := payload(wrapper, "browsing categories")
	if p == nil {
		return nil, nil
	}

	return p.GetBrowseResponse(), nil
}

// ListByCategory lists apps in a category. Without a subcategory the response
// enumerates the valid subcategories instead. numOfResults <= 0 leaves the
// result count to the server.
func (c *Client) ListByCategory(ctx context.Context, category, subcategory string, numOfResults int) (*pb.ListResponse, error) {
	query := url.Values{}
	query.Set("c", "3")
	query.Set("cat", category)
	if subcategory != "" {
		query.Set("ctr", subcategory)
	}
	if numOfResults > 0 {
		query.Set("n", strconv.Itoa(numOfResults))
	}

	wrapper, err := c.ExecuteRequest(ctx, "list", query, nil)
	if err != nil {
		return nil, err
	}

	p := payload(wrapper, "listing apps by category")
	if p == nil {
		return nil, nil
	}

	return p.GetListResponse(), nil
}
