package playstore

import (
	"net/url"
	"regexp"

	"github.com/gocolly/colly/v2"
	"github.com/pkg/errors"

	"github.com/playfetch/playfetch/internal/utils"
)

var packageNameRegex = regexp.MustCompile(`store/apps/details\?id=([a-zA-Z0-9._]+)`)

// ListByDeveloper scrapes the package names published by a developer from the
// store's HTML listing page. Only the first page of results is returned (no
// pagination) and duplicates are removed.
func (c *Client) ListByDeveloper(developerName string) ([]string, error) {
	var packages []string

	co := colly.NewCollector(
		colly.UserAgent(downloadAgent),
		colly.MaxDepth(1),
	)

	co.OnResponse(func(r *colly.Response) {
		for _, match := range packageNameRegex.FindAllStringSubmatch(string(r.Body), -1) {
			packages = append(packages, match[1])
		}
	})

	pageURL := c.storeURL + "/store/apps/developer?id=" + url.QueryEscape(developerName)
	if err := co.Visit(pageURL); err != nil {
		return nil, errors.Wrapf(err, "failed to fetch developer page for '%s'", developerName)
	}

	return utils.Unique(packages), nil
}
