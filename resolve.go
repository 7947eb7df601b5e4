package sgd

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/genomekit/sgd/internal/transport"
	"github.com/genomekit/sgd/pkg/constants"
	"github.com/genomekit/sgd/pkg/errors"
	"github.com/genomekit/sgd/pkg/logging"
)

// searchResponse is the shape of the search endpoint's JSON body.
type searchResponse struct {
	Total   int            `json:"total"`
	Results []searchResult `json:"results"`
}

type searchResult struct {
	DisplayName string `json:"display_name"`
	Category    string `json:"category"`
	Href        string `json:"href"`
}

// resolveGene resolves an uppercased gene name to its canonical locus
// identifier via the search endpoint. Exactly one exact-name match in the
// locus category is required; zero matches and ambiguous matches both
// fail with an InvalidGeneError.
func resolveGene(ctx context.Context, name string, o *options) (string, error) {
	searchURL := fmt.Sprintf("%s/%s?q=%s&category=%s",
		o.root, constants.SearchPath, url.QueryEscape(name), ClassLocus)

	logging.Debug().
		Str("gene", name).
		Str("url", searchURL).
		Msg("Resolving gene name")

	resp, err := o.transport().Get(ctx, searchURL)
	if err != nil {
		return "", err
	}

	var search searchResponse
	if err := transport.DecodeResponse(resp, searchURL, &search); err != nil {
		return "", err
	}

	matches := exactMatches(name, search.Results)
	switch len(matches) {
	case 1:
		// fall through to href extraction below
	case 0:
		return "", errors.NewInvalidGeneError(name, 0, "no matching gene found")
	default:
		return "", errors.NewInvalidGeneError(name, len(matches),
			fmt.Sprintf("gene name is ambiguous (%d matches)", len(matches)))
	}

	locusID := strings.ToUpper(path.Base(matches[0].Href))
	if locusID == "" || locusID == "." || locusID == "/" {
		return "", errors.NewInvalidGeneError(name, 1, "search result carries no locus identifier")
	}

	logging.Debug().
		Str("gene", name).
		Str("locus_id", locusID).
		Msg("Gene name resolved")

	return locusID, nil
}

// exactMatches filters search results to case-insensitive exact
// display-name matches in the locus category.
func exactMatches(name string, results []searchResult) []searchResult {
	var matches []searchResult
	for _, result := range results {
		if result.Category != "" && result.Category != string(ClassLocus) {
			continue
		}
		if strings.EqualFold(result.DisplayName, name) {
			matches = append(matches, result)
		}
	}
	return matches
}
