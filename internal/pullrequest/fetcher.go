package pullrequest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cli/go-gh/v2/pkg/api"
	"go.uber.org/zap"

	"github.com/bryanjebyrd/pr-digest/internal/model"
)

// pageSize is the fixed page size for both the listing and the search endpoint.
const pageSize = 100

// Client performs GitHub REST requests. *api.RESTClient satisfies it.
type Client interface {
	DoWithContext(ctx context.Context, method string, path string, body io.Reader, response any) error
}

// Fetcher collects open pull requests from GitHub, one remote call at a time.
// Both acquisition strategies fold their results into the Accumulator they are
// handed and stop early once it reports full.
type Fetcher struct {
	client Client
	log    *zap.SugaredLogger
	now    func() time.Time
}

func NewFetcher(client Client, log *zap.SugaredLogger) *Fetcher {
	return &Fetcher{client: client, log: log, now: time.Now}
}

// pullSummary is one item of the repository listing endpoint. Only the fields
// needed to decide whether a detail fetch is worth it.
type pullSummary struct {
	Number int    `json:"number"`
	State  string `json:"state"`
}

// pullDetail is the single-PR detail response. The listing endpoint does not
// carry addition/deletion counts, so every record costs one detail fetch.
type pullDetail struct {
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	HTMLURL   string    `json:"html_url"`
	CreatedAt time.Time `json:"created_at"`
	Additions int       `json:"additions"`
	Deletions int       `json:"deletions"`
	Draft     bool      `json:"draft"`
	User      *struct {
		Login string `json:"login"`
	} `json:"user"`
}

type searchResult struct {
	Items []searchItem `json:"items"`
}

// searchItem is one search hit. Only its canonical resource URL is consumed;
// everything else is re-fetched through the detail endpoint.
type searchItem struct {
	URL string `json:"url"`
}

// FetchRepoPulls pages through the open pull requests of one repository in
// listing order and folds each one into acc. Summaries without a valid number
// are skipped silently.
func (f *Fetcher) FetchRepoPulls(ctx context.Context, owner, name string, acc *Accumulator) error {
	repo := owner + "/" + name
	for page := 1; ; page++ {
		if acc.Full() {
			return nil
		}
		path := fmt.Sprintf("repos/%s/%s/pulls?state=open&per_page=%d&page=%d", owner, name, pageSize, page)
		var summaries []pullSummary
		if err := f.client.DoWithContext(ctx, http.MethodGet, path, nil, &summaries); err != nil {
			return fmt.Errorf("listing pulls for %s: %w", repo, err)
		}
		f.log.Debugw("listed pulls", "repo", repo, "page", page, "items", len(summaries))
		for _, s := range summaries {
			if acc.Full() {
				return nil
			}
			if s.State != "open" || s.Number <= 0 {
				continue
			}
			if err := f.fetchDetail(ctx, owner, name, s.Number, acc); err != nil {
				return err
			}
		}
		if len(summaries) < pageSize {
			return nil
		}
	}
}

// FetchAuthorPulls searches the organization for open pull requests authored
// by handle and folds each hit into acc, considering at most limit raw search
// results. Hits whose resource URL does not match the issue grammar are
// skipped silently.
func (f *Fetcher) FetchAuthorPulls(ctx context.Context, org, handle string, limit int, acc *Accumulator) error {
	query := fmt.Sprintf("org:%s is:pr is:open author:%s", org, handle)
	seen := 0
	for page := 1; ; page++ {
		if acc.Full() || seen >= limit {
			return nil
		}
		path := fmt.Sprintf("search/issues?q=%s&per_page=%d&page=%d", url.QueryEscape(query), pageSize, page)
		var result searchResult
		if err := f.client.DoWithContext(ctx, http.MethodGet, path, nil, &result); err != nil {
			return fmt.Errorf("searching pulls by %s: %w", handle, err)
		}
		f.log.Debugw("searched pulls", "user", handle, "page", page, "items", len(result.Items))
		for _, item := range result.Items {
			if acc.Full() || seen >= limit {
				return nil
			}
			seen++
			owner, name, number, ok := ParseIssueURL(item.URL)
			if !ok {
				continue
			}
			if err := f.fetchDetail(ctx, owner, name, number, acc); err != nil {
				return err
			}
		}
		if len(result.Items) < pageSize {
			return nil
		}
	}
}

// fetchDetail retrieves one PR and adds it to acc. A not-found response means
// the PR closed between listing and detail fetch; the record is dropped and
// the run continues. Every other error aborts.
func (f *Fetcher) fetchDetail(ctx context.Context, owner, name string, number int, acc *Accumulator) error {
	path := fmt.Sprintf("repos/%s/%s/pulls/%d", owner, name, number)
	var detail pullDetail
	if err := f.client.DoWithContext(ctx, http.MethodGet, path, nil, &detail); err != nil {
		var httpErr *api.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			f.log.Debugw("pull request vanished, skipping", "repo", owner+"/"+name, "number", number)
			return nil
		}
		return fmt.Errorf("fetching %s/%s#%d: %w", owner, name, number, err)
	}
	acc.Add(f.record(owner+"/"+name, detail))
	return nil
}

// record resolves the detail response's optional fields once and freezes the
// result; nothing downstream re-checks them.
func (f *Fetcher) record(repo string, d pullDetail) model.PullRequest {
	author := "unknown"
	if d.User != nil && d.User.Login != "" {
		author = d.User.Login
	}
	return model.PullRequest{
		Repository: repo,
		Number:     d.Number,
		Title:      d.Title,
		Author:     author,
		URL:        d.HTMLURL,
		AgeDays:    int(f.now().UTC().Sub(d.CreatedAt).Hours() / 24),
		Additions:  d.Additions,
		Deletions:  d.Deletions,
		Draft:      d.Draft,
		CreatedAt:  d.CreatedAt,
	}
}
