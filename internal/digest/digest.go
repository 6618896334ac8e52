// Package digest drives one collection run and renders the result.
package digest

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bryanjebyrd/pr-digest/internal/config"
	"github.com/bryanjebyrd/pr-digest/internal/model"
	"github.com/bryanjebyrd/pr-digest/internal/pullrequest"
)

// Source yields open pull requests into an accumulator. *pullrequest.Fetcher
// satisfies it.
type Source interface {
	FetchRepoPulls(ctx context.Context, owner, name string, acc *pullrequest.Accumulator) error
	FetchAuthorPulls(ctx context.Context, org, handle string, limit int, acc *pullrequest.Accumulator) error
}

// Pipeline runs the whole digest: fetch from every configured repository and
// author, merge by URL, split by ownership, render. One remote call is in
// flight at a time; caps are checked between calls, never mid-call.
type Pipeline struct {
	cfg *config.Config
	src Source
	log *zap.SugaredLogger
	now func() time.Time
}

func NewPipeline(cfg *config.Config, src Source, log *zap.SugaredLogger) *Pipeline {
	return &Pipeline{cfg: cfg, src: src, log: log, now: time.Now}
}

// Run produces the rendered digest text. Any fetch error aborts the run with
// no partial output.
func (p *Pipeline) Run(ctx context.Context) (string, error) {
	team, other, err := p.Sections(ctx)
	if err != nil {
		return "", err
	}
	return Render(p.now(), team, other, p.cfg.MaxPRsPerRepo), nil
}

// Sections collects and classifies without rendering, for callers that want
// the record sets themselves.
func (p *Pipeline) Sections(ctx context.Context) (team, other []model.PullRequest, err error) {
	records, owned, err := p.collect(ctx)
	if err != nil {
		return nil, nil, err
	}
	team, other = Classify(records, owned)
	p.log.Infow("collected pull requests", "total", len(records), "team", len(team), "other", len(other))
	return team, other, nil
}

// collect runs every configured repository listing, then every configured
// author search. Repository entries are registered in the ownership set even
// when the total cap stops their fetch, so classification stays aligned with
// the configured list rather than with how far fetching got.
func (p *Pipeline) collect(ctx context.Context) ([]model.PullRequest, map[string]bool, error) {
	acc := pullrequest.NewAccumulator(p.cfg.MaxTotalPRs)
	owned := make(map[string]bool, len(p.cfg.Repos))

	for _, entry := range p.cfg.Repos {
		owner, name, ok := pullrequest.SplitRepo(entry)
		if !ok {
			p.log.Warnw("skipping malformed repo entry", "entry", entry)
			continue
		}
		owned[owner+"/"+name] = true
		if acc.Full() {
			continue
		}
		if err := p.src.FetchRepoPulls(ctx, owner, name, acc); err != nil {
			return nil, nil, err
		}
	}

	for _, entry := range p.cfg.Users {
		handle := pullrequest.NormalizeHandle(entry)
		if handle == "" {
			p.log.Warnw("skipping empty user entry", "entry", entry)
			continue
		}
		if acc.Full() {
			break
		}
		if err := p.src.FetchAuthorPulls(ctx, p.cfg.Org, handle, p.cfg.MaxSearchResultsPerUser, acc); err != nil {
			return nil, nil, err
		}
	}

	return acc.Records(), owned, nil
}
