package questions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ErrPoolUnavailable reports that the question sheet could not be
// fetched or parsed at all.
var ErrPoolUnavailable = errors.New("question pool unavailable")

// Filter narrows a fetch to one normalized unit. The zero value fetches
// everything.
type Filter struct {
	Unit string
}

// Source supplies question rows. Implementations must wrap transport
// and parse failures in ErrPoolUnavailable; an empty result is not an
// error at this level (callers decide whether the pool is big enough).
type Source interface {
	Fetch(ctx context.Context, f Filter) ([]Row, error)
}

// SheetSource fetches a published TSV sheet over HTTP and caches the
// parsed rows for the session. The original game re-downloads the sheet
// per gym attempt; one fetch per process is enough for a local client.
type SheetSource struct {
	URL    string
	Client *http.Client
	TTL    time.Duration

	cached    []Row
	fetchedAt time.Time
}

// NewSheetSource creates a SheetSource with a 30s request timeout and a
// 5 minute cache.
func NewSheetSource(url string) *SheetSource {
	return &SheetSource{
		URL:    url,
		Client: &http.Client{Timeout: 30 * time.Second},
		TTL:    5 * time.Minute,
	}
}

// Fetch downloads and parses the sheet, applying the unit filter.
func (s *SheetSource) Fetch(ctx context.Context, f Filter) ([]Row, error) {
	rows, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return applyFilter(rows, f), nil
}

func (s *SheetSource) load(ctx context.Context) ([]Row, error) {
	if s.cached != nil && time.Since(s.fetchedAt) < s.TTL {
		return s.cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPoolUnavailable, err)
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPoolUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d from sheet", ErrPoolUnavailable, resp.StatusCode)
	}

	rows, err := ParseTSV(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: parse: %v", ErrPoolUnavailable, err)
	}
	s.cached = rows
	s.fetchedAt = time.Now()
	return rows, nil
}

// FileSource reads a TSV sheet from disk, mainly for offline play and
// the pool command.
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(ctx context.Context, f Filter) ([]Row, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPoolUnavailable, err)
	}
	defer func() { _ = file.Close() }()

	rows, err := ParseTSV(file)
	if err != nil {
		return nil, fmt.Errorf("%w: parse: %v", ErrPoolUnavailable, err)
	}
	return applyFilter(rows, f), nil
}

func applyFilter(rows []Row, f Filter) []Row {
	if f.Unit == "" {
		return rows
	}
	var out []Row
	for _, r := range rows {
		if r.UnitNorm() == f.Unit {
			out = append(out, r)
		}
	}
	return out
}
