package extraction

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/quizforge/backend/pkg/logger"
)

// Some sites refuse requests without a browser signature.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

const defaultFetchTimeout = 15 * time.Second

// Fetcher imports documents over HTTP and runs them through the HTML
// extraction path.
type Fetcher struct {
	httpClient *http.Client
	extractor  *Service
}

func NewFetcher(extractor *Service, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &Fetcher{
		httpClient: &http.Client{Timeout: timeout},
		extractor:  extractor,
	}
}

// FetchDocument downloads rawURL and extracts it as HTML. The response body
// is read against the extractor's size cap.
func (f *Fetcher) FetchDocument(ctx context.Context, rawURL string) (*Document, error) {
	logger.Info("Fetching document", zap.String("url", rawURL))

	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.extractor.maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) > f.extractor.maxFileSize {
		return nil, fmt.Errorf("%w: response exceeds limit of %d", ErrFileTooLarge, f.extractor.maxFileSize)
	}

	return f.extractor.Extract(body, FormatHTML)
}
