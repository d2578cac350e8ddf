package datasync

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DocumentSource reads the document that embeds the question literal.
type DocumentSource interface {
	Read(ctx context.Context) (string, error)
}

// NewDocumentSource returns an HTTPSource for http(s) URLs and a FileSource otherwise.
func NewDocumentSource(location string, timeout time.Duration) DocumentSource {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location, timeout)
	}
	return NewFileSource(location)
}

// FileSource reads a document from the local filesystem.
type FileSource struct {
	path string
}

// NewFileSource creates a new FileSource.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Read(_ context.Context) (string, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", s.path, err)
	}
	return string(content), nil
}

// HTTPSource downloads a document over HTTP.
type HTTPSource struct {
	client *resty.Client
	url    string
}

// NewHTTPSource creates a new HTTPSource. A zero timeout means no timeout.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond)
	return &HTTPSource{client: client, url: url}
}

func (s *HTTPSource) Read(ctx context.Context) (string, error) {
	res, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/html, */*").
		Get(s.url)
	if err != nil {
		return "", fmt.Errorf("client.R.Get(%s) > %w", s.url, err)
	}
	if res.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("fetch %s: status code: %d", s.url, res.StatusCode())
	}
	return string(res.Body()), nil
}
