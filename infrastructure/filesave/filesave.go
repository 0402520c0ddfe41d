package filesave

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"
)

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9 ._-]+`)

// fileName turns a video title into a safe file name, keeping the extension
// of the media url or defaulting to .mp4.
func fileName(title, mediaURL string) string {
	name := strings.TrimSpace(unsafeName.ReplaceAllString(title, "_"))
	name = strings.Trim(name, ". ")
	if name == "" {
		name = "video"
	}
	ext := ""
	if u, err := url.Parse(mediaURL); err == nil {
		ext = path.Ext(u.Path)
	}
	if ext == "" || len(ext) > 5 {
		ext = ".mp4"
	}
	if strings.HasSuffix(strings.ToLower(name), strings.ToLower(ext)) {
		return name
	}
	return name + ext
}

// fetch opens the media at url. The caller closes the body.
func fetch(ctx context.Context, client *http.Client, mediaURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: %s", mediaURL, resp.Status)
	}
	return resp, nil
}

func defaultHTTPClient() *http.Client {
	return &http.Client{Timeout: 2 * time.Minute}
}
