package local

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

type templateFetcher struct {
	s3API  s3iface.S3API
	client *http.Client
}

// FetchTemplate loads a template body from a URL. The s3 scheme and
// S3-hosted https URLs go through the S3 API, plain http(s) URLs through an
// HTTP client, file URLs straight from disk.
func (fetcher *templateFetcher) FetchTemplate(templateURL string) (string, error) {
	u, err := url.Parse(templateURL)
	if err != nil {
		return "", err
	}

	switch u.Scheme {
	case "s3":
		return fetcher.fetchTemplateS3(u.Host, strings.TrimPrefix(u.Path, "/"))
	case "http", "https":
		if bucket, key, ok := parseS3URL(u); ok {
			return fetcher.fetchTemplateS3(bucket, key)
		}
		return fetcher.fetchTemplateHTTP(u)
	case "file":
		body, err := os.ReadFile(u.Path)
		if err != nil {
			return "", err
		}
		return string(body), nil
	default:
		return "", fmt.Errorf("unknown scheme on URL '%s'", templateURL)
	}
}

func (fetcher *templateFetcher) fetchTemplateS3(bucket string, key string) (string, error) {
	log.Debugf("Fetching template from s3://%s/%s", bucket, key)
	resp, err := fetcher.s3API.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (fetcher *templateFetcher) fetchTemplateHTTP(u *url.URL) (string, error) {
	log.Debugf("Fetching template from '%s'", u)
	resp, err := fetcher.client.Get(u.String())
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("template fetch from '%s' returned status %d", u, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// parseS3URL recognizes path-style (s3.amazonaws.com/bucket/key) and
// virtual-hosted (bucket.s3.amazonaws.com/key) S3 https URLs
func parseS3URL(u *url.URL) (string, string, bool) {
	host := u.Host
	path := strings.TrimPrefix(u.Path, "/")
	if host == "s3.amazonaws.com" || (strings.HasPrefix(host, "s3.") && strings.HasSuffix(host, ".amazonaws.com")) {
		parts := strings.SplitN(path, "/", 2)
		if len(parts) == 2 {
			return parts[0], parts[1], true
		}
		return "", "", false
	}
	if idx := strings.Index(host, ".s3."); idx > 0 && strings.HasSuffix(host, ".amazonaws.com") {
		return host[:idx], path, true
	}
	return "", "", false
}
