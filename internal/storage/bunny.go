// Package storage holds the Bunny Storage client used for video and image
// files. Uploaded objects are served from the pull zone; the database keeps
// only the resulting CDN URL.
package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

type BunnyClient struct {
	zone          string
	password      string
	region        string
	pullZoneURL   string
	uploadTimeout time.Duration
	deleteTimeout time.Duration
	http          *http.Client
}

func NewBunny(zone, password, region, pullZoneURL string, uploadTimeout, deleteTimeout time.Duration) *BunnyClient {
	if uploadTimeout <= 0 {
		uploadTimeout = 5 * time.Minute
	}
	if deleteTimeout <= 0 {
		deleteTimeout = time.Minute
	}
	return &BunnyClient{
		zone:          zone,
		password:      password,
		region:        region,
		pullZoneURL:   pullZoneURL,
		uploadTimeout: uploadTimeout,
		deleteTimeout: deleteTimeout,
		http:          &http.Client{},
	}
}

// Upload streams the file to storage and returns the public CDN URL.
func (b *BunnyClient) Upload(ctx context.Context, destPath string, body io.Reader) (string, error) {
	if b.password == "" {
		return "", fmt.Errorf("bunny storage password is not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, b.uploadTimeout)
	defer cancel()

	url := fmt.Sprintf("https://%s/%s/%s", b.region, b.zone, destPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("AccessKey", b.password)
	req.Header.Set("Content-Type", "application/octet-stream")

	res, err := b.http.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return "", fmt.Errorf("bunny upload failed: status=%d body=%s", res.StatusCode, msg)
	}

	return b.pullZoneURL + "/" + destPath, nil
}

// Delete removes an object from storage. A missing object is not an error;
// callers treat deletion as best-effort cleanup.
func (b *BunnyClient) Delete(ctx context.Context, filePath string) error {
	if b.password == "" {
		return fmt.Errorf("bunny storage password is not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, b.deleteTimeout)
	defer cancel()

	url := fmt.Sprintf("https://%s/%s/%s", b.region, b.zone, filePath)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("AccessKey", b.password)

	res, err := b.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusNoContent {
		log.Printf("bunny delete failed: path=%s status=%d", filePath, res.StatusCode)
		return fmt.Errorf("bunny delete failed: status=%d", res.StatusCode)
	}

	return nil
}
