package storage

import (
	"fmt"
)

// NewCloudflareR2Storage adapts the S3 backend to Cloudflare R2, which is
// S3-compatible but pins the region to "auto" and requires path-style
// addressing against the account endpoint.
func NewCloudflareR2Storage(cfg Config) (*S3Storage, error) {
	// R2 endpoint format: https://<account_id>.r2.cloudflarestorage.com
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("endpoint is required for Cloudflare R2")
	}

	cfg.Region = "auto"
	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("https://%s.r2.dev", cfg.Bucket)
	}
	// R2 has no ACL support; public access is configured on the bucket.
	cfg.PublicRead = false

	return NewS3Storage(cfg)
}
