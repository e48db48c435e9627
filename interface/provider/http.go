package provider

import (
	"context"
	"fmt"

	"github.com/cavaliercoder/grab"
)

const httpEndpointTemplate = "https://%s.s3.amazonaws.com/%s"

// HTTPProvider implements ObjectProvider over the buckets' public HTTPS endpoints
type HTTPProvider struct {
}

// Name implements ObjectProvider
func (p *HTTPProvider) Name() string {
	return "HTTP"
}

// NewHTTPProvider creates a new ObjectProvider downloading from the public
// HTTPS endpoint of the buckets
func NewHTTPProvider() *HTTPProvider {
	return &HTTPProvider{}
}

// Download implements ObjectProvider
func (p *HTTPProvider) Download(ctx context.Context, bucket, key, localFile string) error {
	url := fmt.Sprintf(httpEndpointTemplate, bucket, key)
	req, err := grab.NewRequest(localFile, url)
	if err != nil {
		return fmt.Errorf("HTTPProvider.NewRequest: %w", err)
	}
	req = req.WithContext(ctx)

	if err := download(ctx, req, "HTTP:"+key); err != nil {
		return fmt.Errorf("HTTPProvider.%w", err)
	}
	return nil
}
