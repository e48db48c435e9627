package provider

import (
	"context"
)

// ObjectProvider is the interface of an object download service
type ObjectProvider interface {
	// Download the object identified by bucket and key to the given local file
	Download(ctx context.Context, bucket, key, localFile string) error

	// Name of the provider
	Name() string
}
