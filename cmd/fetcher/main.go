package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/captainceramic/himawari-nc/common"
	"github.com/captainceramic/himawari-nc/fetcher"
	"github.com/captainceramic/himawari-nc/interface/provider"
	"github.com/captainceramic/himawari-nc/service/log"
	"go.uber.org/zap"
)

type config struct {
	Date    string
	Bands   []int
	DataDir string
	Bucket  string

	AwsAccessKeyID     string
	AwsSecretAccessKey string
	WithHTTPFallback   bool
}

func newAppConfig() (*config, error) {
	config := config{}

	flag.StringVar(&config.Date, "date", "", "acquisition slot to fetch, truncated to the minute (e.g. '2024-04-02T16:00')")
	bands := flag.String("bands", "", "comma-separated list of bands to fetch (default: 1,2,3,4,5,6)")
	flag.StringVar(&config.DataDir, "data-dir", "data", "local directory to store the downloaded files")
	flag.StringVar(&config.Bucket, "bucket", "", "bucket overriding the one derived from the acquisition date (optional). For tests and mirrors.")

	// Providers
	flag.StringVar(&config.AwsAccessKeyID, "aws-access-key", "", "AWS access key id (optional). The NOAA buckets are public and read anonymously by default.")
	flag.StringVar(&config.AwsSecretAccessKey, "aws-secret-key", "", "AWS secret access key (optional)")
	flag.BoolVar(&config.WithHTTPFallback, "with-http-fallback", false, "also download from the buckets' public HTTPS endpoint when the S3 API fails")

	flag.Parse()

	if config.Date == "" {
		return nil, fmt.Errorf("missing date config flag")
	}
	if config.DataDir == "" {
		return nil, fmt.Errorf("missing data-dir config flag")
	}
	if *bands != "" {
		for _, b := range strings.Split(*bands, ",") {
			band, err := strconv.Atoi(strings.TrimSpace(b))
			if err != nil {
				return nil, fmt.Errorf("malformed bands config: %w", err)
			}
			config.Bands = append(config.Bands, band)
		}
	}
	return &config, nil
}

func main() {
	ctx := context.Background()
	err := run(ctx)
	if err != nil {
		log.Fatal("error", zap.Error(err))
	}
}

func run(ctx context.Context) error {
	config, err := newAppConfig()
	if err != nil {
		return err
	}

	date, err := dateparse.ParseIn(config.Date, time.UTC)
	if err != nil {
		return fmt.Errorf("parse date %s: %w", config.Date, err)
	}
	slot := common.Slot{
		Time:   date.UTC().Truncate(time.Minute),
		Bands:  config.Bands,
		Bucket: config.Bucket,
	}

	// Load object providers
	var objectProviders []provider.ObjectProvider
	var providerNames []string
	s3Provider, err := provider.NewS3Provider(ctx, config.AwsAccessKeyID, config.AwsSecretAccessKey)
	if err != nil {
		return fmt.Errorf("provider.NewS3Provider: %w", err)
	}
	objectProviders = append(objectProviders, s3Provider)
	providerNames = append(providerNames, "S3")
	if config.WithHTTPFallback {
		objectProviders = append(objectProviders, provider.NewHTTPProvider())
		providerNames = append(providerNames, "HTTP")
	}

	log.Logger(ctx).Debug("fetcher starts downloading from " + strings.Join(providerNames, ", ") + " storing into " + config.DataDir)

	ctx = log.With(ctx, "slot", slot.Time.Format("2006-01-02T15:04"))
	if err := fetcher.ProcessSlot(ctx, objectProviders, slot, config.DataDir); err != nil {
		return err
	}
	log.Logger(ctx).Sugar().Infof("successfully fetched slot %s", slot.Time.Format("2006-01-02T15:04"))
	return nil
}
