package fetcher

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/captainceramic/himawari-nc/common"
	"github.com/captainceramic/himawari-nc/interface/provider"
	"github.com/captainceramic/himawari-nc/service"
	"github.com/captainceramic/himawari-nc/service/log"
	"github.com/google/uuid"
)

// ProcessSlot fetches the band files of a full-disk acquisition slot into dataDir.
// Bands are fetched one after another; a band whose file is already present in
// dataDir is skipped. The first error aborts the remaining bands.
func ProcessSlot(ctx context.Context, objectProviders []provider.ObjectProvider, slot common.Slot, dataDir string) error {
	if err := os.MkdirAll(dataDir, 0766); err != nil {
		return service.MakeTemporary(fmt.Errorf("make directory %s: %w", dataDir, err))
	}

	bands := slot.Bands
	if len(bands) == 0 {
		bands = common.DefaultBands
	}

	for _, band := range bands {
		if err := fetchBand(ctx, objectProviders, slot, band, dataDir); err != nil {
			return fmt.Errorf("ProcessSlot.%w", err)
		}
	}
	return nil
}

// fetchBand downloads one band file with the first successful objectProvider.
// The download lands on a temporary name and is renamed into place on success,
// so that an interrupted run never leaves a partial file at the destination.
func fetchBand(ctx context.Context, objectProviders []provider.ObjectProvider, slot common.Slot, band int, dataDir string) error {
	bucket, key := common.ObjectKey(slot.Time, band)
	if slot.Bucket != "" {
		bucket = slot.Bucket
	}

	localFile := filepath.Join(dataDir, path.Base(key))
	if _, err := os.Stat(localFile); err == nil {
		log.Logger(ctx).Sugar().Debugf("%s already downloaded", path.Base(key))
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("fetchBand.Stat: %w", err)
	}

	ctx = log.With(ctx, "object", path.Base(key))
	log.Logger(ctx).Sugar().Infof("downloading %s", key)

	tmpFile := localFile + "." + uuid.New().String() + ".part"
	var err error
	for _, objectProvider := range objectProviders {
		e := objectProvider.Download(ctx, bucket, key, tmpFile)
		if err = service.MergeErrors(false, err, e); err == nil {
			break
		}
		log.Logger(ctx).Sugar().Warnf("%v", e)
	}
	if err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("fetchBand.ObjectProviders.%w", err)
	}

	if err := os.Rename(tmpFile, localFile); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("fetchBand.Rename: %w", err)
	}
	return nil
}
