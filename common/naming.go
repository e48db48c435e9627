package common

import (
	"fmt"
	"time"
)

// Naming convention of the Himawari AHI L1b full-disk (FLDK) products mirrored
// by NOAA on S3, as documented in
// https://www.data.jma.go.jp/mscweb/en/himawari89/cloud_service/fig/HimawariCloud_Data_Set_Information.pdf
const (
	// Himawari-8 data starts on the 7th of July 2015,
	// Himawari-9 data on the 28th of October 2022.
	Himawari8Bucket = "noaa-himawari8"
	Himawari9Bucket = "noaa-himawari9"

	// HS_<satellite>_<YYYYMMDD>_<HHmm>_<band>_FLDK_<resolution>_S0101.DAT.bz2
	// under AHI-L1b-FLDK/<YYYY>/<MM>/<DD>/<HHmm>/
	objectKeyTemplate = "AHI-L1b-FLDK/%[1]s/%[2]s/%[3]s/%[4]s%[5]s/" +
		"HS_%[6]s_%[1]s%[2]s%[3]s_%[4]s%[5]s_%[7]s_FLDK_%[8]s_S0101.DAT.bz2"
)

// Himawari9Cutover is the instant the full-disk service switched from
// Himawari-8 to Himawari-9. Slots strictly before it belong to Himawari-8.
var Himawari9Cutover = time.Date(2022, 10, 28, 0, 0, 0, 0, time.UTC)

// Info returns the naming fields of the full-disk file for the given
// acquisition slot and observation band.
// Bands 1-4 are distributed at 1km resolution (R10), the others at 2km (R20).
// No validation is performed: an out-of-domain band yields a malformed key.
func Info(slot time.Time, band int) map[string]string {
	resolution := "R10"
	if band > 4 {
		resolution = "R20"
	}

	satellite, bucket := "H09", Himawari9Bucket
	if slot.Before(Himawari9Cutover) {
		satellite, bucket = "H08", Himawari8Bucket
	}

	return map[string]string{
		"YEAR":       slot.Format("2006"),
		"MONTH":      slot.Format("01"),
		"DAY":        slot.Format("02"),
		"HOUR":       slot.Format("15"),
		"MINUTE":     slot.Format("04"),
		"SATELLITE":  satellite,
		"BAND":       fmt.Sprintf("B%02d", band),
		"RESOLUTION": resolution,
		"BUCKET":     bucket,
	}
}

// ObjectKey returns the bucket and the key of the full-disk file for the given
// acquisition slot and observation band.
func ObjectKey(slot time.Time, band int) (bucket, key string) {
	info := Info(slot, band)
	return info["BUCKET"], fmt.Sprintf(objectKeyTemplate,
		info["YEAR"], info["MONTH"], info["DAY"], info["HOUR"], info["MINUTE"],
		info["SATELLITE"], info["BAND"], info["RESOLUTION"])
}
