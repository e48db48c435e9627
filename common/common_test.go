package common

import (
	"testing"
	"time"
)

func checkKeyValue(t *testing.T, info map[string]string, key, value string) {
	if v, ok := info[key]; !ok {
		t.Errorf("key %s not found", key)
	} else if v != value {
		t.Errorf("expected %s for key %s, got %s", value, key, v)
	}
}

func TestInfo(t *testing.T) {
	info := Info(time.Date(2024, 4, 2, 16, 0, 0, 0, time.UTC), 4)
	checkKeyValue(t, info, "YEAR", "2024")
	checkKeyValue(t, info, "MONTH", "04")
	checkKeyValue(t, info, "DAY", "02")
	checkKeyValue(t, info, "HOUR", "16")
	checkKeyValue(t, info, "MINUTE", "00")
	checkKeyValue(t, info, "SATELLITE", "H09")
	checkKeyValue(t, info, "BAND", "B04")
	checkKeyValue(t, info, "RESOLUTION", "R10")
	checkKeyValue(t, info, "BUCKET", "noaa-himawari9")

	// last slot of the Himawari-8 era
	info = Info(time.Date(2022, 10, 27, 23, 59, 0, 0, time.UTC), 6)
	checkKeyValue(t, info, "SATELLITE", "H08")
	checkKeyValue(t, info, "RESOLUTION", "R20")
	checkKeyValue(t, info, "BUCKET", "noaa-himawari8")

	info = Info(Himawari9Cutover, 5)
	checkKeyValue(t, info, "SATELLITE", "H09")
	checkKeyValue(t, info, "RESOLUTION", "R20")
	checkKeyValue(t, info, "BUCKET", "noaa-himawari9")

	checkKeyValue(t, Info(time.Date(2019, 1, 8, 10, 44, 0, 0, time.UTC), 1), "BAND", "B01")
}

func TestObjectKey(t *testing.T) {
	bucket, key := ObjectKey(time.Date(2024, 4, 2, 16, 0, 0, 0, time.UTC), 4)
	if bucket != "noaa-himawari9" {
		t.Errorf("expected noaa-himawari9, got %s", bucket)
	}
	if expected := "AHI-L1b-FLDK/2024/04/02/1600/HS_H09_20240402_1600_B04_FLDK_R10_S0101.DAT.bz2"; key != expected {
		t.Errorf("expected %s, got %s", expected, key)
	}

	bucket, key = ObjectKey(time.Date(2022, 10, 27, 23, 59, 0, 0, time.UTC), 6)
	if bucket != "noaa-himawari8" {
		t.Errorf("expected noaa-himawari8, got %s", bucket)
	}
	if expected := "AHI-L1b-FLDK/2022/10/27/2359/HS_H08_20221027_2359_B06_FLDK_R20_S0101.DAT.bz2"; key != expected {
		t.Errorf("expected %s, got %s", expected, key)
	}
}
