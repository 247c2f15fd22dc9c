package config

import "os"

// DATE_FORMAT is the wire format for booking, package and attendance dates.
// Dates in this format compare correctly as plain strings.
const DATE_FORMAT = "2006-01-02"

func DataBucket() string {
	return os.Getenv("S3_DATA_BUCKET")
}

func DataPrefix() string {
	DATA_PREFIX := os.Getenv("S3_DATA_PREFIX")
	if DATA_PREFIX == "" {
		DATA_PREFIX = "collections"
	}
	return DATA_PREFIX
}

func AssetsBucket() string {
	return os.Getenv("S3_ASSETS_BUCKET")
}

func Currency() string {
	currency := os.Getenv("STUDIO_CURRENCY")
	if currency == "" {
		currency = "inr"
	}
	return currency
}
