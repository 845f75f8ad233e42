package config

// Specification of heading sequence checking.
// ENUM(strict, loose)
type HeadingPolicy int

// Specification of nesting underflow handling.
// ENUM(strict, clamp)
type NestingMode int

// Specification of missing asset handling.
// ENUM(fail, skip)
type MissingAssetMode int

// Specification of additional compression for generated documents.
// ENUM(none, gzip, brotli, all)
type Compression int

func (c Compression) Ext() string {
	switch c {
	case CompressionGzip:
		return ".gz"
	case CompressionBrotli:
		return ".br"
	default:
		return ""
	}
}
