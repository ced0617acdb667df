package config

const (
	delimiter = "."

	LogPrefix = "log"
	LogLevel  = LogPrefix + delimiter + "level"
	LogFormat = LogPrefix + delimiter + "format"

	Examples = "examples"

	SignatureCachePrefix = "signature_cache"
	SignatureCacheSize   = SignatureCachePrefix + delimiter + "size"
)
