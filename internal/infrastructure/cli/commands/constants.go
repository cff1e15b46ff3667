package commands

// Error messages
const (
	ErrFetchServiceUnavailable  = "fetch service unavailable"
	ErrVerifyServiceUnavailable = "verify service unavailable"
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrHistoryStoreUnavailable  = "history store unavailable"
	ErrInvalidHistoryLimit      = "--limit must be >= 0"
	ErrCacheDisabled            = "index cache is disabled (cache.enabled: false)"
)

// Status messages
const (
	MsgNoHistoryRecorded = "No runs recorded yet."
	MsgHistoryCleared    = "History cleared."
	MsgCacheCleared      = "Index cache cleared."
	MsgAllVerified       = "All NLTK data successfully downloaded and verified!"
	MsgSomeUnverified    = "Some packages failed verification!"
	MsgLayerReady        = "All tests passed! Layer is ready for deployment."
	MsgLayerBroken       = "Some tests failed. Check the layer build."
	SuiteTitle           = "NLTK Lambda Layer Test Suite"
)
