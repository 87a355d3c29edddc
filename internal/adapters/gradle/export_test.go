// export_test.go exports private functions for white-box testing.
package gradle

// Exported archive helpers for testing.
var (
	Unzip                  = unzip
	ErrIllegalArchiveEntry = errIllegalArchiveEntry
)
