package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	ConfigWriteError

	// Logging errors
	CreateLogFileError

	// Configuration errors
	ConfigNotFoundError
	ConfigParseError
	ConfigMissingFieldError
	ConfigInvalidValueError

	// Database errors
	DBConnectionError
	DBNotConnectedError

	// Catalog errors
	CatalogQueryError
	CatalogScanError
	CatalogUnknownKindError

	// Maintenance errors
	MaintenancePhaseError
)
