package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableExistsCheckError
	DBDropTableError
	DBInsertError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError

	// Fetch errors (remote reference datasets)
	FetchUnavailableError
	FetchBadStatusError
	FetchDecodeError
	FetchCacheError

	// CSV errors
	CSVReadError
	CSVHeaderError
	CSVWriteError

	// Sources errors
	SourcesConfigError

	// Enrich errors
	EnrichInputError
	EnrichFaultError
	EnrichStoreError
)
