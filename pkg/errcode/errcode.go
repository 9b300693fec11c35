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
	DBTableCheckError
	DBEmptyDatabaseError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaDropError

	// Stream errors
	StreamOpenError
	StreamGzipError
	StreamScanError
	StreamNoFilesError

	// Copy errors
	CopyFailedError
	CopyFallbackError

	// State errors
	StateReadError
	StateWriteError
	StateCorruptError

	// Ingest errors
	IngestDirError
	IngestFileError
	IngestParserError
	IngestAllParsersFailedError
	IngestCancelledError
	IngestStateDirtyError

	// Error-sink errors
	SinkOpenError
	SinkWriteError
)
