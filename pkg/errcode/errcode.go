package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	WriteConfigError
	ReadFileError

	// Logging errors
	OpenLogFileError

	// API client errors
	APINetworkError
	APIStatusError
	APIDecodeError
	APIEncodeError

	// Form errors
	FormValidationError
	FormBusyError

	// Catalog errors
	RecordNotFoundError

	// View errors
	UnknownActionError

	// Seed errors
	SeedFileError
	SeedCreateError

	// Web errors
	WebTemplateError
	WebServerError
)
