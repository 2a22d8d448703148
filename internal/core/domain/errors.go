package domain

import "go.trai.ch/zerr"

var (
	// ErrUnclassifiableFile is returned when a discovered file is neither a header,
	// a link artifact nor a device-specs fragment.
	ErrUnclassifiableFile = zerr.New("unclassifiable package file")

	// ErrMalformedTemplate is returned when the board template lacks a key the synthesizer writes.
	ErrMalformedTemplate = zerr.New("malformed board template")

	// ErrAmbiguousSpecsDestination is returned when the toolchain does not hold exactly one
	// compiler version directory for device-specs fragments.
	ErrAmbiguousSpecsDestination = zerr.New("ambiguous device-specs destination")

	// ErrInvalidTemplatePath is returned when a template key path is empty or crosses a non-object value.
	ErrInvalidTemplatePath = zerr.New("invalid template key path")

	// ErrTemplateParseFailed is returned when the board template cannot be parsed.
	ErrTemplateParseFailed = zerr.New("failed to parse board template")

	// ErrTemplateReadFailed is returned when the board template file cannot be read.
	ErrTemplateReadFailed = zerr.New("failed to read board template")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrNoSources is returned when there is neither an extracted pack directory nor a pack to fetch.
	ErrNoSources = zerr.New("no pack sources configured")

	// ErrSourceNotFound is returned when an extracted pack directory does not exist.
	ErrSourceNotFound = zerr.New("pack source directory not found")

	// ErrToolchainNotFound is returned when the toolchain root is missing and cannot be provisioned.
	ErrToolchainNotFound = zerr.New("toolchain not found")

	// ErrToolchainProvisionFailed is returned when the toolchain install command fails.
	ErrToolchainProvisionFailed = zerr.New("failed to provision toolchain")

	// ErrInstallFailed is returned when a file cannot be copied into the toolchain.
	ErrInstallFailed = zerr.New("failed to install file")

	// ErrBoardWriteFailed is returned when a board descriptor cannot be written.
	ErrBoardWriteFailed = zerr.New("failed to write board descriptor")

	// ErrStoreReadFailed is returned when the install state cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read install state")

	// ErrStoreUnmarshalFailed is returned when the install state cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal install state")

	// ErrStoreMarshalFailed is returned when the install state cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal install state")

	// ErrStoreWriteFailed is returned when the install state cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write install state")

	// ErrIndexRequestFailed is returned when the pack index cannot be retrieved.
	ErrIndexRequestFailed = zerr.New("failed to retrieve pack index")

	// ErrIndexParseFailed is returned when the pack index is not valid XML.
	ErrIndexParseFailed = zerr.New("failed to parse pack index")

	// ErrPackNotFound is returned when a pack name is missing from the index.
	ErrPackNotFound = zerr.New("pack not found in index")

	// ErrDownloadFailed is returned when a pack archive cannot be downloaded.
	ErrDownloadFailed = zerr.New("failed to download pack")

	// ErrExtractFailed is returned when a pack archive cannot be extracted.
	ErrExtractFailed = zerr.New("failed to extract pack")

	// ErrUnsafeArchivePath is returned when an archive entry would escape the extraction directory.
	ErrUnsafeArchivePath = zerr.New("archive entry escapes extraction directory")
)
