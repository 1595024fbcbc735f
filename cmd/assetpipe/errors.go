package main

import "errors"

// Sentinel errors for CLI commands.
var (
	ErrUsage            = errors.New("invalid usage")
	ErrUnknownContainer = errors.New("unknown container")
	ErrCheckFailed      = errors.New("dependency check failed")
	ErrManifestExists   = errors.New("manifest already exists")
	ErrWriteOutput      = errors.New("failed to write output")
)
