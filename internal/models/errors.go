package models

import "errors"

var (
	// ErrInvalidInput covers bad submission parameters and malformed script
	// payloads. Surfaced synchronously to the submitter; no job is created.
	ErrInvalidInput = errors.New("invalid input")
	// ErrComposition covers zero/negative durations and malformed analyses.
	ErrComposition = errors.New("composition failed")
	// ErrPersistence covers store failures while a job is in flight.
	ErrPersistence = errors.New("persistence failed")
	// ErrArtifactWrite covers artifact sink failures.
	ErrArtifactWrite = errors.New("artifact write failed")
	ErrJobNotFound   = errors.New("animation job not found")
)
