package domain

import "errors"

// Sentinel errors shared between layers.
var (
	// ErrEmptyJobDescription signals a job description that is empty after trimming.
	ErrEmptyJobDescription = errors.New("job description is empty")
	// ErrNoResumes signals an empty resume batch.
	ErrNoResumes = errors.New("no resumes to rank")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrExplanationProviderError signals an explanation provider failure.
	ErrExplanationProviderError = errors.New("explanation provider error")
	// ErrUnsupportedFileType signals a resume file with an unsupported extension.
	ErrUnsupportedFileType = errors.New("unsupported file type")
)
