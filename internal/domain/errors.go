package domain

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// EmbeddingUnavailableErr signals that the embedding provider could not produce
// a vector (quota exhausted, network failure). It is distinct from an empty
// search result so callers can advance the fallback chain instead of treating
// the failure as "no match".
type EmbeddingUnavailableErr struct {
	domainErr
	cause error
}

// NewEmbeddingUnavailableErr creates a new EmbeddingUnavailableErr wrapping the provider failure.
func NewEmbeddingUnavailableErr(message string, cause error) *EmbeddingUnavailableErr {
	return &EmbeddingUnavailableErr{
		domainErr: domainErr{message: message},
		cause:     cause,
	}
}

// Unwrap returns the underlying provider error.
func (e *EmbeddingUnavailableErr) Unwrap() error {
	return e.cause
}

// VectorStoreUnavailableErr signals that the vector store could not be queried.
// It is distinct from "no rows" so callers can fall back to in-memory search.
type VectorStoreUnavailableErr struct {
	domainErr
	cause error
}

// NewVectorStoreUnavailableErr creates a new VectorStoreUnavailableErr wrapping the store failure.
func NewVectorStoreUnavailableErr(message string, cause error) *VectorStoreUnavailableErr {
	return &VectorStoreUnavailableErr{
		domainErr: domainErr{message: message},
		cause:     cause,
	}
}

// Unwrap returns the underlying store error.
func (e *VectorStoreUnavailableErr) Unwrap() error {
	return e.cause
}

// ClassifierErr represents a failure inside an image classifier call.
// Validation maps it to a rejection with zero confidence; it is never surfaced raw.
type ClassifierErr struct {
	domainErr
	cause error
}

// NewClassifierErr creates a new ClassifierErr wrapping the classifier failure.
func NewClassifierErr(message string, cause error) *ClassifierErr {
	return &ClassifierErr{
		domainErr: domainErr{message: message},
		cause:     cause,
	}
}

// Unwrap returns the underlying classifier error.
func (e *ClassifierErr) Unwrap() error {
	return e.cause
}
