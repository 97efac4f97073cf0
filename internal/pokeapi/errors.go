package pokeapi

import "fmt"

// NotFoundError means the search key did not resolve to any species.
type NotFoundError struct {
	Key string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("pokemon %q not found", e.Key)
}

// NetworkError wraps a transport failure (DNS, refused connection, timeout).
type NetworkError struct {
	Err error
}

func (e NetworkError) Error() string {
	return fmt.Sprintf("network failure: %v", e.Err)
}

func (e NetworkError) Unwrap() error {
	return e.Err
}

// DataFormatError means the remote answered with a payload we cannot use.
type DataFormatError struct {
	Err error
}

func (e DataFormatError) Error() string {
	return fmt.Sprintf("unexpected response: %v", e.Err)
}

func (e DataFormatError) Unwrap() error {
	return e.Err
}
