package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrInvalidChainID is returned when a chain ID is invalid
	ErrInvalidChainID = errors.New("invalid chain ID")

	// ErrUnknownChain is returned when a chain is not in the registry
	ErrUnknownChain = errors.New("unknown chain")

	// ErrUnsupportedChain is returned for chains where Safe addresses cannot
	// be derived with CREATE2
	ErrUnsupportedChain = errors.New("unsupported chain")

	// ErrMissingParameter is returned when a required parameter has no
	// value and no chain default
	ErrMissingParameter = errors.New("missing parameter")

	// ErrInvalidDeployment is returned when a deployments file entry is
	// invalid
	ErrInvalidDeployment = errors.New("invalid deployment")

	// ErrAborted is returned when the user declines to continue
	ErrAborted = errors.New("aborted")
)

// UnknownChainError reports a chain name that is not in the registry.
type UnknownChainError struct {
	Name        string
	Suggestions []string
}

func (e UnknownChainError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown chain %q", e.Name)
	}
	return fmt.Sprintf("unknown chain %q, did you mean: %s?", e.Name, strings.Join(e.Suggestions, ", "))
}

func (e UnknownChainError) Unwrap() error {
	return ErrUnknownChain
}

// MissingParameterError reports the flags needed when a chain has no
// default deployment.
type MissingParameterError struct {
	Chain      ChainID
	Parameters []string
}

func (e MissingParameterError) Error() string {
	return fmt.Sprintf("chain %s has no known Safe deployment, specify %s", e.Chain, strings.Join(e.Parameters, ", "))
}

func (e MissingParameterError) Unwrap() error {
	return ErrMissingParameter
}
