package policies

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"logcatalog/internal/types"
)

// FailurePolicy decides whether a claimed round succeeded given its
// non-fatal diagnostics.
type FailurePolicy string

const (
	// FailureLenient accepts every claimed round.
	FailureLenient FailurePolicy = "lenient"
	// FailureStrict rejects a round with any error diagnostic.
	FailureStrict FailurePolicy = "strict"
)

const DefaultFailurePolicy = FailureLenient

func ParseFailurePolicy(value string) (FailurePolicy, error) {
	switch FailurePolicy(strings.ToLower(strings.TrimSpace(value))) {
	case "", FailureLenient:
		return FailureLenient, nil
	case FailureStrict:
		return FailureStrict, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown failure policy: %s", value))
	}
}

func (p FailurePolicy) Succeeded(claimed bool, diagnostics types.Diagnostics) bool {
	if !claimed {
		return false
	}
	if p == FailureStrict {
		return !diagnostics.HasErrors()
	}
	return true
}
