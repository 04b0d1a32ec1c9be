package policies

import (
	"fmt"
	"strings"

	"logcatalog/internal/shared"
	"logcatalog/internal/types"
)

// detailedLevels require both a cause and an action on every message.
var detailedLevels = map[string]struct{}{
	types.LevelEmergency: {},
	types.LevelAlert:     {},
	types.LevelSevere:    {},
}

type MessagePolicy struct{}

func NewMessagePolicy() MessagePolicy {
	return MessagePolicy{}
}

// RequiresDetails reports whether messages at level must carry a cause and
// an action. The comparison is exact.
func (p MessagePolicy) RequiresDetails(level string) bool {
	_, ok := detailedLevels[level]
	return ok
}

// Check returns one problem per missing field of msg.
func (p MessagePolicy) Check(msg types.MessageRecord) []string {
	if !p.RequiresDetails(msg.Level) {
		return nil
	}
	var problems []string
	if shared.IsBlank(msg.Cause) {
		problems = append(problems, fmt.Sprintf("missing cause for message id '%s' for levels SEVERE and above", msg.ID))
	}
	if shared.IsBlank(msg.Action) {
		problems = append(problems, fmt.Sprintf("missing action for message id '%s' for levels SEVERE and above", msg.ID))
	}
	return problems
}

// Normalize applies the record defaults: level INFO when blank.
func (p MessagePolicy) Normalize(msg types.MessageRecord) types.MessageRecord {
	if strings.TrimSpace(msg.Level) == "" {
		msg.Level = types.LevelInfo
	}
	return msg
}
