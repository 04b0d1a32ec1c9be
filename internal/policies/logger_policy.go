package policies

import (
	"fmt"
	"regexp"

	"logcatalog/internal/types"
)

var loggerFieldPattern = regexp.MustCompile(`^[A-Za-z][^|]*$`)

type LoggerPolicy struct{}

func NewLoggerPolicy() LoggerPolicy {
	return LoggerPolicy{}
}

func (p LoggerPolicy) ValidField(value string) bool {
	return loggerFieldPattern.MatchString(value)
}

// Check returns one problem per invalid field of logger.
func (p LoggerPolicy) Check(logger types.LoggerRecord) []string {
	var problems []string
	if !p.ValidField(logger.Subsystem) {
		problems = append(problems, fmt.Sprintf("subsystem name is not valid: %s", logger.Subsystem))
	}
	if !p.ValidField(logger.Description) {
		problems = append(problems, fmt.Sprintf("description for the logger is not valid: %s", logger.Description))
	}
	return problems
}

// Same reports whether two declarations of one logger agree.
func (p LoggerPolicy) Same(a types.LoggerRecord, b types.LoggerRecord) bool {
	return a.Description == b.Description &&
		a.Subsystem == b.Subsystem &&
		a.Published() == b.Published()
}
