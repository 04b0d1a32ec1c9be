package core

import (
	"sort"
	"strings"

	"logcatalog/internal/types"
)

// JoinMessageDetails pairs every catalog message with its details entries,
// ordered by message id.
func JoinMessageDetails(catalog map[string]string, details map[string]string) []types.MessageDetails {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]types.MessageDetails, 0, len(ids))
	for _, id := range ids {
		out = append(out, types.MessageDetails{
			ID:      id,
			Message: catalog[id],
			Comment: details[id+detailCommentSuffix],
			Cause:   details[id+detailCauseSuffix],
			Action:  details[id+detailActionSuffix],
			Level:   details[id+detailLevelSuffix],
		})
	}
	return out
}

// ParseLoggerMetadata rebuilds logger summaries from a logger metadata
// catalog, ordered by logger name.
func ParseLoggerMetadata(entries map[string]string) []types.LoggerSummary {
	loggers := map[string]*types.LoggerSummary{}
	get := func(name string) *types.LoggerSummary {
		if summary, ok := loggers[name]; ok {
			return summary
		}
		summary := &types.LoggerSummary{Name: name}
		loggers[name] = summary
		return summary
	}
	for key, value := range entries {
		switch {
		case strings.HasSuffix(key, loggerDescriptionSuffix):
			get(strings.TrimSuffix(key, loggerDescriptionSuffix)).Description = value
		case strings.HasSuffix(key, loggerSubsystemSuffix):
			get(strings.TrimSuffix(key, loggerSubsystemSuffix)).Subsystem = value
		case strings.HasSuffix(key, loggerPublishSuffix):
			get(strings.TrimSuffix(key, loggerPublishSuffix)).Publish = strings.TrimSpace(value) == "true"
		}
	}
	names := make([]string, 0, len(loggers))
	for name := range loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]types.LoggerSummary, 0, len(names))
	for _, name := range names {
		out = append(out, *loggers[name])
	}
	return out
}
