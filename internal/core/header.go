package core

import (
	"strconv"
	"strings"
)

// YearMarker is replaced by the current year in header templates.
const YearMarker = "XX_YEAR_XX"

const DefaultHolder = "the logcatalog authors"

const defaultHeaderTemplate = `#
# Copyright (c) XX_YEAR_XX XX_HOLDER_XX. All rights reserved.
#
# This file is generated from log message declarations.
# Entries are merged on every build; edit the declarations, not this file.
#
`

// Header renders the banner written at the top of every catalog.
type Header struct {
	Holder   string
	Template string
}

// Render returns the banner for year. Every line is a comment and the
// banner ends with a blank line so it never binds to the first entry.
func (h Header) Render(year int) string {
	template := h.Template
	if strings.TrimSpace(template) == "" {
		template = defaultHeaderTemplate
	}
	holder := strings.TrimSpace(h.Holder)
	if holder == "" {
		holder = DefaultHolder
	}
	text := strings.Replace(template, YearMarker, strconv.Itoa(year), 1)
	text = strings.ReplaceAll(text, "XX_HOLDER_XX", holder)

	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(text, "\r\n"), "\n") {
		line = strings.TrimRight(line, "\r")
		if !strings.HasPrefix(line, "#") {
			line = "# " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}
