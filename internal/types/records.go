package types

// Source locates a declaration in the host's input for diagnostics.
type Source struct {
	File string `yaml:"file,omitempty" toml:"file,omitempty"`
	Line int    `yaml:"line,omitempty" toml:"line,omitempty"`
}

// Element describes the construct a declaration was attached to.
// Computed is set when the construct's value is not a compile-time
// string literal.
type Element struct {
	Name     string      `yaml:"name,omitempty" toml:"name,omitempty"`
	Kind     ElementKind `yaml:"kind,omitempty" toml:"kind,omitempty"`
	Computed bool        `yaml:"computed,omitempty" toml:"computed,omitempty"`
}

type BundleDeclaration struct {
	Name    string  `yaml:"name" toml:"name"`
	Element Element `yaml:"element,omitempty" toml:"element,omitempty"`
	Source  Source  `yaml:"source,omitempty" toml:"source,omitempty"`
}

type MessageRecord struct {
	ID      string  `yaml:"id" toml:"id"`
	Message string  `yaml:"message" toml:"message"`
	Comment string  `yaml:"comment,omitempty" toml:"comment,omitempty"`
	Cause   string  `yaml:"cause,omitempty" toml:"cause,omitempty"`
	Action  string  `yaml:"action,omitempty" toml:"action,omitempty"`
	Level   string  `yaml:"level,omitempty" toml:"level,omitempty"`
	Publish *bool   `yaml:"publish,omitempty" toml:"publish,omitempty"`
	Element Element `yaml:"element,omitempty" toml:"element,omitempty"`
	Source  Source  `yaml:"source,omitempty" toml:"source,omitempty"`
}

// Published reports the publish flag, which defaults to true.
func (m MessageRecord) Published() bool {
	return m.Publish == nil || *m.Publish
}

type LoggerRecord struct {
	Name        string  `yaml:"name" toml:"name"`
	Description string  `yaml:"description" toml:"description"`
	Subsystem   string  `yaml:"subsystem" toml:"subsystem"`
	Publish     *bool   `yaml:"publish,omitempty" toml:"publish,omitempty"`
	Element     Element `yaml:"element,omitempty" toml:"element,omitempty"`
	Source      Source  `yaml:"source,omitempty" toml:"source,omitempty"`
}

// Published reports the publish flag, which defaults to true.
func (l LoggerRecord) Published() bool {
	return l.Publish == nil || *l.Publish
}

// Declarations is the record stream of one round, in encounter order.
type Declarations struct {
	Bundles  []BundleDeclaration `yaml:"bundles,omitempty" toml:"bundles,omitempty"`
	Messages []MessageRecord     `yaml:"messages,omitempty" toml:"messages,omitempty"`
	Loggers  []LoggerRecord      `yaml:"loggers,omitempty" toml:"loggers,omitempty"`
}

// Append adds the records of other after the records already present.
func (d *Declarations) Append(other Declarations) {
	d.Bundles = append(d.Bundles, other.Bundles...)
	d.Messages = append(d.Messages, other.Messages...)
	d.Loggers = append(d.Loggers, other.Loggers...)
}

func (d Declarations) Empty() bool {
	return len(d.Bundles) == 0 && len(d.Messages) == 0 && len(d.Loggers) == 0
}
