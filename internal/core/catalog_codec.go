package core

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// LoadStore reads a catalog into s. A comment line binds to the entry on
// the line directly below it; a comment followed by another comment or by
// a line without '=' is dropped and the following line is processed on
// its own. Blank and malformed lines are ignored. Entries read before a
// read error remain in s.
func LoadStore(r io.Reader, s *OrderedStore) error {
	lines := newLineReader(r)
	for {
		line, ok, err := lines.next()
		if err != nil {
			return readFailed(err)
		}
		if !ok {
			return nil
		}

		if strings.HasPrefix(line, "#") {
			following, ok, err := lines.read()
			if err != nil {
				return readFailed(err)
			}
			if !ok {
				return nil
			}
			if strings.HasPrefix(following, "#") {
				lines.pushBack(following)
				continue
			}
			pos := strings.IndexByte(following, '=')
			if pos == -1 {
				lines.pushBack(following)
				continue
			}
			key := putLine(s, following, pos)
			s.SetCommentLine(key, line)
			continue
		}

		if pos := strings.IndexByte(line, '='); pos != -1 {
			putLine(s, line, pos)
		}
	}
}

// WriteStore serializes s after header. It writes nothing and returns
// false when s is empty.
func WriteStore(w io.Writer, s *OrderedStore, header string) (bool, error) {
	if s.Len() == 0 {
		return false, nil
	}
	out := bufio.NewWriter(w)
	if _, err := out.WriteString(header); err != nil {
		return false, writeFailed(err)
	}
	for _, entry := range s.Entries() {
		if entry.Comment != "" {
			if _, err := out.WriteString(entry.Comment + "\n"); err != nil {
				return false, writeFailed(err)
			}
		}
		if _, err := out.WriteString(entry.Key + "=" + escapeValue(entry.Value) + "\n\n"); err != nil {
			return false, writeFailed(err)
		}
	}
	if err := out.Flush(); err != nil {
		return false, writeFailed(err)
	}
	return true, nil
}

func putLine(s *OrderedStore, line string, pos int) string {
	key := strings.TrimSpace(line[:pos])
	value := strings.TrimSpace(line[pos+1:])
	s.Put(key, value)
	return key
}

func escapeValue(value string) string {
	return strings.ReplaceAll(value, "\n", `\n`)
}

func readFailed(err error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("failed to read catalog").
		WithCause(err)
}

func writeFailed(err error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("failed to write catalog").
		WithCause(err)
}

// lineReader yields lines without their terminators and holds at most one
// pushed-back line.
type lineReader struct {
	reader     *bufio.Reader
	pending    string
	hasPending bool
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{reader: bufio.NewReader(r)}
}

func (l *lineReader) next() (string, bool, error) {
	if l.hasPending {
		l.hasPending = false
		return l.pending, true, nil
	}
	return l.read()
}

func (l *lineReader) read() (string, bool, error) {
	line, err := l.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, err
		}
		if line == "" {
			return "", false, nil
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true, nil
}

func (l *lineReader) pushBack(line string) {
	l.pending = line
	l.hasPending = true
}
