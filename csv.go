package docshift

import (
	"fmt"
	"strings"
)

// CSVOption configures a single ToCSV call.
type CSVOption func(*csvEncoder)

// WithNewline sets the record terminator. The default is "\n".
func WithNewline(s string) CSVOption {
	return func(enc *csvEncoder) { enc.newline = s }
}

// WithDelimiter sets the field delimiter. The default is ','.
func WithDelimiter(r rune) CSVOption {
	return func(enc *csvEncoder) { enc.delimiter = r }
}

// WithEnclosure sets the character every field is wrapped in. The default
// is '"'.
func WithEnclosure(r rune) CSVOption {
	return func(enc *csvEncoder) { enc.enclosure = r }
}

// WithEscape sets the string that escapes enclosure characters occurring
// inside a field value. Enclosures are never doubled. The default is "\\".
func WithEscape(s string) CSVOption {
	return func(enc *csvEncoder) { enc.escape = s }
}

// ToCSV flattens a batch of documents into one rectangular delimited table.
// Each row is flattened to dot paths (see Flatten); the header is the union
// of every row's paths in first-seen order. A row missing a path another row
// populated renders an empty field there, so every line, header included,
// carries exactly one field per column.
//
// The batch is a sequence of row documents. As a convenience a bare mapping,
// or a sequence whose first element is a scalar, is treated as a single row,
// so one entry point serves both "one record" and "many records" callers.
func ToCSV(rows any, opts ...CSVOption) (string, error) {
	enc := &csvEncoder{
		newline:   "\n",
		delimiter: ',',
		enclosure: '"',
		escape:    "\\",
	}
	for _, opt := range opts {
		opt(enc)
	}

	batch, err := normalizeBatch(rows)
	if err != nil {
		return "", err
	}
	if len(batch) == 0 {
		return "", nil
	}

	// Union of every row's paths, in first-seen order across the batch.
	var schema []string
	index := make(map[string]struct{})
	flats := make([]map[string]any, 0, len(batch))
	for i, row := range batch {
		flat, err := Flatten(row)
		if err != nil {
			return "", fmt.Errorf("csv: row %d: %w", i, err)
		}
		m := make(map[string]any, len(flat))
		for _, e := range flat {
			if _, ok := index[e.Key]; !ok {
				index[e.Key] = struct{}{}
				schema = append(schema, e.Key)
			}
			m[e.Key] = e.Value
		}
		flats = append(flats, m)
	}

	var sb strings.Builder
	if err := enc.writeLine(&sb, schema, func(col string) (any, bool) {
		return col, true
	}); err != nil {
		return "", err
	}
	for i, m := range flats {
		if err := enc.writeLine(&sb, schema, func(col string) (any, bool) {
			v, ok := m[col]
			return v, ok
		}); err != nil {
			return "", fmt.Errorf("csv: row %d: %w", i, err)
		}
	}
	return strings.TrimSuffix(sb.String(), enc.newline), nil
}

type csvEncoder struct {
	newline   string
	delimiter rune
	enclosure rune
	escape    string
}

// writeLine emits one record: every field escaped, wrapped in the enclosure
// character, joined by the delimiter and terminated by the newline. Columns
// absent from the row render as empty fields.
func (enc *csvEncoder) writeLine(sb *strings.Builder, schema []string, value func(col string) (any, bool)) error {
	sep := string(enc.enclosure) + string(enc.delimiter) + string(enc.enclosure)
	fields := make([]string, len(schema))
	for i, col := range schema {
		v, ok := value(col)
		if !ok {
			continue
		}
		s, err := scalarString(v)
		if err != nil {
			return fmt.Errorf("column %q: %w", col, err)
		}
		fields[i] = enc.escapeField(s)
	}
	sb.WriteRune(enc.enclosure)
	sb.WriteString(strings.Join(fields, sep))
	sb.WriteRune(enc.enclosure)
	sb.WriteString(enc.newline)
	return nil
}

// escapeField prefixes enclosure characters inside s with the escape string.
// Enclosures are escaped, not doubled.
func (enc *csvEncoder) escapeField(s string) string {
	return strings.ReplaceAll(s, string(enc.enclosure), enc.escape+string(enc.enclosure))
}

// normalizeBatch coerces the caller's input into a sequence of row
// documents.
func normalizeBatch(rows any) (A, error) {
	if d, ok := rows.(D); ok {
		return A{d}, nil
	}
	seq, ok := asSequence(rows)
	if !ok {
		return nil, fmt.Errorf("csv: rows must be a mapping or a sequence, got %T: %w", rows, ErrMalformedDocument)
	}
	if len(seq) > 0 && !isContainer(seq[0]) {
		// A sequence of scalars is one row, not a batch of scalar rows.
		return A{seq}, nil
	}
	return seq, nil
}
