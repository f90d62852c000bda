package docshift

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToCSV(t *testing.T) {
	t.Run("homogeneous batch", func(t *testing.T) {
		out, err := ToCSV(A{
			D{{Key: "a", Value: 1}},
			D{{Key: "a", Value: 2}},
		})
		require.NoError(t, err)
		require.Equal(t, "\"a\"\n\"1\"\n\"2\"", out)
	})

	t.Run("no trailing newline", func(t *testing.T) {
		out, err := ToCSV(A{D{{Key: "a", Value: 1}}})
		require.NoError(t, err)
		require.False(t, strings.HasSuffix(out, "\n"))
	})

	t.Run("gap filling", func(t *testing.T) {
		out, err := ToCSV(A{
			D{{Key: "a", Value: 1}, {Key: "b", Value: 2}},
			D{{Key: "a", Value: 3}},
		})
		require.NoError(t, err)
		require.Equal(t, "\"a\",\"b\"\n\"1\",\"2\"\n\"3\",\"\"", out)
	})

	t.Run("later row widens the schema", func(t *testing.T) {
		out, err := ToCSV(A{
			D{{Key: "a", Value: 1}},
			D{{Key: "a", Value: 2}, {Key: "b", Value: 3}},
		})
		require.NoError(t, err)
		require.Equal(t, "\"a\",\"b\"\n\"1\",\"\"\n\"2\",\"3\"", out)
	})

	t.Run("column order is first seen across rows", func(t *testing.T) {
		out, err := ToCSV(A{
			D{{Key: "z", Value: 1}, {Key: "m", Value: 2}},
			D{{Key: "a", Value: 3}},
		})
		require.NoError(t, err)
		require.Equal(t, `"z","m","a"`, strings.SplitN(out, "\n", 2)[0])
	})

	t.Run("every line has one field per column", func(t *testing.T) {
		out, err := ToCSV(A{
			D{{Key: "a", Value: 1}, {Key: "b", Value: D{{Key: "c", Value: 2}}}},
			D{{Key: "d", Value: A{3, 4}}},
			D{{Key: "a", Value: 5}, {Key: "d", Value: A{6}}},
		})
		require.NoError(t, err)

		lines := strings.Split(out, "\n")
		require.Len(t, lines, 4)
		want := len(strings.Split(lines[0], ","))
		for i, line := range lines {
			require.Len(t, strings.Split(line, ","), want, "line %d", i)
		}
	})

	t.Run("nested rows flatten to dot paths", func(t *testing.T) {
		out, err := ToCSV(A{
			D{{Key: "a", Value: D{{Key: "b", Value: 1}, {Key: "c", Value: A{2, 3}}}}},
		})
		require.NoError(t, err)
		require.Equal(t, "\"a.b\",\"a.c.0\",\"a.c.1\"\n\"1\",\"2\",\"3\"", out)
	})

	t.Run("bare mapping is a one-row batch", func(t *testing.T) {
		out, err := ToCSV(D{{Key: "a", Value: 1}})
		require.NoError(t, err)
		require.Equal(t, "\"a\"\n\"1\"", out)
	})

	t.Run("sequence of scalars is a one-row batch", func(t *testing.T) {
		out, err := ToCSV(A{1, 2})
		require.NoError(t, err)
		require.Equal(t, "\"0\",\"1\"\n\"1\",\"2\"", out)
	})

	t.Run("empty batch produces empty output", func(t *testing.T) {
		out, err := ToCSV(A{})
		require.NoError(t, err)
		require.Equal(t, "", out)
	})

	t.Run("booleans and nulls render as 1 0 and empty", func(t *testing.T) {
		out, err := ToCSV(A{D{
			{Key: "t", Value: true},
			{Key: "f", Value: false},
			{Key: "n", Value: nil},
		}})
		require.NoError(t, err)
		require.Equal(t, "\"t\",\"f\",\"n\"\n\"1\",\"0\",\"\"", out)
	})

	t.Run("enclosure characters are escaped not doubled", func(t *testing.T) {
		out, err := ToCSV(A{D{{Key: "a", Value: `say "hi"`}}})
		require.NoError(t, err)
		require.Equal(t, "\"a\"\n\"say \\\"hi\\\"\"", out)
	})

	t.Run("escaping round-trips", func(t *testing.T) {
		orig := `a "quoted" value`
		out, err := ToCSV(A{D{{Key: "a", Value: orig}}})
		require.NoError(t, err)

		line := strings.Split(out, "\n")[1]
		field := strings.TrimSuffix(strings.TrimPrefix(line, `"`), `"`)
		require.Equal(t, orig, strings.ReplaceAll(field, `\"`, `"`))
	})

	t.Run("custom newline delimiter enclosure and escape", func(t *testing.T) {
		out, err := ToCSV(A{
			D{{Key: "a", Value: "x'y"}, {Key: "b", Value: 2}},
		},
			WithNewline("\r\n"),
			WithDelimiter(';'),
			WithEnclosure('\''),
			WithEscape("#"),
		)
		require.NoError(t, err)
		require.Equal(t, "'a';'b'\r\n'x#'y';'2'", out)
	})

	t.Run("scalar input is rejected", func(t *testing.T) {
		_, err := ToCSV("nope")
		require.ErrorIs(t, err, ErrMalformedDocument)
	})

	t.Run("row error aborts the whole conversion", func(t *testing.T) {
		out, err := ToCSV(A{
			D{{Key: "a", Value: 1}},
			D{{Key: "bad", Value: make(chan int)}},
		})
		require.ErrorIs(t, err, ErrMalformedDocument)
		require.Empty(t, out)
	})
}
