package docshift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestD(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		var d D
		require.Len(t, d, 0)
		require.Nil(t, d) // zero value of D is nil slice
	})

	t.Run("initialized document is not nil", func(t *testing.T) {
		d := D{}
		require.Len(t, d, 0)
		require.NotNil(t, d) // D{} creates a non-nil empty slice
	})

	t.Run("multiple entry document preserves order", func(t *testing.T) {
		d := D{
			{Key: "first", Value: 1},
			{Key: "second", Value: 2},
			{Key: "third", Value: 3},
		}
		require.Len(t, d, 3)
		require.Equal(t, "first", d[0].Key)
		require.Equal(t, "second", d[1].Key)
		require.Equal(t, "third", d[2].Key)
	})

	t.Run("document can contain any value types", func(t *testing.T) {
		nested := D{{Key: "nested", Value: "value"}}
		arr := A{1, 2, 3}
		d := D{
			{Key: "string", Value: "text"},
			{Key: "number", Value: 42},
			{Key: "boolean", Value: true},
			{Key: "null", Value: nil},
			{Key: "document", Value: nested},
			{Key: "array", Value: arr},
		}
		require.Len(t, d, 6)
		require.Equal(t, "text", d[0].Value)
		require.Equal(t, 42, d[1].Value)
		require.Equal(t, true, d[2].Value)
		require.Equal(t, nil, d[3].Value)
		require.Equal(t, nested, d[4].Value)
		require.Equal(t, arr, d[5].Value)
	})

	t.Run("numeric-looking keys stay mapping keys", func(t *testing.T) {
		d := D{{Key: "0", Value: "a"}, {Key: "1", Value: "b"}}
		require.False(t, isScalar(d))
		require.True(t, isContainer(d))
		_, isSeq := asSequence(d)
		require.False(t, isSeq) // a D is never reinterpreted as a sequence
	})
}

func TestA(t *testing.T) {
	t.Run("empty array", func(t *testing.T) {
		var a A
		require.Len(t, a, 0)
		require.Nil(t, a) // zero value of A is nil slice
	})

	t.Run("multiple element array preserves order", func(t *testing.T) {
		a := A{"first", "second", "third"}
		require.Len(t, a, 3)
		require.Equal(t, "first", a[0])
		require.Equal(t, "second", a[1])
		require.Equal(t, "third", a[2])
	})

	t.Run("plain []any normalizes to sequence", func(t *testing.T) {
		raw := []any{1, 2}
		seq, ok := asSequence(raw)
		require.True(t, ok)
		require.Equal(t, A{1, 2}, seq)
	})
}

func TestScalarString(t *testing.T) {
	t.Run("booleans encode as 1 and 0", func(t *testing.T) {
		s, err := scalarString(true)
		require.NoError(t, err)
		require.Equal(t, "1", s)

		s, err = scalarString(false)
		require.NoError(t, err)
		require.Equal(t, "0", s)
	})

	t.Run("nil encodes empty", func(t *testing.T) {
		s, err := scalarString(nil)
		require.NoError(t, err)
		require.Equal(t, "", s)
	})

	t.Run("integral float has no decimal point", func(t *testing.T) {
		s, err := scalarString(float64(3))
		require.NoError(t, err)
		require.Equal(t, "3", s)
	})

	t.Run("fractional float keeps shortest form", func(t *testing.T) {
		s, err := scalarString(1.5)
		require.NoError(t, err)
		require.Equal(t, "1.5", s)
	})

	t.Run("large float is not exponent formatted", func(t *testing.T) {
		s, err := scalarString(float64(123456789))
		require.NoError(t, err)
		require.Equal(t, "123456789", s)
	})

	t.Run("time encodes as rfc3339", func(t *testing.T) {
		ts := time.Date(2023, 10, 1, 12, 0, 0, 0, time.UTC)
		s, err := scalarString(ts)
		require.NoError(t, err)
		require.Equal(t, "2023-10-01T12:00:00Z", s)
	})

	t.Run("duration encodes with unit suffix", func(t *testing.T) {
		s, err := scalarString(90 * time.Second)
		require.NoError(t, err)
		require.Equal(t, "1m30s", s)
	})

	t.Run("invalid utf-8 is an encoding error", func(t *testing.T) {
		_, err := scalarString("\xff\xfe")
		require.ErrorIs(t, err, ErrEncoding)
	})

	t.Run("unsupported kind is malformed", func(t *testing.T) {
		_, err := scalarString(struct{}{})
		require.ErrorIs(t, err, ErrMalformedDocument)
	})
}
