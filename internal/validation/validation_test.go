package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laciaimperator/Online-store/internal/domain"
)

func TestTypes(t *testing.T) {
	schema := Schema{
		"name":  String,
		"price": Number,
		"stock": Integer,
	}

	t.Run("valid values pass", func(t *testing.T) {
		values := map[string]interface{}{
			"name":  "Keyboard",
			"price": 499.99,
			"stock": 10,
		}
		require.NoError(t, Types(values, schema))
	})

	t.Run("number accepts int and float", func(t *testing.T) {
		require.NoError(t, Types(map[string]interface{}{"price": 75}, schema))
		require.NoError(t, Types(map[string]interface{}{"price": 75.5}, schema))
	})

	t.Run("integer accepts integral float", func(t *testing.T) {
		// JSON decoding hands numbers over as float64.
		require.NoError(t, Types(map[string]interface{}{"stock": float64(10)}, schema))
	})

	t.Run("integer rejects fractional float", func(t *testing.T) {
		err := Types(map[string]interface{}{"stock": 2.5}, schema)
		assert.True(t, domain.IsCode(err, domain.CodeTypeMismatch))
	})

	t.Run("string rejects number", func(t *testing.T) {
		err := Types(map[string]interface{}{"name": 42}, schema)
		assert.True(t, domain.IsCode(err, domain.CodeTypeMismatch))
	})

	t.Run("number rejects string", func(t *testing.T) {
		err := Types(map[string]interface{}{"price": "free"}, schema)
		assert.True(t, domain.IsCode(err, domain.CodeTypeMismatch))
	})

	t.Run("missing fields are skipped", func(t *testing.T) {
		require.NoError(t, Types(map[string]interface{}{}, schema))
	})
}

func TestNonEmpty(t *testing.T) {
	t.Run("trimmed-empty string rejected", func(t *testing.T) {
		err := NonEmpty(map[string]interface{}{"name": "   "})
		assert.True(t, domain.IsCode(err, domain.CodeEmptyField))
	})

	t.Run("empty string rejected", func(t *testing.T) {
		err := NonEmpty(map[string]interface{}{"name": ""})
		assert.True(t, domain.IsCode(err, domain.CodeEmptyField))
	})

	t.Run("numeric values exempt", func(t *testing.T) {
		require.NoError(t, NonEmpty(map[string]interface{}{"price": 0, "stock": 0}))
	})

	t.Run("non-blank strings pass", func(t *testing.T) {
		require.NoError(t, NonEmpty(map[string]interface{}{"name": "Mouse"}))
	})
}

func TestEmail(t *testing.T) {
	valid := []string{
		"user@domain.com",
		"anna@email.com",
		"a@b.c",
		// Only the first "@" and first "." delimit parsing.
		"user@domain.com.",
		"user@sub.domain.com",
		// The segment between the first and second "@" is the domain; the
		// trailing junk never takes part in the checks.
		"user@domain.com@junk",
	}
	for _, email := range valid {
		assert.NoError(t, Email(email), email)
	}

	invalid := []string{
		"userdomain.com",
		"@domain.com",
		"user@.com",
		"user@domain.",
		"user@domaincom",
		"user@",
		"user@domain..com",
		// Domain is cut at the second "@", so the "." beyond it doesn't
		// rescue these.
		"a@b@c.com",
		"user@@domain.com",
	}
	for _, email := range invalid {
		err := Email(email)
		assert.True(t, domain.IsCode(err, domain.CodeInvalidEmail), email)
	}
}

func TestPhone(t *testing.T) {
	valid := []string{
		"123-456-7890",
		"1234567",
		"56 7891-234)(",
		"(123) 456 7890",
	}
	for _, phone := range valid {
		assert.NoError(t, Phone(phone), phone)
	}

	t.Run("too few digits", func(t *testing.T) {
		err := Phone("123456")
		assert.True(t, domain.IsCode(err, domain.CodeInvalidPhone))
	})

	t.Run("disallowed character", func(t *testing.T) {
		err := Phone("12345/67")
		assert.True(t, domain.IsCode(err, domain.CodeInvalidPhone))
	})

	t.Run("letters rejected", func(t *testing.T) {
		err := Phone("123a4567")
		assert.True(t, domain.IsCode(err, domain.CodeInvalidPhone))
	})
}

func TestAsInt(t *testing.T) {
	n, ok := AsInt(float64(3))
	require.True(t, ok)
	assert.Equal(t, 3, n)

	_, ok = AsInt(3.5)
	assert.False(t, ok)

	_, ok = AsInt("3")
	assert.False(t, ok)
}
