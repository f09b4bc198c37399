package locale_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/datekit/pkg/datetime"
	"github.com/dmitrymomot/datekit/pkg/locale"
)

func TestContext(t *testing.T) {
	t.Parallel()

	t.Run("stored locale", func(t *testing.T) {
		t.Parallel()
		de := datetime.DefaultLocale()
		de.Name = "de"
		ctx := locale.WithLocale(context.Background(), de)
		assert.Same(t, de, locale.FromContext(ctx))
	})

	t.Run("falls back to english", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "en", locale.FromContext(context.Background()).Name)
		assert.Equal(t, "en", locale.FromContext(locale.WithLocale(context.Background(), nil)).Name)
	})
}

func TestCanonical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"de", "de"},
		{"de-de", "de-DE"},
		{"EN_us", "en-US"},
		{"pt-br", "pt-BR"},
		{"zh-hant-tw", "zh-Hant-TW"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := locale.Canonical(tt.in)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		_, err := locale.Canonical("")
		assert.ErrorIs(t, err, locale.ErrInvalidTag)
		_, err = locale.Canonical("123-!!")
		assert.ErrorIs(t, err, locale.ErrInvalidTag)
	})
}
