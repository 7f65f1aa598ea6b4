package nbstat

import (
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestErrors(t *testing.T) {
	t.Run("wrapped errors keep their code", func(t *testing.T) {
		err := fmt.Errorf("%w: unexpected record type 0x0020", ErrProtocol)

		assert.ErrorIs(t, err, ErrProtocol)
		assert.Equal(t, CodeProtocol, CodeOf(err))
	})

	t.Run("codes of foreign errors", func(t *testing.T) {
		assert.Equal(t, CodeOK, CodeOf(nil))
		assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
	})

	t.Run("descriptions", func(t *testing.T) {
		assert.Equal(t, "request expired", Describe(CodeTimeout))
		assert.Equal(t, "request expired", ErrTimeout.Error())
		assert.Equal(t, "truncation flag was set in response", Describe(CodeTruncated))
		assert.Equal(t, "Unknown error", Describe(Code(0x999)))
	})

	t.Run("codes render as hex", func(t *testing.T) {
		assert.Equal(t, "0x0107", CodeTimeout.String())
		assert.Equal(t, "0x0200", CodeInternal.String())
	})
}
