package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	v := NewDefaultPasswordValidator()

	assert.True(t, v.ValidatePassword("pw123456"))
	assert.True(t, v.ValidatePassword("longenoughpassword"))
	assert.False(t, v.ValidatePassword("pw1"))
	assert.False(t, v.ValidatePassword("12345678"))
	assert.False(t, v.ValidatePassword(""))
}
