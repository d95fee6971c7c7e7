package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/hotp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userModel "ambassade_backend/internals/features/users/user/model"
)

func TestHotpSecretIsPerUserAndDeterministic(t *testing.T) {
	u1 := &userModel.UserModel{ID: uuid.New()}
	u2 := &userModel.UserModel{ID: uuid.New()}

	s1 := hotpSecret(u1, "secret")
	assert.Equal(t, s1, hotpSecret(u1, "secret"))
	assert.NotEqual(t, s1, hotpSecret(u2, "secret"))
	assert.NotEqual(t, s1, hotpSecret(u1, "autre-secret"))
}

func TestGeneratedCodesAreFourDigits(t *testing.T) {
	u := &userModel.UserModel{ID: uuid.New()}
	secret := hotpSecret(u, "secret")

	for counter := uint64(1); counter <= 5; counter++ {
		code, err := hotp.GenerateCodeCustom(secret, counter, hotp.ValidateOpts{
			Digits:    otp.Digits(otpDigits),
			Algorithm: otp.AlgorithmSHA1,
		})
		require.NoError(t, err)
		assert.Len(t, code, 4)
		assert.Regexp(t, `^\d{4}$`, code)
	}
}

func TestHashOtpCode(t *testing.T) {
	h := hashOtpCode("1234")
	assert.Len(t, h, 64)
	assert.Equal(t, h, hashOtpCode("1234"))
	assert.NotEqual(t, h, hashOtpCode("1235"))
}
