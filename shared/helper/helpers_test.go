package helper_test

import (
	"testing"

	"github.com/on-the-ground/anyref/shared/helper"
	"github.com/stretchr/testify/assert"
)

func TestCast(t *testing.T) {
	v, err := helper.Cast[int](42)
	assert.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = helper.Cast[string](42)
	assert.ErrorIs(t, err, helper.ErrUnexpectedType)
	assert.Contains(t, err.Error(), "got int, want string")
}

func TestMustCast_Panics(t *testing.T) {
	assert.Panics(t, func() { helper.MustCast[float64]("x") })
	assert.Equal(t, "x", helper.MustCast[string]("x"))
}
