package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus-tube/domain/model"
	"nexus-tube/usecase"
)

func TestDirectorGate(t *testing.T) {
	gate, err := usecase.NewDirectorGate("")
	require.NoError(t, err)

	assert.NoError(t, gate.Verify(usecase.DefaultDirectorPassword))
	assert.ErrorIs(t, gate.Verify("Nexus"), model.ErrUnauthorized)
	assert.ErrorIs(t, gate.Verify(""), model.ErrUnauthorized)

	custom, err := usecase.NewDirectorGate("s3cret")
	require.NoError(t, err)
	assert.NoError(t, custom.Verify("s3cret"))
	assert.Error(t, custom.Verify(usecase.DefaultDirectorPassword))
}
