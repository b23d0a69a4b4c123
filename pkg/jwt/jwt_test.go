package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse(t *testing.T) {
	token, err := Generate("secreto", "u-1", RoleAdmin, "almoxarifado-api", 5)
	require.NoError(t, err)

	userID, role, err := Parse("secreto", "almoxarifado-api", token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.Equal(t, RoleAdmin, role)
}

func TestParse_Rechaza(t *testing.T) {
	token, err := Generate("secreto", "u-1", RoleOperator, "almoxarifado-api", 5)
	require.NoError(t, err)

	_, _, err = Parse("otro", "", token)
	assert.Error(t, err, "firma incorrecta")

	_, _, err = Parse("secreto", "otro-emisor", token)
	assert.Error(t, err, "emisor distinto")

	expired, err := Generate("secreto", "u-1", RoleOperator, "", -1)
	require.NoError(t, err)
	_, _, err = Parse("secreto", "", expired)
	assert.Error(t, err, "expirado")
}

func TestGenerate_SinSecret(t *testing.T) {
	_, err := Generate("", "u-1", RoleAdmin, "", 5)
	assert.Error(t, err)
}
