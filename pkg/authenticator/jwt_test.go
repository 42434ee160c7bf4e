package authenticator_test

import (
	"testing"
	"time"

	"github.com/chirp-lab/backend/pkg/authenticator"
	"github.com/stretchr/testify/require"
)

func TestJWT(t *testing.T) {
	engine := authenticator.NewTokenEngine("secret")
	token, err := engine.Generate(time.Minute, "abc")
	require.Nil(t, err)

	var msg string
	err = engine.Verify(token, &msg)
	require.NoError(t, err)
	require.Equal(t, "abc", msg)
}

func TestJWTExpiration(t *testing.T) {
	engine := authenticator.NewTokenEngine("secret")
	token, err := engine.Generate(-time.Minute, "abc")
	require.Nil(t, err)

	var msg string
	err = engine.Verify(token, &msg)
	require.Error(t, err)
}

func TestJWTStructObject(t *testing.T) {
	type payload struct {
		ID      string `json:"id"`
		Account string `json:"account"`
	}

	engine := authenticator.NewTokenEngine("secret")
	token, err := engine.Generate(time.Minute, payload{ID: "u1", Account: "alice"})
	require.NoError(t, err)

	var got payload
	require.NoError(t, engine.Verify(token, &got))
	require.Equal(t, "u1", got.ID)
	require.Equal(t, "alice", got.Account)
}
