package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestWriteJSON_Indents(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteJSON(&buf, map[string]string{"chainId": "abc"}))
	assert.Equal(t, "{\n  \"chainId\": \"abc\"\n}\n", buf.String())
}

func TestWriteJSON_RawMessage(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteJSON(&buf, json.RawMessage(`{"a":1}`)))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	var buf bytes.Buffer

	err := WriteJSON(&buf, make(chan int))
	assert.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestWriteJSON_WriteError(t *testing.T) {
	err := WriteJSON(failingWriter{}, "x")
	assert.ErrorContains(t, err, "closed pipe")
}
