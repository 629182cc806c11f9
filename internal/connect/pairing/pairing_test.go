package pairing_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/kontos/connect/internal/connect/pairing"
)

func TestReformat(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want string
	}{
		{
			name: "v2 pairing uri",
			uri:  "wc:abc123@2?relay-protocol=irn&symKey=deadbeef",
			want: "?wc=abc123@2&relay-protocol=irn&symKey=deadbeef",
		},
		{
			name: "single query parameter",
			uri:  "wc:topic@1?bridge=https%3A%2F%2Fbridge.example.org",
			want: "?wc=topic@1&bridge=https%3A%2F%2Fbridge.example.org",
		},
		{
			name: "second question mark stays in query",
			uri:  "wc:topic@1?a=1?b=2",
			want: "?wc=topic@1&a=1?b=2",
		},
		{
			name: "empty prefix remainder",
			uri:  "wc:?a=1",
			want: "?wc=&a=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pairing.Reformat(tt.uri)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReformatInvalidFormat(t *testing.T) {
	tests := []struct {
		name string
		uri  string
	}{
		{name: "empty string", uri: ""},
		{name: "https url", uri: "https://example.com"},
		{name: "missing query", uri: "wc:abc123@2"},
		{name: "empty query", uri: "wc:abc123@2?"},
		{name: "wrong scheme", uri: "ws:abc123@2?relay-protocol=irn"},
		{name: "uppercase scheme", uri: "WC:abc123@2?relay-protocol=irn"},
		{name: "question mark before scheme", uri: "?wc=abc123@2&relay-protocol=irn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pairing.Reformat(tt.uri)
			require.Error(t, err)
			assert.True(t, errors.Is(err, pairing.ErrInvalidFormat))
		})
	}
}

func TestReformatIsDeterministic(t *testing.T) {
	const uri = "wc:abc123@2?relay-protocol=irn&symKey=deadbeef"

	first, err := pairing.Reformat(uri)
	require.NoError(t, err)

	second, err := pairing.Reformat(uri)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTopic(t *testing.T) {
	topic, err := pairing.Topic("wc:abc123@2?relay-protocol=irn&symKey=deadbeef")
	require.NoError(t, err)
	assert.Equal(t, "abc123@2", topic)

	_, err = pairing.Topic("wc:abc123@2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pairing.ErrInvalidFormat))
}
