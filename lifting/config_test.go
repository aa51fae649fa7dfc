// SPDX-License-Identifier: MIT

package lifting_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/topolift/feature"
	"github.com/katalvlaran/topolift/lifting"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantName *feature.Name
		preserve bool
		wantErr  error
	}{
		{name: "empty document", doc: ""},
		{name: "empty mapping", doc: "{}"},
		{name: "named strategy", doc: "feature_lifting: SumLifting", wantName: ptr(feature.Some("SumLifting"))},
		{name: "explicit null", doc: "feature_lifting: null", wantName: ptr(feature.None)},
		{name: "tilde null", doc: "feature_lifting: ~", wantName: ptr(feature.None)},
		{name: "preserve", doc: "preserve_edge_attr: true", preserve: true},
		{
			name:     "both",
			doc:      "feature_lifting: SumLifting\npreserve_edge_attr: true\n",
			wantName: ptr(feature.Some("SumLifting")),
			preserve: true,
		},
		{name: "unknown key", doc: "neighborhoods: [up]", wantErr: lifting.ErrUnknownOption},
		{name: "list name", doc: "feature_lifting: [a]", wantErr: lifting.ErrUnknownOption},
		{name: "not a mapping", doc: "- feature_lifting", wantErr: lifting.ErrUnknownOption},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := lifting.ParseConfig([]byte(tt.doc))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, cfg.FeatureLifting)
			assert.Equal(t, tt.preserve, cfg.PreserveEdgeAttr)
		})
	}
}

func TestParseConfig_BadBool(t *testing.T) {
	_, err := lifting.ParseConfig([]byte("preserve_edge_attr: maybe"))
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := lifting.LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, cfg.FeatureLifting)

	cfg, err = lifting.LoadConfig(strings.NewReader("feature_lifting: null\n"))
	require.NoError(t, err)
	require.NotNil(t, cfg.FeatureLifting)
	assert.True(t, cfg.FeatureLifting.IsNone())

	_, err = lifting.LoadConfig(strings.NewReader("extra: 1\n"))
	require.ErrorIs(t, err, lifting.ErrUnknownOption)
}

func TestConfig_MarshalRoundTrip(t *testing.T) {
	for _, cfg := range []lifting.Config{
		{},
		{PreserveEdgeAttr: true},
		lifting.Config{}.WithFeatureLifting(feature.None),
		lifting.Config{PreserveEdgeAttr: true}.WithFeatureLifting(feature.Some("SumLifting")),
	} {
		b, err := yaml.Marshal(cfg)
		require.NoError(t, err)
		back, err := lifting.ParseConfig(b)
		require.NoError(t, err, "document %q", b)
		assert.Equal(t, cfg, back)
	}
}

func ptr(n feature.Name) *feature.Name { return &n }
