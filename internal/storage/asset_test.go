package storage

import (
	"fmt"
	"testing"

	"github.com/pixil98/go-testutil"
)

// mockAssetSpec implements ValidatingSpec with a controllable result
type mockAssetSpec struct {
	err error
}

func (s *mockAssetSpec) Validate() error {
	return s.err
}

func TestAsset_Validate(t *testing.T) {
	tests := map[string]struct {
		asset  Asset[*mockAssetSpec]
		expErr bool
	}{
		"valid": {
			asset: Asset[*mockAssetSpec]{
				Version:    1,
				Identifier: "default-theme",
				Spec:       &mockAssetSpec{},
			},
		},
		"missing version": {
			asset: Asset[*mockAssetSpec]{
				Identifier: "default-theme",
				Spec:       &mockAssetSpec{},
			},
			expErr: true,
		},
		"missing id": {
			asset: Asset[*mockAssetSpec]{
				Version: 1,
				Spec:    &mockAssetSpec{},
			},
			expErr: true,
		},
		"invalid id characters": {
			asset: Asset[*mockAssetSpec]{
				Version:    1,
				Identifier: "bad id!",
				Spec:       &mockAssetSpec{},
			},
			expErr: true,
		},
		"spec error propagates": {
			asset: Asset[*mockAssetSpec]{
				Version:    1,
				Identifier: "default-theme",
				Spec:       &mockAssetSpec{err: fmt.Errorf("bad spec")},
			},
			expErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.asset.Validate()
			testutil.AssertEqual(t, "error", err != nil, tt.expErr)
		})
	}
}

func TestAsset_Id(t *testing.T) {
	a := Asset[*mockAssetSpec]{Identifier: "spooky"}
	testutil.AssertEqual(t, "id", a.Id(), "spooky")
}
