package commands

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lsproj/internal/app"
	"go.trai.ch/lsproj/internal/core/domain"
)

var sampleCrates = app.ProjectCrates{
	Manifest: "/work/hello/cairo_project.toml",
	Crates: []domain.Crate{
		{
			Name: "core",
			Root: "/work/hello/corelib/src",
			Settings: domain.CrateSettings{
				Edition: "2024_07",
				Version: "2.8.0",
				ExperimentalFeatures: domain.ExperimentalFeatures{
					NegativeImpls: true,
					Coupons:       true,
				},
			},
		},
		{Name: "hello", Root: "/work/hello"},
		{
			Name: "vendored",
			Root: "/opt/cairo/vendored",
			Settings: domain.CrateSettings{
				Edition:              "2023_10",
				ExperimentalFeatures: domain.ExperimentalFeatures{Coupons: true},
			},
		},
	},
}

func TestRenderCrates(t *testing.T) {
	tests := []struct {
		name       string
		crates     app.ProjectCrates
		asJSON     bool
		goldenName string
	}{
		{name: "text", crates: sampleCrates, goldenName: "crates_text"},
		{name: "json", crates: sampleCrates, asJSON: true, goldenName: "crates_json"},
		{
			name:       "no crates",
			crates:     app.ProjectCrates{Manifest: "/work/empty/cairo_project.toml", Crates: []domain.Crate{}},
			goldenName: "crates_empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if tt.asJSON {
				require.NoError(t, renderCratesJSON(&buf, tt.crates))
			} else {
				require.NoError(t, renderCrates(&buf, tt.crates))
			}

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestRenderDigests(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderDigests(&buf, []app.FileDigest{
		{Path: "/work/a/Scarb.toml", Digest: domain.OKDigest(0xdeadbeef)},
		{Path: "/work/b/Scarb.lock", Digest: domain.FileNotFoundDigest()},
		{Path: "/work/c/cairo_project.toml", Digest: domain.IOErrorDigest(7)},
	}))

	g := goldie.New(t)
	g.Assert(t, "digests", buf.Bytes())
}

func TestRenderChanges(t *testing.T) {
	changes := []domain.FileChange{
		{Path: "/work/p/cairo_project.toml", Kind: domain.ChangeUnchanged, Digest: domain.OKDigest(1)},
		{Path: "/work/p/other/Scarb.toml", Kind: domain.ChangeNew, Digest: domain.OKDigest(2)},
		{Path: "/work/p/pkg/Scarb.lock", Kind: domain.ChangeRemoved, Digest: domain.FileNotFoundDigest()},
		{Path: "/work/p/pkg/Scarb.toml", Kind: domain.ChangeChanged, Digest: domain.OKDigest(3)},
	}

	tests := []struct {
		name       string
		all        bool
		goldenName string
	}{
		{name: "changed only", goldenName: "changes"},
		{name: "all", all: true, goldenName: "changes_all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, renderChanges(&buf, "/work/p", changes, tt.all))

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}
