package usecase_test

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/relfetch/pkg/domain/model"
	"github.com/m-mizutani/relfetch/pkg/domain/types"
	"github.com/m-mizutani/relfetch/pkg/usecase"
)

func TestMatchAssets_Exact(t *testing.T) {
	assets := []model.Asset{
		{ID: 1, Name: "app.zip"},
		{ID: 2, Name: "app.tar.gz"},
		{ID: 3, Name: "app.zip"},
	}

	matched, err := usecase.MatchAssets("app.zip", false, assets)
	gt.NoError(t, err)

	// Exact match is case-sensitive and does not assume unique names
	gt.Value(t, len(matched)).Equal(2)
	gt.Value(t, matched[0].ID).Equal(int64(1))
	gt.Value(t, matched[1].ID).Equal(int64(3))
}

func TestMatchAssets_ExactIsCaseSensitive(t *testing.T) {
	assets := []model.Asset{{ID: 1, Name: "App.zip"}}

	matched, err := usecase.MatchAssets("app.zip", false, assets)
	gt.NoError(t, err)
	gt.Value(t, len(matched)).Equal(0)
}

func TestMatchAssets_Pattern(t *testing.T) {
	assets := []model.Asset{
		{ID: 1, Name: "app-linux-amd64.tar.gz"},
		{ID: 2, Name: "app-windows-amd64.zip"},
		{ID: 3, Name: "app-darwin-arm64.tar.gz"},
	}

	matched, err := usecase.MatchAssets(`\.tar\.gz$`, true, assets)
	gt.NoError(t, err)

	// Pattern matching preserves the platform's original ordering
	gt.Value(t, len(matched)).Equal(2)
	gt.Value(t, matched[0].Name).Equal("app-linux-amd64.tar.gz")
	gt.Value(t, matched[1].Name).Equal("app-darwin-arm64.tar.gz")
}

func TestMatchAssets_PatternSearchSemantics(t *testing.T) {
	assets := []model.Asset{{ID: 1, Name: "app-v1.0.0-linux.zip"}}

	// An unanchored pattern matches anywhere in the name
	matched, err := usecase.MatchAssets("linux", true, assets)
	gt.NoError(t, err)
	gt.Value(t, len(matched)).Equal(1)
}

func TestMatchAssets_ZeroMatchesIsNotAnError(t *testing.T) {
	assets := []model.Asset{{ID: 1, Name: "app.zip"}}

	matched, err := usecase.MatchAssets("missing.bin", false, assets)
	gt.NoError(t, err)
	gt.Value(t, len(matched)).Equal(0)
}

func TestMatchAssets_InvalidPattern(t *testing.T) {
	assets := []model.Asset{{ID: 1, Name: "app.zip"}}

	_, err := usecase.MatchAssets("[invalid", true, assets)
	gt.Error(t, err)
	gt.Value(t, goerr.HasTag(err, types.TagConfig)).Equal(true)
}
