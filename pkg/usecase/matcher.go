package usecase

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relfetch/pkg/domain/model"
	"github.com/m-mizutani/relfetch/pkg/domain/types"
)

// MatchAssets filters a release's assets by exact name, or by a regular
// expression with search semantics when useRegex is set. The platform's
// original ordering is preserved and names are not assumed to be unique.
// Zero matches yields an empty result, not an error; the caller decides
// whether that is fatal.
func MatchAssets(file string, useRegex bool, assets []model.Asset) ([]model.Asset, error) {
	match := func(name string) bool { return name == file }
	if useRegex {
		re, err := regexp.Compile(file)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid asset pattern",
				goerr.V("pattern", file),
				goerr.T(types.TagConfig))
		}
		match = re.MatchString
	}

	var matched []model.Asset
	for _, asset := range assets {
		if match(asset.Name) {
			matched = append(matched, asset)
		}
	}

	return matched, nil
}
