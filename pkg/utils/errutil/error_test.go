package errutil_test

import (
	"errors"
	"testing"

	"github.com/ghrepositor/ghrepositor/pkg/domain/types"
	"github.com/ghrepositor/ghrepositor/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestKind(t *testing.T) {
	t.Run("tagged error maps to its kind", func(t *testing.T) {
		err := goerr.New("cannot configure branch protection",
			goerr.T(types.TagBranchProtection),
			goerr.V("pattern", "master"))
		gt.V(t, errutil.Kind(err)).Equal("branch_protection_failure")
	})

	t.Run("tag survives wrapping", func(t *testing.T) {
		inner := goerr.New("missing GITHUB_TOKEN", goerr.T(types.TagConfigurationAbsence))
		outer := goerr.Wrap(inner, "failed to resolve credentials")
		gt.V(t, errutil.Kind(outer)).Equal("configuration_absence")
	})

	t.Run("untagged error is unexpected", func(t *testing.T) {
		gt.V(t, errutil.Kind(errors.New("boom"))).Equal("unexpected_error")
	})
}
