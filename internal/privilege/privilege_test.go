package privilege_test

import (
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/ruping/ruping-setup/internal/privilege"
)

type fakeChecker struct {
	elevated bool
}

func (f *fakeChecker) IsElevated() bool {
	return f.elevated
}

func TestRequireElevated(t *testing.T) {
	if err := privilege.Require(&fakeChecker{elevated: true}); err != nil {
		t.Errorf("Require() = %v, want nil", err)
	}
}

func TestRequireNotElevated(t *testing.T) {
	err := privilege.Require(&fakeChecker{elevated: false})

	if !errors.Is(err, privilege.ErrNotElevated) {
		t.Errorf("Require() = %v, want ErrNotElevated", err)
	}

	hints := errors.GetAllHints(err)
	if len(hints) == 0 {
		t.Error("expected an actionable hint on the error")
	}
}
