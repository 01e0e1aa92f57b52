package testutil

import (
	"sync"
	"testing"

	"github.com/dalemusser/classment/internal/app/resources"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

var (
	bootOnce sync.Once
	bootErr  error
)

// BootTemplates registers the shared set and boots the template engine once
// per test binary, so handlers render through the real embedded templates.
// Feature sets register themselves when their views package is imported:
//
//	import _ "github.com/dalemusser/classment/internal/app/features/home/views"
func BootTemplates(t *testing.T) {
	t.Helper()
	bootOnce.Do(func() {
		resources.LoadSharedTemplates()
		eng := templates.New(false)
		if bootErr = eng.Boot(zap.NewNop()); bootErr != nil {
			return
		}
		templates.UseEngine(eng, zap.NewNop())
	})
	if bootErr != nil {
		t.Fatalf("template engine boot: %v", bootErr)
	}
}
