package stem

import (
	"strings"

	"github.com/oarkflow/stem/lib"
)

var (
	builderPool = lib.NewPool[*strings.Builder](func() *strings.Builder { return &strings.Builder{} })
)
