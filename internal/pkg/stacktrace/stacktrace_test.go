package stacktrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternalPaths(t *testing.T) {
	stack := []byte(`goroutine 7 [running]:
runtime/debug.Stack()
	/usr/local/go/src/runtime/debug/stack.go:26 +0x5e
github.com/shandysiswandi/simpleauth/internal/pkg/router.middlewareRecoverer.func1.1()
	/src/simpleauth/internal/pkg/router/middleware_recover.go:31 +0x65
panic({0x1234, 0x5678})
	/usr/local/go/src/runtime/panic.go:791 +0x132
github.com/shandysiswandi/simpleauth/internal/token/usecase.(*Usecase).Generate(...)
	/src/simpleauth/internal/token/usecase/generate.go:20
`)

	assert.Equal(t, []string{
		"internal/pkg/router/middleware_recover.go:31",
		"internal/token/usecase/generate.go:20",
	}, InternalPaths(stack))
}

func TestInternalPaths_NoInternalFrames(t *testing.T) {
	assert.Empty(t, InternalPaths([]byte("goroutine 1 [running]:\nmain.main()\n\t/src/main.go:5 +0x1\n")))
	assert.Empty(t, InternalPaths(nil))
}
