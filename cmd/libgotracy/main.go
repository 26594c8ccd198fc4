// Command libgotracy builds the preloadable tracing engine itself:
//
//	go build -buildmode=c-shared -o libgotracy.so ./cmd/libgotracy
//
// The resulting shared object exports on_enter/on_exit, the two
// symbols the compiler's instrumentation calls at every function
// entry and exit, and runs gotracy_init/gotracy_shutdown from C
// constructor/destructor attributes so nothing but LD_PRELOAD-ing the
// library is required of the launcher.
package main

/*
#include <stdlib.h>

extern void gotracy_init(void);
extern void gotracy_shutdown(void);

static void __attribute__((constructor)) gotracy_ctor(void) {
	gotracy_init();
}

static void __attribute__((destructor)) gotracy_dtor(void) {
	gotracy_shutdown();
}
*/
import "C"

import (
	"unsafe"

	"github.com/go-tracy/tracy/pkg/engine"
)

//export gotracy_init
func gotracy_init() {
	if _, err := engine.Start(); err != nil {
		// Already started (constructor ran twice, e.g. both preloaded
		// and linked directly): nothing to do.
		return
	}
}

//export gotracy_shutdown
func gotracy_shutdown() {
	engine.Shutdown()
}

//export on_enter
func on_enter(self, callsite unsafe.Pointer) {
	engine.Enter(uintptr(self))
}

//export on_exit
func on_exit(self, callsite unsafe.Pointer) {
	engine.Exit(uintptr(self))
}

func main() {}
