// Package disposable tracks resources whose lifetime is bound to a fiber.
//
// A subscription, a client connection or any other io.Closer can be added to
// a Registry; disposing the owning fiber releases all of them in insertion
// order. Release is best effort: one failing entry does not prevent the
// rest from being released, and all failures are reported together.
//
//	reg := disposable.NewRegistry(zerolog.Nop())
//	sub := disposable.Silent(unsubscribe)
//	reg.Add(sub)
//	reg.Add(disposable.Closer(conn))
//
//	if err := reg.DisposeAll(); err != nil {
//		log.Printf("teardown: %v", err)
//	}
package disposable
