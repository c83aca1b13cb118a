// Package host wires asset resolvers into a page-rendering host.
//
// An [Instance] owns one [packassets.Resolver] built from a configuration and
// a pair of base URLs. Instances schedule enqueue callbacks on host phases
// through the [Hooks] interface; [ActionQueue] is an in-memory implementation
// suited to tests and the command line.
//
// A [Registry] keeps named instances so that several themes or plugins can
// share one process:
//
//	reg := host.NewRegistry(logger)
//	inst := reg.Register(host.DefaultInstanceName, func() *host.Instance {
//		return host.NewInstance(cfg, host.WithProductionURL("https://example.com"))
//	})
//	inst.RegisterFrontend(queue, func(i *host.Instance) {
//		if r := i.Resolver(); r != nil {
//			r.RegisterScript("app")
//		}
//		i.Enqueue(sink)
//	})
package host
