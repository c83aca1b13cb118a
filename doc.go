// Package packassets resolves front-end bundler entry points to URLs and
// emits them in a stable, dependency-chained load order.
//
// # Quick Start
//
// Create a resolver for the site, register entries, and hand them to the host:
//
//	r, err := packassets.NewResolver("https://example.com",
//	    packassets.WithDevelopmentURL(os.Getenv("PACKASSETS_DEVELOPMENT_URL")),
//	)
//	if err != nil {
//	    logger.Error("assets disabled", "err", err)
//	    return
//	}
//
//	r.RegisterVendorScript("vendor")
//	r.RegisterRuntimeScript("runtime")
//	r.RegisterApplication("app", "wp-element")
//	r.EnqueueAll(sink)
//
// # Environments
//
// A resolver works in production or development mode, decided once at
// construction. Production is selected when no development URL is given, or
// when the production URL's host is one of the configured production domains.
// In development every asset, stylesheets included, is loaded as a script
// from the development server.
//
// # Manifests
//
// When a manifest path is configured, the resolver reads the bundler's asset
// manifest once:
//
//	{"app": {"js": ["js/app.legacy.js", "js/app.modern.js"], "css": "css/app.css"}}
//
// Production picks the last path of a list and development the first. Values
// that already start with the base URL are used as-is; others are joined to
// the base URL and the conventional path minus its trailing type directory.
// In production with a file path configured, the manifest is read from disk;
// otherwise it is fetched over HTTP with certificate checks disabled.
//
// Missing entries, missing types, empty lists, and unreadable manifests all
// fall back to the conventional URL:
//
//	base + scriptPath + entry + ".js"
//
// # Load Order
//
// EnqueueAll emits vendor scripts, runtime scripts, vendor styles,
// application scripts, then application styles. Vendor and runtime scripts
// form one chain where each depends on the previous handle. Application
// scripts depend on the end of that chain but not on each other. See
// Resolver.Plan for the full rules.
//
// # Configuration
//
// Configuration is an immutable value built with functional options:
//
//	cfg := packassets.NewConfiguration(
//	    packassets.WithManifestPath("/assets/dist/manifest.json"),
//	    packassets.WithProductionDomains("example.com", "www.example.com"),
//	    packassets.WithVersion("1.4.0"),
//	)
//	r, err := packassets.NewResolver(siteURL, packassets.WithConfiguration(cfg))
//
// The host subpackage binds resolvers to host render phases and keeps named
// instances in a process-wide registry.
package packassets
