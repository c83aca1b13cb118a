package packassets_test

import (
	"fmt"

	packassets "github.com/alnah/go-packassets"
)

// Example shows registration and the resulting enqueue order in production.
func Example() {
	r, err := packassets.NewResolver("https://example.com")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	r.RegisterVendorScript("vendor")
	r.RegisterRuntimeScript("runtime")
	r.RegisterApplication("app")

	for _, a := range r.Plan() {
		fmt.Println(a.Kind, a.Handle, a.Dependencies)
	}
	// Output:
	// script kanopi-pack-vendor []
	// script kanopi-pack-runtime [kanopi-pack-vendor]
	// script kanopi-pack-app [kanopi-pack-runtime]
	// style kanopi-pack-app []
}

// ExampleResolver_ScriptURL shows the conventional URL used without a manifest.
func ExampleResolver_ScriptURL() {
	cfg := packassets.NewConfiguration(packassets.WithScriptPath("/js/"))
	r, err := packassets.NewResolver("https://example.com", packassets.WithConfiguration(cfg))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(r.ScriptURL("app"))
	// Output: https://example.com/js/app.js
}

// ExampleDetectEnvironment shows production domains overriding a development URL.
func ExampleDetectEnvironment() {
	fmt.Println(packassets.DetectEnvironment("https://example.com", "", nil))
	fmt.Println(packassets.DetectEnvironment("https://example.com", "https://localhost:4400", nil))
	fmt.Println(packassets.DetectEnvironment("https://example.com", "https://localhost:4400", []string{"example.com"}))
	// Output:
	// production
	// development
	// production
}

// ExampleResolver_EnqueueAll shows a host sink built from plain functions.
func ExampleResolver_EnqueueAll() {
	r, err := packassets.NewResolver("https://example.com",
		packassets.WithConfiguration(packassets.NewConfiguration(packassets.WithVersion("1.0"))))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	r.RegisterStyle("theme")

	r.EnqueueAll(packassets.SinkFuncs{
		Style:         func(a packassets.Asset) { fmt.Println("register", a.Handle, a.URL, a.Version) },
		ActivateStyle: func(handle string) { fmt.Println("enqueue", handle) },
	})
	// Output:
	// register kanopi-pack-theme https://example.com/assets/dist/css/theme.css 1.0
	// enqueue kanopi-pack-theme
}
