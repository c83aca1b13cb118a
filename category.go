package packassets

// Category names a registration list, as used in configuration files.
type Category string

// Registration categories. Applications and vendor applications are
// composites that fill the script and, in production, the style lists.
const (
	CategoryVendorScripts      Category = "vendorScripts"
	CategoryVendorStyles       Category = "vendorStyles"
	CategoryRuntimeScripts     Category = "runtimeScripts"
	CategoryScripts            Category = "scripts"
	CategoryStyles             Category = "styles"
	CategoryApplications       Category = "applications"
	CategoryVendorApplications Category = "vendorApplications"
)

// Categories lists every category in enqueue-relevant order.
func Categories() []Category {
	return []Category{
		CategoryVendorScripts,
		CategoryRuntimeScripts,
		CategoryVendorStyles,
		CategoryScripts,
		CategoryStyles,
		CategoryApplications,
		CategoryVendorApplications,
	}
}
