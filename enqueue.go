package packassets

// Plan returns every asset in the order EnqueueAll emits them:
//
//  1. vendor scripts, each chained to the previous one
//  2. runtime scripts, continuing that chain
//  3. vendor styles, chained to each other; in development they are footer
//     scripts that also start from the last script
//  4. application scripts, each depending on the last vendor/runtime script
//  5. application styles, each depending on the last vendor style
//
// Application scripts and styles do not chain to their siblings. The plan
// depends only on registrations, so repeated calls return equal results.
func (r *Resolver) Plan() []Asset {
	plan := make([]Asset, 0, r.vendorScripts.len()+r.runtimeScripts.len()+
		r.vendorStyles.len()+r.scripts.len()+r.styles.len())

	lastScript := ""
	r.vendorScripts.each(func(entry string, deps []string) {
		a := r.scriptAsset(entry, deps, lastScript)
		plan = append(plan, a)
		lastScript = a.Handle
	})
	r.runtimeScripts.each(func(entry string, deps []string) {
		a := r.scriptAsset(entry, deps, lastScript)
		plan = append(plan, a)
		lastScript = a.Handle
	})

	lastStyle := ""
	if r.InDevelopmentMode() {
		lastStyle = lastScript
	}
	r.vendorStyles.each(func(entry string, deps []string) {
		a := r.styleAsset(entry, deps, lastStyle)
		plan = append(plan, a)
		lastStyle = a.Handle
	})

	r.scripts.each(func(entry string, deps []string) {
		plan = append(plan, r.scriptAsset(entry, deps, lastScript))
	})
	r.styles.each(func(entry string, deps []string) {
		plan = append(plan, r.styleAsset(entry, deps, lastStyle))
	})

	return plan
}

// EnqueueAll hands every planned asset to sink. Call it once registration is
// complete, from the host's render phase.
func (r *Resolver) EnqueueAll(sink Sink) {
	for _, a := range r.Plan() {
		if a.Kind == KindStyle {
			sink.RegisterStyle(a)
			sink.EnqueueStyle(a.Handle)
			continue
		}
		sink.EnqueueScript(a)
	}
}

func (r *Resolver) scriptAsset(entry string, deps []string, chain string) Asset {
	return Asset{
		Kind:         KindScript,
		Entry:        entry,
		Handle:       r.Handle(entry),
		URL:          r.ScriptURL(entry),
		Dependencies: chained(deps, chain),
		Version:      r.cfg.Version(),
		InFooter:     true,
	}
}

// styleAsset builds a stylesheet in production. In development the bundler
// ships styles inside scripts, so the entry is loaded as a script instead.
// Such scripts load in the footer unless DevelopmentStylesInHead is set, in
// which case InFooter is false so styles apply before first paint.
func (r *Resolver) styleAsset(entry string, deps []string, chain string) Asset {
	if r.InDevelopmentMode() {
		a := r.scriptAsset(entry, deps, chain)
		a.InFooter = !r.cfg.DevelopmentStylesInHead()
		return a
	}
	return Asset{
		Kind:         KindStyle,
		Entry:        entry,
		Handle:       r.Handle(entry),
		URL:          r.StyleURL(entry),
		Dependencies: chained(deps, chain),
		Version:      r.cfg.Version(),
	}
}

// chained returns a copy of deps with chain appended when set.
func chained(deps []string, chain string) []string {
	out := make([]string, 0, len(deps)+1)
	out = append(out, deps...)
	if chain != "" {
		out = append(out, chain)
	}
	return out
}
