package manifest

import (
	"github.com/extforge/extforge-go/internal/domain"
	"github.com/extforge/extforge-go/internal/utils"
	"github.com/samber/lo"
)

// Assembler composes manifest documents for one target. It holds no state
// across invocations; every Assemble call returns a fresh document.
type Assembler struct {
	browser   domain.Browser
	version   int
	overrides map[string]any
	policy    *Policy
	log       *utils.Logger
}

// AssemblerOptions contains options for the assembler
type AssemblerOptions struct {
	Browser         domain.Browser
	ManifestVersion int
	// Overrides is the user manifest object, shallow-merged over the base
	// fields before the field mappers run
	Overrides map[string]any
	// Warnings receives compatibility skips; nil discards them
	Warnings domain.WarningSink
	Logger   *utils.Logger
}

// NewAssembler creates a new manifest assembler
func NewAssembler(opts AssemblerOptions) *Assembler {
	log := opts.Logger
	if log == nil {
		log = utils.NewDefaultLogger()
	}
	return &Assembler{
		browser:   opts.Browser,
		version:   opts.ManifestVersion,
		overrides: opts.Overrides,
		policy:    NewPolicy(opts.Browser, opts.ManifestVersion, opts.Warnings),
		log:       log.WithComponent("assembler").WithTarget(opts.Browser, opts.ManifestVersion),
	}
}

// Assemble derives the manifest document from package metadata, the
// discovered entrypoints, and the bundler output. It is a pure function of
// its inputs; on error no document is produced.
func (a *Assembler) Assemble(pkg domain.PackageMetadata, entrypoints []domain.Entrypoint, out *domain.BuildOutput) (Document, error) {
	if pkg.Name == "" {
		return nil, domain.NewMissingFieldError("name")
	}
	if pkg.Version == "" {
		return nil, domain.NewMissingFieldError("version")
	}
	if pkg.Description == "" {
		return nil, domain.NewMissingFieldError("description")
	}

	installVersion, err := SimplifyVersion(pkg.Version)
	if err != nil {
		return nil, err
	}

	doc := Document{
		"manifest_version": a.version,
		"name":             pkg.Name,
		"description":      pkg.Description,
		"version":          installVersion,
	}
	if pkg.ShortName != "" {
		doc["short_name"] = pkg.ShortName
	}
	if installVersion != pkg.Version {
		// Keep the full semantic version for display
		doc["version_name"] = pkg.Version
	}

	// User overrides win over the base fields; mapper output below still
	// wins over both. Values are cloned so the merge never reaches back
	// into the caller's maps.
	for key, val := range a.overrides {
		doc[key] = cloneValue(val)
	}

	buckets := Classify(entrypoints)
	for _, typ := range domain.EntrypointTypes {
		if frag := a.mapType(typ, buckets[typ], out); frag != nil {
			doc.merge(frag)
		}
	}

	return doc, nil
}

// mapType dispatches one entrypoint bucket to its field mapper. The switch
// is exhaustive over the closed type set.
func (a *Assembler) mapType(typ domain.EntrypointType, eps []domain.Entrypoint, out *domain.BuildOutput) Fragment {
	if len(eps) == 0 {
		return nil
	}
	if typ.Singleton() && len(eps) > 1 {
		a.log.Debug().
			Str("type", string(typ)).
			Int("ignored", len(eps)-1).
			Msgf("multiple %s entrypoints found, using %q", typ, eps[0].Name)
	}

	switch typ {
	case domain.TypeBackground:
		return a.mapBackground(eps[0])
	case domain.TypeBookmarks:
		return a.mapURLOverride(FeatureBookmarksOverride, eps[0])
	case domain.TypeHistory:
		return a.mapURLOverride(FeatureHistoryOverride, eps[0])
	case domain.TypeNewtab:
		return a.mapURLOverride(FeatureNewtabOverride, eps[0])
	case domain.TypePopup:
		return a.mapPopup(eps[0])
	case domain.TypeDevtools:
		return a.mapDevtools(eps[0])
	case domain.TypeOptions:
		return a.mapOptions(eps[0])
	case domain.TypeSandbox:
		return a.mapSandbox(eps)
	case domain.TypeSidepanel:
		return a.mapSidepanel(eps)
	case domain.TypeContentScript:
		return a.mapContentScripts(eps, out)
	}
	return nil
}

func (a *Assembler) mapBackground(ep domain.Entrypoint) Fragment {
	outcome := a.policy.Resolve(FeatureBackground)
	if !outcome.Emit {
		return nil
	}
	top, field := splitKey(outcome.Key)

	background := spread(ep.Options)
	if field == "scripts" {
		background[field] = []string{scriptPath(ep.Name)}
	} else {
		background[field] = scriptPath(ep.Name)
	}
	return Fragment{top: background}
}

// mapURLOverride emits a single page-path field under the override key for
// the target. Entrypoint options are ignored here: the field is a plain
// string, there is no object to spread them into.
func (a *Assembler) mapURLOverride(feature Feature, ep domain.Entrypoint) Fragment {
	outcome := a.policy.Resolve(feature)
	if !outcome.Emit {
		return nil
	}
	top, field := splitKey(outcome.Key)
	return Fragment{top: map[string]any{field: pagePath(ep.Name)}}
}

func (a *Assembler) mapPopup(ep domain.Entrypoint) Fragment {
	outcome := a.policy.Resolve(FeaturePopup)
	if !outcome.Emit {
		return nil
	}

	popup := spread(ep.Options)
	key := outcome.Key
	if outcome.LegacyPopup {
		legacy, _ := popup[OptionMV2Key].(string)
		if legacy == "" {
			legacy = DefaultLegacyPopupKey
		}
		key = legacy + ".default_popup"
	}
	delete(popup, OptionMV2Key)

	top, field := splitKey(key)
	popup[field] = pagePath(ep.Name)
	return Fragment{top: popup}
}

// mapDevtools emits devtools_page. Like mapURLOverride it maps to a plain
// string field, so entrypoint options are ignored.
func (a *Assembler) mapDevtools(ep domain.Entrypoint) Fragment {
	return Fragment{"devtools_page": pagePath(ep.Name)}
}

func (a *Assembler) mapOptions(ep domain.Entrypoint) Fragment {
	ui := spread(ep.Options)
	ui["page"] = pagePath(ep.Name)
	return Fragment{"options_ui": ui}
}

func (a *Assembler) mapSandbox(eps []domain.Entrypoint) Fragment {
	outcome := a.policy.Resolve(FeatureSandbox)
	if !outcome.Emit {
		return nil
	}
	top, field := splitKey(outcome.Key)

	pages := lo.Map(eps, func(ep domain.Entrypoint, _ int) string {
		return pagePath(ep.Name)
	})
	return Fragment{top: map[string]any{field: pages}}
}

// mapSidepanel emits the default panel. Every sidepanel entrypoint is
// built, but the manifest only declares one path; the first discovered
// entrypoint is the default.
func (a *Assembler) mapSidepanel(eps []domain.Entrypoint) Fragment {
	outcome := a.policy.Resolve(FeatureSidePanel)
	if !outcome.Emit {
		return nil
	}
	ep := eps[0]
	top, field := splitKey(outcome.Key)

	panel := spread(ep.Options)
	panel[field] = pagePath(ep.Name)
	return Fragment{top: panel}
}

func (a *Assembler) mapContentScripts(eps []domain.Entrypoint, out *domain.BuildOutput) Fragment {
	groups := GroupContentScripts(eps)

	entries := make([]any, 0, len(groups))
	for _, group := range groups {
		entry := spread(group.Options)
		entry["js"] = group.Scripts
		if css := group.Stylesheets(out); len(css) > 0 {
			entry["css"] = css
		}
		entries = append(entries, entry)
	}
	return Fragment{"content_scripts": entries}
}
