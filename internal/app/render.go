package app

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vk/sectreg/discovery"
)

// entryView is the serializable projection of a discovered entry.
type entryView struct {
	Name      string `json:"name" yaml:"name"`
	Namespace string `json:"namespace" yaml:"namespace"`
	TypeName  string `json:"type_name" yaml:"type_name"`
	Resolved  bool   `json:"resolved" yaml:"resolved"`
	GoType    string `json:"go_type,omitempty" yaml:"go_type,omitempty"`
}

// snapshotView is the serializable projection of a whole snapshot.
type snapshotView struct {
	Modules  []entryView `json:"modules" yaml:"modules"`
	Services []entryView `json:"services" yaml:"services"`
}

func viewOf(entries []discovery.Entry) []entryView {
	views := make([]entryView, 0, len(entries))
	for _, e := range entries {
		v := entryView{
			Name:      e.Name,
			Namespace: e.Namespace,
			TypeName:  e.TypeName,
			Resolved:  e.Resolved,
		}
		if e.Resolved {
			v.GoType = e.Type.String()
		}
		views = append(views, v)
	}
	return views
}

// render writes the snapshot to the app's output writer in the configured
// format.
func (a *App) render(snap *discovery.Snapshot) error {
	view := snapshotView{
		Modules:  viewOf(snap.Modules),
		Services: viewOf(snap.Services),
	}

	switch a.config.Output {
	case "json":
		enc := json.NewEncoder(a.outW)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case "yaml":
		enc := yaml.NewEncoder(a.outW)
		defer enc.Close()
		return enc.Encode(view)
	default:
		a.renderText(view)
		return nil
	}
}

func (a *App) renderText(view snapshotView) {
	printGroup := func(title string, entries []entryView) {
		fmt.Fprintf(a.outW, "%s (%d):\n", title, len(entries))
		if len(entries) == 0 {
			fmt.Fprintln(a.outW, "  (none)")
			return
		}
		for _, e := range entries {
			if e.Resolved {
				fmt.Fprintf(a.outW, "  %-40s -> %s\n", e.Name, e.GoType)
			} else {
				fmt.Fprintf(a.outW, "  %-40s -> UNRESOLVED\n", e.Name)
			}
		}
	}

	printGroup("Modules", view.Modules)
	printGroup("Services", view.Services)
}
