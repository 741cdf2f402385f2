package manifest

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/sectreg/registry"
)

// Declaration is one expected module or service entry.
type Declaration struct {
	Namespace   string     `hcl:"namespace,label"`
	TypeName    string     `hcl:"type_name,label"`
	Description string     `hcl:"description,optional"`
	Optional    bool       `hcl:"optional,optional"`
	Annotations *cty.Value `hcl:"annotations,optional"`
}

// Name returns the declaration's fully-qualified name.
func (d *Declaration) Name() string {
	return registry.QualifiedName(d.Namespace, d.TypeName)
}

// fileSchema is the top-level structure of one manifest file.
type fileSchema struct {
	Modules  []*Declaration `hcl:"module,block"`
	Services []*Declaration `hcl:"service,block"`
	Body     hcl.Body       `hcl:",remain"`
}

// Manifest is the merged content of all loaded manifest files.
type Manifest struct {
	Modules  []*Declaration
	Services []*Declaration
}
