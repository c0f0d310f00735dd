package component

// ScriptInstance is one named script attached to an entity. Attribute values
// may hold entity handles as ecs.Entity.
type ScriptInstance struct {
	Name       string
	Attributes map[string]any
	Enabled    bool
}

type Script struct {
	Instances []*ScriptInstance
	Enabled   bool
}

var ScriptComponent = NewComponent[Script]()

func DefaultScript() Script {
	return Script{Enabled: true}
}

// Create attaches a named script instance. A second instance with the same
// name is refused and nil is returned.
func (s *Script) Create(name string, attributes map[string]any) *ScriptInstance {
	if s.Get(name) != nil {
		return nil
	}
	if attributes == nil {
		attributes = map[string]any{}
	}
	inst := &ScriptInstance{Name: name, Attributes: attributes, Enabled: true}
	s.Instances = append(s.Instances, inst)
	return inst
}

func (s *Script) Get(name string) *ScriptInstance {
	for _, inst := range s.Instances {
		if inst.Name == name {
			return inst
		}
	}
	return nil
}
