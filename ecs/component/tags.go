package component

import "sort"

const (
	TagPickable     = "pickable"
	TagTeleportable = "teleportable"
	TagInteractive  = "interactive"
)

type Tags struct {
	set map[string]struct{}
}

var TagsComponent = NewComponent[Tags]()

func (t *Tags) Add(tags ...string) {
	if t.set == nil {
		t.set = make(map[string]struct{}, len(tags))
	}
	for _, tag := range tags {
		t.set[tag] = struct{}{}
	}
}

func (t *Tags) Has(tag string) bool {
	_, ok := t.set[tag]
	return ok
}

func (t *Tags) List() []string {
	out := make([]string, 0, len(t.set))
	for tag := range t.set {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
