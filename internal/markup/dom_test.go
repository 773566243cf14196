package markup

import "testing"

func TestPluginIdentifierEqual(t *testing.T) {
	a := &PluginIdentifier{FQCN: "ns.coll.mod", Type: "module"}
	b := &PluginIdentifier{FQCN: "ns.coll.mod", Type: "module"}
	c := &PluginIdentifier{FQCN: "ns.coll.other", Type: "module"}

	if !a.Equal(b) {
		t.Error("identifiers with equal fields should be Equal")
	}
	if a.Equal(c) {
		t.Error("identifiers with different FQCN should not be Equal")
	}
	var n *PluginIdentifier
	if !n.Equal(nil) {
		t.Error("two nil identifiers should be Equal")
	}
	if a.Equal(nil) || n.Equal(a) {
		t.Error("a nil and non-nil identifier should never be Equal")
	}
}

func TestOptionLikeConstructors(t *testing.T) {
	plugin := &PluginIdentifier{FQCN: "ns.coll.mod", Type: "module"}
	ol := optionLike{Plugin: plugin, Name: "foo", Link: []string{"foo"}}

	name := NewOptionName(ol)
	if name.Kind != KindOptionName || name.OptionPlugin != plugin || name.Name != "foo" {
		t.Errorf("NewOptionName produced unexpected part: %+v", name)
	}

	rv := NewReturnValue(ol)
	if rv.Kind != KindReturnValue || rv.OptionPlugin != plugin {
		t.Errorf("NewReturnValue produced unexpected part: %+v", rv)
	}
}

func TestKindString(t *testing.T) {
	if KindBold.String() != "bold" {
		t.Errorf("KindBold.String() = %q, want %q", KindBold.String(), "bold")
	}
	if Kind(999).String() != "unknown" {
		t.Errorf("unknown Kind should stringify to %q", "unknown")
	}
}
