package docuri

import "strings"

// Flavor identifies the documentation generator that produced an archive.
// It governs both the file layout and the format of member anchors.
type Flavor string

// Supported documentation flavors. Archives are FlavorScaladoc until an
// index document proves otherwise.
const (
	FlavorScaladoc Flavor = "scaladoc"
	FlavorJavadoc  Flavor = "javadoc"
	FlavorJavadoc8 Flavor = "javadoc8"
)

// ParseFlavor returns the flavor named by s.
// Returns EINVALID if s does not name a known flavor.
func ParseFlavor(s string) (Flavor, error) {
	switch f := Flavor(s); f {
	case FlavorScaladoc, FlavorJavadoc, FlavorJavadoc8:
		return f, nil
	}
	return "", Errorf(EINVALID, "unknown flavor %q", s)
}

// IsJavadoc reports whether documents are laid out one HTML file per type.
func (f Flavor) IsJavadoc() bool {
	return f == FlavorJavadoc || f == FlavorJavadoc8
}

// Anchor formats a member as a URL fragment for this flavor, without the
// leading '#'. Only javadoc 8 rewrites the member text.
func (f Flavor) Anchor(member string) string {
	if f == FlavorJavadoc8 {
		return Javadoc8Anchor(member)
	}
	return member
}

func (f Flavor) String() string {
	return string(f)
}

var javadoc8Replacer = strings.NewReplacer(
	", ", "-",
	"(", "-",
	")", "-",
	"[]", ":A",
)

// Javadoc8Anchor rewrites a member signature the way javadoc 8 does when
// generating anchors: "add(int, E)" becomes "add-int-E-" and array brackets
// become ":A". Earlier javadoc versions keep these characters unescaped.
func Javadoc8Anchor(member string) string {
	return javadoc8Replacer.Replace(member)
}

// AndroidAnchor adjusts a member signature to the anchor format used by
// developer.android.com, which separates parameters with ", ".
func AndroidAnchor(member string) string {
	return strings.ReplaceAll(member, ",", ", ")
}
