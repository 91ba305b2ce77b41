package model

// BlendMode is a Krita compositeop key. The vocabulary is open ended:
// known modes are exposed as constants, unknown compositeop strings read
// from a document are kept verbatim so that re-rendering tools can still
// see them.
type BlendMode string

// Common Krita compositeop names.
const (
	BlendNormal     BlendMode = "normal"
	BlendMultiply   BlendMode = "multiply"
	BlendScreen     BlendMode = "screen"
	BlendOverlay    BlendMode = "overlay"
	BlendDarken     BlendMode = "darken"
	BlendLighten    BlendMode = "lighten"
	BlendDodge      BlendMode = "dodge"
	BlendBurn       BlendMode = "burn"
	BlendHardLight  BlendMode = "hard_light"
	BlendSoftLight  BlendMode = "soft_light_svg"
	BlendDifference BlendMode = "diff"
	BlendErase      BlendMode = "erase"
	BlendAdd        BlendMode = "add"
	BlendSubtract   BlendMode = "subtract"
	BlendDivide     BlendMode = "divide"
	BlendColor      BlendMode = "color"
	BlendHue        BlendMode = "hue"
	BlendSaturation BlendMode = "saturation"
	BlendLuminosity BlendMode = "luminize"
)

var knownBlendModes = map[BlendMode]bool{
	BlendNormal:     true,
	BlendMultiply:   true,
	BlendScreen:     true,
	BlendOverlay:    true,
	BlendDarken:     true,
	BlendLighten:    true,
	BlendDodge:      true,
	BlendBurn:       true,
	BlendHardLight:  true,
	BlendSoftLight:  true,
	BlendDifference: true,
	BlendErase:      true,
	BlendAdd:        true,
	BlendSubtract:   true,
	BlendDivide:     true,
	BlendColor:      true,
	BlendHue:        true,
	BlendSaturation: true,
	BlendLuminosity: true,
}

// Known reports whether the mode is part of the recognized vocabulary.
func (m BlendMode) Known() bool {
	return knownBlendModes[m]
}

// ParseBlendMode maps a compositeop attribute to a BlendMode. An empty
// attribute defaults to normal; unrecognized names are preserved as-is.
func ParseBlendMode(compositeOp string) BlendMode {
	if compositeOp == "" {
		return BlendNormal
	}
	return BlendMode(compositeOp)
}
