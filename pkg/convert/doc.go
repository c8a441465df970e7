// Package convert maps parameter values between the normalized control
// space used by hosts and automation and the physical space used by the
// audio engine.
//
// A Converter is built once per parameter and never changes afterwards.
// Every conversion runs through a fixed pipeline:
//
//	ToPhysical:   clamp [0,1] -> ScaleUp -> Range.Up -> Quantize
//	ToNormalized: Range.Clamp -> Quantize -> Range.Down -> ScaleDown
//
// The optional scale curve skews the mapping so that normalized 0.5 lands
// on a chosen midpoint, which gives knobs a logarithmic feel without
// evaluating a logarithm.
//
// Preconditions:
//   - min != max. A zero span divides by zero and yields Inf/NaN.
//   - when a midpoint is given it must lie strictly between min and max.
//     A midpoint on either bound yields an undefined factor.
//
// Neither precondition is checked by the constructors. Violations propagate
// as NaN/Inf rather than failing, so that nothing on the conversion path can
// error, panic or allocate. Use CheckRange and CheckMid for diagnostics.
//
// ToPhysical and ToNormalized do not allocate. ToDisplay is the only
// operation that allocates, for the returned string.
package convert
