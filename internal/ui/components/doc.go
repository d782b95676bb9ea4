// Package components provides the declarative, theme-aware component layer
// of the library for terminal rendering.
//
// Components are stateless string renderers built on lipgloss: the same
// component with the same theme always produces the same output. Themes are
// immutable value types passed explicitly; there is no ambient or global
// theme lookup.
//
// The Slider component is a pure view over the interaction engine's public
// queries (values, percentages, state, marks). It never feeds anything back
// into the engine; hosts translate input events themselves and re-render.
package components
