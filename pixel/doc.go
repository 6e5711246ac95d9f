// Package pixel implements the color model used by addressable LED strips.
//
// Colors are 24-bit RGB values, compatible with Go's native [color.Color]
// interface, with packing to and from the 0xRRGGBB wire form and a derived
// hue/saturation/intensity decomposition used for ordering.
package pixel
