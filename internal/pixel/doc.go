// Package pixel defines the RGBA frame buffer shared by the procvis generators.
//
// A [Frame] holds width·height·4 bytes in row-major R,G,B,A order, the layout
// a canvas ImageData or framebuffer consumer expects. Every generator that
// produces pixels writes alpha 255.
package pixel
