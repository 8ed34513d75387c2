// Package pixel holds the image containers consumed by the segmentation
// packages. Containers are thin views over caller-owned sample slices: they
// never copy pixel data unless a conversion is explicitly requested.
//
// Addressing:
//
//	sample(x,y) = Pix[Offset + y*Stride + x]
//
// Offset and Stride allow a container to describe a sub-rectangle of a larger
// buffer (see SubImage) without copying; pixel indices produced by the
// segmentation engine are always dense, y*Width + x, regardless of stride.
//
// Types:
//
//   - Gray[T]   - single-band image over any numeric Sample type.
//   - Planar[T] - multi-band image; every band shares geometry.
//
// Conversions (FromImage, GrayFromImage, ToLab) bridge to the standard
// image.Image world and to CIELAB.
package pixel
