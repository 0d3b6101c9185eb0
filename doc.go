// Package kokkosfft provides multidimensional Fast Fourier Transforms
// over dense array views.
//
// A transform is described by two Views (input and output) and the list
// of axes it acts on. Views carry rank, per-axis extents, a storage
// layout (row-major or column-major), and an element kind (real or
// complex). From these the package derives the per-axis sizes and batch
// count the execution backend needs (see GetExtents) and executes
// complex-to-complex, real-to-complex, and complex-to-real transforms
// through Plan and RealPlan.
//
// Mixed real/complex transforms follow the half-spectrum convention:
// the complex side's extent along the innermost transformed axis is
// floor(n/2)+1 for a real extent of n.
package kokkosfft
