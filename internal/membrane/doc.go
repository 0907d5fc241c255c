// Package membrane runs the per-frame geometry pipeline: sample every
// circle, take the convex hull of the samples and round the hull into the
// membrane path.
//
// The pipeline holds no state. Each call to [Compute] starts from the
// circles it is given, so edits made to the scene between frames are
// always reflected in the next result.
package membrane
