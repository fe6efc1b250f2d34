// Package sbs detects side-by-side stereo content.
//
// A frame is compared half against half: both halves are reduced to a small
// grayscale thumbnail and their mean absolute difference is turned into a
// similarity score in [0, 1]. Frames whose halves score below the detector's
// threshold are reported as stereo pairs.
package sbs
