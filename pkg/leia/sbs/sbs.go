package sbs

import (
	"errors"
	"image"

	"golang.org/x/image/draw"
)

const (
	// DefaultSize is the edge length of the grayscale thumbnail both halves
	// are reduced to before comparison.
	DefaultSize = 64
	// DefaultThreshold is the similarity below which a pair is reported as
	// stereo.
	DefaultThreshold = 0.95
)

// ErrFrameTooSmall is returned by Split for frames narrower than two pixels.
var ErrFrameTooSmall = errors.New("sbs: frame too small to split")

// Detector compares two image halves. The zero value uses DefaultSize and
// DefaultThreshold.
type Detector struct {
	Size      int
	Threshold float64
}

func (d Detector) size() int {
	if d.Size <= 0 {
		return DefaultSize
	}
	return d.Size
}

func (d Detector) threshold() float64 {
	if d.Threshold <= 0 {
		return DefaultThreshold
	}
	return d.Threshold
}

// Similarity returns 1 minus the normalised sum of absolute differences
// between the two downsampled halves. Identical halves score 1, a black half
// against a white half scores 0. Empty inputs score 1.
func (d Detector) Similarity(left, right image.Image) float64 {
	if isEmpty(left) || isEmpty(right) {
		return 1
	}
	n := d.size()
	l := thumbnail(left, n)
	r := thumbnail(right, n)

	var sad int
	for i := range l.Pix {
		diff := int(l.Pix[i]) - int(r.Pix[i])
		if diff < 0 {
			diff = -diff
		}
		sad += diff
	}
	return 1 - float64(sad)/(255*float64(len(l.Pix)))
}

// IsStereoPair reports whether left and right look like the two eyes of a
// side-by-side frame.
func (d Detector) IsStereoPair(left, right image.Image) bool {
	if isEmpty(left) || isEmpty(right) {
		return false
	}
	return d.Similarity(left, right) < d.threshold()
}

// Split cuts a side-by-side frame into its left and right halves. For odd
// widths the last column is dropped so both halves have the same size.
func Split(frame image.Image) (left, right image.Image, err error) {
	if frame == nil {
		return nil, nil, ErrFrameTooSmall
	}
	b := frame.Bounds()
	half := b.Dx() / 2
	if half < 1 || b.Dy() < 1 {
		return nil, nil, ErrFrameTooSmall
	}
	lr := image.Rect(b.Min.X, b.Min.Y, b.Min.X+half, b.Max.Y)
	rr := image.Rect(b.Min.X+half, b.Min.Y, b.Min.X+2*half, b.Max.Y)

	if s, ok := frame.(subImager); ok {
		return s.SubImage(lr), s.SubImage(rr), nil
	}
	return copyRect(frame, lr), copyRect(frame, rr), nil
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

func copyRect(src image.Image, r image.Rectangle) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), src, r.Min, draw.Src)
	return dst
}

func thumbnail(src image.Image, n int) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, n, n))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

func isEmpty(img image.Image) bool {
	return img == nil || img.Bounds().Empty()
}
