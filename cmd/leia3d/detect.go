package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/moonlight-stereo/leia-go/pkg/leia/sbs"
)

func newDetectCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "detect FRAME | detect LEFT RIGHT",
		Short: "Check whether a frame (or two halves) is side-by-side stereo",
		Long: `Detect runs the side-by-side detector on a still image. With one argument
the frame is split down the middle; with two arguments the files are taken as
the left and right halves. Detection does not need the display library.`,
		Example: `
leia3d detect screenshot.png
leia3d detect left.jpg right.jpg`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.config()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			left, right, err := loadHalves(args)
			if err != nil {
				return err
			}

			d := sbs.Detector{Size: cfg.DetectSize, Threshold: cfg.DetectThreshold}
			sim := d.Similarity(left, right)
			verdict := "2D"
			if d.IsStereoPair(left, right) {
				verdict = "SBS"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "similarity=%.3f threshold=%.3f result=%s\n", sim, cfg.DetectThreshold, verdict)
			return nil
		},
	}
}

func loadHalves(args []string) (image.Image, image.Image, error) {
	if len(args) == 2 {
		left, err := decodeFile(args[0])
		if err != nil {
			return nil, nil, err
		}
		right, err := decodeFile(args[1])
		if err != nil {
			return nil, nil, err
		}
		return left, right, nil
	}
	frame, err := decodeFile(args[0])
	if err != nil {
		return nil, nil, err
	}
	left, right, err := sbs.Split(frame)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", args[0], err)
	}
	return left, right, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
