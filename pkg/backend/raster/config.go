package raster

import (
	"github.com/disintegration/imaging"
	"github.com/viant/afs"
	"golang.org/x/image/font"
)

type Option func(*Renderer)

func WithFS(fs afs.Service) Option {
	return func(r *Renderer) {
		r.fs = fs
	}
}

// WithScale sets the pixels per layout point.
func WithScale(scale float64) Option {
	return func(r *Renderer) {
		if scale > 0 {
			r.scale = scale
		}
	}
}

func WithJPEG() Option {
	return func(r *Renderer) {
		r.format = imaging.JPEG
	}
}

func WithFace(face font.Face) Option {
	return func(r *Renderer) {
		r.face = face
	}
}
