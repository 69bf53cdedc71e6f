package raster

import (
	"bytes"
	"context"
	"image"
	"math"
	"sync"

	"github.com/adrianliechti/joborder/pkg/backend"
	"github.com/adrianliechti/joborder/pkg/layout"
	"github.com/adrianliechti/joborder/pkg/overlay"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/viant/afs"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var _ backend.Renderer = &Renderer{}

// Renderer draws the instructions onto the template background and encodes
// the page as an image.
type Renderer struct {
	fs afs.Service

	scale  float64
	format imaging.Format

	face font.Face

	mu          sync.Mutex
	backgrounds map[string]image.Image
}

func New(options ...Option) *Renderer {
	r := &Renderer{
		fs: afs.New(),

		scale:  2,
		format: imaging.PNG,

		face: basicfont.Face7x13,

		backgrounds: make(map[string]image.Image),
	}

	for _, option := range options {
		option(r)
	}

	return r
}

func (r *Renderer) Render(ctx context.Context, l *layout.Layout, instructions []overlay.Instruction) (*backend.Output, error) {
	width := int(math.Round(l.Width() * r.scale))
	height := int(math.Round(l.Height() * r.scale))

	dc := gg.NewContext(width, height)

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	if l.Background != "" {
		bg, err := r.background(ctx, l.Background)

		if err != nil {
			return nil, err
		}

		dc.DrawImage(imaging.Resize(bg, width, height, imaging.Lanczos), 0, 0)
	}

	dc.SetFontFace(r.face)
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(math.Max(1, r.scale))

	for _, i := range instructions {
		x := i.Position.X * r.scale
		y := i.Position.Y * r.scale

		switch i.Kind {
		case overlay.KindText:
			dc.DrawString(i.Content, x, y)

		case overlay.KindMark:
			size := i.Position.Size

			if size == 0 {
				size = 8
			}

			s := size * 0.6 * r.scale

			dc.DrawLine(x, y, x+s, y+s)
			dc.DrawLine(x+s, y, x, y+s)
			dc.Stroke()
		}
	}

	var buf bytes.Buffer

	if err := imaging.Encode(&buf, dc.Image(), r.format); err != nil {
		return nil, err
	}

	name, contentType := "joborder-"+l.Name+".png", "image/png"

	if r.format == imaging.JPEG {
		name, contentType = "joborder-"+l.Name+".jpg", "image/jpeg"
	}

	return &backend.Output{
		Name:        name,
		ContentType: contentType,

		Content: buf.Bytes(),
	}, nil
}

func (r *Renderer) background(ctx context.Context, url string) (image.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if img, ok := r.backgrounds[url]; ok {
		return img, nil
	}

	data, err := r.fs.DownloadWithURL(ctx, url)

	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data))

	if err != nil {
		return nil, err
	}

	r.backgrounds[url] = img

	return img, nil
}
