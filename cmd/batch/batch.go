package main

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrianliechti/joborder/pkg/extractor"
	"github.com/adrianliechti/joborder/pkg/pipeline"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

type batch struct {
	fs       afs.Service
	pipeline *pipeline.Pipeline

	template string
	quiet    bool
}

type summary struct {
	Succeeded int
	Failed    int
}

// Run processes every supported document below input and writes one job
// order per document to output, named after the source document.
func (b *batch) Run(ctx context.Context, input, output string) (*summary, error) {
	input = normalize(input)
	output = normalize(output)

	objects, err := b.fs.List(ctx, input)

	if err != nil {
		return nil, err
	}

	var urls []string

	for _, o := range objects {
		if o.IsDir() {
			continue
		}

		if !slices.Contains(pipeline.AllowedExtensions, strings.ToLower(path.Ext(o.Name()))) {
			continue
		}

		urls = append(urls, o.URL())
	}

	slices.Sort(urls)

	bar := b.progress(len(urls))

	result := &summary{}

	for _, u := range urls {
		name := path.Base(url.Path(u))

		bar.Describe(color.BlueString("Processing %s", name))

		if err := b.process(ctx, u, output); err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}

			result.Failed++
			bar.Clear()
			color.Red("✗ %s: %v", name, err)
		} else {
			result.Succeeded++
		}

		bar.Add(1)
	}

	bar.Finish()

	return result, nil
}

func (b *batch) process(ctx context.Context, source, output string) error {
	data, err := b.fs.DownloadWithURL(ctx, source)

	if err != nil {
		return err
	}

	name := path.Base(url.Path(source))

	result, err := b.pipeline.Process(ctx, extractor.File{
		Name:    name,
		Content: data,
	})

	if err != nil {
		return err
	}

	out, _, err := b.pipeline.Generate(ctx, result.Specification, nil, b.template)

	if err != nil {
		return err
	}

	target := url.Join(output, fmt.Sprintf("%s%s", strings.TrimSuffix(name, path.Ext(name)), path.Ext(out.Name)))

	return b.fs.Upload(ctx, target, file.DefaultFileOsMode, bytes.NewReader(out.Content))
}

func (b *batch) progress(total int) *progressbar.ProgressBar {
	if b.quiet {
		return progressbar.DefaultSilent(int64(total))
	}

	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(color.BlueString("Processing documents")),
		progressbar.OptionSetItsString("docs"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func normalize(location string) string {
	if url.Scheme(location, "") == "" {
		if abs, err := filepath.Abs(location); err == nil {
			return "file://localhost" + filepath.ToSlash(abs)
		}
	}

	return location
}
