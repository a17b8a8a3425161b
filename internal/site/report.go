package site

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	mdswagger "github.com/alnah/go-mdswagger"
)

// PageResult holds the outcome of a single page.
type PageResult struct {
	Page          Page
	Substitutions []mdswagger.Substitution
	Bytes         int64
	Duration      time.Duration
	Err           error
}

// ArtifactResult holds the outcome of copying one registered file.
type ArtifactResult struct {
	File   mdswagger.File
	Bytes  int64
	Copied bool // false when the destination was already up to date
	Err    error
}

// Report summarizes a build.
type Report struct {
	Pages      []PageResult
	Artifacts  []ArtifactResult
	ThemeBytes int64
	Duration   time.Duration
}

// FailedPages returns the number of pages that could not be written.
func (r *Report) FailedPages() int {
	n := 0
	for _, p := range r.Pages {
		if p.Err != nil {
			n++
		}
	}
	return n
}

// FailedArtifacts returns the number of artifacts that could not be copied.
func (r *Report) FailedArtifacts() int {
	n := 0
	for _, a := range r.Artifacts {
		if a.Err != nil {
			n++
		}
	}
	return n
}

// Unresolved returns the number of swagger tokens replaced by an error.
func (r *Report) Unresolved() int {
	n := 0
	for _, p := range r.Pages {
		for _, s := range p.Substitutions {
			if s.Err != nil {
				n++
			}
		}
	}
	return n
}

// Viewers returns the number of swagger tokens replaced by a viewer.
func (r *Report) Viewers() int {
	n := 0
	for _, p := range r.Pages {
		for _, s := range p.Substitutions {
			if s.Err == nil {
				n++
			}
		}
	}
	return n
}

// TotalBytes returns the bytes written for pages, artifacts and theme.
func (r *Report) TotalBytes() int64 {
	total := r.ThemeBytes
	for _, p := range r.Pages {
		total += p.Bytes
	}
	for _, a := range r.Artifacts {
		total += a.Bytes
	}
	return total
}

// Failed reports whether any page or artifact failed.
func (r *Report) Failed() bool {
	return r.FailedPages() > 0 || r.FailedArtifacts() > 0
}

// Print writes per-file lines and a summary.
// quiet prints only failures; verbose adds per-page timing and tokens.
func (r *Report) Print(stdout, stderr io.Writer, quiet, verbose bool) {
	for _, p := range r.Pages {
		if p.Err != nil {
			fmt.Fprintf(stderr, "FAILED %s: %v\n", p.Page.SrcPath, p.Err)
			continue
		}
		if quiet {
			continue
		}
		if verbose {
			fmt.Fprintf(stdout, "%s -> %s (%s, %v, %d swagger)\n",
				p.Page.SrcPath, p.Page.DestPath, humanize.Bytes(uint64(p.Bytes)),
				p.Duration.Round(time.Millisecond), len(p.Substitutions))
		} else {
			fmt.Fprintf(stdout, "Created %s\n", p.Page.DestPath)
		}
	}

	for _, a := range r.Artifacts {
		if a.Err != nil {
			fmt.Fprintf(stderr, "FAILED %v\n", a.Err)
			continue
		}
		if verbose && !quiet && a.Copied {
			fmt.Fprintf(stdout, "Copied %s -> %s\n", a.File.SrcPath, a.File.AbsDestPath())
		}
	}

	if quiet {
		return
	}
	fmt.Fprintf(stdout, "\n%d pages built, %d failed, %d artifacts, %d swagger viewers, %s written in %v\n",
		len(r.Pages)-r.FailedPages(), r.FailedPages(), len(r.Artifacts), r.Viewers(),
		humanize.Bytes(uint64(r.TotalBytes())), r.Duration.Round(time.Millisecond))
}
